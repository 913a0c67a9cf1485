package bar

import (
	"golang.org/x/exp/constraints"

	"github.com/Benniphx/dzenbar/core/draw"
)

// Number is any value type a bar can be drawn for.
type Number interface {
	constraints.Integer | constraints.Float
}

// Range is the closed interval a value is measured against. Max must not be
// smaller than Min.
type Range[T Number] struct {
	Min T
	Max T
}

// BarType describes how the body of a bar is drawn. It is one of Text,
// Filled or Hollow.
type BarType interface {
	isBarType()
}

// Text draws the bar with glyphs: Open, Width cells of Filled/Background,
// then Close. When Middle is set it marks the half unit that truncation
// would otherwise drop.
type Text struct {
	Open       string
	Filled     string
	Middle     string
	Background string
	Close      string
	Width      int
}

// Filled draws an opaque block of Size. An empty Background leaves the
// unfilled part transparent.
type Filled struct {
	Fill       draw.Color
	Background draw.Color
	Size       draw.Size
}

// Hollow is Filled inside an outline. Size includes a 2 pixel margin on
// every side of the interior.
type Hollow struct {
	Fill       draw.Color
	Background draw.Color
	Border     draw.Color
	Size       draw.Size
}

func (Text) isBarType()   {}
func (Filled) isBarType() {}
func (Hollow) isBarType() {}

// LabelKind selects how the label value is formatted.
type LabelKind int

const (
	Percentage LabelKind = iota // filled units out of 100, e.g. " 42%"
	Absolute                    // the value itself
)

// Placement says where the label goes relative to the body.
type Placement int

const (
	PlaceNone Placement = iota
	PlaceLeft
	PlaceRight
)

// BarText places an optional label next to the bar.
type BarText struct {
	Placement Placement
	Kind      LabelKind
}

// None draws the body only.
var None = BarText{}

// AtLeft puts a label of the given kind before the body.
func AtLeft(kind LabelKind) BarText {
	return BarText{Placement: PlaceLeft, Kind: kind}
}

// AtRight puts a label of the given kind after the body.
func AtRight(kind LabelKind) BarText {
	return BarText{Placement: PlaceRight, Kind: kind}
}

// TextStyle is the dbar preset: "[", glyph repeated, spaces, "]".
func TextStyle(glyph string, width int) BarType {
	return Text{
		Open:       "[",
		Filled:     glyph,
		Background: " ",
		Close:      "]",
		Width:      width,
	}
}

// GraphicStyle is the gdbar preset.
func GraphicStyle(size draw.Size, fill, background draw.Color, hollow bool) BarType {
	if hollow {
		return Hollow{Fill: fill, Background: background, Size: size}
	}
	return Filled{Fill: fill, Background: background, Size: size}
}
