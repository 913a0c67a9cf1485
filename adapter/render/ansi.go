package render

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/Benniphx/dzenbar/core/draw"
)

// Threshold tints used by ColorForPercent.
const (
	Green  draw.Color = "#5faf5f"
	Yellow draw.Color = "#d7af00"
	Red    draw.Color = "#d75f5f"
)

const (
	blockGlyph = "█"
	csi        = "\033["
)

// ANSI implements the ports.Serializer interface for terminals.
// Graphic primitives are approximated with full-block cells.
type ANSI struct {
	// CellWidth is the number of pixels one terminal cell stands for.
	CellWidth int
}

// New creates a new ANSI renderer where one pixel maps to one cell.
func New() *ANSI {
	return &ANSI{CellWidth: 1}
}

// ColorForPercent picks a tint by threshold: <50 green, <80 yellow, >=80 red.
func ColorForPercent(percent int) draw.Color {
	switch {
	case percent < 50:
		return Green
	case percent < 80:
		return Yellow
	default:
		return Red
	}
}

// Serialize writes seq for a terminal. Text and rectangles are printed in the
// innermost tint; outlines become brackets drawn over the cells they enclose.
// Pixel offsets are tracked from the start of seq and each primitive covers
// the cells between its rounded start and end, so adjacent pieces always add
// up to the rounded total width.
func (a *ANSI) Serialize(seq draw.Seq) string {
	var (
		b   strings.Builder
		fg  []draw.Color
		pos int // cursor in pixels
	)
	paint := func(s string) {
		if len(fg) == 0 {
			b.WriteString(s)
			return
		}
		b.WriteString(tint(fg[len(fg)-1], s))
	}
	span := func(px int) int {
		n := a.cellAt(pos+px) - a.cellAt(pos)
		pos += px
		return n
	}

	for _, op := range seq {
		switch op.Kind {
		case draw.KindText:
			paint(op.Text)
			pos += runewidth.StringWidth(op.Text) * a.cellWidth()
		case draw.KindRect:
			if n := span(op.Size.W); n > 0 {
				paint(strings.Repeat(blockGlyph, n))
			}
		case draw.KindRectOutline:
			n := span(op.Size.W)
			switch {
			case n == 1:
				paint("|")
			case n >= 2:
				paint("[")
				if n > 2 {
					fmt.Fprintf(&b, "%s%dC", csi, n-2)
				}
				paint("]")
			}
		case draw.KindMove:
			n := span(op.DX)
			if n > 0 {
				b.WriteString(strings.Repeat(" ", n))
			} else if n < 0 {
				fmt.Fprintf(&b, "%s%dD", csi, -n)
			}
		case draw.KindPushFg:
			fg = append(fg, op.Color)
		case draw.KindPopFg:
			if len(fg) > 0 {
				fg = fg[:len(fg)-1]
			}
		case draw.KindPushIgnoreBg, draw.KindPopIgnoreBg:
			// cells we skip over keep their background anyway
		}
	}
	return b.String()
}

// cellAt maps a pixel offset to the nearest cell boundary, rounding halves up.
func (a *ANSI) cellAt(px int) int {
	cw := a.cellWidth()
	q := px + cw/2
	if q < 0 {
		return -((-q + cw - 1) / cw)
	}
	return q / cw
}

func (a *ANSI) cellWidth() int {
	if a.CellWidth <= 0 {
		return 1
	}
	return a.CellWidth
}

// tint renders s in c. Hex colours ("#rrggbb") are used as true colour;
// other values are looked up as basic colour names. Unknown names leave s
// untouched.
func tint(c draw.Color, s string) string {
	name := string(c)
	if strings.HasPrefix(name, "#") {
		return color.HEX(name).Sprint(s)
	}
	if basic, ok := color.FgColors[strings.ToLower(name)]; ok {
		return basic.Sprint(s)
	}
	return s
}
