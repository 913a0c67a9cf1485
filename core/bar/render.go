package bar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Benniphx/dzenbar/core/draw"
	"github.com/Benniphx/dzenbar/core/ports"
)

// labelWidth keeps labels of different magnitude aligned across renders.
const labelWidth = 4

// hollowMargin is the gap between the outline and the interior, per side.
const hollowMargin = 2

// Render draws v as a bar of the given style, with an optional label.
// It panics with an error wrapping ErrInvalidRange when rng.Max < rng.Min.
func Render[T Number](text BarText, style BarType, rng Range[T], v T) draw.Seq {
	body := drawBody(style, rng, v)

	switch text.Placement {
	case PlaceLeft:
		lbl := runewidth.FillLeft(formatLabel(text.Kind, rng, v), labelWidth)
		return draw.Concat(draw.Str(lbl+" "), body)
	case PlaceRight:
		lbl := runewidth.FillRight(formatLabel(text.Kind, rng, v), labelWidth)
		return draw.Concat(body, draw.Str(" "+lbl))
	default:
		return body
	}
}

// RenderDynamic pulls the current value from src and renders it like Render.
// Errors from src are returned unchanged.
func RenderDynamic[T Number](text BarText, style BarType, rng Range[T], src ports.ValueSource[T]) (draw.Seq, error) {
	v, err := src.Value()
	if err != nil {
		return nil, err
	}
	return Render(text, style, rng, v), nil
}

func formatLabel[T Number](kind LabelKind, rng Range[T], v T) string {
	if kind == Absolute {
		return fmt.Sprint(v)
	}
	pct, _ := Round(100, rng, v)
	return strconv.Itoa(pct) + "%"
}

func drawBody[T Number](style BarType, rng Range[T], v T) draw.Seq {
	switch s := style.(type) {
	case Text:
		return drawText(s, rng, v)
	case Filled:
		f, _ := Round(s.Size.W, rng, v)
		return drawBlock(s.Fill, s.Background, s.Size, f)
	case Hollow:
		return drawHollow(s, rng, v)
	case nil:
		return nil
	default:
		panic(fmt.Sprintf("bar: unknown bar type %T", style))
	}
}

func drawText[T Number](s Text, rng Range[T], v T) draw.Seq {
	w := max(s.Width, 0)
	f, more := Round(w, rng, v)

	c := cells{filled: f, background: w - f}
	if s.Middle != "" {
		c = edgeTable[edgeCase{empty: f == 0, full: f >= w, more: more}](w, f)
	}

	var b strings.Builder
	b.WriteString(s.Open)
	b.WriteString(strings.Repeat(s.Filled, c.filled))
	b.WriteString(strings.Repeat(s.Middle, c.middle))
	b.WriteString(strings.Repeat(s.Background, c.background))
	b.WriteString(s.Close)
	return draw.Str(b.String())
}

// cells counts each glyph of a text bar, left to right.
type cells struct {
	filled     int
	middle     int
	background int
}

type edgeCase struct {
	empty bool // f == 0
	full  bool // f >= w
	more  bool // at least half of the next unit is filled
}

// edgeTable places the middle glyph. The glyph marks more and nothing else:
// it occupies cell f when more is set and the bar is not full. A partly
// filled bar whose remainder is under half a unit has no middle glyph, e.g.
// 0.1 in (-10, 10) at width 20 draws 10 filled and 10 background cells. No
// other cell depends on more.
var edgeTable = map[edgeCase]func(w, f int) cells{
	{empty: false, full: false, more: false}: func(w, f int) cells { return cells{filled: f, background: w - f} },
	{empty: false, full: false, more: true}:  func(w, f int) cells { return cells{filled: f, middle: 1, background: w - f - 1} },
	{empty: true, full: false, more: false}:  func(w, f int) cells { return cells{background: w} },
	{empty: true, full: false, more: true}:   func(w, f int) cells { return cells{middle: 1, background: w - 1} },
	{empty: false, full: true, more: false}:  func(w, f int) cells { return cells{filled: w} },
	{empty: false, full: true, more: true}:   func(w, f int) cells { return cells{filled: w} },
	{empty: true, full: true, more: false}:   func(w, f int) cells { return cells{filled: w} },
	{empty: true, full: true, more: true}:    func(w, f int) cells { return cells{filled: w} },
}

// drawBlock draws f columns in fill and the remaining columns either in
// background or, without one, as a transparent cursor move.
func drawBlock(fill, background draw.Color, size draw.Size, f int) draw.Seq {
	if size.H <= 0 {
		return draw.Move(size.W)
	}
	b := size.W - f
	head := draw.Fg(fill, draw.Rect(f, size.H))
	if background == "" {
		return draw.Concat(head, draw.Move(b))
	}
	return draw.Concat(head, draw.Fg(background, draw.Rect(b, size.H)))
}

func drawHollow[T Number](s Hollow, rng Range[T], v T) draw.Seq {
	inner := draw.Size{
		W: max(s.Size.W-2*hollowMargin, 0),
		H: max(s.Size.H-2*hollowMargin, 0),
	}
	f, _ := Round(inner.W, rng, v)
	travelled := hollowMargin + inner.W + hollowMargin

	return draw.Concat(
		draw.Move(hollowMargin),
		drawBlock(s.Fill, s.Background, inner, f),
		draw.Move(hollowMargin-travelled),
		draw.IgnoreBg(true, draw.Fg(s.Border, draw.RectOutline(s.Size.W, s.Size.H))),
	)
}
