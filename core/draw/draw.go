package draw

import "strings"

// Color is a tint understood by the serializer (e.g. "#ff8800" or "red").
// The empty Color means "keep the current default".
type Color string

// Size is a width/height pair in pixels.
type Size struct {
	W int
	H int
}

// Kind identifies a drawing primitive.
type Kind int

const (
	KindText Kind = iota
	KindRect
	KindRectOutline
	KindMove
	KindPushFg
	KindPopFg
	KindPushIgnoreBg
	KindPopIgnoreBg
)

// Op is a single drawing primitive. Only the fields relevant to Kind are set.
type Op struct {
	Kind   Kind
	Text   string
	Size   Size
	DX     int
	Color  Color
	Ignore bool
}

// Seq is an ordered list of primitives. Push/Pop ops are always balanced
// when built through the helpers in this package.
type Seq []Op

// Str emits literal text.
func Str(s string) Seq {
	if s == "" {
		return nil
	}
	return Seq{{Kind: KindText, Text: s}}
}

// Rect emits an opaque rectangle. Empty rectangles emit nothing.
func Rect(w, h int) Seq {
	if w <= 0 || h <= 0 {
		return nil
	}
	return Seq{{Kind: KindRect, Size: Size{W: w, H: h}}}
}

// RectOutline emits the outline of a rectangle.
func RectOutline(w, h int) Seq {
	if w <= 0 || h <= 0 {
		return nil
	}
	return Seq{{Kind: KindRectOutline, Size: Size{W: w, H: h}}}
}

// Move advances the cursor by dx pixels without drawing.
func Move(dx int) Seq {
	if dx == 0 {
		return nil
	}
	return Seq{{Kind: KindMove, DX: dx}}
}

// Fg draws inner with the foreground tint c. An empty c leaves inner as is.
func Fg(c Color, inner Seq) Seq {
	if c == "" || len(inner) == 0 {
		return inner
	}
	out := make(Seq, 0, len(inner)+2)
	out = append(out, Op{Kind: KindPushFg, Color: c})
	out = append(out, inner...)
	return append(out, Op{Kind: KindPopFg})
}

// IgnoreBg draws inner with background filling suppressed (or re-enabled).
func IgnoreBg(ignore bool, inner Seq) Seq {
	if len(inner) == 0 {
		return inner
	}
	out := make(Seq, 0, len(inner)+2)
	out = append(out, Op{Kind: KindPushIgnoreBg, Ignore: ignore})
	out = append(out, inner...)
	return append(out, Op{Kind: KindPopIgnoreBg})
}

// Concat joins sequences in order.
func Concat(parts ...Seq) Seq {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	if n == 0 {
		return nil
	}
	out := make(Seq, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// PlainText returns the concatenation of all text ops, dropping graphics.
func (s Seq) PlainText() string {
	var b strings.Builder
	for _, op := range s {
		if op.Kind == KindText {
			b.WriteString(op.Text)
		}
	}
	return b.String()
}
