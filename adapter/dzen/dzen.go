package dzen

import (
	"fmt"
	"strings"

	"github.com/Benniphx/dzenbar/core/draw"
)

// Markup implements the ports.Serializer interface for dzen2 in-text commands.
type Markup struct{}

// New creates a new dzen2 serializer.
func New() *Markup {
	return &Markup{}
}

// Serialize writes seq as dzen2 commands. Scoped tints restore the enclosing
// tint on exit; at top level they reset to dzen's default with ^fg().
func (m *Markup) Serialize(seq draw.Seq) string {
	var (
		b      strings.Builder
		fg     []draw.Color
		ignore []bool
	)
	for _, op := range seq {
		switch op.Kind {
		case draw.KindText:
			b.WriteString(Escape(op.Text))
		case draw.KindRect:
			fmt.Fprintf(&b, "^r(%dx%d)", op.Size.W, op.Size.H)
		case draw.KindRectOutline:
			fmt.Fprintf(&b, "^ro(%dx%d)", op.Size.W, op.Size.H)
		case draw.KindMove:
			fmt.Fprintf(&b, "^p(%d)", op.DX)
		case draw.KindPushFg:
			fg = append(fg, op.Color)
			fmt.Fprintf(&b, "^fg(%s)", op.Color)
		case draw.KindPopFg:
			if len(fg) == 0 {
				continue
			}
			fg = fg[:len(fg)-1]
			if len(fg) == 0 {
				b.WriteString("^fg()")
			} else {
				fmt.Fprintf(&b, "^fg(%s)", fg[len(fg)-1])
			}
		case draw.KindPushIgnoreBg:
			ignore = append(ignore, op.Ignore)
			b.WriteString(ib(op.Ignore))
		case draw.KindPopIgnoreBg:
			if len(ignore) == 0 {
				continue
			}
			ignore = ignore[:len(ignore)-1]
			if len(ignore) == 0 {
				b.WriteString(ib(false))
			} else {
				b.WriteString(ib(ignore[len(ignore)-1]))
			}
		}
	}
	return b.String()
}

// Escape doubles every '^' so dzen prints it literally.
func Escape(s string) string {
	return strings.ReplaceAll(s, "^", "^^")
}

func ib(ignore bool) string {
	if ignore {
		return "^ib(1)"
	}
	return "^ib(0)"
}
