package bar

import (
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/Benniphx/dzenbar/core/draw"
	"github.com/Benniphx/dzenbar/core/ports"
)

var arrow = Text{Open: "[", Filled: "=", Middle: ">", Background: "-", Close: "]", Width: 20}

func countOps(s draw.Seq, k draw.Kind) int {
	n := 0
	for _, op := range s {
		if op.Kind == k {
			n++
		}
	}
	return n
}

func TestRenderTextHalfFull(t *testing.T) {
	got := Render(None, TextStyle("=", 20), Range[int]{-10, 10}, 0).PlainText()
	want := "[" + strings.Repeat("=", 10) + strings.Repeat(" ", 10) + "]"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderTextCellsAlwaysFillWidth(t *testing.T) {
	styles := []Text{arrow, TextStyle("#", 20).(Text)}
	for _, s := range styles {
		for n := -11.0; n <= 11.0; n += 0.25 {
			body := Render(None, s, Range[float64]{-10, 10}, n).PlainText()
			cellsOnly := strings.TrimSuffix(strings.TrimPrefix(body, "["), "]")
			if got := len(cellsOnly); got != s.Width {
				t.Errorf("Render(%v) has %d cells, want %d: %q", n, got, s.Width, body)
			}
		}
	}
}

func TestRenderMiddleGlyphEncodesHalfUnit(t *testing.T) {
	rng := Range[float64]{-10, 10}
	below := Render(None, arrow, rng, 9.4).PlainText()
	above := Render(None, arrow, rng, 9.5).PlainText()

	if want := "[" + strings.Repeat("=", 19) + "-]"; below != want {
		t.Errorf("Render(9.4) = %q, want %q", below, want)
	}
	if want := "[" + strings.Repeat("=", 19) + ">]"; above != want {
		t.Errorf("Render(9.5) = %q, want %q", above, want)
	}

	var diffs []int
	for i := range below {
		if below[i] != above[i] {
			diffs = append(diffs, i)
		}
	}
	if diff := cmp.Diff([]int{20}, diffs); diff != "" {
		t.Errorf("differing cells mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderMiddleGlyphTable(t *testing.T) {
	s := Text{Open: "<", Filled: "#", Middle: "+", Background: ".", Close: ">", Width: 4}
	tests := []struct {
		n    int
		want string
	}{
		{0, "<....>"},
		{4, "<....>"},
		{5, "<+...>"},  // half a unit
		{10, "<#...>"}, // exactly one unit
		{14, "<#...>"},
		{15, "<#+..>"},
		{39, "<###+>"},
		{40, "<####>"},
		{99, "<####>"},
	}
	for _, tt := range tests {
		got := Render(None, s, Range[int]{0, 40}, tt.n).PlainText()
		if got != tt.want {
			t.Errorf("Render(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestRenderMiddleGlyphOnlyMarksHalfUnit(t *testing.T) {
	rng := Range[float64]{-10, 10}
	tests := []struct {
		n    float64
		want string
	}{
		{0.1, "[" + strings.Repeat("=", 10) + strings.Repeat("-", 10) + "]"},
		{0.5, "[" + strings.Repeat("=", 10) + ">" + strings.Repeat("-", 9) + "]"},
		{-9.9, "[" + strings.Repeat("-", 20) + "]"},
	}
	for _, tt := range tests {
		got := Render(None, arrow, rng, tt.n).PlainText()
		if got != tt.want {
			t.Errorf("Render(%v) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestRenderLabels(t *testing.T) {
	rng := Range[int]{0, 100}
	style := TextStyle("=", 4)
	tests := []struct {
		name string
		text BarText
		v    int
		want string
	}{
		{"none", None, 50, "[==  ]"},
		{"left percent full", AtLeft(Percentage), 100, "100% [====]"},
		{"left percent single digit", AtLeft(Percentage), 2, "  2% [    ]"},
		{"right percent", AtRight(Percentage), 2, "[    ] 2%  "},
		{"left absolute", AtLeft(Absolute), 75, "  75 [=== ]"},
		{"right absolute wide", AtRight(Absolute), 12345, "[====] 12345"},
		{"percent clamps", AtLeft(Percentage), -5, "  0% [    ]"},
	}
	for _, tt := range tests {
		got := Render(tt.text, style, rng, tt.v).PlainText()
		if got != tt.want {
			t.Errorf("%s: Render = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestRenderAbsoluteFloatLabel(t *testing.T) {
	got := Render(AtRight(Absolute), TextStyle("=", 2), Range[float64]{0, 10}, 2.5).PlainText()
	if want := "[  ] 2.5 "; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderFilled(t *testing.T) {
	size := draw.Size{W: 10, H: 8}
	rng := Range[int]{0, 10}

	transparent := Render(None, GraphicStyle(size, "#ffffff", "", false), rng, 5)
	want := draw.Concat(draw.Fg("#ffffff", draw.Rect(5, 8)), draw.Move(5))
	if diff := cmp.Diff(want, transparent); diff != "" {
		t.Errorf("transparent background mismatch (-want +got):\n%s", diff)
	}

	opaque := Render(None, GraphicStyle(size, "#ffffff", "#000000", false), rng, 5)
	want = draw.Concat(draw.Fg("#ffffff", draw.Rect(5, 8)), draw.Fg("#000000", draw.Rect(5, 8)))
	if diff := cmp.Diff(want, opaque); diff != "" {
		t.Errorf("opaque background mismatch (-want +got):\n%s", diff)
	}

	defaults := Render(None, Filled{Size: size}, rng, 10)
	if diff := cmp.Diff(draw.Rect(10, 8), defaults); diff != "" {
		t.Errorf("default tint mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderHollow(t *testing.T) {
	style := Hollow{Fill: "green", Border: "white", Size: draw.Size{W: 24, H: 24}}
	for _, v := range []int{0, 3, 5, 10} {
		seq := Render(None, style, Range[int]{0, 10}, v)

		var outlines []draw.Size
		x := 0
		for _, op := range seq {
			switch op.Kind {
			case draw.KindRect:
				if op.Size.H != 20 {
					t.Errorf("v=%d: interior height = %d, want 20", v, op.Size.H)
				}
				x += op.Size.W
			case draw.KindMove:
				x += op.DX
			case draw.KindRectOutline:
				if x != 0 {
					t.Errorf("v=%d: outline drawn at x=%d, want 0", v, x)
				}
				outlines = append(outlines, op.Size)
			}
		}
		if diff := cmp.Diff([]draw.Size{{W: 24, H: 24}}, outlines); diff != "" {
			t.Errorf("v=%d: outlines mismatch (-want +got):\n%s", v, diff)
		}
	}

	full := Render(None, style, Range[int]{0, 10}, 10)
	want := draw.Concat(
		draw.Move(2),
		draw.Fg("green", draw.Rect(20, 20)),
		draw.Move(-22),
		draw.IgnoreBg(true, draw.Fg("white", draw.RectOutline(24, 24))),
	)
	if diff := cmp.Diff(want, full); diff != "" {
		t.Errorf("full hollow mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderHollowTooSmall(t *testing.T) {
	seq := Render(None, Hollow{Size: draw.Size{W: 3, H: 3}}, Range[int]{0, 1}, 1)
	if got := countOps(seq, draw.KindRect); got != 0 {
		t.Errorf("interior rects = %d, want 0", got)
	}
	if got := countOps(seq, draw.KindRectOutline); got != 1 {
		t.Errorf("outlines = %d, want 1", got)
	}
}

func TestRenderInvalidRangePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic")
		}
	}()
	Render(AtLeft(Percentage), TextStyle("=", 10), Range[int]{1, 0}, 0)
}

func TestRenderDynamic(t *testing.T) {
	calls := 0
	src := ports.ValueFunc[int](func() (int, error) {
		calls++
		return 30, nil
	})

	got, err := RenderDynamic(AtRight(Percentage), TextStyle("=", 10), Range[int]{0, 60}, src)
	if err != nil {
		t.Fatalf("RenderDynamic: %v", err)
	}
	want := Render(AtRight(Percentage), TextStyle("=", 10), Range[int]{0, 60}, 30)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RenderDynamic mismatch (-want +got):\n%s", diff)
	}
	if calls != 1 {
		t.Errorf("source called %d times, want 1", calls)
	}
}

func TestRenderDynamicSourceError(t *testing.T) {
	src := ports.ValueFunc[float64](func() (float64, error) { return 0, io.EOF })
	_, err := RenderDynamic(None, TextStyle("=", 10), Range[float64]{0, 1}, src)
	if !errors.Is(err, io.EOF) {
		t.Errorf("err = %v, want io.EOF", err)
	}
}

func TestGraphicStyle(t *testing.T) {
	size := draw.Size{W: 80, H: 10}
	if _, ok := GraphicStyle(size, "", "", true).(Hollow); !ok {
		t.Error("hollow preset should be Hollow")
	}
	got, ok := GraphicStyle(size, "#aaa", "#111", false).(Filled)
	if !ok {
		t.Fatal("solid preset should be Filled")
	}
	if diff := cmp.Diff(Filled{Fill: "#aaa", Background: "#111", Size: size}, got); diff != "" {
		t.Errorf("GraphicStyle mismatch (-want +got):\n%s", diff)
	}
}
