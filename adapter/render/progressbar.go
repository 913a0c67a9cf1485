package render

import "github.com/Benniphx/dzenbar/core/bar"

// BlockStyle is a terminal bar of width cells drawn with full blocks on a
// light shade, with a half block marking the rounded-up unit.
func BlockStyle(width int) bar.Text {
	return bar.Text{
		Filled:     "█",
		Middle:     "▌",
		Background: "░",
		Width:      width,
	}
}
