package types

import "time"

// Config holds user configuration settings.
type Config struct {
	Min           float64       // Lower bound of the input range
	Max           float64       // Upper bound of the input range
	Label         string        // "left", "right" or "none"
	LabelAbsolute bool          // Print the value instead of a percentage
	TextWidth     int           // Cells between the brackets of a text bar
	Fill          string        // Glyph for filled cells
	Middle        string        // Glyph for the rounded-up cell, "" = none
	Background    string        // Glyph for empty cells
	GraphicWidth  int           // gdbar width in pixels
	GraphicHeight int           // gdbar height in pixels
	FgColor       string        // gdbar fill colour, "" = dzen default
	BgColor       string        // gdbar background colour, "" = transparent
	BorderColor   string        // gdbar outline colour (hollow bars)
	Hollow        bool          // Draw gdbar bars with an outline
	CellWidth     int           // Pixels per terminal cell for ANSI output
	Interval      time.Duration // Poll interval for file input, 0 = stream stdin
	LogLevel      string        // zap level name
	LogFile       string        // Optional rotating log file
	Version       string        // Current binary version
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Min:           0,
		Max:           100,
		Label:         "left",
		LabelAbsolute: false,
		TextWidth:     25,
		Fill:          "=",
		Middle:        "",
		Background:    " ",
		GraphicWidth:  80,
		GraphicHeight: 10,
		FgColor:       "#aecf96",
		BgColor:       "#494b4f",
		BorderColor:   "",
		Hollow:        false,
		CellWidth:     1,
		Interval:      0,
		LogLevel:      "warn",
		LogFile:       "",
		Version:       "dev",
	}
}

// Labels lists the accepted values of Config.Label.
var Labels = []string{"left", "right", "none"}

// ValidLabel reports whether s is one of Labels.
func ValidLabel(s string) bool {
	for _, l := range Labels {
		if s == l {
			return true
		}
	}
	return false
}
