package main

import (
	"context"
	"flag"
	"io"

	adaptconfig "github.com/Benniphx/dzenbar/adapter/config"
	"github.com/Benniphx/dzenbar/core/bar"
	"github.com/Benniphx/dzenbar/core/draw"
)

// runGdbar draws graphic bars (rectangles) instead of glyphs.
func runGdbar(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := adaptconfig.Load()
	cfg.Version = version

	fs := flag.NewFlagSet("gdbar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	common := bindCommon(fs, &cfg)
	fs.IntVar(&cfg.GraphicWidth, "w", cfg.GraphicWidth, "bar width in pixels")
	fs.IntVar(&cfg.GraphicHeight, "h", cfg.GraphicHeight, "bar height in pixels")
	fs.StringVar(&cfg.FgColor, "fg", cfg.FgColor, "fill colour")
	fs.StringVar(&cfg.BgColor, "bg", cfg.BgColor, "background colour, empty for transparent")
	fs.StringVar(&cfg.BorderColor, "border", cfg.BorderColor, "outline colour for -hollow")
	fs.BoolVar(&cfg.Hollow, "hollow", cfg.Hollow, "draw an outline around the bar")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	size := draw.Size{W: cfg.GraphicWidth, H: cfg.GraphicHeight}
	style := bar.GraphicStyle(size, draw.Color(cfg.FgColor), draw.Color(cfg.BgColor), cfg.Hollow)
	if h, ok := style.(bar.Hollow); ok {
		h.Border = draw.Color(cfg.BorderColor)
		style = h
	}

	return serve(ctx, cfg, common, style, stdin, stdout, stderr)
}
