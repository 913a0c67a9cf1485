package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	adaptconfig "github.com/Benniphx/dzenbar/adapter/config"
	"github.com/Benniphx/dzenbar/adapter/dzen"
	"github.com/Benniphx/dzenbar/adapter/logging"
	"github.com/Benniphx/dzenbar/adapter/output"
	adaptrender "github.com/Benniphx/dzenbar/adapter/render"
	"github.com/Benniphx/dzenbar/adapter/source"
	"github.com/Benniphx/dzenbar/core/bar"
	"github.com/Benniphx/dzenbar/core/draw"
	"github.com/Benniphx/dzenbar/core/poll"
	"github.com/Benniphx/dzenbar/core/ports"
	"github.com/Benniphx/dzenbar/core/types"
)

var version = "dev"

// defaultPoll is used when -file is given without an interval.
const defaultPoll = time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run returns the process exit code: 0 on success, 1 on runtime or
// validation errors, 2 on malformed flags.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		switch args[0] {
		case "--version", "-version", "-v":
			fmt.Fprintln(stdout, version)
			return 0
		case "gdbar":
			return runGdbar(ctx, args[1:], stdin, stdout, stderr)
		}
	}

	cfg := adaptconfig.Load()
	cfg.Version = version

	fs := flag.NewFlagSet("dzenbar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	common := bindCommon(fs, &cfg)
	fs.IntVar(&cfg.TextWidth, "w", cfg.TextWidth, "bar width in cells")
	fs.StringVar(&cfg.Fill, "fill", cfg.Fill, "glyph for filled cells")
	fs.StringVar(&cfg.Middle, "middle", cfg.Middle, "glyph for the rounded-up cell")
	fs.StringVar(&cfg.Background, "bg", cfg.Background, "glyph for empty cells")
	blocks := fs.Bool("blocks", false, "draw with block glyphs instead of -fill/-bg")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	style := bar.Text{
		Open:       "[",
		Filled:     cfg.Fill,
		Middle:     cfg.Middle,
		Background: cfg.Background,
		Close:      "]",
		Width:      cfg.TextWidth,
	}
	if *blocks {
		style = adaptrender.BlockStyle(cfg.TextWidth)
	}

	return serve(ctx, cfg, common, style, stdin, stdout, stderr)
}

// commonFlags are shared by the text and graphic modes.
type commonFlags struct {
	ansi      bool
	autoColor bool
	file      string
	out       string
}

func bindCommon(fs *flag.FlagSet, cfg *types.Config) *commonFlags {
	c := &commonFlags{}
	fs.Float64Var(&cfg.Min, "min", cfg.Min, "minimum value")
	fs.Float64Var(&cfg.Max, "max", cfg.Max, "maximum value")
	fs.StringVar(&cfg.Label, "l", cfg.Label, "label placement: left|right|none")
	fs.BoolVar(&cfg.LabelAbsolute, "abs", cfg.LabelAbsolute, "label with the value instead of a percentage")
	fs.DurationVar(&cfg.Interval, "interval", cfg.Interval, "poll interval for -file")
	fs.IntVar(&cfg.CellWidth, "cell", cfg.CellWidth, "pixels per terminal cell with -ansi")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.BoolVar(&c.ansi, "ansi", false, "write ANSI terminal output instead of dzen2 markup")
	fs.BoolVar(&c.autoColor, "auto-color", false, "tint the bar green/yellow/red by percentage")
	fs.StringVar(&c.file, "file", "", "poll a file holding the value instead of reading stdin")
	fs.StringVar(&c.out, "o", "", "atomically replace this file with each bar instead of printing")
	return c
}

// serve validates the settings, wires the adapters and runs the render loop.
func serve(ctx context.Context, cfg types.Config, c *commonFlags, style bar.BarType, stdin io.Reader, stdout, stderr io.Writer) int {
	if !types.ValidLabel(cfg.Label) {
		fmt.Fprintf(stderr, "error: -l must be one of %v\n", types.Labels)
		return 1
	}
	rng := bar.Range[float64]{Min: cfg.Min, Max: cfg.Max}
	if err := bar.CheckRange(rng); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	log := logging.New(stderr, cfg.LogLevel, cfg.LogFile)
	defer log.Sync()

	var (
		src      ports.ValueSource[float64]
		interval = cfg.Interval
	)
	if c.file != "" {
		src = source.NewFile(c.file)
		if interval <= 0 {
			interval = defaultPoll
		}
	} else {
		src = source.NewReader(stdin)
		interval = 0
	}

	var ser ports.Serializer = dzen.New()
	if c.ansi {
		ser = &adaptrender.ANSI{CellWidth: cfg.CellWidth}
	}

	var sink ports.Sink = output.NewWriter(stdout)
	if c.out != "" {
		sink = output.NewFile(c.out)
	}

	text := labelFor(cfg)
	var last float64
	tap := ports.ValueFunc[float64](func() (float64, error) {
		v, err := src.Value()
		last = v
		return v, err
	})
	frame := func() (draw.Seq, error) {
		seq, err := bar.RenderDynamic(text, style, rng, tap)
		if err != nil || !c.autoColor {
			return seq, err
		}
		pct, _ := bar.Round(100, rng, last)
		return draw.Fg(adaptrender.ColorForPercent(pct), seq), nil
	}

	log.Debug("rendering",
		zap.String("version", cfg.Version),
		zap.Float64("min", cfg.Min),
		zap.Float64("max", cfg.Max),
		zap.Duration("interval", interval))

	if err := poll.Run(ctx, interval, frame, ser, sink, log); err != nil {
		log.Error("render loop stopped", zap.Error(err))
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func labelFor(cfg types.Config) bar.BarText {
	kind := bar.Percentage
	if cfg.LabelAbsolute {
		kind = bar.Absolute
	}
	switch cfg.Label {
	case "left":
		return bar.AtLeft(kind)
	case "right":
		return bar.AtRight(kind)
	default:
		return bar.None
	}
}
