package poll

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Benniphx/dzenbar/core/draw"
	"github.com/Benniphx/dzenbar/core/ports"
)

// Frame renders the bar for the source's current value.
type Frame func() (draw.Seq, error)

// Run renders frames and hands them to sink until the source reports io.EOF
// or ctx ends.
//
// With interval 0 frames are rendered back to back, which suits a blocking
// stream such as stdin. With a positive interval one frame is rendered per
// tick and read failures are logged and retried on the next tick.
// Values rejected with ports.ErrBadValue are always skipped.
func Run(ctx context.Context, interval time.Duration, frame Frame, ser ports.Serializer, sink ports.Sink, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	frames := 0
	for {
		if ctx.Err() != nil {
			return nil
		}

		seq, err := frame()
		switch {
		case err == nil:
			if err := sink.WriteFrame(ser.Serialize(seq)); err != nil {
				return err
			}
			frames++
		case errors.Is(err, io.EOF):
			log.Debug("source exhausted", zap.Int("frames", frames))
			return nil
		case errors.Is(err, ports.ErrBadValue):
			log.Warn("skipping value", zap.Error(err))
		case interval > 0:
			log.Error("reading value", zap.Error(err))
		default:
			return errors.Wrap(err, "poll: read value")
		}

		if tick == nil {
			continue
		}
		select {
		case <-ctx.Done():
			return nil
		case <-tick:
		}
	}
}
