package ports

import (
	"errors"

	"github.com/Benniphx/dzenbar/core/draw"
)

// ErrBadValue marks a value that could not be read. The next call to the
// source may still succeed.
var ErrBadValue = errors.New("not a number")

// ValueSource supplies the current value of a bar at render time.
// Implementations return io.EOF once no more values will arrive.
type ValueSource[T any] interface {
	Value() (T, error)
}

// ValueFunc adapts a plain function to ValueSource.
type ValueFunc[T any] func() (T, error)

// Value calls f.
func (f ValueFunc[T]) Value() (T, error) {
	return f()
}

// Serializer turns a primitive sequence into the output format of a
// particular status-bar program.
type Serializer interface {
	Serialize(seq draw.Seq) string
}

// Sink receives one rendered frame at a time.
type Sink interface {
	WriteFrame(frame string) error
}
