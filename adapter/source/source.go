package source

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Benniphx/dzenbar/core/ports"
)

// Reader implements the ports.ValueSource interface over a line stream.
// Each non-blank line holds one value; extra fields after it are ignored.
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader creates a line-oriented source over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Value returns the next value, or io.EOF when r is exhausted.
func (r *Reader) Value() (float64, error) {
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		return parse(strings.Fields(line)[0])
	}
	if err := r.scanner.Err(); err != nil {
		return 0, errors.Wrap(err, "source: read")
	}
	return 0, io.EOF
}

// File implements the ports.ValueSource interface by re-reading a file that
// holds a single number, such as /sys/class/power_supply/BAT0/capacity.
type File struct {
	Path string
}

// NewFile creates a polled file source.
func NewFile(path string) *File {
	return &File{Path: path}
}

// Value reads and parses the file.
func (f *File) Value() (float64, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return 0, errors.Wrapf(err, "source: read %s", f.Path)
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, errors.Wrapf(ports.ErrBadValue, "%s is empty", f.Path)
	}
	return parse(fields[0])
}

func parse(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, errors.Wrapf(ports.ErrBadValue, "%q", s)
	}
	return v, nil
}
