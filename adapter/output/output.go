package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Writer implements the ports.Sink interface, one frame per line.
type Writer struct {
	w io.Writer
}

// NewWriter creates a line sink over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteFrame writes frame followed by a newline.
func (s *Writer) WriteFrame(frame string) error {
	if _, err := io.WriteString(s.w, frame+"\n"); err != nil {
		return errors.Wrap(err, "output: write frame")
	}
	return nil
}

// File implements the ports.Sink interface by replacing a file with the
// latest frame, so readers such as a tmux status line never see a partial bar.
type File struct {
	Path string
}

// NewFile creates a file sink.
func NewFile(path string) *File {
	return &File{Path: path}
}

// WriteFrame atomically replaces the file with frame and a trailing newline.
func (s *File) WriteFrame(frame string) error {
	return AtomicWrite(s.Path, []byte(frame+"\n"))
}

// AtomicWrite writes data to path atomically via a temp file + rename.
func AtomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "output: create %s", dir)
	}

	tmp := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())
	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrapf(err, "output: create %s", tmp)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrapf(err, "output: write %s", tmp)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrapf(err, "output: sync %s", tmp)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "output: close %s", tmp)
	}

	return errors.Wrapf(os.Rename(tmp, path), "output: rename to %s", path)
}
