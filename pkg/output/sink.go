// Package output opens the destination for generated source code.
package output

import (
	"bufio"
	"io"
	"os"

	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Stdout selects standard output, as does an empty path.
const Stdout = "-"

// Open creates or truncates path on fs. Writes are buffered, so a failing
// file only reports its error on the write that fills the buffer, or on
// Close.
func Open(fs afero.Fs, path string) (*Sink, error) {
	if path == "" || path == Stdout {
		return newSink(os.Stdout, nil), nil
	}

	f, err := fs.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create output failed")
	}

	return newSink(f, f), nil
}

func newSink(w io.Writer, c io.Closer) *Sink {
	return &Sink{buf: bufio.NewWriter(w), closer: c}
}

type Sink struct {
	buf    *bufio.Writer
	closer io.Closer
	n      int64
	closed bool
}

func (s *Sink) Write(p []byte) (int, error) {
	n, err := s.buf.Write(p)
	s.n += int64(n)
	return n, err
}

// Close flushes pending data and closes the file. It is safe to call more
// than once; later calls are no-ops.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	err := s.buf.Flush()
	if s.closer != nil {
		if cerr := s.closer.Close(); err == nil {
			err = cerr
		}
	}

	return errors.Wrap(err, "close output failed")
}

// Written counts bytes accepted so far, flushed or not.
func (s *Sink) Written() int64 {
	return s.n
}

func (s *Sink) Size() string {
	return bytesize.New(float64(s.n)).String()
}
