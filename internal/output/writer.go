package output

import (
	"os"

	"golang.org/x/sys/unix"
)

// Writer writes to a file descriptor, gathering several buffers into one
// writev call.
type Writer struct {
	fd int
}

// NewWriter creates a Writer that writes to stdout.
func NewWriter() *Writer {
	return NewFdWriter(int(os.Stdout.Fd()))
}

// NewFdWriter creates a Writer for fd. The Writer does not close it.
func NewFdWriter(fd int) *Writer {
	return &Writer{fd: fd}
}

// Fd returns the file descriptor written to.
func (w *Writer) Fd() uintptr { return uintptr(w.fd) }

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	if err := w.WriteAll(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteAll writes every buffer in order, retrying on short writes.
func (w *Writer) WriteAll(bufs ...[]byte) error {
	iovs := make([][]byte, 0, len(bufs))
	for _, b := range bufs {
		if len(b) > 0 {
			iovs = append(iovs, b)
		}
	}

	for len(iovs) > 0 {
		n, err := unix.Writev(w.fd, iovs)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return err
		}
		for n > 0 && len(iovs) > 0 {
			if n < len(iovs[0]) {
				iovs[0] = iovs[0][n:]
				break
			}
			n -= len(iovs[0])
			iovs = iovs[1:]
		}
	}
	return nil
}
