package input

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// Read buffers are pooled as *[]byte so a grown backing array is kept.
var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 64*1024)
		return &b
	},
}

// BufferedReader reads a file into a pooled buffer with pread.
type BufferedReader struct{}

// NewBufferedReader creates a BufferedReader.
func NewBufferedReader() *BufferedReader {
	return &BufferedReader{}
}

func (r *BufferedReader) Read(path string) (Content, error) {
	fd, size, err := openSized(path)
	if err != nil || size == 0 {
		return Content{release: noRelease}, err
	}
	return readBuffered(fd, size, path)
}

// readBuffered takes ownership of fd and closes it before returning.
func readBuffered(fd int, size int64, path string) (Content, error) {
	defer unix.Close(fd)

	bp := bufPool.Get().(*[]byte)
	buf := *bp
	if cap(buf) < int(size) {
		buf = make([]byte, size)
	} else {
		buf = buf[:size]
	}
	put := func() error {
		*bp = buf[:0]
		bufPool.Put(bp)
		return nil
	}

	n := 0
	for n < len(buf) {
		m, err := unix.Pread(fd, buf[n:], int64(n))
		if err != nil {
			put()
			return Content{}, fmt.Errorf("read %s: %w", path, err)
		}
		if m == 0 {
			break // file shrank under us
		}
		n += m
	}
	return Content{Data: buf[:n], release: put}, nil
}

// openSized opens path and returns its fd and size. For an empty file the fd
// is already closed and size is 0.
func openSized(path string) (int, int64, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NOATIME, 0)
	if err != nil {
		// O_NOATIME needs file ownership.
		fd, err = unix.Open(path, unix.O_RDONLY, 0)
	}
	if err != nil {
		return -1, 0, fmt.Errorf("open %s: %w", path, err)
	}

	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		unix.Close(fd)
		return -1, 0, fmt.Errorf("stat %s: %w", path, err)
	}
	if st.Mode&unix.S_IFMT == unix.S_IFDIR {
		unix.Close(fd)
		return -1, 0, fmt.Errorf("open %s: is a directory", path)
	}
	if st.Size == 0 {
		unix.Close(fd)
	}
	return fd, st.Size, nil
}
