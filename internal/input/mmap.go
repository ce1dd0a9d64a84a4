package input

import "golang.org/x/sys/unix"

// DefaultMmapThreshold is the file size from which AdaptiveReader maps files
// instead of reading them.
const DefaultMmapThreshold = 1 << 20

// MmapReader maps files read-only with sequential-access hints.
type MmapReader struct{}

// NewMmapReader creates an MmapReader.
func NewMmapReader() *MmapReader {
	return &MmapReader{}
}

func (r *MmapReader) Read(path string) (Content, error) {
	fd, size, err := openSized(path)
	if err != nil || size == 0 {
		return Content{release: noRelease}, err
	}
	return readMmap(fd, size, path)
}

// readMmap takes ownership of fd. If mapping fails the file is read into a
// buffer instead.
func readMmap(fd int, size int64, path string) (Content, error) {
	unix.Fadvise(fd, 0, size, unix.FADV_SEQUENTIAL)

	data, err := unix.Mmap(fd, 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE|unix.MAP_POPULATE)
	if err != nil {
		return readBuffered(fd, size, path)
	}
	// The mapping stays valid after the descriptor is closed.
	unix.Close(fd)
	unix.Madvise(data, unix.MADV_SEQUENTIAL)

	return Content{
		Data: data,
		release: func() error {
			return unix.Munmap(data)
		},
	}, nil
}

// AdaptiveReader buffers small files and maps large ones.
type AdaptiveReader struct {
	threshold int64
}

// NewAdaptiveReader returns an AdaptiveReader that maps files of at least
// threshold bytes. A threshold of 0 or less uses DefaultMmapThreshold.
func NewAdaptiveReader(threshold int64) *AdaptiveReader {
	if threshold <= 0 {
		threshold = DefaultMmapThreshold
	}
	return &AdaptiveReader{threshold: threshold}
}

func (r *AdaptiveReader) Read(path string) (Content, error) {
	fd, size, err := openSized(path)
	if err != nil || size == 0 {
		return Content{release: noRelease}, err
	}
	if size >= r.threshold {
		return readMmap(fd, size, path)
	}
	return readBuffered(fd, size, path)
}

var (
	_ Reader = (*BufferedReader)(nil)
	_ Reader = (*MmapReader)(nil)
	_ Reader = (*AdaptiveReader)(nil)
	_ Reader = (*StdinReader)(nil)
)
