package input

import (
	"fmt"
	"io"
	"os"
)

// StdinPath is the path that names standard input.
const StdinPath = "-"

// StdinReader reads the whole of a stream, standard input by default. The
// path argument to Read is ignored.
type StdinReader struct {
	r io.Reader
}

// NewStdinReader creates a StdinReader over os.Stdin.
func NewStdinReader() *StdinReader {
	return NewStreamReader(os.Stdin)
}

// NewStreamReader creates a StdinReader over r.
func NewStreamReader(r io.Reader) *StdinReader {
	return &StdinReader{r: r}
}

func (r *StdinReader) Read(_ string) (Content, error) {
	data, err := io.ReadAll(r.r)
	if err != nil {
		return Content{}, fmt.Errorf("read stdin: %w", err)
	}
	return Content{Data: data, release: noRelease}, nil
}

// For picks the reader for path: stdin for StdinPath, otherwise an
// AdaptiveReader with the given mmap threshold. A nil stdin means os.Stdin.
func For(path string, mmapThreshold int64, stdin io.Reader) Reader {
	if path == StdinPath {
		if stdin == nil {
			return NewStdinReader()
		}
		return NewStreamReader(stdin)
	}
	return NewAdaptiveReader(mmapThreshold)
}
