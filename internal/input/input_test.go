package input

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t testing.TB, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReaders_Read(t *testing.T) {
	small := []byte("hello world\nline two\n")
	large := bytes.Repeat([]byte("abcdefghij\n"), 10000)

	readers := []struct {
		name string
		r    Reader
	}{
		{"buffered", NewBufferedReader()},
		{"mmap", NewMmapReader()},
		{"adaptive small threshold", NewAdaptiveReader(16)},
		{"adaptive default threshold", NewAdaptiveReader(0)},
	}
	for _, rd := range readers {
		for _, content := range [][]byte{small, large} {
			t.Run(rd.name, func(t *testing.T) {
				path := writeFile(t, "doc.txt", content)
				c, err := rd.r.Read(path)
				if err != nil {
					t.Fatalf("Read() error: %v", err)
				}
				if !bytes.Equal(c.Data, content) {
					t.Errorf("data length = %d, want %d", len(c.Data), len(content))
				}
				if err := c.Release(); err != nil {
					t.Errorf("Release() error: %v", err)
				}
				if err := c.Release(); err != nil {
					t.Errorf("second Release() error: %v", err)
				}
			})
		}
	}
}

func TestReaders_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.txt", nil)
	for _, r := range []Reader{NewBufferedReader(), NewMmapReader(), NewAdaptiveReader(1)} {
		c, err := r.Read(path)
		if err != nil {
			t.Fatalf("%T Read() error: %v", r, err)
		}
		if len(c.Data) != 0 {
			t.Errorf("%T data = %q, want empty", r, c.Data)
		}
		c.Release()
	}
}

func TestReaders_Errors(t *testing.T) {
	dir := t.TempDir()
	for _, r := range []Reader{NewBufferedReader(), NewMmapReader(), NewAdaptiveReader(0)} {
		if _, err := r.Read(filepath.Join(dir, "missing.txt")); err == nil {
			t.Errorf("%T: expected error for nonexistent file", r)
		}
		if _, err := r.Read(dir); err == nil {
			t.Errorf("%T: expected error for directory", r)
		}
	}
}

func TestBufferedReader_PoolReuse(t *testing.T) {
	r := NewBufferedReader()
	a := writeFile(t, "a.txt", []byte("first document"))
	b := writeFile(t, "b.txt", []byte("second"))

	got, err := Load(r, a)
	if err != nil {
		t.Fatal(err)
	}
	// A recycled buffer must not leak into an earlier result.
	if _, err := Load(r, b); err != nil {
		t.Fatal(err)
	}
	if got != "first document" {
		t.Errorf("first load = %q after reuse", got)
	}
}

func TestStdinReader(t *testing.T) {
	r := NewStreamReader(strings.NewReader("piped\ntext"))
	got, err := Load(r, StdinPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got != "piped\ntext" {
		t.Errorf("got %q, want %q", got, "piped\ntext")
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "doc.txt", []byte("café\nnaïve\n"))
	got, err := Load(NewAdaptiveReader(0), path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got != "café\nnaïve\n" {
		t.Errorf("got %q", got)
	}
}

func TestLoad_Binary(t *testing.T) {
	path := writeFile(t, "bin.dat", []byte("ELF\x00\x01\x02"))
	_, err := Load(NewBufferedReader(), path)
	if !errors.Is(err, ErrBinary) {
		t.Errorf("err = %v, want ErrBinary", err)
	}
}

func TestIsBinary(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"empty", nil, false},
		{"text", []byte("plain text\n"), false},
		{"nul", []byte("a\x00b"), true},
		{"nul past sniff window", append(bytes.Repeat([]byte("a"), binarySniffLen), 0), false},
		{"latin-1 bytes", []byte("caf\xe9"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBinary(tt.data); got != tt.want {
				t.Errorf("IsBinary() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFor(t *testing.T) {
	piped, ok := For(StdinPath, 0, strings.NewReader("x")).(*StdinReader)
	if !ok {
		t.Fatalf("For(%q) should read stdin", StdinPath)
	}
	if got, _ := Load(piped, StdinPath); got != "x" {
		t.Errorf("stdin content = %q, want %q", got, "x")
	}
	if r, ok := For(StdinPath, 0, nil).(*StdinReader); !ok || r.r != os.Stdin {
		t.Errorf("For(%q, nil) should read os.Stdin", StdinPath)
	}
	r, ok := For("doc.txt", 42, nil).(*AdaptiveReader)
	if !ok {
		t.Fatalf("For(file) = %T, want *AdaptiveReader", r)
	}
	if r.threshold != 42 {
		t.Errorf("threshold = %d, want 42", r.threshold)
	}
}

func BenchmarkAdaptiveReader(b *testing.B) {
	content := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog\n"), 10000)
	path := writeFile(b, "bench.txt", content)

	r := NewAdaptiveReader(0)
	b.SetBytes(int64(len(content)))
	for b.Loop() {
		if _, err := Load(r, path); err != nil {
			b.Fatal(err)
		}
	}
}
