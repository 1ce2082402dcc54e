// Package compress reads and writes catalogue dumps stored compressed.
package compress

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Codec wraps streams with a compression format.
type Codec interface {
	NewReader(r io.Reader) (io.ReadCloser, error)
	NewWriter(w io.Writer) io.WriteCloser
}

// ForPath picks the codec from the file extension, Nop when it names no
// known format.
func ForPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return NewGZip()
	case ".br":
		return NewBrotli()
	case ".lz4":
		return NewLZ4()
	default:
		return NewNop()
	}
}

// TrimExt removes a compression extension from name.
func TrimExt(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz", ".br", ".lz4":
		return strings.TrimSuffix(name, filepath.Ext(name))
	}
	return name
}

// Open opens the file at path and decompresses it on the fly.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := ForPath(path).NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &fileReader{ReadCloser: r, file: f}, nil
}

// Create creates the file at path, compressing what is written according to
// its extension.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &fileWriter{WriteCloser: ForPath(path).NewWriter(f), file: f}, nil
}

type fileReader struct {
	io.ReadCloser
	file *os.File
}

func (f *fileReader) Close() error {
	err := f.ReadCloser.Close()
	if cerr := f.file.Close(); err == nil {
		err = cerr
	}
	return err
}

type fileWriter struct {
	io.WriteCloser
	file   *os.File
	closed bool
}

// Close flushes the codec then closes the file. Later calls are no-ops.
func (f *fileWriter) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	err := f.WriteCloser.Close()
	if cerr := f.file.Close(); err == nil {
		err = cerr
	}
	return err
}
