package compress

import (
	"compress/gzip"
	"io"
)

type GZip struct {
}

func NewGZip() GZip {
	return GZip{}
}

func (g GZip) NewReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

func (g GZip) NewWriter(w io.Writer) io.WriteCloser {
	return gzip.NewWriter(w)
}
