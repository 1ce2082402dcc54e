package compress

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForPath(t *testing.T) {
	assert.IsType(t, GZip{}, ForPath("P1486_1.UTF8.gz"))
	assert.IsType(t, Brotli{}, ForPath("P1486_1.UTF8.BR"))
	assert.IsType(t, LZ4{}, ForPath("dir/P174_2.UTF8.lz4"))
	assert.IsType(t, Nop{}, ForPath("P174_2.UTF8"))
}

func TestTrimExt(t *testing.T) {
	assert.Equal(t, "P1486_1.UTF8", TrimExt("P1486_1.UTF8.gz"))
	assert.Equal(t, "P1486_1.UTF8", TrimExt("P1486_1.UTF8"))
}

func TestOpen(t *testing.T) {
	payload := []byte("00024nam  2200025   4500\x1e\x1d")
	dir := t.TempDir()

	for _, name := range []string{"plain.UTF8", "dump.UTF8.gz", "dump.UTF8.br", "dump.UTF8.lz4"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, compressed(t, ForPath(path), payload), 0o644))

			r, err := Open(path)
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())
			assert.Equal(t, payload, got)
		})
	}
}

func TestCreate(t *testing.T) {
	payload := []byte("00024nam  2200025   4500\x1e\x1d")
	dir := t.TempDir()

	for _, name := range []string{"sample.UTF8", "sample.UTF8.gz", "sample.UTF8.br", "sample.UTF8.lz4"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			w, err := Create(path)
			require.NoError(t, err)
			_, err = w.Write(payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())
			require.NoError(t, w.Close())

			r, err := Open(path)
			require.NoError(t, err)
			defer r.Close()
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, payload, got)
		})
	}
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.gz"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func compressed(t *testing.T, c Codec, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := c.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}
