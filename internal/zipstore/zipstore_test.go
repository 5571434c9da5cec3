package zipstore

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReadAll(t *testing.T) {
	entries := map[string][]byte{
		"b.npy": bytes.Repeat([]byte{0xab}, 4096),
		"a.npy": []byte("first"),
		"empty": {},
	}

	data, err := Create(entries)
	require.NoError(t, err)

	got, err := ReadAll(data)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	for name, want := range entries {
		assert.Equal(t, want, got[name], name)
	}

	r, err := NewReader(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.npy", "b.npy", "empty"}, r.Names())

	_, err = r.ReadEntry("missing")
	assert.Error(t, err)
}

func TestReadStoredEntries(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	fw, err := zw.CreateHeader(&zip.FileHeader{Name: "x.npy", Method: zip.Store})
	require.NoError(t, err)
	_, err = fw.Write([]byte("stored"))
	require.NoError(t, err)
	_, err = zw.Create("dir/")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	got, err := ReadAll(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"x.npy": []byte("stored")}, got)
}

func TestReadAllRejectsGarbage(t *testing.T) {
	_, err := ReadAll([]byte("definitely not a zip archive"))
	assert.Error(t, err)
}

func TestWriterLifecycle(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Add("a", []byte{1}))
	assert.Error(t, w.Add("a", []byte{2}))
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	assert.Error(t, w.Add("b", []byte{3}))

	got, err := ReadAll(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, got["a"])
}

func TestStore(t *testing.T) {
	var s Store
	data, err := s.Create(map[string][]byte{"k.npy": []byte("v")})
	require.NoError(t, err)
	got, err := s.ReadAll(data)
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got["k.npy"])
}

func TestReadRejectsDuplicateEntries(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, b := range []byte{1, 2} {
		fw, err := zw.Create("x.npy")
		require.NoError(t, err)
		_, err = fw.Write([]byte{b})
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	_, err := ReadAll(buf.Bytes())
	assert.ErrorContains(t, err, "duplicate")
}
