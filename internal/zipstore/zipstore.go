// Package zipstore is the archive layer for array bundles: a zip container
// treated as a flat name to bytes store.
//
// Entries are written with Deflate using github.com/klauspost/compress.
// Reading accepts both stored and deflated entries, which covers bundles
// written by numpy's savez and savez_compressed.
package zipstore

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
)

// Reader gives random access to the entries of an in-memory archive.
type Reader struct {
	files map[string]*zip.File
	names []string
}

// NewReader indexes the central directory of data.
func NewReader(data []byte) (*Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}

	r := &Reader{files: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		if strings.HasSuffix(f.Name, "/") {
			continue
		}
		if _, dup := r.files[f.Name]; dup {
			return nil, fmt.Errorf("archive has duplicate entry %q", f.Name)
		}
		r.files[f.Name] = f
		r.names = append(r.names, f.Name)
	}
	return r, nil
}

// Names returns the entry names in central directory order.
func (r *Reader) Names() []string {
	return append([]string(nil), r.names...)
}

// ReadEntry returns the uncompressed contents of the named entry.
func (r *Reader) ReadEntry(name string) ([]byte, error) {
	f, ok := r.files[name]
	if !ok {
		return nil, fmt.Errorf("archive entry %q not found", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening entry %q: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading entry %q: %w", name, err)
	}
	return data, nil
}

// ReadAll returns every entry of the archive keyed by name.
func ReadAll(data []byte) (map[string][]byte, error) {
	r, err := NewReader(data)
	if err != nil {
		return nil, err
	}
	names := r.Names()
	entries := make(map[string][]byte, len(names))
	for _, name := range names {
		b, err := r.ReadEntry(name)
		if err != nil {
			return nil, err
		}
		entries[name] = b
	}
	return entries, nil
}

// Writer is an open archive being appended to. It must be closed to
// write the central directory.
type Writer struct {
	zw     *zip.Writer
	names  map[string]struct{}
	closed bool
}

// NewWriter starts an archive on w.
func NewWriter(w io.Writer) *Writer {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.DefaultCompression)
	})
	return &Writer{zw: zw, names: make(map[string]struct{})}
}

// Add appends one entry.
func (w *Writer) Add(name string, data []byte) error {
	if w.closed {
		return fmt.Errorf("archive writer is closed")
	}
	if _, dup := w.names[name]; dup {
		return fmt.Errorf("duplicate archive entry %q", name)
	}
	w.names[name] = struct{}{}

	fw, err := w.zw.CreateHeader(&zip.FileHeader{
		Name:   name,
		Method: zip.Deflate,
	})
	if err != nil {
		return fmt.Errorf("creating entry %q: %w", name, err)
	}
	if _, err := fw.Write(data); err != nil {
		return fmt.Errorf("writing entry %q: %w", name, err)
	}
	return nil
}

// Close finishes the archive. Calling Close more than once is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.zw.Close()
}

// Write streams entries to dst as a complete archive, in name order.
// The archive writer is closed on every path.
func Write(dst io.Writer, entries map[string][]byte) (err error) {
	w := NewWriter(dst)
	defer func() {
		if cerr := w.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing archive: %w", cerr)
		}
	}()

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := w.Add(name, entries[name]); err != nil {
			return err
		}
	}
	return nil
}

// Create builds an in-memory archive from entries.
func Create(entries map[string][]byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, entries); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Store adapts the package functions to an archive collaborator value.
type Store struct{}

// ReadAll implements the read side of the archive contract.
func (Store) ReadAll(data []byte) (map[string][]byte, error) {
	return ReadAll(data)
}

// Create implements the write side of the archive contract.
func (Store) Create(entries map[string][]byte) ([]byte, error) {
	return Create(entries)
}
