package npy

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/robert-malhotra/go-npy/internal/atomicfile"
	"github.com/robert-malhotra/go-npy/internal/header"
)

// Decode parses a complete array file image. The element buffer is copied;
// its length is checked against the shape on first typed access.
func Decode(data []byte) (*Array, error) {
	h, v, off, err := header.Decode(data)
	if err != nil {
		return nil, err
	}
	return &Array{
		header:  h,
		data:    bytes.Clone(data[off:]),
		version: v,
	}, nil
}

// Encode renders a as an array file image.
func Encode(a *Array, opts ...EncodeOption) ([]byte, error) {
	options := defaultEncodeOptions()
	for _, opt := range opts {
		opt(options)
	}

	prefix, _, err := header.Encode(a.header, options.alignment)
	if err != nil {
		return nil, fmt.Errorf("encoding header: %w", err)
	}
	out := make([]byte, 0, len(prefix)+len(a.data))
	out = append(out, prefix...)
	return append(out, a.data...), nil
}

// MarshalBinary implements encoding.BinaryMarshaler with default options.
func (a *Array) MarshalBinary() ([]byte, error) {
	return Encode(a)
}

// Read decodes an array file from r.
func Read(r io.Reader) (*Array, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading array: %w", err)
	}
	return Decode(data)
}

// Write encodes a to w.
func Write(w io.Writer, a *Array, opts ...EncodeOption) error {
	data, err := Encode(a, opts...)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing array: %w", err)
	}
	return nil
}

// ReadFile reads and decodes the array file at path.
func ReadFile(path string) (*Array, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	a, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return a, nil
}

// WriteFile encodes a to path. The file is written to a temporary name in
// the same directory and renamed into place, so a failed write never
// leaves a partial file at path.
func WriteFile(path string, a *Array, opts ...EncodeOption) error {
	data, err := Encode(a, opts...)
	if err != nil {
		return err
	}
	return atomicfile.Write(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}
