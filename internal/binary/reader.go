// Package binary provides the low-level field I/O used to frame array files.
package binary

import (
	"encoding/binary"
	"errors"
	"io"
)

// ErrInvalidSize is returned when an invalid length size is specified.
var ErrInvalidSize = errors.New("invalid length size: must be 2 or 4")

// Reader provides methods for reading fixed-width fields and a
// variable-width length field from an array file prefix.
type Reader struct {
	r          io.ReaderAt
	order      binary.ByteOrder
	lengthSize int
	pos        int64
}

// Config holds reader and writer configuration.
type Config struct {
	ByteOrder  binary.ByteOrder
	LengthSize int // 2 or 4 bytes
}

// DefaultConfig returns the version 1.0 configuration: little-endian with
// a 2-byte header length.
func DefaultConfig() Config {
	return Config{
		ByteOrder:  binary.LittleEndian,
		LengthSize: 2,
	}
}

// NewReader creates a binary reader with the given configuration.
func NewReader(r io.ReaderAt, cfg Config) *Reader {
	return &Reader{
		r:          r,
		order:      cfg.ByteOrder,
		lengthSize: cfg.LengthSize,
	}
}

// WithLengthSize returns a new reader at the same position with a
// different length field width.
func (r *Reader) WithLengthSize(size int) (*Reader, error) {
	if size != 2 && size != 4 {
		return nil, ErrInvalidSize
	}
	return &Reader{
		r:          r.r,
		order:      r.order,
		lengthSize: size,
		pos:        r.pos,
	}, nil
}

// Pos returns the current read position.
func (r *Reader) Pos() int64 {
	return r.pos
}

// ReadBytes reads exactly n bytes from the current position.
// A short read returns io.ErrUnexpectedEOF.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	buf, err := r.Peek(n)
	if err != nil {
		return nil, err
	}
	r.pos += int64(n)
	return buf, nil
}

// ReadUint8 reads an unsigned 8-bit integer.
func (r *Reader) ReadUint8() (uint8, error) {
	buf, err := r.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadUint16 reads an unsigned 16-bit integer.
func (r *Reader) ReadUint16() (uint16, error) {
	buf, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(buf), nil
}

// ReadUint32 reads an unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(buf), nil
}

// ReadLength reads a length value using the configured length size.
func (r *Reader) ReadLength() (uint64, error) {
	switch r.lengthSize {
	case 2:
		v, err := r.ReadUint16()
		return uint64(v), err
	case 4:
		v, err := r.ReadUint32()
		return uint64(v), err
	default:
		return 0, ErrInvalidSize
	}
}

// Peek reads n bytes without advancing the position.
func (r *Reader) Peek(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	read, err := r.r.ReadAt(buf, r.pos)
	if read < n {
		if err == nil || err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf, nil
}
