package binary

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Writer provides methods for writing fixed-width fields and a
// variable-width length field to an array file prefix.
type Writer struct {
	w          io.Writer
	order      binary.ByteOrder
	lengthSize int
	pos        int64
}

// NewWriter creates a binary writer with the given configuration.
func NewWriter(w io.Writer, cfg Config) *Writer {
	return &Writer{
		w:          w,
		order:      cfg.ByteOrder,
		lengthSize: cfg.LengthSize,
	}
}

// WithLengthSize returns a new writer at the same position with a
// different length field width.
func (w *Writer) WithLengthSize(size int) (*Writer, error) {
	if size != 2 && size != 4 {
		return nil, ErrInvalidSize
	}
	return &Writer{
		w:          w.w,
		order:      w.order,
		lengthSize: size,
		pos:        w.pos,
	}, nil
}

// Pos returns the number of bytes written so far.
func (w *Writer) Pos() int64 {
	return w.pos
}

// WriteBytes writes the given bytes at the current position.
func (w *Writer) WriteBytes(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	n, err := w.w.Write(data)
	w.pos += int64(n)
	return err
}

// WriteUint8 writes an unsigned 8-bit integer.
func (w *Writer) WriteUint8(v uint8) error {
	return w.WriteBytes([]byte{v})
}

// WriteUint16 writes an unsigned 16-bit integer.
func (w *Writer) WriteUint16(v uint16) error {
	buf := make([]byte, 2)
	w.order.PutUint16(buf, v)
	return w.WriteBytes(buf)
}

// WriteUint32 writes an unsigned 32-bit integer.
func (w *Writer) WriteUint32(v uint32) error {
	buf := make([]byte, 4)
	w.order.PutUint32(buf, v)
	return w.WriteBytes(buf)
}

// WriteLength writes a length value using the configured length size.
// Values that do not fit the field are rejected.
func (w *Writer) WriteLength(v uint64) error {
	if limit := MaxLength(w.lengthSize); v > limit {
		return fmt.Errorf("length %d exceeds %d-byte field", v, w.lengthSize)
	}
	switch w.lengthSize {
	case 2:
		return w.WriteUint16(uint16(v))
	case 4:
		return w.WriteUint32(uint32(v))
	default:
		return ErrInvalidSize
	}
}

// WriteFill writes n copies of b.
func (w *Writer) WriteFill(n int, b byte) error {
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n)
	if b != 0 {
		for i := range buf {
			buf[i] = b
		}
	}
	return w.WriteBytes(buf)
}

// PaddingFor returns how many bytes must follow the next n bytes so that
// the position after them is a multiple of alignment.
func (w *Writer) PaddingFor(n int, alignment int) int {
	return Padding(w.pos+int64(n), alignment)
}

// Padding returns how many bytes must follow offset end to reach the next
// multiple of alignment. Alignments below 2 need no padding.
func Padding(end int64, alignment int) int {
	if alignment <= 1 {
		return 0
	}
	if remainder := end % int64(alignment); remainder != 0 {
		return alignment - int(remainder)
	}
	return 0
}

// MaxLength returns the largest value a length field of size bytes holds.
func MaxLength(size int) uint64 {
	switch size {
	case 2:
		return 0xFFFF
	case 4:
		return 0xFFFFFFFF
	default:
		return 0
	}
}
