package header

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/robert-malhotra/go-npy/internal/binary"
)

// Magic is the six-byte sentinel every array file starts with.
const Magic = "\x93NUMPY"

// DefaultAlignment is the boundary the prefix and header are padded to.
const DefaultAlignment = 64

// ErrUnsupportedVersion is returned for a version other than 1.0 or 2.0.
var ErrUnsupportedVersion = errors.New("unsupported version")

// Version is the format version stored after the magic.
type Version struct {
	Major uint8
	Minor uint8
}

var (
	Version1 = Version{Major: 1}
	Version2 = Version{Major: 2}
)

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// lengthSize returns the width of the header length field.
func (v Version) lengthSize() int {
	if v.Major == 2 {
		return 4
	}
	return 2
}

// PrefixSize returns the number of bytes before the header text.
func (v Version) PrefixSize() int {
	return len(Magic) + 2 + v.lengthSize()
}

// Decode parses the prefix and header at the start of data. It returns
// the header, the file version and the offset at which the element
// buffer begins.
func Decode(data []byte) (Header, Version, int, error) {
	r := binary.NewReader(bytes.NewReader(data), binary.DefaultConfig())

	magic, err := r.ReadBytes(len(Magic))
	if err != nil {
		return Header{}, Version{}, 0, truncated("magic", err)
	}
	if string(magic) != Magic {
		return Header{}, Version{}, 0, fmt.Errorf("%w: invalid prefix %q", ErrMalformed, magic)
	}

	var v Version
	if v.Major, err = r.ReadUint8(); err != nil {
		return Header{}, Version{}, 0, truncated("major version", err)
	}
	if v.Minor, err = r.ReadUint8(); err != nil {
		return Header{}, Version{}, 0, truncated("minor version", err)
	}
	if (v.Major != 1 && v.Major != 2) || v.Minor != 0 {
		return Header{}, Version{}, 0, fmt.Errorf("%w: %s", ErrUnsupportedVersion, v)
	}

	r, err = r.WithLengthSize(v.lengthSize())
	if err != nil {
		return Header{}, Version{}, 0, err
	}
	n, err := r.ReadLength()
	if err != nil {
		return Header{}, Version{}, 0, truncated("header length", err)
	}
	if remaining := len(data) - int(r.Pos()); n > uint64(remaining) {
		return Header{}, Version{}, 0, fmt.Errorf("%w: header length %d exceeds %d available bytes",
			ErrMalformed, n, remaining)
	}
	text, err := r.ReadBytes(int(n))
	if err != nil {
		return Header{}, Version{}, 0, truncated("header text", err)
	}

	h, err := Parse(text)
	if err != nil {
		return Header{}, Version{}, 0, err
	}
	return h, v, int(r.Pos()), nil
}

func truncated(field string, err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: truncated %s", ErrMalformed, field)
	}
	return fmt.Errorf("reading %s: %w", field, err)
}

// Encode renders the prefix and header for h. When alignment is greater
// than one the header text is padded with spaces and a newline so the
// returned prefix length is a multiple of alignment. Version 1.0 is used
// whenever the header fits its 2-byte length field, otherwise 2.0.
func Encode(h Header, alignment int) ([]byte, Version, error) {
	if err := h.checkShape(); err != nil {
		return nil, Version{}, err
	}
	text := h.Format()

	v := Version1
	if padded(text, v, alignment) > int(binary.MaxLength(v.lengthSize())) {
		v = Version2
	}

	var buf bytes.Buffer
	w := binary.NewWriter(&buf, binary.DefaultConfig())
	w, err := w.WithLengthSize(v.lengthSize())
	if err != nil {
		return nil, Version{}, err
	}

	if err := w.WriteBytes([]byte(Magic)); err != nil {
		return nil, Version{}, err
	}
	if err := w.WriteUint8(v.Major); err != nil {
		return nil, Version{}, err
	}
	if err := w.WriteUint8(v.Minor); err != nil {
		return nil, Version{}, err
	}
	if err := w.WriteLength(uint64(padded(text, v, alignment))); err != nil {
		return nil, Version{}, fmt.Errorf("header too large: %w", err)
	}
	if err := w.WriteBytes([]byte(text)); err != nil {
		return nil, Version{}, err
	}
	if alignment > 1 {
		if err := w.WriteFill(w.PaddingFor(1, alignment), ' '); err != nil {
			return nil, Version{}, err
		}
		if err := w.WriteUint8('\n'); err != nil {
			return nil, Version{}, err
		}
	}

	return buf.Bytes(), v, nil
}

// padded returns the length the header text occupies once padded for
// version v. Encode writes the same padding through Writer.PaddingFor.
func padded(text string, v Version, alignment int) int {
	if alignment <= 1 {
		return len(text)
	}
	end := v.PrefixSize() + len(text) + 1
	return len(text) + binary.Padding(int64(end), alignment) + 1
}
