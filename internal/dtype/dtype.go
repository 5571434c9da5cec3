package dtype

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sys/cpu"
)

var (
	// ErrUnsupported is returned for a descriptor code outside the catalog.
	ErrUnsupported = errors.New("unsupported dtype")

	// ErrSizeMismatch is returned when a buffer length does not equal
	// element count times element size.
	ErrSizeMismatch = errors.New("buffer size mismatch")

	// ErrKindMismatch is returned when the requested Go type does not
	// match the stored kind.
	ErrKindMismatch = errors.New("element kind mismatch")
)

// Kind identifies one scalar element type of the catalog.
type Kind uint8

// Kinds in catalog order.
const (
	Bool Kind = iota
	Uint8
	Uint16
	Uint32
	Uint64
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
)

type kindInfo struct {
	name string
	code string
	size int
}

var catalog = [...]kindInfo{
	Bool:    {"bool", "b1", 1},
	Uint8:   {"uint8", "u1", 1},
	Uint16:  {"uint16", "u2", 2},
	Uint32:  {"uint32", "u4", 4},
	Uint64:  {"uint64", "u8", 8},
	Int8:    {"int8", "i1", 1},
	Int16:   {"int16", "i2", 2},
	Int32:   {"int32", "i4", 4},
	Int64:   {"int64", "i8", 8},
	Float32: {"float32", "f4", 4},
	Float64: {"float64", "f8", 8},
}

var byCode = func() map[string]Kind {
	m := make(map[string]Kind, len(catalog))
	for k, info := range catalog {
		m[info.code] = Kind(k)
	}
	return m
}()

// Lookup returns the kind whose code is exactly code.
func Lookup(code string) (Kind, error) {
	k, ok := byCode[code]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupported, code)
	}
	return k, nil
}

// Valid reports whether k is a catalog entry.
func (k Kind) Valid() bool {
	return int(k) < len(catalog)
}

// Code returns the two-character descriptor code, e.g. "u4".
func (k Kind) Code() string {
	if !k.Valid() {
		return ""
	}
	return catalog[k].code
}

// Size returns the element width in bytes.
func (k Kind) Size() int {
	if !k.Valid() {
		return 0
	}
	return catalog[k].size
}

// HasByteOrder reports whether elements of k are wider than one byte.
func (k Kind) HasByteOrder() bool {
	return k.Size() > 1
}

// IsSigned reports whether k is a signed integer kind.
func (k Kind) IsSigned() bool {
	return k >= Int8 && k <= Int64
}

// IsUnsigned reports whether k is an unsigned integer kind.
func (k Kind) IsUnsigned() bool {
	return k >= Uint8 && k <= Uint64
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return catalog[k].name
}

// Order is the byte order recorded in a descriptor.
type Order uint8

const (
	OrderNative Order = iota // '='
	OrderBig                 // '>'
	OrderLittle              // '<'
	OrderNone                // '|', one-byte kinds only
)

// Char returns the descriptor character for o.
func (o Order) Char() byte {
	switch o {
	case OrderBig:
		return '>'
	case OrderLittle:
		return '<'
	case OrderNone:
		return '|'
	default:
		return '='
	}
}

func (o Order) String() string {
	switch o {
	case OrderNative:
		return "native"
	case OrderBig:
		return "big"
	case OrderLittle:
		return "little"
	case OrderNone:
		return "n/a"
	default:
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
}

// ParseOrder maps a descriptor character to an Order.
func ParseOrder(c byte) (Order, bool) {
	switch c {
	case '=':
		return OrderNative, true
	case '>':
		return OrderBig, true
	case '<':
		return OrderLittle, true
	case '|':
		return OrderNone, true
	}
	return 0, false
}

// HostOrder returns OrderBig or OrderLittle for the running host.
func HostOrder() Order {
	if cpu.IsBigEndian {
		return OrderBig
	}
	return OrderLittle
}

// Resolve replaces OrderNative with the host's concrete order.
func (o Order) Resolve() Order {
	if o == OrderNative {
		return HostOrder()
	}
	return o
}

// byteOrder returns the encoding/binary order used to read or write
// multi-byte elements stored in order o.
func (o Order) byteOrder() binary.ByteOrder {
	if o.Resolve() == OrderBig {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Normalize returns the order a header must carry for kind k.
// One-byte kinds always become OrderNone; multi-byte kinds reject
// OrderNone.
func Normalize(k Kind, o Order) (Order, bool) {
	if !k.HasByteOrder() {
		return OrderNone, true
	}
	if o >= OrderNone {
		return o, false
	}
	return o, true
}

// Element is the set of Go types that map onto catalog kinds.
type Element interface {
	bool | uint8 | uint16 | uint32 | uint64 | int8 | int16 | int32 | int64 | float32 | float64
}

// KindOf returns the catalog kind stored for Go type T.
func KindOf[T Element]() Kind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return Bool
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	default:
		return Float64
	}
}

// Count returns the number of elements in shape. It reports false when a
// dimension is negative or when the byte length of the elements, at the
// width of kind k, does not fit in an int.
func Count(shape []int, k Kind) (int, bool) {
	empty := false
	for _, d := range shape {
		if d < 0 {
			return 0, false
		}
		if d == 0 {
			empty = true
		}
	}
	if empty {
		return 0, true
	}

	n := 1
	for _, d := range shape {
		if n > math.MaxInt/d {
			return 0, false
		}
		n *= d
	}
	if size := k.Size(); size > 1 && n > math.MaxInt/size {
		return 0, false
	}
	return n, true
}

// DataSize returns the number of bytes n elements of kind k occupy.
func DataSize(k Kind, n int) int {
	return k.Size() * n
}
