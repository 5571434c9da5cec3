package npy

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/robert-malhotra/go-npy/internal/dtype"
	"github.com/robert-malhotra/go-npy/internal/header"
)

// Array is one array file held in memory: its header and its raw element
// buffer.
type Array struct {
	header  header.Header
	data    []byte
	version Version
}

// New builds an array holding elems with the given shape. The product of
// shape must equal len(elems). One-byte element types ignore order;
// wider types require Native, BigEndian or LittleEndian.
func New[T Element](shape []int, elems []T, order ByteOrder, fortranOrder bool) (*Array, error) {
	kind := dtype.KindOf[T]()
	if _, ok := dtype.Normalize(kind, order); !ok {
		return nil, fmt.Errorf("%w: %s elements need a byte order, got %s", ErrPrecondition, kind, order)
	}
	n, ok := dtype.Count(shape, kind)
	if !ok {
		return nil, fmt.Errorf("%w: shape %v is out of range for %s elements", ErrPrecondition, shape, kind)
	}
	if n != len(elems) {
		return nil, fmt.Errorf("%w: shape %v holds %d elements, got %d",
			ErrPrecondition, shape, n, len(elems))
	}
	h, err := header.New(shape, kind, order, fortranOrder)
	if err != nil {
		return nil, err
	}
	return &Array{
		header: h,
		data:   dtype.Encode(elems, h.Order),
	}, nil
}

// FromBools builds a bool array.
func FromBools(shape []int, elems []bool, fortranOrder bool) (*Array, error) {
	return New(shape, elems, NotApplicable, fortranOrder)
}

// FromUint8s builds a uint8 array.
func FromUint8s(shape []int, elems []uint8, fortranOrder bool) (*Array, error) {
	return New(shape, elems, NotApplicable, fortranOrder)
}

// FromInt8s builds an int8 array.
func FromInt8s(shape []int, elems []int8, fortranOrder bool) (*Array, error) {
	return New(shape, elems, NotApplicable, fortranOrder)
}

// Shape returns a copy of the array's dimensions. A scalar has an empty
// shape.
func (a *Array) Shape() []int {
	return append([]int{}, a.header.Shape...)
}

// Len returns the number of elements, the product of the shape.
func (a *Array) Len() int {
	return a.header.Count()
}

// Kind returns the element kind.
func (a *Array) Kind() Kind {
	return a.header.Kind
}

// ByteOrder returns the element byte order.
func (a *Array) ByteOrder() ByteOrder {
	return a.header.Order
}

// FortranOrder reports whether elements are stored column-major.
func (a *Array) FortranOrder() bool {
	return a.header.FortranOrder
}

// Descr returns the descriptor string, e.g. "<f8".
func (a *Array) Descr() string {
	return a.header.Descr
}

// Version returns the format version the array was decoded from. Arrays
// built with New report the zero Version.
func (a *Array) Version() Version {
	return a.version
}

// Data returns a copy of the raw element buffer.
func (a *Array) Data() []byte {
	return bytes.Clone(a.data)
}

func (a *Array) String() string {
	return fmt.Sprintf("array(shape=%s, descr='%s', fortran_order=%t)",
		header.FormatShape(a.header.Shape), a.header.Descr, a.header.FortranOrder)
}

// Equal reports whether a and b have the same shape, kind, byte order,
// storage order and element bytes.
func (a *Array) Equal(b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.header.Shape) != len(b.header.Shape) {
		return false
	}
	for i := range a.header.Shape {
		if a.header.Shape[i] != b.header.Shape[i] {
			return false
		}
	}
	return a.header.Kind == b.header.Kind &&
		a.header.Order == b.header.Order &&
		a.header.FortranOrder == b.header.FortranOrder &&
		bytes.Equal(a.data, b.data)
}

// Elements decodes the array into a slice of T. T must match the stored
// kind exactly.
func Elements[T Element](a *Array) ([]T, error) {
	out, err := dtype.Decode[T](a.data, a.Len(), a.header.Kind, a.header.Order)
	return out, precondition(err)
}

func precondition(err error) error {
	if err != nil && errors.Is(err, dtype.ErrKindMismatch) {
		return fmt.Errorf("%w: %w", ErrPrecondition, err)
	}
	return err
}

// Bools returns the elements of a bool array.
func (a *Array) Bools() ([]bool, error) { return Elements[bool](a) }

// Uint8s returns the elements of a uint8 array.
func (a *Array) Uint8s() ([]uint8, error) { return Elements[uint8](a) }

// Uint16s returns the elements of a uint16 array.
func (a *Array) Uint16s() ([]uint16, error) { return Elements[uint16](a) }

// Uint32s returns the elements of a uint32 array.
func (a *Array) Uint32s() ([]uint32, error) { return Elements[uint32](a) }

// Uint64s returns the elements of a uint64 array.
func (a *Array) Uint64s() ([]uint64, error) { return Elements[uint64](a) }

// Int8s returns the elements of an int8 array.
func (a *Array) Int8s() ([]int8, error) { return Elements[int8](a) }

// Int16s returns the elements of an int16 array.
func (a *Array) Int16s() ([]int16, error) { return Elements[int16](a) }

// Int32s returns the elements of an int32 array.
func (a *Array) Int32s() ([]int32, error) { return Elements[int32](a) }

// Int64s returns the elements of an int64 array.
func (a *Array) Int64s() ([]int64, error) { return Elements[int64](a) }

// Float32s returns the elements of a float32 array.
func (a *Array) Float32s() ([]float32, error) { return Elements[float32](a) }

// Float64s returns the elements of a float64 array.
func (a *Array) Float64s() ([]float64, error) { return Elements[float64](a) }

// Uints returns the elements of any unsigned integer array widened to uint.
func (a *Array) Uints() ([]uint, error) {
	out, err := dtype.DecodeUints(a.data, a.Len(), a.header.Kind, a.header.Order)
	return out, precondition(err)
}

// Ints returns the elements of any signed integer array widened to int.
func (a *Array) Ints() ([]int, error) {
	out, err := dtype.DecodeInts(a.data, a.Len(), a.header.Kind, a.header.Order)
	return out, precondition(err)
}
