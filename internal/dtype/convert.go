package dtype

import (
	"fmt"
	"math"
)

func checkSize(data []byte, n int, k Kind) error {
	if n < 0 || (k.Size() > 1 && n > math.MaxInt/k.Size()) || len(data) != DataSize(k, n) {
		return fmt.Errorf("%w: %d bytes for %d %s elements (want %d)",
			ErrSizeMismatch, len(data), n, k, DataSize(k, n))
	}
	return nil
}

// Decode converts n elements of kind k stored in byte order o into a
// slice of T. T must be the Go type of k.
func Decode[T Element](data []byte, n int, k Kind, o Order) ([]T, error) {
	if want := KindOf[T](); want != k {
		return nil, fmt.Errorf("%w: stored %s, requested %s", ErrKindMismatch, k, want)
	}
	if err := checkSize(data, n, k); err != nil {
		return nil, err
	}

	out := make([]T, n)
	order := o.byteOrder()

	switch s := any(out).(type) {
	case []bool:
		for i := range s {
			s[i] = data[i] != 0
		}
	case []uint8:
		copy(s, data)
	case []int8:
		for i := range s {
			s[i] = int8(data[i])
		}
	case []uint16:
		for i := range s {
			s[i] = order.Uint16(data[2*i:])
		}
	case []int16:
		for i := range s {
			s[i] = int16(order.Uint16(data[2*i:]))
		}
	case []uint32:
		for i := range s {
			s[i] = order.Uint32(data[4*i:])
		}
	case []int32:
		for i := range s {
			s[i] = int32(order.Uint32(data[4*i:]))
		}
	case []uint64:
		for i := range s {
			s[i] = order.Uint64(data[8*i:])
		}
	case []int64:
		for i := range s {
			s[i] = int64(order.Uint64(data[8*i:]))
		}
	case []float32:
		for i := range s {
			s[i] = math.Float32frombits(order.Uint32(data[4*i:]))
		}
	case []float64:
		for i := range s {
			s[i] = math.Float64frombits(order.Uint64(data[8*i:]))
		}
	}

	return out, nil
}

// DecodeUints widens any unsigned integer kind to uint.
func DecodeUints(data []byte, n int, k Kind, o Order) ([]uint, error) {
	if !k.IsUnsigned() {
		return nil, fmt.Errorf("%w: stored %s, requested an unsigned integer", ErrKindMismatch, k)
	}
	if err := checkSize(data, n, k); err != nil {
		return nil, err
	}

	out := make([]uint, n)
	order := o.byteOrder()
	for i := range out {
		switch k {
		case Uint8:
			out[i] = uint(data[i])
		case Uint16:
			out[i] = uint(order.Uint16(data[2*i:]))
		case Uint32:
			out[i] = uint(order.Uint32(data[4*i:]))
		case Uint64:
			out[i] = uint(order.Uint64(data[8*i:]))
		}
	}
	return out, nil
}

// DecodeInts widens any signed integer kind to int.
func DecodeInts(data []byte, n int, k Kind, o Order) ([]int, error) {
	if !k.IsSigned() {
		return nil, fmt.Errorf("%w: stored %s, requested a signed integer", ErrKindMismatch, k)
	}
	if err := checkSize(data, n, k); err != nil {
		return nil, err
	}

	out := make([]int, n)
	order := o.byteOrder()
	for i := range out {
		switch k {
		case Int8:
			out[i] = int(int8(data[i]))
		case Int16:
			out[i] = int(int16(order.Uint16(data[2*i:])))
		case Int32:
			out[i] = int(int32(order.Uint32(data[4*i:])))
		case Int64:
			out[i] = int(int64(order.Uint64(data[8*i:])))
		}
	}
	return out, nil
}
