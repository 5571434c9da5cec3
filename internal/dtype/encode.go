package dtype

import "math"

// Encode converts elems to raw bytes in byte order o. One-byte kinds
// ignore o. The output for OrderBig and OrderLittle does not depend on
// the host.
func Encode[T Element](elems []T, o Order) []byte {
	k := KindOf[T]()
	data := make([]byte, DataSize(k, len(elems)))
	order := o.byteOrder()

	switch s := any(elems).(type) {
	case []bool:
		for i, v := range s {
			if v {
				data[i] = 1
			}
		}
	case []uint8:
		copy(data, s)
	case []int8:
		for i, v := range s {
			data[i] = byte(v)
		}
	case []uint16:
		for i, v := range s {
			order.PutUint16(data[2*i:], v)
		}
	case []int16:
		for i, v := range s {
			order.PutUint16(data[2*i:], uint16(v))
		}
	case []uint32:
		for i, v := range s {
			order.PutUint32(data[4*i:], v)
		}
	case []int32:
		for i, v := range s {
			order.PutUint32(data[4*i:], uint32(v))
		}
	case []uint64:
		for i, v := range s {
			order.PutUint64(data[8*i:], v)
		}
	case []int64:
		for i, v := range s {
			order.PutUint64(data[8*i:], uint64(v))
		}
	case []float32:
		for i, v := range s {
			order.PutUint32(data[4*i:], math.Float32bits(v))
		}
	case []float64:
		for i, v := range s {
			order.PutUint64(data[8*i:], math.Float64bits(v))
		}
	}

	return data
}
