// Package dtype provides the element type catalog and element codec for
// array files.
//
// An array file stores a flat buffer of fixed-width scalars. The header's
// descriptor names one entry of a closed catalog and the byte order the
// scalars were written in. This package maps between that raw buffer and
// Go slices.
//
// # Catalog
//
// The catalog is total and closed:
//
//	Kind     | Code | Size | Go type
//	---------|------|------|---------
//	Bool     | b1   | 1    | bool
//	Uint8    | u1   | 1    | uint8
//	Uint16   | u2   | 2    | uint16
//	Uint32   | u4   | 4    | uint32
//	Uint64   | u8   | 8    | uint64
//	Int8     | i1   | 1    | int8
//	Int16    | i2   | 2    | int16
//	Int32    | i4   | 4    | int32
//	Int64    | i8   | 8    | int64
//	Float32  | f4   | 4    | float32
//	Float64  | f8   | 8    | float64
//
// Codes are looked up by exact match with [Lookup]; there is no
// substring matching.
//
// # Byte Order
//
// One-byte kinds have no byte order ([OrderNone], written as '|').
// Multi-byte kinds carry [OrderLittle] ('<'), [OrderBig] ('>') or
// [OrderNative] ('='). Native order is resolved against the host with
// golang.org/x/sys/cpu, so encoded output for an explicit order is the same
// on every host.
//
// # Conversion
//
// [Decode] and [Encode] move between raw bytes and typed slices. Integers
// are reinterpreted through their unsigned bit pattern and floats through
// their IEEE-754 bits, so NaN payloads, signed zero and two's-complement
// values survive a round trip exactly. [DecodeUints] and [DecodeInts]
// widen any unsigned or signed integer kind to uint or int.
package dtype
