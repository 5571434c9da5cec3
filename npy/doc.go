// Package npy reads and writes array files: a single typed, shaped numeric
// array stored as a versioned header followed by its raw element buffer.
//
// # Reading
//
// [Decode] parses a complete file image and [ReadFile] reads one from disk.
// Elements are materialized on demand through the typed accessors:
//
//	a, err := npy.ReadFile("weights.npy")
//	vals, err := a.Float64s()
//
// An accessor whose Go type does not match the stored kind fails with
// [ErrPrecondition]. [Array.Uints] and [Array.Ints] widen any unsigned or
// signed integer kind.
//
// # Writing
//
// [New] builds an array from a Go slice, a shape, a byte order and the
// storage order flag. [Array.MarshalBinary], [Encode] and [WriteFile]
// produce the file image:
//
//	a, err := npy.New([]int{2, 2}, []uint8{255, 0, 1, 2}, npy.NotApplicable, false)
//	data, err := a.MarshalBinary()
//
// Version 1.0 is written unless the header does not fit its 2-byte length
// field, in which case 2.0 is used.
//
// # Storage Order
//
// Column-major arrays (fortran_order True) round-trip unchanged. The
// accessors return elements in stored order; no transposition happens.
//
// An Array is immutable and safe for concurrent use.
package npy
