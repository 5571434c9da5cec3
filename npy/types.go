package npy

import (
	"github.com/robert-malhotra/go-npy/internal/dtype"
	"github.com/robert-malhotra/go-npy/internal/header"
)

// Kind identifies the scalar element type of an array.
type Kind = dtype.Kind

const (
	Bool    = dtype.Bool
	Uint8   = dtype.Uint8
	Uint16  = dtype.Uint16
	Uint32  = dtype.Uint32
	Uint64  = dtype.Uint64
	Int8    = dtype.Int8
	Int16   = dtype.Int16
	Int32   = dtype.Int32
	Int64   = dtype.Int64
	Float32 = dtype.Float32
	Float64 = dtype.Float64
)

// ByteOrder is the element byte order recorded in the header.
type ByteOrder = dtype.Order

const (
	Native        = dtype.OrderNative
	BigEndian     = dtype.OrderBig
	LittleEndian  = dtype.OrderLittle
	NotApplicable = dtype.OrderNone
)

// Element is the set of Go types an array can hold.
type Element = dtype.Element

// Version is the file format version.
type Version = header.Version
