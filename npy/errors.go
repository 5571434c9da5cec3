package npy

import (
	"errors"

	"github.com/robert-malhotra/go-npy/internal/dtype"
	"github.com/robert-malhotra/go-npy/internal/header"
)

// Common errors
var (
	ErrMalformedHeader    = header.ErrMalformed
	ErrUnsupportedVersion = header.ErrUnsupportedVersion
	ErrUnsupportedDType   = dtype.ErrUnsupported
	ErrBufferSizeMismatch = dtype.ErrSizeMismatch
	ErrPrecondition       = errors.New("precondition violation")
)
