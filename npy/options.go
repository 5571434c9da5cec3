package npy

import "github.com/robert-malhotra/go-npy/internal/header"

// EncodeOption configures how an array is written.
type EncodeOption func(*encodeOptions)

type encodeOptions struct {
	alignment int
}

func defaultEncodeOptions() *encodeOptions {
	return &encodeOptions{
		alignment: header.DefaultAlignment,
	}
}

// WithAlignment pads the header so the element buffer starts at a multiple
// of n bytes. Values below 2 disable padding entirely.
func WithAlignment(n int) EncodeOption {
	return func(o *encodeOptions) {
		if n < 1 {
			n = 1
		}
		o.alignment = n
	}
}
