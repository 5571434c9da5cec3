package npz

import (
	"io"
	"log/slog"

	"github.com/robert-malhotra/go-npy/internal/zipstore"
	"github.com/robert-malhotra/go-npy/npy"
)

// Store is the archive collaborator: it turns an archive image into its
// entries and back.
type Store interface {
	ReadAll(data []byte) (map[string][]byte, error)
	Create(entries map[string][]byte) ([]byte, error)
}

// Option configures loading and saving archives.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	store      Store
	encodeOpts []npy.EncodeOption
}

func defaultOptions() *options {
	return &options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		store:  zipstore.Store{},
	}
}

func buildOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets a logger for per-member debug output.
// If not provided, no logging output will be produced.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithStore replaces the zip archive collaborator.
func WithStore(s Store) Option {
	return func(o *options) {
		if s != nil {
			o.store = s
		}
	}
}

// WithEncodeOptions sets the options used to encode each member on save.
func WithEncodeOptions(opts ...npy.EncodeOption) Option {
	return func(o *options) {
		o.encodeOpts = append(o.encodeOpts, opts...)
	}
}
