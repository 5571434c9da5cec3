package npz

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/robert-malhotra/go-npy/internal/atomicfile"
	"github.com/robert-malhotra/go-npy/npy"
)

// Load decodes every member of an archive image. Any member that fails to
// decode aborts the load with a *MemberError.
func Load(data []byte, opts ...Option) (*Archive, error) {
	o := buildOptions(opts)

	entries, err := o.store.ReadAll(data)
	if err != nil {
		return nil, fmt.Errorf("reading archive: %w", err)
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	a := &Archive{arrays: make(map[string]*npy.Array, len(entries))}
	for _, name := range names {
		arr, err := npy.Decode(entries[name])
		if err != nil {
			o.logger.Debug("member decode failed", "name", name, "error", err)
			return nil, &MemberError{Name: name, Err: err}
		}
		if err := a.add(name, arr); err != nil {
			return nil, err
		}
		o.logger.Debug("decoded member", "name", name, "descr", arr.Descr(), "shape", arr.Shape())
	}
	return a, nil
}

// Save encodes every member and packs them into an archive image.
func (a *Archive) Save(opts ...Option) ([]byte, error) {
	o := buildOptions(opts)

	entries := make(map[string][]byte, len(a.arrays))
	for key, arr := range a.arrays {
		data, err := npy.Encode(arr, o.encodeOpts...)
		if err != nil {
			return nil, fmt.Errorf("encoding member %q: %w", key, err)
		}
		entries[key] = data
		o.logger.Debug("encoded member", "name", key, "bytes", len(data))
	}

	out, err := o.store.Create(entries)
	if err != nil {
		return nil, fmt.Errorf("creating archive: %w", err)
	}
	return out, nil
}

// Read loads an archive from r.
func Read(r io.Reader, opts ...Option) (*Archive, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading archive: %w", err)
	}
	return Load(data, opts...)
}

// Write saves a to w.
func Write(w io.Writer, a *Archive, opts ...Option) error {
	data, err := a.Save(opts...)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing archive: %w", err)
	}
	return nil
}

// ReadFile loads the archive at path.
func ReadFile(path string, opts ...Option) (*Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	a, err := Load(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return a, nil
}

// WriteFile saves a to path through a temporary file and a rename.
func WriteFile(path string, a *Archive, opts ...Option) error {
	return atomicfile.Write(path, func(w io.Writer) error {
		return Write(w, a, opts...)
	})
}
