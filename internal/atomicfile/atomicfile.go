// Package atomicfile writes files through a temporary name and a rename,
// so readers never observe a partially written file.
package atomicfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Perm is the mode given to files written by Write.
const Perm = 0o644

// Write creates a temporary file next to path, passes it to fill, and
// renames it over path once fill succeeds and the file is closed. On any
// failure the temporary file is closed and removed.
func Write(path string, fill func(io.Writer) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err = fill(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err = f.Chmod(Perm); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("renaming into %s: %w", path, err)
	}
	return nil
}
