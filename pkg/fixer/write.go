package fixer

import (
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// writeFileInPlace truncates an existing file and writes content into it.
// The inode is kept, so mode, ownership and hard links survive. Symlinks
// are written through.
func writeFileInPlace(path string, content []byte) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return errors.Errorf("resolving %s: %w", path, err)
	}

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return errors.Errorf("opening %s for writing: %w", target, err)
	}

	if _, err := f.Write(content); err != nil {
		f.Close()
		return errors.Errorf("writing %s: %w", target, err)
	}
	if err := f.Close(); err != nil {
		return errors.Errorf("closing %s: %w", target, err)
	}

	return nil
}
