// Package fileutil provides file output helpers for rendered documentation.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// OwnerReadWrite is the file permission mode for rendered output files
// (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// ReadableByAll is the file permission mode for documentation intended to be
// published alongside other build artifacts.
const ReadableByAll os.FileMode = 0o644

// RejectSymlink returns an error if path exists and is a symlink.
// This prevents a symlink from redirecting output to an unintended location.
func RejectSymlink(path string) error {
	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("fileutil: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("fileutil: refusing to write to symlink: %s", path)
	}
	return nil
}

// WriteFile writes data to path with the given mode after rejecting symlinks.
func WriteFile(path string, data []byte, mode os.FileMode) error {
	cleaned := filepath.Clean(path)
	if err := RejectSymlink(cleaned); err != nil {
		return err
	}
	if err := os.WriteFile(cleaned, data, mode); err != nil {
		return fmt.Errorf("fileutil: writing %s: %w", cleaned, err)
	}
	return nil
}
