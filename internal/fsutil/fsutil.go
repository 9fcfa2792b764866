// Package fsutil provides the filesystem primitives the cache depends on:
// atomic file replacement and idempotent directory creation.
package fsutil

import (
	"os"
	"path/filepath"
)

// WriteFileAtomic writes content to path using the temp file + rename
// pattern. If the process crashes mid-write the original file remains
// intact. The temp file is created in the target's directory so the
// rename stays on one filesystem.
func WriteFileAtomic(path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return &TempFileError{Dir: dir, Cause: err}
	}

	tmpPath := tmpFile.Name()
	needsCleanup := true

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
		}
		if needsCleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(content); err != nil {
		return &TempWriteError{Path: tmpPath, Cause: err}
	}

	if err := tmpFile.Sync(); err != nil {
		return &TempWriteError{Path: tmpPath, Cause: err}
	}

	// Close before rename (required on some systems).
	if err := tmpFile.Close(); err != nil {
		tmpFile = nil
		return &TempWriteError{Path: tmpPath, Cause: err}
	}
	tmpFile = nil

	// The rename is the operation that makes the write atomic.
	if err := os.Rename(tmpPath, path); err != nil {
		return &RenameError{Old: tmpPath, New: path, Cause: err}
	}
	needsCleanup = false

	if err := os.Chmod(path, perm); err != nil {
		return &ChmodError{Path: path, Cause: err}
	}

	return nil
}

// EnsureDirs creates path and any missing parents. It succeeds silently
// when the directory already exists.
func EnsureDirs(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return &MkdirError{Path: path, Cause: err}
	}
	return nil
}
