package fsutil

import "fmt"

// TempFileError is returned when creating a temp file fails.
type TempFileError struct {
	Dir   string
	Cause error
}

func (e *TempFileError) Error() string {
	return fmt.Sprintf("failed to create temp file in %s: %v", e.Dir, e.Cause)
}

func (e *TempFileError) Unwrap() error {
	return e.Cause
}

func (e *TempFileError) IOError() bool {
	return true
}

// TempWriteError is returned when writing to a temp file fails.
type TempWriteError struct {
	Path  string
	Cause error
}

func (e *TempWriteError) Error() string {
	return fmt.Sprintf("failed to write to temp file %s: %v", e.Path, e.Cause)
}

func (e *TempWriteError) Unwrap() error {
	return e.Cause
}

func (e *TempWriteError) IOError() bool {
	return true
}

// RenameError is returned when renaming a temp file over the target fails.
type RenameError struct {
	Old   string
	New   string
	Cause error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("failed to rename %s to %s: %v", e.Old, e.New, e.Cause)
}

func (e *RenameError) Unwrap() error {
	return e.Cause
}

func (e *RenameError) IOError() bool {
	return true
}

// ChmodError is returned when setting permissions on the target fails.
type ChmodError struct {
	Path  string
	Cause error
}

func (e *ChmodError) Error() string {
	return fmt.Sprintf("failed to set permissions for %s: %v", e.Path, e.Cause)
}

func (e *ChmodError) Unwrap() error {
	return e.Cause
}

func (e *ChmodError) IOError() bool {
	return true
}

// MkdirError is returned when creating a directory tree fails.
type MkdirError struct {
	Path  string
	Cause error
}

func (e *MkdirError) Error() string {
	return fmt.Sprintf("failed to create directory %s: %v", e.Path, e.Cause)
}

func (e *MkdirError) Unwrap() error {
	return e.Cause
}

func (e *MkdirError) IOError() bool {
	return true
}
