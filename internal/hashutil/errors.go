package hashutil

import (
	"errors"
	"fmt"
)

// ErrIsDirectory is returned when a fingerprint is requested for a directory.
var ErrIsDirectory = errors.New("path is a directory")

// FingerprintError is returned when a file cannot be opened or read for
// fingerprinting.
type FingerprintError struct {
	Path  string
	Cause error
}

func (e *FingerprintError) Error() string {
	return fmt.Sprintf("failed to fingerprint %s: %v", e.Path, e.Cause)
}

func (e *FingerprintError) Unwrap() error {
	return e.Cause
}

func (e *FingerprintError) IOError() bool {
	return true
}
