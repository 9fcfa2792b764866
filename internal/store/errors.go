package store

import "fmt"

// SaveError is returned when the backing file cannot be written.
// A failed save would desynchronize the on-disk cache from decisions
// already made in memory, so it always propagates.
type SaveError struct {
	Path  string
	Cause error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save checksum store %s: %v", e.Path, e.Cause)
}

func (e *SaveError) Unwrap() error {
	return e.Cause
}

func (e *SaveError) IOError() bool {
	return true
}
