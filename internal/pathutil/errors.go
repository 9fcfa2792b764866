package pathutil

import (
	"errors"
	"fmt"
)

// -- Error Types --

// BaseDirError is returned when the base directory cannot be resolved.
type BaseDirError struct {
	Dir   string
	Cause error
}

func (e *BaseDirError) Error() string {
	return fmt.Sprintf("invalid base directory %s: %v", e.Dir, e.Cause)
}
func (e *BaseDirError) Unwrap() error { return e.Cause }

// -- Sentinels --

var ErrEmptyPath = errors.New("path is empty")
