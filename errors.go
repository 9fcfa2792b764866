package checksumcache

import "fmt"

// TransformError is returned when a caller-supplied transform function
// fails for one file. It carries the offending paths so the caller can
// decide whether to retry, skip, or abort.
type TransformError struct {
	Input  string
	Output string
	Cause  error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transform of %s to %s failed: %v", e.Input, e.Output, e.Cause)
}

func (e *TransformError) Unwrap() error {
	return e.Cause
}
