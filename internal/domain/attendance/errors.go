package attendance

import "errors"

var (
	// ErrWriteFailed wraps any persistence failure during a write. The store's
	// in-memory projection is left unchanged when it is returned.
	ErrWriteFailed = errors.New("attendance write failed")
)
