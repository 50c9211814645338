package storage

import "fmt"

// StorageError wraps a failed read or write of a backing store. It is
// surfaced to the caller as-is; the store attempts no recovery.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
