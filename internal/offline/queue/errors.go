package queue

import (
	"errors"
	"fmt"

	"resort/internal/offline/model"
)

var (
	ErrNotFound          = errors.New("offline booking not found")
	ErrInvalidStatus     = errors.New("invalid sync status")
	ErrInvalidTransition = errors.New("sync status transition not allowed")
)

// StorageUnavailableError means the local store could not be read or written. A booking
// that hits it during Enqueue was not saved anywhere.
type StorageUnavailableError struct {
	Op  string
	Err error
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("local storage unavailable during %s: %v", e.Op, e.Err)
}

func (e *StorageUnavailableError) Unwrap() error {
	return e.Err
}

func unavailable(op string, err error) error {
	return &StorageUnavailableError{Op: op, Err: err}
}

func transitionError(from, to model.SyncStatus) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
