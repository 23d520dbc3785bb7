package bsa

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bsa/resource"
)

var (
	// ErrInvalidIndex is matched by every index-related failure.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrNegativeIndex is returned for indices below zero.
	ErrNegativeIndex = errors.New("negative index")

	// ErrIndexOutOfRange is returned when an index lies beyond the addressable
	// capacity, or beyond the current max index for Delete.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNotSet is returned when deleting an index that holds no value.
	ErrNotSet = errors.New("index not set")

	// ErrResourceExhausted is returned when memory for a row buffer or the
	// presence bitmap cannot be reserved.
	ErrResourceExhausted = errors.New("resource exhausted")

	// ErrClosed is returned for operations on a closed array.
	ErrClosed = errors.New("array closed")
)

// IndexError describes an operation rejected because of its index.
//
// errors.Is(err, ErrInvalidIndex) holds for every IndexError; the precise
// reason can be accessed via errors.Unwrap.
type IndexError struct {
	Op    string
	Index int
	Err   error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s %d: %v", e.Op, e.Index, e.Err)
}

func (e *IndexError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInvalidIndex.
func (e *IndexError) Is(target error) bool {
	return target == ErrInvalidIndex
}

func indexError(op string, index int, err error) error {
	return &IndexError{Op: op, Index: index, Err: err}
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, resource.ErrMemoryLimitExceeded) {
		return fmt.Errorf("%w: %w", ErrResourceExhausted, err)
	}

	return err
}
