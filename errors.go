package diskcache

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyKey        = errors.New("diskcache: empty key")
	ErrPayloadMismatch = errors.New("diskcache: payload does not match namespace category")
	ErrEmptyEncoding   = errors.New("diskcache: encoder produced no bytes")
	ErrClosed          = errors.New("diskcache: store closed")
	ErrKeyMismatch     = errors.New("diskcache: archived key does not match")
	ErrUnknownHasher   = errors.New("diskcache: unknown hasher")
	ErrUnknownCodec    = errors.New("diskcache: unknown codec")
	ErrUnknownCategory = errors.New("diskcache: unknown category")
)

// StoreError describes a failed or dropped store request.
type StoreError struct {
	Category Category
	Key      string
	Op       string // validate, submit, encode, write or decode
	Err      error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("diskcache %s %s %q: %v", e.Category, e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
