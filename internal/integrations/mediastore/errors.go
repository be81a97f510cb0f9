package mediastore

import "errors"

var (
	// ErrObjectNotFound is returned when the object key does not exist in the store
	ErrObjectNotFound = errors.New("mediastore client: object not found")

	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("mediastore client: internal error")

	// ErrInvalidResponse is returned when the store responds with something unexpected
	ErrInvalidResponse = errors.New("mediastore client: invalid response")
)
