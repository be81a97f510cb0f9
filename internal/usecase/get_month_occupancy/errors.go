package get_month_occupancy

import "errors"

var (
	// ErrInvalidInput is returned on an invalid year or month
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("usecase: internal error")
)
