package get_day_slots

import "errors"

var (
	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrPastDate is returned when slots are requested for a past date
	ErrPastDate = errors.New("cannot select a past date")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("usecase: internal error")
)
