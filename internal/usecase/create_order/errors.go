package create_order

import "errors"

var (
	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrPastDate is returned when the appointment date is in the past
	ErrPastDate = errors.New("appointment date is in the past")

	// ErrNotWorkday is returned when the appointment date is not a workday
	ErrNotWorkday = errors.New("shop is closed on this date")

	// ErrUnknownSlot is returned when the slot label is not offered by the booking form
	ErrUnknownSlot = errors.New("unknown time slot")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("usecase: internal error")
)
