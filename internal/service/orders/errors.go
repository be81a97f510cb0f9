package orders

import "errors"

var (
	// ErrOrderNotFound is returned when the repair order does not exist
	ErrOrderNotFound = errors.New("order not found")

	// ErrCannotCancel is returned when the order may not be cancelled
	ErrCannotCancel = errors.New("order cannot be cancelled")

	// ErrCannotDelete is returned when deleting a non-cancelled order
	ErrCannotDelete = errors.New("only cancelled orders can be deleted")

	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("orders service: internal error")
)
