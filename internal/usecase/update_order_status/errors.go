package update_order_status

import "errors"

var (
	// ErrOrderNotFound is returned when the repair order does not exist
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidStatus is returned for a status outside the known set
	ErrInvalidStatus = errors.New("invalid order status")

	// ErrSameStatus is returned when the new status equals the current one
	ErrSameStatus = errors.New("order already has this status")

	// ErrUpdateFailed is returned after a rolled-back optimistic update;
	// the displayed status is the prior one again
	ErrUpdateFailed = errors.New("status update failed and was rolled back")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("usecase: internal error")
)
