package order

import "errors"

var (
	// ErrOrderNotFound is returned when a repair order does not exist
	ErrOrderNotFound = errors.New("order.repository: order not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("order.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("order.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("order.repository: failed to scan row")
)
