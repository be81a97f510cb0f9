package domain

// Business validation constants
const (
	MaxCustomerNameLength = 100
	MaxProblemDescLength  = 2000
	MaxAdminNotesLength   = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ValidStatuses statuses accepted when changing an order's status.
// Membership is the only check: there is no enforcement of legal
// transitions between statuses, only that the value is one of these.
var ValidStatuses = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusDelayed,
	StatusCompleted,
	StatusCancelled,
}

// IsValidStatus returns true if s is a known order status
func IsValidStatus(s OrderStatus) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}
