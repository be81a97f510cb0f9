package create_order

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/fretworks/repairshop-service/internal/domain"
)

var (
	emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneShape = regexp.MustCompile(`^1[3-9]\d{9}$`) // mainland mobile number
)

// validateRequest checks the booking form fields
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name too long", ErrInvalidInput)
	}
	if !emailShape.MatchString(req.CustomerEmail) {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}
	if !phoneShape.MatchString(req.CustomerPhone) {
		return fmt.Errorf("%w: invalid phone number", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ProblemDesc) == "" {
		return fmt.Errorf("%w: problem description is required", ErrInvalidInput)
	}
	if len(req.ProblemDesc) > domain.MaxProblemDescLength {
		return fmt.Errorf("%w: problem description too long", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: appointment date is required", ErrInvalidInput)
	}
	return nil
}

// validateAppointment checks date and slot against the public catalog
func validateAppointment(req *Request, now time.Time) error {
	if isDateInPast(req.Date, now) {
		return ErrPastDate
	}
	if !domain.PublicCatalog.IsWorkday(req.Date) {
		return ErrNotWorkday
	}
	if !domain.PublicCatalog.Contains(req.Slot) {
		return fmt.Errorf("%w: %q", ErrUnknownSlot, req.Slot)
	}
	return nil
}

// isDateInPast compares calendar dates, ignoring the time of day
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
