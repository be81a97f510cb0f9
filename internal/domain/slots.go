package domain

import (
	"fmt"
	"regexp"
	"time"
)

// HourRange is a half-open range of whole hours within a business day.
// Start is inclusive, End is exclusive: {9, 18} covers 09:00 through 17:59.
type HourRange struct {
	Start int
	End   int
}

// SlotCatalog defines the fixed enumeration of bookable one-hour slots
// for a single day, plus the weekdays on which booking is offered.
type SlotCatalog struct {
	Name     string
	Ranges   []HourRange
	WorkDays []time.Weekday
}

// PublicCatalog is the slot range offered by the public booking form:
// a continuous 09:00-18:00 business day, Monday to Friday.
var PublicCatalog = SlotCatalog{
	Name:     "public",
	Ranges:   []HourRange{{Start: 9, End: 18}},
	WorkDays: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
}

// AdminCatalog is the slot range used by the admin scheduling view:
// morning 10:00-12:00 plus afternoon 13:00-18:00, skipping the lunch hour.
// It deliberately disagrees with PublicCatalog; both ranges exist in the
// product as shipped and the drift is tracked as an open product question,
// so neither is silently reconciled to the other.
var AdminCatalog = SlotCatalog{
	Name:     "admin",
	Ranges:   []HourRange{{Start: 10, End: 12}, {Start: 13, End: 18}},
	WorkDays: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
}

// SlotLabel formats the label of the one-hour slot starting at the given hour
func SlotLabel(hour int) string {
	return fmt.Sprintf("%02d:00-%02d:00", hour, hour+1)
}

// Slots returns the ordered sequence of slot labels for the catalog
func (c SlotCatalog) Slots() []string {
	labels := make([]string, 0)
	for _, r := range c.Ranges {
		for hour := r.Start; hour < r.End; hour++ {
			labels = append(labels, SlotLabel(hour))
		}
	}
	return labels
}

// Contains returns true if label is one of the catalog's slot labels
func (c SlotCatalog) Contains(label string) bool {
	for _, r := range c.Ranges {
		for hour := r.Start; hour < r.End; hour++ {
			if SlotLabel(hour) == label {
				return true
			}
		}
	}
	return false
}

// IsWorkday returns true if the date's weekday is a configured workday.
// The public slot picker never offers slots outside workdays; the admin
// calendar still displays and counts existing weekend bookings.
func (c SlotCatalog) IsWorkday(date time.Time) bool {
	for _, d := range c.WorkDays {
		if date.Weekday() == d {
			return true
		}
	}
	return false
}

// slotLabelShape matches the HH:MM-HH:MM shape of a slot label.
// Well-formed labels outside the current catalogs still count in
// aggregation (legacy rows, admin overrides); only shape-invalid or
// empty values are treated as malformed.
var slotLabelShape = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]-([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsWellFormedSlotLabel reports whether label has a valid slot shape
func IsWellFormedSlotLabel(label string) bool {
	return slotLabelShape.MatchString(label)
}
