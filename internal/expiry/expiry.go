// Package expiry holds the shared date arithmetic and urgency classification
// used by both the notification feed and the inventory listing. Both paths go
// through DaysUntil so they can never drift apart.
package expiry

import "time"

// DateLayout is the persisted calendar-date format.
const DateLayout = "2006-01-02"

// Status is the four-way display classification of an item's expiry date.
type Status string

const (
	StatusExpired  Status = "expired"
	StatusCritical Status = "critical"
	StatusWarning  Status = "warning"
	StatusSafe     Status = "safe"
)

const (
	// criticalMaxDays is the last day an item still counts as critical.
	criticalMaxDays = 2
	// notifyWindowDays is the last day an item still appears in the
	// notification feed.
	notifyWindowDays = 7
)

// ParseDate parses a persisted YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DaysUntil returns the whole calendar days from today until expiry. Negative
// when the date has passed. Time-of-day and timezone offsets on either
// argument are ignored.
func DaysUntil(expiry, today time.Time) int {
	e := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(t).Hours() / 24)
}

// StatusFor classifies a days-until value for the inventory listing.
func StatusFor(daysUntil int) Status {
	switch {
	case daysUntil < 0:
		return StatusExpired
	case daysUntil <= criticalMaxDays:
		return StatusCritical
	case daysUntil <= notifyWindowDays:
		return StatusWarning
	default:
		return StatusSafe
	}
}

// InNotifyWindow reports whether a days-until value belongs in the
// notification feed. Already-expired items are excluded here; they surface
// through StatusFor in the inventory listing instead.
func InNotifyWindow(daysUntil int) bool {
	return daysUntil >= 0 && daysUntil <= notifyWindowDays
}

// Critical reports whether a days-until value inside the notification window
// is critical rather than a plain warning.
func Critical(daysUntil int) bool {
	return daysUntil <= criticalMaxDays
}
