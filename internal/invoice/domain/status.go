package domain

import "time"

// DateLayout is the wire format for invoice dates.
const DateLayout = "2006-01-02"

// DeriveStatus computes the creation-time status of an invoice from its due
// date: Overdue when the due date (date-only) is strictly before now
// (date-only), Pending otherwise. An unparseable due date derives Pending.
// Status is derived once at creation and never recomputed automatically;
// the transition to Paid only happens through an explicit update.
func DeriveStatus(dueDate string, now time.Time) Status {
	due, err := time.Parse(DateLayout, dueDate)
	if err != nil {
		return StatusPending
	}
	if due.Before(Midnight(now)) {
		return StatusOverdue
	}
	return StatusPending
}

// Midnight truncates a time to the start of its UTC day.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a time as an invoice date string.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
