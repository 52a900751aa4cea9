package repository

import "time"

// Sales are bucketed by calendar day in the server's local timezone, the
// same convention the mobile client used. Bounds are computed here and
// passed as plain instants so queries stay on the sale_time index and do
// not depend on the database session timezone.

// dayBounds returns the half-open instant interval [00:00, next day 00:00)
// covering the local calendar day of t.
func dayBounds(t time.Time) (time.Time, time.Time) {
	local := t.In(time.Local)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 0, 1)
}

// rangeBounds returns the half-open instant interval covering the inclusive
// local calendar-day range [start, end].
func rangeBounds(start, end time.Time) (time.Time, time.Time) {
	lo, _ := dayBounds(start)
	_, hi := dayBounds(end)
	return lo, hi
}

// localDay formats an instant as its local calendar day, YYYY-MM-DD.
func localDay(t time.Time) string {
	return t.In(time.Local).Format("2006-01-02")
}
