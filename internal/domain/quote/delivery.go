package quote

import "time"

// IsBusinessDay reports whether d falls on Monday through Friday.
func IsBusinessDay(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// EnsureBusinessDay moves a weekend date forward to the next Monday and
// leaves weekdays untouched. Packages do not ship on weekends.
func EnsureBusinessDay(d time.Time) time.Time {
	for !IsBusinessDay(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// AddBusinessDays walks forward one calendar day at a time from start,
// counting only weekdays, and returns the date of the nth business day.
// The returned date is never a Saturday or Sunday.
func AddBusinessDays(start time.Time, n int) time.Time {
	d := start
	for added := 0; added < n; {
		d = d.AddDate(0, 0, 1)
		if IsBusinessDay(d) {
			added++
		}
	}
	return d
}

// DeliveryDate computes the calendar delivery date for a day commitment,
// shipping no earlier than the first business day on or after shipDate.
func DeliveryDate(shipDate time.Time, businessDays int) time.Time {
	return AddBusinessDays(EnsureBusinessDay(shipDate), businessDays)
}
