package lifecycle

import (
	"time"
)

const dateLayout = "2006-01-02"

// ParseScheduledDate reads a YYYY-MM-DD calendar date. Calendar dates are
// carried as UTC midnight so the stored DATE never shifts with the session
// time zone.
func ParseScheduledDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// CalendarDate drops the clock and zone of t, keeping its calendar day
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today is the calendar date of now in loc
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return CalendarDate(now.In(loc))
}

// CheckBookingWindow accepts dates from today up to and including
// today+WindowDays, with today taken in the policy time zone.
func (p Policy) CheckBookingWindow(date, now time.Time) error {
	today := Today(now, p.Location)
	day := CalendarDate(date)
	if day.Before(today) {
		return ErrPastDate
	}
	if day.After(today.AddDate(0, 0, p.WindowDays)) {
		return ErrOutsideWindow.WithMessage("Booking must be within %d days from today", p.WindowDays)
	}
	return nil
}
