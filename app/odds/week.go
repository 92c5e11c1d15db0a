package odds

import "time"

// WeekWindow returns the NFL week containing or following now as a
// pair of UTC calendar dates: the Thursday on or after now's date
// through the Monday four days later. A now that already falls on
// Thursday starts the window that same day
func WeekWindow(now time.Time) (time.Time, time.Time) {
	today := dateOnly(now)

	offset := (int(time.Thursday) - int(today.Weekday()) + 7) % 7
	thursday := today.AddDate(0, 0, offset)
	monday := thursday.AddDate(0, 0, 4)

	return thursday, monday
}

// dateOnly truncates a timestamp to its UTC calendar date
func dateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
