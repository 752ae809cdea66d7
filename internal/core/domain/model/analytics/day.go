package analytics

import "time"

// Day truncates t to the start of its UTC calendar day. Snapshots are keyed by it.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Window returns the [from, to) range covering the trailing days ending with day.
func Window(day time.Time, days int) (time.Time, time.Time) {
	to := Day(day).AddDate(0, 0, 1)
	return to.AddDate(0, 0, -days), to
}
