package utils

import "time"

// DateOf truncates a timestamp to midnight UTC. MenuItem dates are always
// stored in this form so equality lookups work.
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func Today() time.Time {
	return DateOf(time.Now())
}
