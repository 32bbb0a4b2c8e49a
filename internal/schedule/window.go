package schedule

import "time"

// ChangeAllowed reports whether a lesson at start may still be changed at
// now, given the trainer's notice period in days. Both bounds are inclusive.
func ChangeAllowed(now, start time.Time, rangeDays int) bool {
	if now.After(start) {
		return false
	}
	return start.Sub(now) >= time.Duration(rangeDays)*24*time.Hour
}
