package schedule

import "time"

// Conflicts reports whether two lessons starting at a and b are closer than
// one lesson apart. Exactly one lesson apart is allowed.
func Conflicts(a, b time.Time, lesson time.Duration) bool {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d < lesson
}

// FirstConflict returns the first schedule in active that is too close to
// candidate, ignoring the schedule with id excludeID.
func FirstConflict(active []Schedule, candidate time.Time, lesson time.Duration, excludeID int64) *Schedule {
	for i := range active {
		s := &active[i]
		if s.ID == excludeID || s.Status != StatusScheduled {
			continue
		}
		if Conflicts(s.StartTime, candidate, lesson) {
			return s
		}
	}
	return nil
}

// conflictWindow is a half-open range covering every start time that can
// conflict with candidate. FirstConflict does the exact check.
func conflictWindow(candidate time.Time, lesson time.Duration) (time.Time, time.Time) {
	return candidate.Add(-lesson), candidate.Add(lesson)
}
