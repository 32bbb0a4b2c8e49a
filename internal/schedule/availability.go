package schedule

import (
	"sort"
	"time"

	"ptgym/internal/trainer"
)

// DaySlots lays markers every step across the working window of avail on
// day. A marker is possible when no booked lesson [b, b+lesson) covers it.
func DaySlots(day time.Time, avail *trainer.Availability, booked []time.Time, lesson, step time.Duration) []Slot {
	slots := []Slot{}
	if avail == nil || step <= 0 {
		return slots
	}

	start := avail.StartTime.On(startOfDay(day))
	end := avail.EndTime.On(startOfDay(day))

	for marker := start; !marker.Add(step).After(end); marker = marker.Add(step) {
		slots = append(slots, Slot{
			Time:     marker.Format("15:04"),
			Possible: !covered(marker, booked, lesson),
		})
	}
	return slots
}

func covered(marker time.Time, booked []time.Time, lesson time.Duration) bool {
	for _, b := range booked {
		if !marker.Before(b) && marker.Before(b.Add(lesson)) {
			return true
		}
	}
	return false
}

// AvailableMonthDates lists the dates of the month falling on a working
// weekday, minus the dates whose booked count reached the weekday capacity.
func AvailableMonthDates(year int, month time.Month, availabilities []trainer.Availability, counts []DateCount) []string {
	capacity := make(map[int]int)
	for _, a := range availabilities {
		if cur, ok := capacity[a.WeekDay]; !ok || a.PossibleLessonCnt > cur {
			capacity[a.WeekDay] = a.PossibleLessonCnt
		}
	}

	full := make(map[string]bool)
	for _, c := range counts {
		limit, ok := capacity[trainer.WeekDay(c.Date.Weekday())]
		if ok && c.Count >= limit {
			full[c.Date.Format(DateLayout)] = true
		}
	}

	dates := []string{}
	from, to := MonthRange(year, month)
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		if _, ok := capacity[trainer.WeekDay(d.Weekday())]; !ok {
			continue
		}
		key := d.Format(DateLayout)
		if !full[key] {
			dates = append(dates, key)
		}
	}

	sort.Strings(dates)
	return dates
}
