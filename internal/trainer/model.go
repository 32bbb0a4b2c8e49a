package trainer

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type Trainer struct {
	ID                int64     `db:"id" json:"id"`
	Name              string    `db:"name" json:"name"`
	PhoneNumber       string    `db:"phone_number" json:"phone_number"`
	LessonName        string    `db:"lesson_name" json:"lesson_name"`
	LessonMinutes     int       `db:"lesson_minutes" json:"lesson_minutes"`
	LessonChangeRange int       `db:"lesson_change_range" json:"lesson_change_range"`
	DeleteFlag        bool      `db:"delete_flag" json:"-"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

// LessonDuration is both the length of a lesson and the minimum gap between
// two of the trainer's bookings.
func (t *Trainer) LessonDuration() time.Duration {
	return time.Duration(t.LessonMinutes) * time.Minute
}

// Availability is one weekly work window. WeekDay is 0 for Monday.
type Availability struct {
	ID                int64 `db:"id" json:"id"`
	TrainerID         int64 `db:"trainer_id" json:"trainer_id"`
	WeekDay           int   `db:"week_day" json:"week_day"`
	StartTime         Clock `db:"start_time" json:"start_time"`
	EndTime           Clock `db:"end_time" json:"end_time"`
	PossibleLessonCnt int   `db:"possible_lesson_cnt" json:"possible_lesson_cnt"`
}

type UpdateTrainerRequest struct {
	Name              *string `json:"name" binding:"omitempty,min=1,max=100" example:"김코치"`
	PhoneNumber       *string `json:"phone_number" binding:"omitempty,max=20" example:"01011112222"`
	LessonName        *string `json:"lesson_name" binding:"omitempty,max=100" example:"PT 60"`
	LessonMinutes     *int    `json:"lesson_minutes" binding:"omitempty,gte=10,lte=240" example:"60"`
	LessonChangeRange *int    `json:"lesson_change_range" binding:"omitempty,gte=0,lte=30" example:"3"`
}

type AvailabilityRequest struct {
	WeekDay   int    `json:"week_day" binding:"gte=0,lte=6" example:"0"`
	StartTime string `json:"start_time" binding:"required,clock" example:"09:00"`
	EndTime   string `json:"end_time" binding:"required,clock" example:"18:00"`
}

type ReplaceAvailabilityRequest struct {
	Availabilities []AvailabilityRequest `json:"availabilities" binding:"required,dive"`
}

// WeekDay converts a Go weekday to the Monday-based index used in storage.
func WeekDay(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// Clock is a time of day in minutes since midnight, stored as a TIME column.
type Clock int

func ParseClock(s string) (Clock, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return Clock(t.Hour()*60 + t.Minute()), nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q", s)
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

func (c Clock) Duration() time.Duration {
	return time.Duration(c) * time.Minute
}

// On places the clock on the calendar date of day.
func (c Clock) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, day.Location()).Add(c.Duration())
}

func (c *Clock) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*c = Clock(v.Hour()*60 + v.Minute())
		return nil
	case []byte:
		return c.parse(string(v))
	case string:
		return c.parse(v)
	default:
		return fmt.Errorf("cannot scan %T into Clock", src)
	}
}

func (c *Clock) parse(s string) error {
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Clock) Value() (driver.Value, error) {
	return c.String() + ":00", nil
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Clock) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return c.parse(s)
}
