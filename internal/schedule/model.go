package schedule

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCancelled Status = "CANCELLED"
	StatusModified  Status = "MODIFIED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCancelled, StatusModified:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown schedule status %q", s)
	}
	return st, nil
}

// Schedule is one booked lesson. A time change retires the row as MODIFIED
// and books a new SCHEDULED row, so start times are never rewritten.
type Schedule struct {
	ID            int64     `db:"id" json:"id"`
	TrainerUserID int64     `db:"trainer_user_id" json:"trainer_user_id"`
	StartTime     time.Time `db:"schedule_start_time" json:"schedule_start_time"`
	Status        Status    `db:"schedule_status" json:"schedule_status"`
	DeleteFlag    bool      `db:"delete_flag" json:"-"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

type ScheduleDetail struct {
	Schedule
	TrainerID   int64  `db:"trainer_id" json:"trainer_id"`
	UserID      int64  `db:"user_id" json:"user_id"`
	TrainerName string `db:"trainer_name" json:"trainer_name"`
	UserName    string `db:"user_name" json:"user_name"`
	LessonName  string `db:"lesson_name" json:"lesson_name"`
}

// Slot is one marker of a trainer's working day.
type Slot struct {
	Time     string `json:"time" example:"09:30"`
	Possible bool   `json:"possible"`
}

type ChangeWindow struct {
	Result      bool `json:"result"`
	ChangeRange int  `json:"change_range" example:"3"`
}

type DateCount struct {
	Date  time.Time `db:"date"`
	Count int       `db:"count"`
}

type CreateScheduleRequest struct {
	TrainerID int64  `json:"trainer_id" binding:"required,gt=0" example:"1"`
	UserID    int64  `json:"user_id" binding:"required,gt=0" example:"2"`
	StartTime string `json:"start_time" binding:"required" example:"2024-01-10 13:00:00"`
}

type ChangeScheduleRequest struct {
	StartTime string `json:"start_time" example:"2024-01-12 10:00:00"`
	Status    string `json:"status" binding:"required,oneof=MODIFIED CANCELLED" example:"MODIFIED"`
}

type ChangeResult struct {
	Schedule *Schedule `json:"schedule"`
	// Previous is the retired row of a time change.
	Previous *Schedule `json:"previous,omitempty"`
}
