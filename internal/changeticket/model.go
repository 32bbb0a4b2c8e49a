package changeticket

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusCanceled Status = "CANCELED"
)

// Terminal reports whether the ticket can no longer change.
func (s Status) Terminal() bool {
	return s != StatusWaiting
}

func (s Status) Valid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected, StatusCanceled:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("unknown change ticket status %q", s)
	}
	return st, nil
}

// ParseStatuses reads a comma separated list. An empty list means WAITING.
func ParseStatuses(csv string) ([]Status, error) {
	if strings.TrimSpace(csv) == "" {
		return []Status{StatusWaiting}, nil
	}

	parts := strings.Split(csv, ",")
	statuses := make([]Status, 0, len(parts))
	for _, p := range parts {
		st, err := ParseStatus(p)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}

type ChangeFrom string

const (
	FromUser    ChangeFrom = "USER"
	FromTrainer ChangeFrom = "TRAINER"
)

func (f ChangeFrom) Valid() bool {
	switch f {
	case FromUser, FromTrainer:
		return true
	default:
		return false
	}
}

type ChangeType string

const (
	TypeCancel ChangeType = "CANCEL"
	TypeModify ChangeType = "MODIFY"
)

func (t ChangeType) Valid() bool {
	switch t {
	case TypeCancel, TypeModify:
		return true
	default:
		return false
	}
}

// UniquenessPolicy decides which existing tickets of a schedule block a new one.
type UniquenessPolicy string

const (
	// PolicyAny blocks on any earlier ticket, resolved or not.
	PolicyAny UniquenessPolicy = "any"
	// PolicyWaiting blocks only on a ticket still waiting for an answer.
	PolicyWaiting UniquenessPolicy = "waiting"
)

func ParsePolicy(s string) (UniquenessPolicy, error) {
	switch p := UniquenessPolicy(s); p {
	case PolicyAny, PolicyWaiting:
		return p, nil
	default:
		return "", fmt.Errorf("unknown ticket uniqueness policy %q", s)
	}
}

type ChangeTicket struct {
	ID           int64      `db:"id" json:"id"`
	ScheduleID   int64      `db:"schedule_id" json:"schedule_id"`
	ChangeFrom   ChangeFrom `db:"change_from" json:"change_from"`
	ChangeType   ChangeType `db:"change_type" json:"change_type"`
	Description  string     `db:"description" json:"description"`
	Status       Status     `db:"status" json:"status"`
	RequestTime  *time.Time `db:"request_time" json:"request_time,omitempty"`
	AsIsDate     time.Time  `db:"as_is_date" json:"as_is_date"`
	RejectReason string     `db:"reject_reason" json:"reject_reason"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

type TicketDetail struct {
	ChangeTicket
	TrainerID         int64     `db:"trainer_id" json:"trainer_id"`
	UserID            int64     `db:"user_id" json:"user_id"`
	TrainerName       string    `db:"trainer_name" json:"trainer_name"`
	UserName          string    `db:"user_name" json:"user_name"`
	ScheduleStartTime time.Time `db:"schedule_start_time" json:"schedule_start_time"`
}

type HistoryPage struct {
	Items   []TicketDetail `json:"items"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
	Total   int            `json:"total"`
}

// NewTicket is a validated change request.
type NewTicket struct {
	ScheduleID  int64
	ChangeFrom  ChangeFrom
	ChangeType  ChangeType
	Description string
	RequestTime *time.Time
	AsIsDate    *time.Time
}

// Resolution is the answer to a waiting ticket.
type Resolution struct {
	Status       Status
	StartTime    *time.Time
	RejectReason string
	Description  string
}

type CreateRequest struct {
	ScheduleID  int64  `json:"schedule_id" binding:"required,gt=0" example:"3"`
	ChangeFrom  string `json:"change_from" binding:"required,oneof=USER TRAINER" example:"USER"`
	ChangeType  string `json:"change_type" binding:"required,oneof=CANCEL MODIFY" example:"MODIFY"`
	Description string `json:"description" binding:"max=500" example:"출장 일정"`
	RequestTime string `json:"request_time" binding:"required_if=ChangeType MODIFY" example:"2024-01-12 10:00:00"`
	AsIsDate    string `json:"as_is_date" example:"2024-01-10 12:00:00"`
}

type ResolveRequest struct {
	Status       string `json:"status" binding:"required,oneof=APPROVED REJECTED CANCELED" example:"APPROVED"`
	StartTime    string `json:"start_time" example:"2024-01-12 10:00:00"`
	RejectReason string `json:"reject_reason" binding:"max=500"`
	Description  string `json:"description" binding:"max=500"`
}
