package notification

import "time"

type Role string

const (
	RoleTrainer Role = "TRAINER"
	RoleUser    Role = "USER"
)

const (
	TitleLessonRequested = "수업 신청"
	TitleModifyRequested = "변경 신청"
	TitleCancelRequested = "취소 신청"
	TitleApproved        = "요청 승인"
	TitleRejected        = "요청 거절"
)

type Recipient struct {
	Role Role  `json:"role"`
	ID   int64 `json:"id"`
}

func Trainer(id int64) Recipient {
	return Recipient{Role: RoleTrainer, ID: id}
}

func User(id int64) Recipient {
	return Recipient{Role: RoleUser, ID: id}
}

// Effect is a notification a service decided to send. Services collect
// effects inside their transaction and dispatch them after commit.
type Effect struct {
	Recipient Recipient
	Title     string
	Body      string
	Data      map[string]string
}

// Job is the queued form of an Effect once the recipient token is known.
type Job struct {
	Recipient Recipient         `json:"recipient"`
	Token     string            `json:"token"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data,omitempty"`
	Tries     int               `json:"tries"`
	Created   time.Time         `json:"created"`
}

type RegisterTokenRequest struct {
	FCMToken string `json:"fcm_token" binding:"required,max=4096"`
}
