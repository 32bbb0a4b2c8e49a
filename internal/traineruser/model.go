package traineruser

import "time"

// TrainerUser is one lesson package between a trainer and a member.
// LessonCurrentCount is the number of lessons still bookable.
type TrainerUser struct {
	ID                 int64      `db:"id" json:"id"`
	TrainerID          int64      `db:"trainer_id" json:"trainer_id"`
	UserID             int64      `db:"user_id" json:"user_id"`
	LessonTotalCount   int        `db:"lesson_total_count" json:"lesson_total_count"`
	LessonCurrentCount int        `db:"lesson_current_count" json:"lesson_current_count"`
	ExerciseDays       string     `db:"exercise_days" json:"exercise_days"`
	SpecialNotes       string     `db:"special_notes" json:"special_notes"`
	DeleteFlag         bool       `db:"delete_flag" json:"delete_flag"`
	DeletedAt          *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
}

type TrainerUserDetail struct {
	TrainerUser
	UserName        string `db:"user_name" json:"user_name"`
	UserPhoneNumber string `db:"user_phone_number" json:"user_phone_number"`
	TrainerName     string `db:"trainer_name" json:"trainer_name"`
	LessonName      string `db:"lesson_name" json:"lesson_name"`
}

type RegisterRequest struct {
	Name             string `json:"name" binding:"required,max=100" example:"홍길동"`
	PhoneNumber      string `json:"phone_number" binding:"required,max=20" example:"01012345678"`
	LessonTotalCount int    `json:"lesson_total_count" binding:"gte=1" example:"20"`
	ExerciseDays     string `json:"exercise_days" binding:"max=100" example:"MON,WED"`
	SpecialNotes     string `json:"special_notes"`
}

type UpdateRequest struct {
	LessonTotalCount   *int    `json:"lesson_total_count" binding:"omitempty,gte=0"`
	LessonCurrentCount *int    `json:"lesson_current_count" binding:"omitempty,gte=0"`
	ExerciseDays       *string `json:"exercise_days" binding:"omitempty,max=100"`
	SpecialNotes       *string `json:"special_notes"`
}
