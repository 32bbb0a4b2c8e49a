package schedule

import (
	"context"
	"time"
)

// Repository persists schedules. "Active" means SCHEDULED, not deleted and
// owned by a relationship that has not ended. Range queries are half-open.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Schedule, error)
	GetDetailByID(ctx context.Context, id int64) (*ScheduleDetail, error)
	// GetDetailByIDForUpdate row-locks the schedule until the transaction ends.
	GetDetailByIDForUpdate(ctx context.Context, id int64) (*ScheduleDetail, error)
	Create(ctx context.Context, s *Schedule) error
	UpdateStatus(ctx context.Context, id int64, status Status) error
	SoftDelete(ctx context.Context, id int64) error

	ListActiveByTrainerBetween(ctx context.Context, trainerID int64, from, to time.Time) ([]Schedule, error)
	CountActiveByTrainerPerDate(ctx context.Context, trainerID int64, from, to time.Time) ([]DateCount, error)
	ListDetailsByTrainerBetween(ctx context.Context, trainerID int64, from, to time.Time) ([]ScheduleDetail, error)
	ListDetailsByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]ScheduleDetail, error)
	ListDatesByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]time.Time, error)

	// LockTrainer serializes conflict checks and writes for one trainer.
	LockTrainer(ctx context.Context, trainerID int64) error
}
