package trainer

import "context"

type Repository interface {
	GetTrainerByID(ctx context.Context, id int64) (*Trainer, error)
	UpdateTrainer(ctx context.Context, t *Trainer) error
	GetAvailabilities(ctx context.Context, trainerID int64) ([]Availability, error)
	GetAvailabilityByWeekDay(ctx context.Context, trainerID int64, weekDay int) (*Availability, error)
	DeleteAvailabilities(ctx context.Context, trainerID int64) error
	CreateAvailability(ctx context.Context, a *Availability) error
	UpdatePossibleLessonCnt(ctx context.Context, id int64, cnt int) error
}
