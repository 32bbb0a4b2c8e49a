package traineruser

import "context"

type Repository interface {
	Create(ctx context.Context, tu *TrainerUser) error
	GetByID(ctx context.Context, id int64) (*TrainerUser, error)
	// GetByIDForUpdate row-locks the relationship until the transaction ends.
	GetByIDForUpdate(ctx context.Context, id int64) (*TrainerUser, error)
	GetByTrainerAndUser(ctx context.Context, trainerID, userID int64) (*TrainerUser, error)
	UpdateLessonCount(ctx context.Context, id int64, lessonCurrentCount int) error
	Update(ctx context.Context, tu *TrainerUser) error
	SoftDelete(ctx context.Context, id int64) error
	ListByTrainer(ctx context.Context, trainerID int64, includeDeleted bool) ([]TrainerUserDetail, error)
	ListByUser(ctx context.Context, userID int64) ([]TrainerUserDetail, error)
}
