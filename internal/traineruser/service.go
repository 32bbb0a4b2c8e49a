package traineruser

import (
	"context"
	"errors"

	"ptgym/internal/api"
	"ptgym/internal/logger"
	"ptgym/internal/trainer"
	"ptgym/internal/user"
)

var (
	ErrTrainerUserNotFound = api.NotFound("trainer user relationship not found")
	ErrAlreadyRegistered   = api.BadRequest("member is already registered with this trainer")
	ErrInvalidLessonCount  = api.BadRequest("lesson_current_count cannot exceed lesson_total_count")
)

type Service interface {
	Register(ctx context.Context, trainerID int64, req RegisterRequest) (*TrainerUser, error)
	Get(ctx context.Context, trainerID, userID int64) (*TrainerUser, error)
	Update(ctx context.Context, trainerID, userID int64, req UpdateRequest) (*TrainerUser, error)
	End(ctx context.Context, trainerID, userID int64) error
	ListByTrainer(ctx context.Context, trainerID int64, includeDeleted bool) ([]TrainerUserDetail, error)
	ListByUser(ctx context.Context, userID int64) ([]TrainerUserDetail, error)
}

type service struct {
	repo        Repository
	trainerRepo trainer.Repository
	userRepo    user.Repository
}

func NewService(repo Repository, trainerRepo trainer.Repository, userRepo user.Repository) Service {
	return &service{
		repo:        repo,
		trainerRepo: trainerRepo,
		userRepo:    userRepo,
	}
}

// Register links the member identified by name and phone number to the
// trainer with a fresh lesson package.
func (s *service) Register(ctx context.Context, trainerID int64, req RegisterRequest) (*TrainerUser, error) {
	if _, err := s.trainerRepo.GetTrainerByID(ctx, trainerID); err != nil {
		return nil, err
	}

	member, err := s.userRepo.FindByNameAndPhone(ctx, req.Name, req.PhoneNumber)
	if err != nil {
		return nil, err
	}

	_, err = s.repo.GetByTrainerAndUser(ctx, trainerID, member.ID)
	switch {
	case err == nil:
		return nil, ErrAlreadyRegistered
	case !errors.Is(err, ErrTrainerUserNotFound):
		return nil, err
	}

	tu := &TrainerUser{
		TrainerID:          trainerID,
		UserID:             member.ID,
		LessonTotalCount:   req.LessonTotalCount,
		LessonCurrentCount: req.LessonTotalCount,
		ExerciseDays:       req.ExerciseDays,
		SpecialNotes:       req.SpecialNotes,
	}
	if err := s.repo.Create(ctx, tu); err != nil {
		return nil, err
	}

	logger.Info("Member registered", "trainer_id", trainerID, "user_id", member.ID, "lessons", tu.LessonTotalCount)
	return tu, nil
}

func (s *service) Get(ctx context.Context, trainerID, userID int64) (*TrainerUser, error) {
	return s.repo.GetByTrainerAndUser(ctx, trainerID, userID)
}

func (s *service) Update(ctx context.Context, trainerID, userID int64, req UpdateRequest) (*TrainerUser, error) {
	tu, err := s.repo.GetByTrainerAndUser(ctx, trainerID, userID)
	if err != nil {
		return nil, err
	}

	if req.LessonTotalCount != nil {
		tu.LessonTotalCount = *req.LessonTotalCount
	}
	if req.LessonCurrentCount != nil {
		tu.LessonCurrentCount = *req.LessonCurrentCount
	}
	if req.ExerciseDays != nil {
		tu.ExerciseDays = *req.ExerciseDays
	}
	if req.SpecialNotes != nil {
		tu.SpecialNotes = *req.SpecialNotes
	}

	if tu.LessonCurrentCount > tu.LessonTotalCount {
		return nil, ErrInvalidLessonCount
	}

	if err := s.repo.Update(ctx, tu); err != nil {
		return nil, err
	}
	return tu, nil
}

// End soft-deletes the relationship. Its schedules stay for history but drop
// out of availability and listings.
func (s *service) End(ctx context.Context, trainerID, userID int64) error {
	tu, err := s.repo.GetByTrainerAndUser(ctx, trainerID, userID)
	if err != nil {
		return err
	}

	if err := s.repo.SoftDelete(ctx, tu.ID); err != nil {
		return err
	}

	logger.Info("Member relationship ended", "trainer_id", trainerID, "user_id", userID, "trainer_user_id", tu.ID)
	return nil
}

func (s *service) ListByTrainer(ctx context.Context, trainerID int64, includeDeleted bool) ([]TrainerUserDetail, error) {
	if _, err := s.trainerRepo.GetTrainerByID(ctx, trainerID); err != nil {
		return nil, err
	}
	return s.repo.ListByTrainer(ctx, trainerID, includeDeleted)
}

func (s *service) ListByUser(ctx context.Context, userID int64) ([]TrainerUserDetail, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, userID)
}
