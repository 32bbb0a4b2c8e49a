package trainer

import (
	"context"
	"fmt"

	"ptgym/internal/api"
	"ptgym/internal/db"
	"ptgym/internal/logger"
)

var (
	ErrTrainerNotFound     = api.NotFound("trainer not found")
	ErrInvalidAvailability = api.BadRequest("invalid availability")
)

type Service interface {
	GetTrainer(ctx context.Context, id int64) (*Trainer, error)
	UpdateTrainer(ctx context.Context, id int64, req UpdateTrainerRequest) (*Trainer, error)
	GetAvailabilities(ctx context.Context, trainerID int64) ([]Availability, error)
	ReplaceAvailabilities(ctx context.Context, trainerID int64, req ReplaceAvailabilityRequest) ([]Availability, error)
}

type service struct {
	repo Repository
	tx   db.Transactor
}

func NewService(repo Repository, tx db.Transactor) Service {
	return &service{
		repo: repo,
		tx:   tx,
	}
}

func (s *service) GetTrainer(ctx context.Context, id int64) (*Trainer, error) {
	return s.repo.GetTrainerByID(ctx, id)
}

// UpdateTrainer applies the given profile fields. A new lesson length
// recomputes how many lessons fit into each weekly window.
func (s *service) UpdateTrainer(ctx context.Context, id int64, req UpdateTrainerRequest) (*Trainer, error) {
	var updated *Trainer

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		t, err := s.repo.GetTrainerByID(ctx, id)
		if err != nil {
			return err
		}

		lessonChanged := req.LessonMinutes != nil && *req.LessonMinutes != t.LessonMinutes
		applyUpdate(t, req)

		if err := s.repo.UpdateTrainer(ctx, t); err != nil {
			return err
		}

		if lessonChanged {
			availabilities, err := s.repo.GetAvailabilities(ctx, id)
			if err != nil {
				return err
			}
			for _, a := range availabilities {
				cnt := possibleLessonCount(a.StartTime, a.EndTime, t.LessonMinutes)
				if err := s.repo.UpdatePossibleLessonCnt(ctx, a.ID, cnt); err != nil {
					return fmt.Errorf("update possible lesson count: %w", err)
				}
			}
		}

		updated = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Trainer updated", "trainer_id", id, "lesson_minutes", updated.LessonMinutes)
	return updated, nil
}

func applyUpdate(t *Trainer, req UpdateTrainerRequest) {
	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		t.PhoneNumber = *req.PhoneNumber
	}
	if req.LessonName != nil {
		t.LessonName = *req.LessonName
	}
	if req.LessonMinutes != nil {
		t.LessonMinutes = *req.LessonMinutes
	}
	if req.LessonChangeRange != nil {
		t.LessonChangeRange = *req.LessonChangeRange
	}
}

func (s *service) GetAvailabilities(ctx context.Context, trainerID int64) ([]Availability, error) {
	if _, err := s.repo.GetTrainerByID(ctx, trainerID); err != nil {
		return nil, err
	}
	return s.repo.GetAvailabilities(ctx, trainerID)
}

// ReplaceAvailabilities swaps the trainer's whole weekly template for the
// requested one. At most one window per week day is accepted.
func (s *service) ReplaceAvailabilities(ctx context.Context, trainerID int64, req ReplaceAvailabilityRequest) ([]Availability, error) {
	t, err := s.repo.GetTrainerByID(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	availabilities, err := buildAvailabilities(t, req.Availabilities)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.DeleteAvailabilities(ctx, trainerID); err != nil {
			return fmt.Errorf("delete availabilities: %w", err)
		}
		for i := range availabilities {
			if err := s.repo.CreateAvailability(ctx, &availabilities[i]); err != nil {
				return fmt.Errorf("create availability: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Availability replaced", "trainer_id", trainerID, "days", len(availabilities))
	return availabilities, nil
}

func buildAvailabilities(t *Trainer, reqs []AvailabilityRequest) ([]Availability, error) {
	seen := make(map[int]bool, len(reqs))
	out := make([]Availability, 0, len(reqs))

	for _, r := range reqs {
		if r.WeekDay < 0 || r.WeekDay > 6 {
			return nil, api.BadRequest("week_day %d out of range", r.WeekDay)
		}
		if seen[r.WeekDay] {
			return nil, api.BadRequest("week_day %d given more than once", r.WeekDay)
		}
		seen[r.WeekDay] = true

		start, err := ParseClock(r.StartTime)
		if err != nil {
			return nil, ErrInvalidAvailability
		}
		end, err := ParseClock(r.EndTime)
		if err != nil {
			return nil, ErrInvalidAvailability
		}
		if end <= start {
			return nil, api.BadRequest("end_time must be after start_time on week_day %d", r.WeekDay)
		}

		out = append(out, Availability{
			TrainerID:         t.ID,
			WeekDay:           r.WeekDay,
			StartTime:         start,
			EndTime:           end,
			PossibleLessonCnt: possibleLessonCount(start, end, t.LessonMinutes),
		})
	}

	return out, nil
}

func possibleLessonCount(start, end Clock, lessonMinutes int) int {
	if lessonMinutes <= 0 {
		return 0
	}
	return int(end-start) / lessonMinutes
}
