package schedule

import (
	"context"
	"errors"
	"strconv"
	"time"

	"ptgym/internal/api"
	"ptgym/internal/db"
	"ptgym/internal/logger"
	"ptgym/internal/metrics"
	"ptgym/internal/notification"
	"ptgym/internal/trainer"
	"ptgym/internal/traineruser"
)

var (
	ErrScheduleNotFound    = api.NotFound("schedule not found")
	ErrScheduleConflict    = api.Conflict("another lesson is booked within one lesson of this time")
	ErrNoClassesLeft       = api.BadRequest("no classes left")
	ErrChangeWindowClosed  = api.BadRequest("schedule can no longer be changed")
	ErrNotChangeable       = api.BadRequest("only scheduled lessons can be changed")
	ErrInvalidTargetStatus = api.BadRequest("target status must be MODIFIED or CANCELLED")
	ErrStartTimeRequired   = api.BadRequest("start_time is required to modify a schedule")
)

// Changer applies a status change to a schedule inside the caller's
// transaction. Change tickets use it when a request is resolved.
type Changer interface {
	ApplyChange(ctx context.Context, scheduleID int64, newStart time.Time, target Status) (*ChangeResult, error)
}

type Service interface {
	Changer

	CreateSchedule(ctx context.Context, trainerID, userID int64, start time.Time) (*Schedule, error)
	GetSchedule(ctx context.Context, id int64) (*ScheduleDetail, error)
	HasConflict(ctx context.Context, trainerID int64, candidate time.Time) (bool, error)
	HandleChangeUserSchedule(ctx context.Context, scheduleID int64, newStart time.Time, target Status) (*ChangeResult, error)
	DeleteSchedule(ctx context.Context, id int64) error
	ValidateScheduleChange(ctx context.Context, id int64) (*ChangeWindow, error)

	GetTrainerDaySchedule(ctx context.Context, trainerID int64, date time.Time) ([]Slot, error)
	GetAvailableTrainerMonthSchedule(ctx context.Context, trainerID int64, year int, month time.Month) ([]string, error)
	GetTrainerWeekSchedule(ctx context.Context, trainerID int64, date time.Time) ([]ScheduleDetail, error)
	GetUserMonthScheduleDates(ctx context.Context, userID int64, year int, month time.Month) ([]string, error)
	GetUserDaySchedules(ctx context.Context, userID int64, date time.Time) ([]ScheduleDetail, error)
}

type Options struct {
	SlotStep time.Duration
	Now      func() time.Time
}

type service struct {
	repo            Repository
	trainerRepo     trainer.Repository
	trainerUserRepo traineruser.Repository
	tx              db.Transactor
	dispatcher      notification.Dispatcher
	slotStep        time.Duration
	now             func() time.Time
}

func NewService(
	repo Repository,
	trainerRepo trainer.Repository,
	trainerUserRepo traineruser.Repository,
	tx db.Transactor,
	dispatcher notification.Dispatcher,
	opts Options,
) Service {
	if opts.SlotStep <= 0 {
		opts.SlotStep = 30 * time.Minute
	}
	if opts.Now == nil {
		opts.Now = WallClock(time.UTC)
	}

	return &service{
		repo:            repo,
		trainerRepo:     trainerRepo,
		trainerUserRepo: trainerUserRepo,
		tx:              tx,
		dispatcher:      dispatcher,
		slotStep:        opts.SlotStep,
		now:             opts.Now,
	}
}

// CreateSchedule books a lesson and spends one credit of the relationship.
// The trainer is notified once the booking is committed.
func (s *service) CreateSchedule(ctx context.Context, trainerID, userID int64, start time.Time) (*Schedule, error) {
	var created *Schedule

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		rel, err := s.trainerUserRepo.GetByTrainerAndUser(ctx, trainerID, userID)
		if err != nil {
			return err
		}

		t, err := s.trainerRepo.GetTrainerByID(ctx, trainerID)
		if err != nil {
			return err
		}

		if err := s.repo.LockTrainer(ctx, trainerID); err != nil {
			return err
		}

		if err := s.checkConflict(ctx, t, start, 0); err != nil {
			return err
		}

		rel, err = s.trainerUserRepo.GetByIDForUpdate(ctx, rel.ID)
		if err != nil {
			return err
		}

		if rel.LessonCurrentCount < 1 {
			return ErrNoClassesLeft
		}

		if err := s.trainerUserRepo.UpdateLessonCount(ctx, rel.ID, rel.LessonCurrentCount-1); err != nil {
			return err
		}

		created = &Schedule{
			TrainerUserID: rel.ID,
			StartTime:     start,
			Status:        StatusScheduled,
		}
		return s.repo.Create(ctx, created)
	})
	if err != nil {
		metrics.RecordSchedule(createResult(err))
		return nil, err
	}

	metrics.RecordSchedule("created")
	logger.Info("Schedule created",
		"schedule_id", created.ID,
		"trainer_id", trainerID,
		"user_id", userID,
		"start_time", start.Format(DateTimeLayout),
	)

	s.dispatcher.Dispatch(ctx, notification.Effect{
		Recipient: notification.Trainer(trainerID),
		Title:     notification.TitleLessonRequested,
		Body:      start.Format(DateTimeLayout),
		Data:      map[string]string{"schedule_id": strconv.FormatInt(created.ID, 10)},
	})

	return created, nil
}

func createResult(err error) string {
	switch {
	case errors.Is(err, ErrScheduleConflict):
		return "conflict"
	case errors.Is(err, ErrNoClassesLeft):
		return "no_credit"
	case errors.Is(err, api.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}

func (s *service) GetSchedule(ctx context.Context, id int64) (*ScheduleDetail, error) {
	return s.repo.GetDetailByID(ctx, id)
}

func (s *service) HasConflict(ctx context.Context, trainerID int64, candidate time.Time) (bool, error) {
	t, err := s.trainerRepo.GetTrainerByID(ctx, trainerID)
	if err != nil {
		return false, err
	}

	conflict, err := s.findConflict(ctx, t, candidate, 0)
	if err != nil {
		return false, err
	}
	return conflict != nil, nil
}

func (s *service) findConflict(ctx context.Context, t *trainer.Trainer, candidate time.Time, excludeID int64) (*Schedule, error) {
	from, to := conflictWindow(candidate, t.LessonDuration())
	active, err := s.repo.ListActiveByTrainerBetween(ctx, t.ID, from, to)
	if err != nil {
		return nil, err
	}
	return FirstConflict(active, candidate, t.LessonDuration(), excludeID), nil
}

func (s *service) checkConflict(ctx context.Context, t *trainer.Trainer, candidate time.Time, excludeID int64) error {
	conflict, err := s.findConflict(ctx, t, candidate, excludeID)
	if err != nil {
		return err
	}
	if conflict != nil {
		logger.Debug("Schedule conflict",
			"trainer_id", t.ID,
			"candidate", candidate.Format(DateTimeLayout),
			"existing_schedule_id", conflict.ID,
		)
		return ErrScheduleConflict
	}
	return nil
}

func (s *service) HandleChangeUserSchedule(ctx context.Context, scheduleID int64, newStart time.Time, target Status) (*ChangeResult, error) {
	var result *ChangeResult

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		result, err = s.ApplyChange(ctx, scheduleID, newStart, target)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ApplyChange expects to run inside a transaction. MODIFIED retires the row
// and books a new one at newStart under the same relationship; CANCELLED
// refunds the credit.
func (s *service) ApplyChange(ctx context.Context, scheduleID int64, newStart time.Time, target Status) (*ChangeResult, error) {
	if target != StatusModified && target != StatusCancelled {
		return nil, ErrInvalidTargetStatus
	}

	current, err := s.repo.GetDetailByIDForUpdate(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	if current.Status != StatusScheduled {
		return nil, ErrNotChangeable
	}

	var result *ChangeResult
	switch target {
	case StatusModified:
		result, err = s.modify(ctx, current, newStart)
	case StatusCancelled:
		result, err = s.cancel(ctx, current)
	}
	if err != nil {
		return nil, err
	}

	metrics.RecordScheduleChange(string(target))
	logger.Info("Schedule changed",
		"schedule_id", scheduleID,
		"status", target,
		"trainer_id", current.TrainerID,
		"user_id", current.UserID,
	)
	return result, nil
}

func (s *service) modify(ctx context.Context, current *ScheduleDetail, newStart time.Time) (*ChangeResult, error) {
	if newStart.IsZero() {
		return nil, ErrStartTimeRequired
	}

	t, err := s.trainerRepo.GetTrainerByID(ctx, current.TrainerID)
	if err != nil {
		return nil, err
	}

	if !ChangeAllowed(s.now(), current.StartTime, t.LessonChangeRange) {
		return nil, ErrChangeWindowClosed
	}

	if err := s.repo.LockTrainer(ctx, t.ID); err != nil {
		return nil, err
	}

	if err := s.checkConflict(ctx, t, newStart, current.ID); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, current.ID, StatusModified); err != nil {
		return nil, err
	}

	next := &Schedule{
		TrainerUserID: current.TrainerUserID,
		StartTime:     newStart,
		Status:        StatusScheduled,
	}
	if err := s.repo.Create(ctx, next); err != nil {
		return nil, err
	}

	previous := current.Schedule
	previous.Status = StatusModified
	return &ChangeResult{Schedule: next, Previous: &previous}, nil
}

func (s *service) cancel(ctx context.Context, current *ScheduleDetail) (*ChangeResult, error) {
	rel, err := s.trainerUserRepo.GetByIDForUpdate(ctx, current.TrainerUserID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, current.ID, StatusCancelled); err != nil {
		return nil, err
	}

	if err := s.trainerUserRepo.UpdateLessonCount(ctx, rel.ID, rel.LessonCurrentCount+1); err != nil {
		return nil, err
	}

	cancelled := current.Schedule
	cancelled.Status = StatusCancelled
	return &ChangeResult{Schedule: &cancelled}, nil
}

func (s *service) DeleteSchedule(ctx context.Context, id int64) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}

	logger.Info("Schedule deleted", "schedule_id", id)
	return nil
}

func (s *service) ValidateScheduleChange(ctx context.Context, id int64) (*ChangeWindow, error) {
	sc, err := s.repo.GetDetailByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t, err := s.trainerRepo.GetTrainerByID(ctx, sc.TrainerID)
	if err != nil {
		return nil, err
	}

	return &ChangeWindow{
		Result:      ChangeAllowed(s.now(), sc.StartTime, t.LessonChangeRange),
		ChangeRange: t.LessonChangeRange,
	}, nil
}

func (s *service) GetTrainerDaySchedule(ctx context.Context, trainerID int64, date time.Time) ([]Slot, error) {
	t, err := s.trainerRepo.GetTrainerByID(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	avail, err := s.trainerRepo.GetAvailabilityByWeekDay(ctx, trainerID, trainer.WeekDay(date.Weekday()))
	if err != nil {
		return nil, err
	}
	if avail == nil {
		return []Slot{}, nil
	}

	from, to := DayRange(date)
	active, err := s.repo.ListActiveByTrainerBetween(ctx, trainerID, from, to)
	if err != nil {
		return nil, err
	}

	booked := make([]time.Time, 0, len(active))
	for _, sc := range active {
		booked = append(booked, sc.StartTime)
	}

	return DaySlots(date, avail, booked, t.LessonDuration(), s.slotStep), nil
}

func (s *service) GetAvailableTrainerMonthSchedule(ctx context.Context, trainerID int64, year int, month time.Month) ([]string, error) {
	if _, err := s.trainerRepo.GetTrainerByID(ctx, trainerID); err != nil {
		return nil, err
	}

	availabilities, err := s.trainerRepo.GetAvailabilities(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if len(availabilities) == 0 {
		return []string{}, nil
	}

	from, to := MonthRange(year, month)
	counts, err := s.repo.CountActiveByTrainerPerDate(ctx, trainerID, from, to)
	if err != nil {
		return nil, err
	}

	return AvailableMonthDates(year, month, availabilities, counts), nil
}

func (s *service) GetTrainerWeekSchedule(ctx context.Context, trainerID int64, date time.Time) ([]ScheduleDetail, error) {
	if _, err := s.trainerRepo.GetTrainerByID(ctx, trainerID); err != nil {
		return nil, err
	}

	from, to := WeekRange(date)
	return s.repo.ListDetailsByTrainerBetween(ctx, trainerID, from, to)
}

func (s *service) GetUserMonthScheduleDates(ctx context.Context, userID int64, year int, month time.Month) ([]string, error) {
	from, to := MonthRange(year, month)
	dates, err := s.repo.ListDatesByUserBetween(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(dates))
	for _, d := range dates {
		result = append(result, d.Format(DateLayout))
	}
	return result, nil
}

func (s *service) GetUserDaySchedules(ctx context.Context, userID int64, date time.Time) ([]ScheduleDetail, error) {
	from, to := DayRange(date)
	return s.repo.ListDetailsByUserBetween(ctx, userID, from, to)
}
