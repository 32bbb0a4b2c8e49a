package changeticket

import (
	"context"
	"time"

	"ptgym/internal/notification"
	"ptgym/internal/schedule"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, t *ChangeTicket) error {
	args := m.Called(ctx, t)
	if args.Error(0) == nil {
		t.ID = 77
	}
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*ChangeTicket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ChangeTicket), args.Error(1)
}

func (m *MockRepository) GetByIDForUpdate(ctx context.Context, id int64) (*ChangeTicket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ChangeTicket), args.Error(1)
}

func (m *MockRepository) GetDetailByID(ctx context.Context, id int64) (*TicketDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TicketDetail), args.Error(1)
}

func (m *MockRepository) ExistsForSchedule(ctx context.Context, scheduleID int64, onlyWaiting bool) (bool, error) {
	args := m.Called(ctx, scheduleID, onlyWaiting)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Resolve(ctx context.Context, t *ChangeTicket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) ListByTrainer(ctx context.Context, trainerID int64, statuses []Status) ([]TicketDetail, error) {
	args := m.Called(ctx, trainerID, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]TicketDetail), args.Error(1)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID int64, statuses []Status) ([]TicketDetail, error) {
	args := m.Called(ctx, userID, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]TicketDetail), args.Error(1)
}

func (m *MockRepository) ListUserHistory(ctx context.Context, userID int64, limit, offset int) ([]TicketDetail, int, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]TicketDetail), args.Int(1), args.Error(2)
}

type stubSchedules struct {
	details map[int64]*schedule.ScheduleDetail
	locked  []int64
}

func (s *stubSchedules) GetDetailByIDForUpdate(ctx context.Context, id int64) (*schedule.ScheduleDetail, error) {
	s.locked = append(s.locked, id)
	d, ok := s.details[id]
	if !ok {
		return nil, schedule.ErrScheduleNotFound
	}
	cp := *d
	return &cp, nil
}

func (s *stubSchedules) GetSchedule(ctx context.Context, id int64) (*schedule.ScheduleDetail, error) {
	d, ok := s.details[id]
	if !ok {
		return nil, schedule.ErrScheduleNotFound
	}
	cp := *d
	return &cp, nil
}

type change struct {
	scheduleID int64
	start      time.Time
	target     schedule.Status
}

type fakeChanger struct {
	calls []change
	err   error
}

func (f *fakeChanger) ApplyChange(ctx context.Context, scheduleID int64, newStart time.Time, target schedule.Status) (*schedule.ChangeResult, error) {
	f.calls = append(f.calls, change{scheduleID: scheduleID, start: newStart, target: target})
	if f.err != nil {
		return nil, f.err
	}
	return &schedule.ChangeResult{Schedule: &schedule.Schedule{ID: scheduleID, Status: target}}, nil
}

type passthroughTx struct{ calls int }

func (p *passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type recordingDispatcher struct {
	effects []notification.Effect
}

func (d *recordingDispatcher) Dispatch(ctx context.Context, effects ...notification.Effect) {
	d.effects = append(d.effects, effects...)
}

func at(s string) time.Time {
	t, err := schedule.ParseDateTime(s)
	if err != nil {
		panic(err)
	}
	return t
}

func timePtr(s string) *time.Time {
	t := at(s)
	return &t
}

var lessonDetail = &schedule.ScheduleDetail{
	Schedule: schedule.Schedule{
		ID:            3,
		TrainerUserID: 10,
		StartTime:     time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
		Status:        schedule.StatusScheduled,
	},
	TrainerID:   1,
	UserID:      2,
	TrainerName: "Kim",
	UserName:    "Lee",
}
