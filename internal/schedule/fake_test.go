package schedule

import (
	"context"
	"sort"
	"time"

	"ptgym/internal/notification"
	"ptgym/internal/trainer"
	"ptgym/internal/traineruser"
)

// memStore backs the schedule and relationship repositories in service tests.
type memStore struct {
	schedules map[int64]*Schedule
	rels      map[int64]*traineruser.TrainerUser
	nextID    int64
	locked    []int64
}

func newMemStore(rels ...traineruser.TrainerUser) *memStore {
	m := &memStore{
		schedules: make(map[int64]*Schedule),
		rels:      make(map[int64]*traineruser.TrainerUser),
		nextID:    100,
	}
	for i := range rels {
		rel := rels[i]
		m.rels[rel.ID] = &rel
	}
	return m
}

func (m *memStore) add(s Schedule) *Schedule {
	if s.ID == 0 {
		m.nextID++
		s.ID = m.nextID
	}
	m.schedules[s.ID] = &s
	return &s
}

func (m *memStore) credits(relID int64) int {
	return m.rels[relID].LessonCurrentCount
}

type memSchedules struct{ *memStore }

func (r memSchedules) active(s *Schedule) bool {
	rel := r.rels[s.TrainerUserID]
	return !s.DeleteFlag && s.Status == StatusScheduled && rel != nil && !rel.DeleteFlag
}

func (r memSchedules) detail(s *Schedule) *ScheduleDetail {
	rel := r.rels[s.TrainerUserID]
	return &ScheduleDetail{Schedule: *s, TrainerID: rel.TrainerID, UserID: rel.UserID}
}

func (r memSchedules) GetByID(ctx context.Context, id int64) (*Schedule, error) {
	s, ok := r.schedules[id]
	if !ok || s.DeleteFlag {
		return nil, ErrScheduleNotFound
	}
	cp := *s
	return &cp, nil
}

func (r memSchedules) GetDetailByID(ctx context.Context, id int64) (*ScheduleDetail, error) {
	s, ok := r.schedules[id]
	if !ok || s.DeleteFlag {
		return nil, ErrScheduleNotFound
	}
	return r.detail(s), nil
}

func (r memSchedules) GetDetailByIDForUpdate(ctx context.Context, id int64) (*ScheduleDetail, error) {
	return r.GetDetailByID(ctx, id)
}

func (r memSchedules) Create(ctx context.Context, s *Schedule) error {
	r.nextID++
	s.ID = r.nextID
	cp := *s
	r.schedules[s.ID] = &cp
	return nil
}

func (r memSchedules) UpdateStatus(ctx context.Context, id int64, status Status) error {
	s, ok := r.schedules[id]
	if !ok || s.DeleteFlag {
		return ErrScheduleNotFound
	}
	s.Status = status
	return nil
}

func (r memSchedules) SoftDelete(ctx context.Context, id int64) error {
	s, ok := r.schedules[id]
	if !ok || s.DeleteFlag {
		return ErrScheduleNotFound
	}
	s.DeleteFlag = true
	return nil
}

func (r memSchedules) ListActiveByTrainerBetween(ctx context.Context, trainerID int64, from, to time.Time) ([]Schedule, error) {
	out := []Schedule{}
	for _, s := range r.schedules {
		if !r.active(s) || r.rels[s.TrainerUserID].TrainerID != trainerID {
			continue
		}
		if s.StartTime.Before(from) || !s.StartTime.Before(to) {
			continue
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r memSchedules) CountActiveByTrainerPerDate(ctx context.Context, trainerID int64, from, to time.Time) ([]DateCount, error) {
	list, _ := r.ListActiveByTrainerBetween(ctx, trainerID, from, to)
	counts := map[time.Time]int{}
	for _, s := range list {
		counts[startOfDay(s.StartTime)]++
	}
	out := []DateCount{}
	for d, n := range counts {
		out = append(out, DateCount{Date: d, Count: n})
	}
	return out, nil
}

func (r memSchedules) ListDetailsByTrainerBetween(ctx context.Context, trainerID int64, from, to time.Time) ([]ScheduleDetail, error) {
	list, _ := r.ListActiveByTrainerBetween(ctx, trainerID, from, to)
	out := []ScheduleDetail{}
	for i := range list {
		out = append(out, *r.detail(&list[i]))
	}
	return out, nil
}

func (r memSchedules) ListDetailsByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]ScheduleDetail, error) {
	out := []ScheduleDetail{}
	for _, s := range r.schedules {
		rel := r.rels[s.TrainerUserID]
		if s.DeleteFlag || rel.UserID != userID || s.StartTime.Before(from) || !s.StartTime.Before(to) {
			continue
		}
		out = append(out, *r.detail(s))
	}
	return out, nil
}

func (r memSchedules) ListDatesByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]time.Time, error) {
	seen := map[time.Time]bool{}
	out := []time.Time{}
	for _, s := range r.schedules {
		if !r.active(s) || r.rels[s.TrainerUserID].UserID != userID || s.StartTime.Before(from) || !s.StartTime.Before(to) {
			continue
		}
		d := startOfDay(s.StartTime)
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out, nil
}

func (r memSchedules) LockTrainer(ctx context.Context, trainerID int64) error {
	r.locked = append(r.locked, trainerID)
	return nil
}

type memRels struct{ *memStore }

func (r memRels) Create(ctx context.Context, tu *traineruser.TrainerUser) error {
	r.nextID++
	tu.ID = r.nextID
	cp := *tu
	r.rels[tu.ID] = &cp
	return nil
}

func (r memRels) GetByID(ctx context.Context, id int64) (*traineruser.TrainerUser, error) {
	rel, ok := r.rels[id]
	if !ok {
		return nil, traineruser.ErrTrainerUserNotFound
	}
	cp := *rel
	return &cp, nil
}

func (r memRels) GetByIDForUpdate(ctx context.Context, id int64) (*traineruser.TrainerUser, error) {
	return r.GetByID(ctx, id)
}

func (r memRels) GetByTrainerAndUser(ctx context.Context, trainerID, userID int64) (*traineruser.TrainerUser, error) {
	for _, rel := range r.rels {
		if rel.TrainerID == trainerID && rel.UserID == userID && !rel.DeleteFlag {
			cp := *rel
			return &cp, nil
		}
	}
	return nil, traineruser.ErrTrainerUserNotFound
}

func (r memRels) UpdateLessonCount(ctx context.Context, id int64, lessonCurrentCount int) error {
	rel, ok := r.rels[id]
	if !ok {
		return traineruser.ErrTrainerUserNotFound
	}
	rel.LessonCurrentCount = lessonCurrentCount
	return nil
}

func (r memRels) Update(ctx context.Context, tu *traineruser.TrainerUser) error {
	cp := *tu
	r.rels[tu.ID] = &cp
	return nil
}

func (r memRels) SoftDelete(ctx context.Context, id int64) error {
	rel, ok := r.rels[id]
	if !ok {
		return traineruser.ErrTrainerUserNotFound
	}
	rel.DeleteFlag = true
	return nil
}

func (r memRels) ListByTrainer(ctx context.Context, trainerID int64, includeDeleted bool) ([]traineruser.TrainerUserDetail, error) {
	return nil, nil
}

func (r memRels) ListByUser(ctx context.Context, userID int64) ([]traineruser.TrainerUserDetail, error) {
	return nil, nil
}

// stubTrainers serves fixed trainers and availability windows.
type stubTrainers struct {
	trainers       map[int64]*trainer.Trainer
	availabilities []trainer.Availability
}

func (s *stubTrainers) GetTrainerByID(ctx context.Context, id int64) (*trainer.Trainer, error) {
	t, ok := s.trainers[id]
	if !ok {
		return nil, trainer.ErrTrainerNotFound
	}
	cp := *t
	return &cp, nil
}

func (s *stubTrainers) UpdateTrainer(ctx context.Context, t *trainer.Trainer) error {
	return nil
}

func (s *stubTrainers) GetAvailabilities(ctx context.Context, trainerID int64) ([]trainer.Availability, error) {
	out := []trainer.Availability{}
	for _, a := range s.availabilities {
		if a.TrainerID == trainerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubTrainers) GetAvailabilityByWeekDay(ctx context.Context, trainerID int64, weekDay int) (*trainer.Availability, error) {
	for _, a := range s.availabilities {
		if a.TrainerID == trainerID && a.WeekDay == weekDay {
			cp := a
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *stubTrainers) DeleteAvailabilities(ctx context.Context, trainerID int64) error {
	return nil
}

func (s *stubTrainers) CreateAvailability(ctx context.Context, a *trainer.Availability) error {
	return nil
}

func (s *stubTrainers) UpdatePossibleLessonCnt(ctx context.Context, id int64, cnt int) error {
	return nil
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
