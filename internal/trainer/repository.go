package trainer

import (
	"context"
	"database/sql"
	"errors"

	"ptgym/internal/db"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetTrainerByID(ctx context.Context, id int64) (*Trainer, error) {
	query := `
		SELECT id, name, phone_number, lesson_name, lesson_minutes, lesson_change_range, delete_flag, created_at
		FROM trainers
		WHERE id = $1 AND delete_flag = FALSE
	`

	var t Trainer
	err := sqlx.GetContext(ctx, db.Conn(ctx, r.db), &t, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTrainerNotFound
	}
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *repository) UpdateTrainer(ctx context.Context, t *Trainer) error {
	query := `
		UPDATE trainers
		SET name = $1, phone_number = $2, lesson_name = $3, lesson_minutes = $4, lesson_change_range = $5
		WHERE id = $6 AND delete_flag = FALSE
	`

	result, err := db.Conn(ctx, r.db).ExecContext(ctx, query,
		t.Name, t.PhoneNumber, t.LessonName, t.LessonMinutes, t.LessonChangeRange, t.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTrainerNotFound
	}
	return nil
}

func (r *repository) GetAvailabilities(ctx context.Context, trainerID int64) ([]Availability, error) {
	query := `
		SELECT id, trainer_id, week_day, start_time, end_time, possible_lesson_cnt
		FROM trainer_availabilities
		WHERE trainer_id = $1
		ORDER BY week_day ASC
	`

	availabilities := []Availability{}
	err := sqlx.SelectContext(ctx, db.Conn(ctx, r.db), &availabilities, query, trainerID)
	if err != nil {
		return nil, err
	}

	return availabilities, nil
}

// GetAvailabilityByWeekDay returns nil without error when the trainer does
// not work that day.
func (r *repository) GetAvailabilityByWeekDay(ctx context.Context, trainerID int64, weekDay int) (*Availability, error) {
	query := `
		SELECT id, trainer_id, week_day, start_time, end_time, possible_lesson_cnt
		FROM trainer_availabilities
		WHERE trainer_id = $1 AND week_day = $2
		LIMIT 1
	`

	var a Availability
	err := sqlx.GetContext(ctx, db.Conn(ctx, r.db), &a, query, trainerID, weekDay)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *repository) DeleteAvailabilities(ctx context.Context, trainerID int64) error {
	_, err := db.Conn(ctx, r.db).ExecContext(ctx,
		`DELETE FROM trainer_availabilities WHERE trainer_id = $1`,
		trainerID,
	)
	return err
}

func (r *repository) CreateAvailability(ctx context.Context, a *Availability) error {
	query := `
		INSERT INTO trainer_availabilities (trainer_id, week_day, start_time, end_time, possible_lesson_cnt)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	return sqlx.GetContext(ctx, db.Conn(ctx, r.db), &a.ID, query,
		a.TrainerID, a.WeekDay, a.StartTime, a.EndTime, a.PossibleLessonCnt)
}

func (r *repository) UpdatePossibleLessonCnt(ctx context.Context, id int64, cnt int) error {
	_, err := db.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE trainer_availabilities SET possible_lesson_cnt = $1 WHERE id = $2`,
		cnt, id,
	)
	return err
}
