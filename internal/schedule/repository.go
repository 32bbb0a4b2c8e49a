package schedule

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ptgym/internal/db"

	"github.com/jmoiron/sqlx"
)

const detailQuery = `
	SELECT s.id, s.trainer_user_id, s.schedule_start_time, s.schedule_status, s.delete_flag, s.created_at,
	       tu.trainer_id, tu.user_id,
	       t.name AS trainer_name, u.name AS user_name, t.lesson_name
	FROM schedules s
	JOIN trainer_users tu ON tu.id = s.trainer_user_id
	JOIN trainers t ON t.id = tu.trainer_id
	JOIN users u ON u.id = tu.user_id
`

const activeFilter = `s.delete_flag = FALSE AND s.schedule_status = 'SCHEDULED' AND tu.delete_flag = FALSE`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Schedule, error) {
	query := `
		SELECT id, trainer_user_id, schedule_start_time, schedule_status, delete_flag, created_at
		FROM schedules
		WHERE id = $1 AND delete_flag = FALSE
	`

	var s Schedule
	err := sqlx.GetContext(ctx, db.Conn(ctx, r.db), &s, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) getDetail(ctx context.Context, query string, id int64) (*ScheduleDetail, error) {
	var d ScheduleDetail
	err := sqlx.GetContext(ctx, db.Conn(ctx, r.db), &d, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) GetDetailByID(ctx context.Context, id int64) (*ScheduleDetail, error) {
	return r.getDetail(ctx, detailQuery+`
	WHERE s.id = $1 AND s.delete_flag = FALSE
	`, id)
}

func (r *repository) GetDetailByIDForUpdate(ctx context.Context, id int64) (*ScheduleDetail, error) {
	return r.getDetail(ctx, detailQuery+`
	WHERE s.id = $1 AND s.delete_flag = FALSE
	FOR UPDATE OF s
	`, id)
}

func (r *repository) Create(ctx context.Context, s *Schedule) error {
	query := `
		INSERT INTO schedules (trainer_user_id, schedule_start_time, schedule_status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	return db.Conn(ctx, r.db).QueryRowxContext(ctx, query, s.TrainerUserID, s.StartTime, s.Status).
		Scan(&s.ID, &s.CreatedAt)
}

func (r *repository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	query := `UPDATE schedules SET schedule_status = $1 WHERE id = $2 AND delete_flag = FALSE`

	result, err := db.Conn(ctx, r.db).ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	return expectOne(result)
}

func (r *repository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE schedules SET delete_flag = TRUE WHERE id = $1 AND delete_flag = FALSE`

	result, err := db.Conn(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return expectOne(result)
}

func expectOne(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrScheduleNotFound
	}
	return nil
}

func (r *repository) ListActiveByTrainerBetween(ctx context.Context, trainerID int64, from, to time.Time) ([]Schedule, error) {
	query := `
		SELECT s.id, s.trainer_user_id, s.schedule_start_time, s.schedule_status, s.delete_flag, s.created_at
		FROM schedules s
		JOIN trainer_users tu ON tu.id = s.trainer_user_id
		WHERE tu.trainer_id = $1
		  AND s.schedule_start_time >= $2 AND s.schedule_start_time < $3
		  AND ` + activeFilter + `
		ORDER BY s.schedule_start_time
	`

	schedules := []Schedule{}
	err := sqlx.SelectContext(ctx, db.Conn(ctx, r.db), &schedules, query, trainerID, from, to)
	return schedules, err
}

func (r *repository) CountActiveByTrainerPerDate(ctx context.Context, trainerID int64, from, to time.Time) ([]DateCount, error) {
	query := `
		SELECT DATE(s.schedule_start_time) AS date, COUNT(*) AS count
		FROM schedules s
		JOIN trainer_users tu ON tu.id = s.trainer_user_id
		WHERE tu.trainer_id = $1
		  AND s.schedule_start_time >= $2 AND s.schedule_start_time < $3
		  AND ` + activeFilter + `
		GROUP BY DATE(s.schedule_start_time)
		ORDER BY date
	`

	counts := []DateCount{}
	err := sqlx.SelectContext(ctx, db.Conn(ctx, r.db), &counts, query, trainerID, from, to)
	return counts, err
}

func (r *repository) ListDetailsByTrainerBetween(ctx context.Context, trainerID int64, from, to time.Time) ([]ScheduleDetail, error) {
	query := detailQuery + `
	WHERE tu.trainer_id = $1
	  AND s.schedule_start_time >= $2 AND s.schedule_start_time < $3
	  AND ` + activeFilter + `
	ORDER BY s.schedule_start_time
	`

	details := []ScheduleDetail{}
	err := sqlx.SelectContext(ctx, db.Conn(ctx, r.db), &details, query, trainerID, from, to)
	return details, err
}

// ListDetailsByUserBetween includes cancelled and retired lessons so members
// can see what happened to a booking.
func (r *repository) ListDetailsByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]ScheduleDetail, error) {
	query := detailQuery + `
	WHERE tu.user_id = $1
	  AND s.schedule_start_time >= $2 AND s.schedule_start_time < $3
	  AND s.delete_flag = FALSE AND tu.delete_flag = FALSE
	ORDER BY s.schedule_start_time
	`

	details := []ScheduleDetail{}
	err := sqlx.SelectContext(ctx, db.Conn(ctx, r.db), &details, query, userID, from, to)
	return details, err
}

func (r *repository) ListDatesByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]time.Time, error) {
	query := `
		SELECT DISTINCT DATE(s.schedule_start_time) AS date
		FROM schedules s
		JOIN trainer_users tu ON tu.id = s.trainer_user_id
		WHERE tu.user_id = $1
		  AND s.schedule_start_time >= $2 AND s.schedule_start_time < $3
		  AND ` + activeFilter + `
		ORDER BY date
	`

	dates := []time.Time{}
	err := sqlx.SelectContext(ctx, db.Conn(ctx, r.db), &dates, query, userID, from, to)
	return dates, err
}

func (r *repository) LockTrainer(ctx context.Context, trainerID int64) error {
	return db.LockTrainer(ctx, trainerID)
}
