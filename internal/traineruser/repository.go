package traineruser

import (
	"context"
	"database/sql"
	"errors"

	"ptgym/internal/db"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

const selectColumns = `id, trainer_id, user_id, lesson_total_count, lesson_current_count,
		       exercise_days, special_notes, delete_flag, deleted_at, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, tu *TrainerUser) error {
	query := `
		INSERT INTO trainer_users (trainer_id, user_id, lesson_total_count, lesson_current_count, exercise_days, special_notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	row := db.Conn(ctx, r.db).QueryRowxContext(ctx, query,
		tu.TrainerID, tu.UserID, tu.LessonTotalCount, tu.LessonCurrentCount, tu.ExerciseDays, tu.SpecialNotes)
	if err := row.Scan(&tu.ID, &tu.CreatedAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrAlreadyRegistered
		}
		return err
	}

	return nil
}

func (r *repository) get(ctx context.Context, query string, args ...interface{}) (*TrainerUser, error) {
	var tu TrainerUser
	err := sqlx.GetContext(ctx, db.Conn(ctx, r.db), &tu, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTrainerUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tu, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*TrainerUser, error) {
	return r.get(ctx, `
		SELECT `+selectColumns+`
		FROM trainer_users
		WHERE id = $1
	`, id)
}

func (r *repository) GetByIDForUpdate(ctx context.Context, id int64) (*TrainerUser, error) {
	return r.get(ctx, `
		SELECT `+selectColumns+`
		FROM trainer_users
		WHERE id = $1
		FOR UPDATE
	`, id)
}

func (r *repository) GetByTrainerAndUser(ctx context.Context, trainerID, userID int64) (*TrainerUser, error) {
	return r.get(ctx, `
		SELECT `+selectColumns+`
		FROM trainer_users
		WHERE trainer_id = $1 AND user_id = $2 AND delete_flag = FALSE
	`, trainerID, userID)
}

func (r *repository) UpdateLessonCount(ctx context.Context, id int64, lessonCurrentCount int) error {
	_, err := db.Conn(ctx, r.db).ExecContext(ctx, `
		UPDATE trainer_users
		SET lesson_current_count = $1
		WHERE id = $2
	`, lessonCurrentCount, id)
	return err
}

func (r *repository) Update(ctx context.Context, tu *TrainerUser) error {
	res, err := db.Conn(ctx, r.db).ExecContext(ctx, `
		UPDATE trainer_users
		SET lesson_total_count = $1,
		    lesson_current_count = $2,
		    exercise_days = $3,
		    special_notes = $4
		WHERE id = $5 AND delete_flag = FALSE
	`, tu.LessonTotalCount, tu.LessonCurrentCount, tu.ExerciseDays, tu.SpecialNotes, tu.ID)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

func (r *repository) SoftDelete(ctx context.Context, id int64) error {
	res, err := db.Conn(ctx, r.db).ExecContext(ctx, `
		UPDATE trainer_users
		SET delete_flag = TRUE,
		    deleted_at = NOW()
		WHERE id = $1 AND delete_flag = FALSE
	`, id)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTrainerUserNotFound
	}
	return nil
}

const detailQuery = `
		SELECT tu.id, tu.trainer_id, tu.user_id, tu.lesson_total_count, tu.lesson_current_count,
		       tu.exercise_days, tu.special_notes, tu.delete_flag, tu.deleted_at, tu.created_at,
		       u.name AS user_name, u.phone_number AS user_phone_number,
		       t.name AS trainer_name, t.lesson_name
		FROM trainer_users tu
		JOIN users u ON u.id = tu.user_id
		JOIN trainers t ON t.id = tu.trainer_id
`

func (r *repository) ListByTrainer(ctx context.Context, trainerID int64, includeDeleted bool) ([]TrainerUserDetail, error) {
	query := detailQuery + ` WHERE tu.trainer_id = $1`
	if !includeDeleted {
		query += ` AND tu.delete_flag = FALSE`
	}
	query += ` ORDER BY u.name ASC`

	list := []TrainerUserDetail{}
	err := sqlx.SelectContext(ctx, db.Conn(ctx, r.db), &list, query, trainerID)
	return list, err
}

func (r *repository) ListByUser(ctx context.Context, userID int64) ([]TrainerUserDetail, error) {
	query := detailQuery + ` WHERE tu.user_id = $1 AND tu.delete_flag = FALSE ORDER BY tu.created_at DESC`

	list := []TrainerUserDetail{}
	err := sqlx.SelectContext(ctx, db.Conn(ctx, r.db), &list, query, userID)
	return list, err
}
