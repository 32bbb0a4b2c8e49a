package user

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

func (r *repository) FindByID(ctx context.Context, id int64) (*User, error) {
	query := `
		SELECT id, name, phone_number, created_at
		FROM users
		WHERE id = $1 AND delete_flag = FALSE
	`

	var u User
	err := sqlx.GetContext(ctx, db.Conn(ctx, r.db), &u, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// FindByNameAndPhone is how a trainer identifies a new member at the desk.
func (r *repository) FindByNameAndPhone(ctx context.Context, name, phoneNumber string) (*User, error) {
	query := `
		SELECT id, name, phone_number, created_at
		FROM users
		WHERE name = $1 AND phone_number = $2 AND delete_flag = FALSE
		ORDER BY id ASC
		LIMIT 1
	`

	var u User
	err := sqlx.GetContext(ctx, db.Conn(ctx, r.db), &u, query, name, phoneNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}
