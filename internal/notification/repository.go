package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type tokenRepository struct {
	db *sqlx.DB
}

func NewTokenRepository(db *sqlx.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func tokenTable(role Role) (table, column string, err error) {
	switch role {
	case RoleTrainer:
		return "trainer_fcm_tokens", "trainer_id", nil
	case RoleUser:
		return "user_fcm_tokens", "user_id", nil
	default:
		return "", "", fmt.Errorf("unknown recipient role %q", role)
	}
}

func (r *tokenRepository) GetToken(ctx context.Context, rc Recipient) (string, error) {
	table, column, err := tokenTable(rc.Role)
	if err != nil {
		return "", err
	}

	var token string
	err = r.db.GetContext(ctx, &token,
		`SELECT token FROM `+table+` WHERE `+column+` = $1`, rc.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return token, err
}

// SaveToken keeps one device per recipient; a new token replaces the old one.
func (r *tokenRepository) SaveToken(ctx context.Context, rc Recipient, token string) error {
	table, column, err := tokenTable(rc.Role)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO `+table+` (`+column+`, token, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (`+column+`) DO UPDATE
		SET token = EXCLUDED.token, updated_at = NOW()
	`, rc.ID, token)
	return err
}
