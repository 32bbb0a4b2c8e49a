package changeticket

import (
	"context"
	"database/sql"
	"errors"

	"ptgym/internal/db"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const ticketColumns = `id, schedule_id, change_from, change_type, description, status,
		       request_time, as_is_date, reject_reason, created_at, updated_at`

const detailQuery = `
	SELECT ct.id, ct.schedule_id, ct.change_from, ct.change_type, ct.description, ct.status,
	       ct.request_time, ct.as_is_date, ct.reject_reason, ct.created_at, ct.updated_at,
	       tu.trainer_id, tu.user_id, t.name AS trainer_name, u.name AS user_name,
	       s.schedule_start_time
	FROM change_tickets ct
	JOIN schedules s ON s.id = ct.schedule_id
	JOIN trainer_users tu ON tu.id = s.trainer_user_id
	JOIN trainers t ON t.id = tu.trainer_id
	JOIN users u ON u.id = tu.user_id
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *ChangeTicket) error {
	query := `
		INSERT INTO change_tickets (schedule_id, change_from, change_type, description, status, request_time, as_is_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	return db.Conn(ctx, r.db).QueryRowxContext(ctx, query,
		t.ScheduleID, t.ChangeFrom, t.ChangeType, t.Description, t.Status, t.RequestTime, t.AsIsDate,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *repository) get(ctx context.Context, query string, id int64) (*ChangeTicket, error) {
	var t ChangeTicket
	err := sqlx.GetContext(ctx, db.Conn(ctx, r.db), &t, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTicketNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*ChangeTicket, error) {
	return r.get(ctx, `SELECT `+ticketColumns+` FROM change_tickets WHERE id = $1`, id)
}

func (r *repository) GetByIDForUpdate(ctx context.Context, id int64) (*ChangeTicket, error) {
	return r.get(ctx, `SELECT `+ticketColumns+` FROM change_tickets WHERE id = $1 FOR UPDATE`, id)
}

func (r *repository) GetDetailByID(ctx context.Context, id int64) (*TicketDetail, error) {
	var d TicketDetail
	err := sqlx.GetContext(ctx, db.Conn(ctx, r.db), &d, detailQuery+` WHERE ct.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTicketNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) ExistsForSchedule(ctx context.Context, scheduleID int64, onlyWaiting bool) (bool, error) {
	if onlyWaiting {
		return db.Exists(ctx, r.db,
			`SELECT EXISTS(SELECT 1 FROM change_tickets WHERE schedule_id = $1 AND status = 'WAITING')`, scheduleID)
	}
	return db.Exists(ctx, r.db,
		`SELECT EXISTS(SELECT 1 FROM change_tickets WHERE schedule_id = $1)`, scheduleID)
}

func (r *repository) Resolve(ctx context.Context, t *ChangeTicket) error {
	query := `
		UPDATE change_tickets
		SET status = $1, description = $2, reject_reason = $3, updated_at = NOW()
		WHERE id = $4 AND status = 'WAITING'
		RETURNING updated_at
	`

	err := db.Conn(ctx, r.db).QueryRowxContext(ctx, query, t.Status, t.Description, t.RejectReason, t.ID).
		Scan(&t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAlreadyProcessed
	}
	return err
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result, err := db.Conn(ctx, r.db).ExecContext(ctx,
		`DELETE FROM change_tickets WHERE id = $1 AND status = 'WAITING'`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTicketDecided
	}
	return nil
}

func statusStrings(statuses []Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func (r *repository) ListByTrainer(ctx context.Context, trainerID int64, statuses []Status) ([]TicketDetail, error) {
	query := detailQuery + `
	WHERE tu.trainer_id = $1 AND ct.status = ANY($2)
	ORDER BY ct.created_at DESC
	`

	tickets := []TicketDetail{}
	err := sqlx.SelectContext(ctx, db.Conn(ctx, r.db), &tickets, query, trainerID, pq.Array(statusStrings(statuses)))
	return tickets, err
}

func (r *repository) ListByUser(ctx context.Context, userID int64, statuses []Status) ([]TicketDetail, error) {
	query := detailQuery + `
	WHERE tu.user_id = $1 AND ct.status = ANY($2)
	ORDER BY ct.created_at DESC
	`

	tickets := []TicketDetail{}
	err := sqlx.SelectContext(ctx, db.Conn(ctx, r.db), &tickets, query, userID, pq.Array(statusStrings(statuses)))
	return tickets, err
}

// ListUserHistory pages through the requests a member sent, newest first.
func (r *repository) ListUserHistory(ctx context.Context, userID int64, limit, offset int) ([]TicketDetail, int, error) {
	var total int
	err := sqlx.GetContext(ctx, db.Conn(ctx, r.db), &total, `
		SELECT COUNT(*)
		FROM change_tickets ct
		JOIN schedules s ON s.id = ct.schedule_id
		JOIN trainer_users tu ON tu.id = s.trainer_user_id
		WHERE tu.user_id = $1 AND ct.change_from = 'USER'
	`, userID)
	if err != nil {
		return nil, 0, err
	}

	query := detailQuery + `
	WHERE tu.user_id = $1 AND ct.change_from = 'USER'
	ORDER BY ct.created_at DESC
	LIMIT $2 OFFSET $3
	`

	tickets := []TicketDetail{}
	if err := sqlx.SelectContext(ctx, db.Conn(ctx, r.db), &tickets, query, userID, limit, offset); err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}
