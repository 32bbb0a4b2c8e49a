package changeticket

import "context"

type Repository interface {
	Create(ctx context.Context, t *ChangeTicket) error
	GetByID(ctx context.Context, id int64) (*ChangeTicket, error)
	// GetByIDForUpdate row-locks the ticket until the transaction ends.
	GetByIDForUpdate(ctx context.Context, id int64) (*ChangeTicket, error)
	GetDetailByID(ctx context.Context, id int64) (*TicketDetail, error)
	ExistsForSchedule(ctx context.Context, scheduleID int64, onlyWaiting bool) (bool, error)
	Resolve(ctx context.Context, t *ChangeTicket) error
	Delete(ctx context.Context, id int64) error
	ListByTrainer(ctx context.Context, trainerID int64, statuses []Status) ([]TicketDetail, error)
	ListByUser(ctx context.Context, userID int64, statuses []Status) ([]TicketDetail, error)
	ListUserHistory(ctx context.Context, userID int64, limit, offset int) ([]TicketDetail, int, error)
}
