package changeticket

import (
	"context"
	"strconv"
	"time"

	"ptgym/internal/api"
	"ptgym/internal/db"
	"ptgym/internal/logger"
	"ptgym/internal/metrics"
	"ptgym/internal/notification"
	"ptgym/internal/schedule"
)

var (
	ErrTicketNotFound       = api.NotFound("change ticket not found")
	ErrTicketExists         = api.BadRequest("a change ticket already exists for this schedule")
	ErrAlreadyProcessed     = api.AlreadyProcessed("change ticket is already processed")
	ErrTicketDecided        = api.BadRequest("only waiting change tickets can be deleted")
	ErrRequestTimeRequired  = api.BadRequest("request_time is required for a MODIFY ticket")
	ErrInvalidResolution    = api.BadRequest("status must be APPROVED, REJECTED or CANCELED")
	ErrInvalidTicketRequest = api.BadRequest("change_from and change_type are required")
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// ScheduleLocker reads a schedule and holds its row lock for the rest of
// the transaction.
type ScheduleLocker interface {
	GetDetailByIDForUpdate(ctx context.Context, id int64) (*schedule.ScheduleDetail, error)
}

type Service interface {
	CreateChangeTicket(ctx context.Context, req NewTicket) (*ChangeTicket, error)
	GetChangeTicket(ctx context.Context, id int64) (*TicketDetail, error)
	ResolveChangeTicket(ctx context.Context, id int64, res Resolution) (*ChangeTicket, error)
	DeleteChangeTicket(ctx context.Context, id int64) error

	ListByTrainer(ctx context.Context, trainerID int64, statuses []Status) ([]TicketDetail, error)
	ListByUser(ctx context.Context, userID int64, statuses []Status) ([]TicketDetail, error)
	UserHistory(ctx context.Context, userID int64, page, perPage int) (*HistoryPage, error)
}

type service struct {
	repo       Repository
	schedules  ScheduleLocker
	changer    schedule.Changer
	tx         db.Transactor
	dispatcher notification.Dispatcher
	policy     UniquenessPolicy
}

func NewService(
	repo Repository,
	schedules ScheduleLocker,
	changer schedule.Changer,
	tx db.Transactor,
	dispatcher notification.Dispatcher,
	policy UniquenessPolicy,
) Service {
	if policy == "" {
		policy = PolicyAny
	}

	return &service{
		repo:       repo,
		schedules:  schedules,
		changer:    changer,
		tx:         tx,
		dispatcher: dispatcher,
		policy:     policy,
	}
}

// CreateChangeTicket files a WAITING request against a schedule and tells
// the other side of the relationship about it.
func (s *service) CreateChangeTicket(ctx context.Context, req NewTicket) (*ChangeTicket, error) {
	if !req.ChangeFrom.Valid() || !req.ChangeType.Valid() {
		return nil, ErrInvalidTicketRequest
	}
	if req.ChangeType == TypeModify && req.RequestTime == nil {
		return nil, ErrRequestTimeRequired
	}

	var (
		ticket *ChangeTicket
		effect notification.Effect
	)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		sc, err := s.schedules.GetDetailByIDForUpdate(ctx, req.ScheduleID)
		if err != nil {
			return err
		}

		exists, err := s.repo.ExistsForSchedule(ctx, sc.ID, s.policy == PolicyWaiting)
		if err != nil {
			return err
		}
		if exists {
			return ErrTicketExists
		}

		asIs := sc.StartTime
		if req.AsIsDate != nil {
			asIs = *req.AsIsDate
		}

		ticket = &ChangeTicket{
			ScheduleID:  sc.ID,
			ChangeFrom:  req.ChangeFrom,
			ChangeType:  req.ChangeType,
			Description: req.Description,
			Status:      StatusWaiting,
			RequestTime: req.RequestTime,
			AsIsDate:    asIs,
		}
		if err := s.repo.Create(ctx, ticket); err != nil {
			return err
		}

		effect = requestEffect(ticket, sc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordChangeTicket(string(ticket.ChangeType), string(ticket.Status))
	logger.Info("Change ticket created",
		"ticket_id", ticket.ID,
		"schedule_id", ticket.ScheduleID,
		"change_from", ticket.ChangeFrom,
		"change_type", ticket.ChangeType,
	)

	s.dispatcher.Dispatch(ctx, effect)
	return ticket, nil
}

func requestEffect(t *ChangeTicket, sc *schedule.ScheduleDetail) notification.Effect {
	title := notification.TitleCancelRequested
	if t.ChangeType == TypeModify {
		title = notification.TitleModifyRequested
	}

	to := notification.Trainer(sc.TrainerID)
	from := sc.UserName
	if t.ChangeFrom == FromTrainer {
		to = notification.User(sc.UserID)
		from = sc.TrainerName
	}

	return notification.Effect{
		Recipient: to,
		Title:     title,
		Body:      from + " " + sc.StartTime.Format(schedule.DateTimeLayout),
		Data:      ticketData(t),
	}
}

func ticketData(t *ChangeTicket) map[string]string {
	return map[string]string{
		"ticket_id":   strconv.FormatInt(t.ID, 10),
		"schedule_id": strconv.FormatInt(t.ScheduleID, 10),
		"change_type": string(t.ChangeType),
		"status":      string(t.Status),
	}
}

func (s *service) GetChangeTicket(ctx context.Context, id int64) (*TicketDetail, error) {
	return s.repo.GetDetailByID(ctx, id)
}

// ResolveChangeTicket answers a WAITING ticket. Approval and withdrawal
// change the schedule in the same transaction, so a failed schedule change
// leaves the ticket WAITING.
func (s *service) ResolveChangeTicket(ctx context.Context, id int64, res Resolution) (*ChangeTicket, error) {
	switch res.Status {
	case StatusApproved, StatusRejected, StatusCanceled:
	default:
		return nil, ErrInvalidResolution
	}

	var (
		ticket  *ChangeTicket
		effects []notification.Effect
	)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if current.Status.Terminal() {
			return ErrAlreadyProcessed
		}

		detail, err := s.repo.GetDetailByID(ctx, id)
		if err != nil {
			return err
		}

		if err := s.applySchedule(ctx, current, res); err != nil {
			return err
		}

		current.Status = res.Status
		if res.Description != "" {
			current.Description = res.Description
		}
		if res.Status == StatusRejected {
			current.RejectReason = res.RejectReason
		}
		if err := s.repo.Resolve(ctx, current); err != nil {
			return err
		}

		if e, ok := answerEffect(current, detail); ok {
			effects = append(effects, e)
		}
		ticket = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordChangeTicket(string(ticket.ChangeType), string(ticket.Status))
	logger.Info("Change ticket resolved",
		"ticket_id", ticket.ID,
		"schedule_id", ticket.ScheduleID,
		"status", ticket.Status,
	)

	s.dispatcher.Dispatch(ctx, effects...)
	return ticket, nil
}

func (s *service) applySchedule(ctx context.Context, t *ChangeTicket, res Resolution) error {
	switch {
	case res.Status == StatusApproved && t.ChangeType == TypeModify:
		var start time.Time
		switch {
		case res.StartTime != nil:
			start = *res.StartTime
		case t.RequestTime != nil:
			start = *t.RequestTime
		}
		_, err := s.changer.ApplyChange(ctx, t.ScheduleID, start, schedule.StatusModified)
		return err
	case res.Status == StatusApproved, res.Status == StatusCanceled:
		_, err := s.changer.ApplyChange(ctx, t.ScheduleID, time.Time{}, schedule.StatusCancelled)
		return err
	default:
		return nil
	}
}

// answerEffect notifies the requester of an approval or rejection.
// Withdrawals come from the requester and are not announced.
func answerEffect(t *ChangeTicket, d *TicketDetail) (notification.Effect, bool) {
	var title string
	switch t.Status {
	case StatusApproved:
		title = notification.TitleApproved
	case StatusRejected:
		title = notification.TitleRejected
	default:
		return notification.Effect{}, false
	}

	to := notification.User(d.UserID)
	from := d.TrainerName
	if t.ChangeFrom == FromTrainer {
		to = notification.Trainer(d.TrainerID)
		from = d.UserName
	}

	body := from + " " + d.ScheduleStartTime.Format(schedule.DateTimeLayout)
	if t.Status == StatusRejected && t.RejectReason != "" {
		body += ": " + t.RejectReason
	}

	return notification.Effect{
		Recipient: to,
		Title:     title,
		Body:      body,
		Data:      ticketData(t),
	}, true
}

func (s *service) DeleteChangeTicket(ctx context.Context, id int64) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if current.Status != StatusWaiting {
			return ErrTicketDecided
		}
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	logger.Info("Change ticket deleted", "ticket_id", id)
	return nil
}

func (s *service) ListByTrainer(ctx context.Context, trainerID int64, statuses []Status) ([]TicketDetail, error) {
	if len(statuses) == 0 {
		statuses = []Status{StatusWaiting}
	}
	return s.repo.ListByTrainer(ctx, trainerID, statuses)
}

func (s *service) ListByUser(ctx context.Context, userID int64, statuses []Status) ([]TicketDetail, error) {
	if len(statuses) == 0 {
		statuses = []Status{StatusWaiting}
	}
	return s.repo.ListByUser(ctx, userID, statuses)
}

func (s *service) UserHistory(ctx context.Context, userID int64, page, perPage int) (*HistoryPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	items, total, err := s.repo.ListUserHistory(ctx, userID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}

	return &HistoryPage{
		Items:   items,
		Page:    page,
		PerPage: perPage,
		Total:   total,
	}, nil
}
