package notification

import (
	"context"
	"time"

	"ptgym/internal/logger"
	"ptgym/internal/metrics"
)

// Dispatcher hands effects to the delivery pipeline. It never fails the
// caller: every problem is logged and counted.
type Dispatcher interface {
	Dispatch(ctx context.Context, effects ...Effect)
}

type Enqueuer interface {
	Enqueue(ctx context.Context, job Job) error
}

type dispatcher struct {
	tokens TokenRepository
	queue  Enqueuer
}

func NewDispatcher(tokens TokenRepository, queue Enqueuer) Dispatcher {
	return &dispatcher{
		tokens: tokens,
		queue:  queue,
	}
}

func (d *dispatcher) Dispatch(ctx context.Context, effects ...Effect) {
	for _, e := range effects {
		d.dispatch(ctx, e)
	}
}

func (d *dispatcher) dispatch(ctx context.Context, e Effect) {
	token, err := d.tokens.GetToken(ctx, e.Recipient)
	if err != nil {
		logger.WithError(err).Error("Notification token lookup failed",
			"role", e.Recipient.Role, "recipient_id", e.Recipient.ID, "title", e.Title)
		metrics.RecordNotification("dispatch", "token_error")
		return
	}
	if token == "" {
		logger.Debug("No device registered, notification skipped",
			"role", e.Recipient.Role, "recipient_id", e.Recipient.ID, "title", e.Title)
		metrics.RecordNotification("dispatch", "no_token")
		return
	}

	job := Job{
		Recipient: e.Recipient,
		Token:     token,
		Title:     e.Title,
		Body:      e.Body,
		Data:      e.Data,
		Created:   time.Now(),
	}
	if err := d.queue.Enqueue(ctx, job); err != nil {
		logger.WithError(err).Error("Failed to queue notification",
			"role", e.Recipient.Role, "recipient_id", e.Recipient.ID, "title", e.Title)
		metrics.RecordNotification("dispatch", "queue_error")
		return
	}

	metrics.RecordNotification("dispatch", "queued")
}

// Nop drops every effect.
type Nop struct{}

func (Nop) Dispatch(ctx context.Context, effects ...Effect) {}
