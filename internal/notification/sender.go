package notification

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"ptgym/internal/logger"
)

// Sender delivers one job to a device.
type Sender interface {
	Send(ctx context.Context, job Job) error
}

type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type FCMSender struct {
	client messagingClient
}

func NewFCMSender(ctx context.Context, credentialsFile string) (*FCMSender, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase messaging: %w", err)
	}

	return &FCMSender{client: client}, nil
}

func (s *FCMSender) Send(ctx context.Context, job Job) error {
	msg := &messaging.Message{
		Token: job.Token,
		Notification: &messaging.Notification{
			Title: job.Title,
			Body:  job.Body,
		},
		Data: job.Data,
	}

	id, err := s.client.Send(ctx, msg)
	if err != nil {
		return err
	}

	logger.Debug("FCM message sent", "message_id", id, "role", job.Recipient.Role, "recipient_id", job.Recipient.ID)
	return nil
}

// LogSender only logs. It is used when no Firebase credentials are configured.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, job Job) error {
	logger.Info("Push notification (not delivered, no FCM credentials)",
		"role", job.Recipient.Role,
		"recipient_id", job.Recipient.ID,
		"title", job.Title,
	)
	return nil
}
