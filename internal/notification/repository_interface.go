package notification

import "context"

type TokenRepository interface {
	// GetToken returns "" when the recipient has not registered a device.
	GetToken(ctx context.Context, r Recipient) (string, error)
	SaveToken(ctx context.Context, r Recipient, token string) error
}
