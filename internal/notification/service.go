package notification

import (
	"context"
	"strings"

	"ptgym/internal/api"
)

type Service interface {
	RegisterToken(ctx context.Context, r Recipient, token string) error
}

type service struct {
	tokens TokenRepository
}

func NewService(tokens TokenRepository) Service {
	return &service{tokens: tokens}
}

func (s *service) RegisterToken(ctx context.Context, r Recipient, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return api.BadRequest("fcm_token is required")
	}
	return s.tokens.SaveToken(ctx, r, token)
}
