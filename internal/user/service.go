package user

import (
	"context"

	"ptgym/internal/api"
)

var ErrUserNotFound = api.NotFound("user not found")

type Service interface {
	GetUser(ctx context.Context, id int64) (*User, error)
	FindMember(ctx context.Context, name, phoneNumber string) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetUser(ctx context.Context, id int64) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindMember(ctx context.Context, name, phoneNumber string) (*User, error) {
	if name == "" || phoneNumber == "" {
		return nil, api.BadRequest("name and phone_number are required")
	}
	return s.repo.FindByNameAndPhone(ctx, name, phoneNumber)
}
