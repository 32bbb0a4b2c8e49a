package user

import "context"

type Repository interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByNameAndPhone(ctx context.Context, name, phoneNumber string) (*User, error)
}
