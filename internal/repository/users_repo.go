package repository

import (
	"context"
	"errors"

	"banyan-data/internal/domain"
)

// ErrUserNotFound is returned when no account matches the lookup key.
var ErrUserNotFound = errors.New("user not found")

type UsersRepo interface {
	// CreateUser assigns the id and creation time before persisting.
	CreateUser(ctx context.Context, u *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
}
