package repository

import (
	"context"
	"time"

	"github.com/h809829-coder/agrosmart/entities"
)

type AuthRepository interface {
	// CreateUser fails with apperr.ErrConflict when the email is taken.
	CreateUser(ctx context.Context, u *entities.User) error
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
	FindUserByID(ctx context.Context, id string) (*entities.User, error)

	CreateSession(ctx context.Context, s *entities.Session) error
	FindSession(ctx context.Context, id string) (*entities.Session, error)
	RevokeSession(ctx context.Context, id string, at time.Time) error
}
