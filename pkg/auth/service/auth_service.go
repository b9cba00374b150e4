package service

import (
	"context"
	"time"

	"github.com/h809829-coder/agrosmart/entities"
)

type RegisterInput struct {
	Name            string `json:"name" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResult struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	User      *entities.User `json:"user"`
}

// Principal identifies the caller behind a verified token.
type Principal struct {
	UserID    string
	SessionID string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*entities.User, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
	// Authenticate checks the token signature and that its session is live.
	Authenticate(ctx context.Context, token string) (*Principal, error)
	Me(ctx context.Context, userID string) (*entities.User, error)
}
