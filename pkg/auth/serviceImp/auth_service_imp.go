package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/h809829-coder/agrosmart/entities"
	"github.com/h809829-coder/agrosmart/pkg/apperr"
	"github.com/h809829-coder/agrosmart/pkg/auth/repository"
	"github.com/h809829-coder/agrosmart/pkg/auth/service"
	"github.com/h809829-coder/agrosmart/pkg/logger"
)

var (
	errBadCredentials = apperr.Wrap(apperr.ErrUnauthorized, "invalid credentials")
	errBadSession     = apperr.Wrap(apperr.ErrUnauthorized, "session expired or invalid")
)

type AuthSvc struct {
	r      repository.AuthRepository
	secret []byte
	ttl    time.Duration
	cost   int
	clock  func() time.Time

	// compared against when the email is unknown so both paths cost a hash
	dummyHash []byte
}

type Option func(*AuthSvc)

func WithClock(clock func() time.Time) Option { return func(s *AuthSvc) { s.clock = clock } }

// WithBcryptCost lowers the hashing cost; tests use bcrypt.MinCost.
func WithBcryptCost(cost int) Option { return func(s *AuthSvc) { s.cost = cost } }

func New(r repository.AuthRepository, secret string, ttl time.Duration, opts ...Option) (*AuthSvc, error) {
	if secret == "" {
		return nil, errors.New("auth secret is required")
	}
	s := &AuthSvc{r: r, secret: []byte(secret), ttl: ttl, cost: bcrypt.DefaultCost, clock: time.Now}
	for _, o := range opts {
		o(s)
	}
	h, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), s.cost)
	if err != nil {
		return nil, fmt.Errorf("init auth: %w", err)
	}
	s.dummyHash = h
	return s, nil
}

func normalizeEmail(e string) string { return strings.ToLower(strings.TrimSpace(e)) }

func (s *AuthSvc) Register(ctx context.Context, in service.RegisterInput) (*entities.User, error) {
	if in.Password != in.ConfirmPassword {
		return nil, apperr.Wrap(apperr.ErrInvalidInput, "passwords do not match")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrInvalidInput, "password cannot be used")
	}
	u := &entities.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        normalizeEmail(in.Email),
		PasswordHash: string(hash),
		CreatedAt:    s.clock().UTC(),
	}
	if err := s.r.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	logger.Infof(ctx, "auth: registered user %s", u.ID)
	return u, nil
}

func (s *AuthSvc) Login(ctx context.Context, in service.LoginInput) (*service.LoginResult, error) {
	u, err := s.r.FindUserByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if u == nil {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(in.Password))
		return nil, errBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		return nil, errBadCredentials
	}

	now := s.clock().UTC()
	sess := &entities.Session{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}
	if err := s.r.CreateSession(ctx, sess); err != nil {
		return nil, err
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject:   u.ID,
		Id:        sess.ID,
		IssuedAt:  now.Unix(),
		ExpiresAt: sess.ExpiresAt.Unix(),
	}).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &service.LoginResult{Token: token, ExpiresAt: sess.ExpiresAt, User: u}, nil
}

func (s *AuthSvc) Logout(ctx context.Context, sessionID string) error {
	return s.r.RevokeSession(ctx, sessionID, s.clock().UTC())
}

func (s *AuthSvc) Authenticate(ctx context.Context, token string) (*service.Principal, error) {
	if token == "" {
		return nil, apperr.Wrap(apperr.ErrUnauthorized, "authentication required")
	}
	var claims jwt.StandardClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Id == "" || claims.Subject == "" {
		return nil, errBadSession
	}

	sess, err := s.r.FindSession(ctx, claims.Id)
	if err != nil {
		return nil, err
	}
	if sess == nil || sess.UserID != claims.Subject || !sess.Active(s.clock()) {
		return nil, errBadSession
	}
	return &service.Principal{UserID: sess.UserID, SessionID: sess.ID}, nil
}

func (s *AuthSvc) Me(ctx context.Context, userID string) (*entities.User, error) {
	u, err := s.r.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.Wrap(apperr.ErrNotFound, "user not found")
	}
	return u, nil
}
