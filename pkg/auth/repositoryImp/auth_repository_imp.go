package repositoryImp

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/h809829-coder/agrosmart/entities"
	"github.com/h809829-coder/agrosmart/pkg/apperr"
	"github.com/h809829-coder/agrosmart/pkg/auth/repository"
)

var errEmailTaken = apperr.Wrap(apperr.ErrConflict, "email already registered")

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AuthRepository { return &repo{db} }

func (r *repo) CreateUser(ctx context.Context, u *entities.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entities.User{}).Where("email = ?", u.Email).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return errEmailTaken
		}
		return tx.Create(u).Error
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperr.ErrConflict), isDuplicate(err):
		return errEmailTaken
	default:
		return apperr.Storage("users.Create", err)
	}
}

func (r *repo) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var u entities.User
	err := r.db.WithContext(ctx).Where("email = ?", email).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Storage("users.FindByEmail", err)
	}
	return &u, nil
}

func (r *repo) FindUserByID(ctx context.Context, id string) (*entities.User, error) {
	var u entities.User
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Storage("users.FindByID", err)
	}
	return &u, nil
}

func (r *repo) CreateSession(ctx context.Context, s *entities.Session) error {
	return apperr.Storage("sessions.Create", r.db.WithContext(ctx).Create(s).Error)
}

func (r *repo) FindSession(ctx context.Context, id string) (*entities.Session, error) {
	var s entities.Session
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Storage("sessions.Find", err)
	}
	return &s, nil
}

// RevokeSession is idempotent; an already revoked session keeps its first
// revocation time.
func (r *repo) RevokeSession(ctx context.Context, id string, at time.Time) error {
	err := r.db.WithContext(ctx).Model(&entities.Session{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", at).Error
	return apperr.Storage("sessions.Revoke", err)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed")
}
