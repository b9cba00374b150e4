package repositoryImp

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/h809829-coder/agrosmart/entities"
	"github.com/h809829-coder/agrosmart/pkg/apperr"
	"github.com/h809829-coder/agrosmart/pkg/recommend/repository"
)

type logRepo struct {
	db    *gorm.DB
	clock func() time.Time
}

type Option func(*logRepo)

func WithClock(clock func() time.Time) Option { return func(r *logRepo) { r.clock = clock } }

func New(db *gorm.DB, opts ...Option) repository.LogRepository {
	r := &logRepo{db: db, clock: time.Now}
	for _, o := range opts {
		o(r)
	}
	return r
}

func (r *logRepo) Append(ctx context.Context, rec *entities.RecommendationRecord) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var latest entities.RecommendationRecord
		err := tx.Select("timestamp").Order("timestamp DESC").Take(&latest).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		ts := r.clock().UTC()
		if latest.Timestamp.After(ts) {
			ts = latest.Timestamp
		}
		rec.ID = 0
		rec.Timestamp = ts
		return tx.Create(rec).Error
	})
	return apperr.Storage("history.Append", err)
}

func (r *logRepo) ListRecent(ctx context.Context, limit int) ([]entities.RecommendationRecord, error) {
	switch {
	case limit <= 0:
		limit = repository.DefaultLimit
	case limit > repository.MaxLimit:
		limit = repository.MaxLimit
	}

	out := make([]entities.RecommendationRecord, 0, limit)
	if err := r.db.WithContext(ctx).
		Order("timestamp DESC").Order("id DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, apperr.Storage("history.ListRecent", err)
	}
	return out, nil
}
