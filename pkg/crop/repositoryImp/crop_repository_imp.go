package repositoryImp

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/h809829-coder/agrosmart/entities"
	"github.com/h809829-coder/agrosmart/pkg/apperr"
	"github.com/h809829-coder/agrosmart/pkg/crop/repository"
)

type cropRepo struct {
	db *gorm.DB

	mu  sync.Mutex
	rnd *rand.Rand
}

type Option func(*cropRepo)

// WithRand makes partial-match selection deterministic.
func WithRand(r *rand.Rand) Option { return func(c *cropRepo) { c.rnd = r } }

func New(db *gorm.DB, opts ...Option) repository.CropRepository {
	r := &cropRepo{db: db}
	for _, o := range opts {
		o(r)
	}
	return r
}

func (r *cropRepo) SeedIfEmpty(ctx context.Context) (int, error) {
	inserted := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entities.CropProfile{}).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		rows := SeedProfiles()
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
		if res.Error != nil {
			return res.Error
		}
		inserted = int(res.RowsAffected)
		return nil
	})
	if err != nil {
		return 0, apperr.Storage("crops.SeedIfEmpty", err)
	}
	return inserted, nil
}

func (r *cropRepo) FindExactMatch(ctx context.Context, soilType, season, waterRequirement, budget string) (*entities.CropProfile, error) {
	var c entities.CropProfile
	err := r.db.WithContext(ctx).
		Where("soil_type = ? AND season = ? AND water_requirement = ? AND budget = ?", soilType, season, waterRequirement, budget).
		Order("id ASC").
		Take(&c).Error
	return found(&c, err, "crops.FindExactMatch")
}

func (r *cropRepo) FindPartialMatch(ctx context.Context, soilType, season string) (*entities.CropProfile, error) {
	var candidates []entities.CropProfile
	if err := r.db.WithContext(ctx).
		Where("soil_type = ? OR season = ?", soilType, season).
		Order("id ASC").
		Find(&candidates).Error; err != nil {
		return nil, apperr.Storage("crops.FindPartialMatch", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	pick := candidates[r.intN(len(candidates))]
	return &pick, nil
}

func (r *cropRepo) FindByName(ctx context.Context, name string) (*entities.CropProfile, error) {
	var c entities.CropProfile
	err := r.db.WithContext(ctx).Where("name = ?", name).Take(&c).Error
	return found(&c, err, "crops.FindByName")
}

func (r *cropRepo) List(ctx context.Context) ([]entities.CropProfile, error) {
	var out []entities.CropProfile
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, apperr.Storage("crops.List", err)
	}
	return out, nil
}

func (r *cropRepo) intN(n int) int {
	if r.rnd == nil {
		return rand.IntN(n)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.IntN(n)
}

func found(c *entities.CropProfile, err error, op string) (*entities.CropProfile, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Storage(op, err)
	}
	return c, nil
}
