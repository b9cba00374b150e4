package repository

import (
	"context"

	"github.com/h809829-coder/agrosmart/entities"
)

// CropRepository reads the crop catalog. Find* methods return (nil, nil)
// when nothing matches.
type CropRepository interface {
	SeedIfEmpty(ctx context.Context) (int, error)
	FindExactMatch(ctx context.Context, soilType, season, waterRequirement, budget string) (*entities.CropProfile, error)
	FindPartialMatch(ctx context.Context, soilType, season string) (*entities.CropProfile, error)
	FindByName(ctx context.Context, name string) (*entities.CropProfile, error)
	List(ctx context.Context) ([]entities.CropProfile, error)
}
