package serviceImp

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/h809829-coder/agrosmart/entities"
	croprepo "github.com/h809829-coder/agrosmart/pkg/crop/repository"
	"github.com/h809829-coder/agrosmart/pkg/logger"
	logrepo "github.com/h809829-coder/agrosmart/pkg/recommend/repository"
	"github.com/h809829-coder/agrosmart/pkg/recommend/service"
)

type RecommendSvc struct {
	crops croprepo.CropRepository
	log   logrepo.LogRepository
}

func New(crops croprepo.CropRepository, log logrepo.LogRepository) *RecommendSvc {
	return &RecommendSvc{crops: crops, log: log}
}

// Resolve tries an exact four-field match, then any crop sharing the soil
// type or the season. A catalog hit is logged once; the fallback is not.
func (s *RecommendSvc) Resolve(ctx context.Context, q service.Query) (service.Resolution, error) {
	tier := service.TierExact
	crop, err := s.crops.FindExactMatch(ctx, q.SoilType, q.Season, q.WaterAvailability, q.Budget)
	if err != nil {
		return service.Resolution{}, fmt.Errorf("resolve: %w", err)
	}
	if crop == nil {
		tier = service.TierPartial
		crop, err = s.crops.FindPartialMatch(ctx, q.SoilType, q.Season)
		if err != nil {
			return service.Resolution{}, fmt.Errorf("resolve: %w", err)
		}
	}

	if crop == nil {
		logger.Info(ctx, "recommendation resolved",
			zap.String("tier", string(service.TierFallback)),
			zap.String("soil_type", q.SoilType),
			zap.String("season", q.Season))
		return service.Resolution{Crop: service.FallbackProfile(), Tier: service.TierFallback}, nil
	}

	rec := &entities.RecommendationRecord{
		Location:          q.Location,
		SoilType:          q.SoilType,
		Season:            q.Season,
		WaterAvailability: q.WaterAvailability,
		Budget:            q.Budget,
		RecommendedCrop:   crop.Name,
	}
	if err := s.log.Append(ctx, rec); err != nil {
		return service.Resolution{}, fmt.Errorf("resolve: %w", err)
	}

	logger.Info(ctx, "recommendation resolved",
		zap.String("tier", string(tier)),
		zap.String("crop", crop.Name),
		zap.Uint("record_id", rec.ID))
	return service.Resolution{Crop: *crop, Tier: tier, Logged: true}, nil
}

func (s *RecommendSvc) History(ctx context.Context, limit int) ([]entities.RecommendationRecord, error) {
	return s.log.ListRecent(ctx, limit)
}
