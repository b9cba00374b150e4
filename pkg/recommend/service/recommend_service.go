package service

import (
	"context"

	"github.com/h809829-coder/agrosmart/entities"
)

// Query is a user's request as submitted. Fields are free text and are
// matched against the catalog case-sensitively.
type Query struct {
	Location          string `json:"location"`
	SoilType          string `json:"soilType"`
	Season            string `json:"season"`
	WaterAvailability string `json:"waterAvailability"`
	Budget            string `json:"budget"`
}

type MatchTier string

const (
	TierExact    MatchTier = "exact"
	TierPartial  MatchTier = "partial"
	TierFallback MatchTier = "fallback"
)

type Resolution struct {
	Crop   entities.CropProfile
	Tier   MatchTier
	Logged bool
}

// FallbackProfile is returned when nothing in the catalog matches.
// It is never stored.
func FallbackProfile() entities.CropProfile {
	return entities.CropProfile{
		Name:               "General Mixed Crops",
		Fertilizer:         "Organic Compost",
		IrrigationSchedule: "As per local rainfall",
		ExpectedYield:      "Variable",
	}
}

type RecommendService interface {
	Resolve(ctx context.Context, q Query) (Resolution, error)
	History(ctx context.Context, limit int) ([]entities.RecommendationRecord, error)
}
