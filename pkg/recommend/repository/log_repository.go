package repository

import (
	"context"

	"github.com/h809829-coder/agrosmart/entities"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// LogRepository is the append-only recommendation log.
type LogRepository interface {
	// Append assigns the record's timestamp and ID, then stores it.
	Append(ctx context.Context, rec *entities.RecommendationRecord) error
	// ListRecent returns newest first. limit <= 0 means DefaultLimit.
	ListRecent(ctx context.Context, limit int) ([]entities.RecommendationRecord, error)
}
