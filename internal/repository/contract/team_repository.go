package contract

import (
	"context"

	"swimtrack-be/internal/entity"

	"github.com/google/uuid"
)

type TeamRepository interface {
	Repository[entity.Team]

	// AdjustSeasonCount adds delta to season_count in one statement, never
	// going below zero. Returns ErrNotFound when the team is gone.
	AdjustSeasonCount(ctx context.Context, id uuid.UUID, delta int) error
}
