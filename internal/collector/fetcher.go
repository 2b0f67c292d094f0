package collector

import (
	"context"

	"Jyotish/internal/model"
)

// PositionSource supplies pre-computed primary positions for a birth.
type PositionSource interface {
	FetchPositions(ctx context.Context, in model.BirthInput) ([]model.ExternalPosition, error)
	Name() string
}
