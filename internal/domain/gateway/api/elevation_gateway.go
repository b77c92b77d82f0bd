package api

import (
	"context"

	"ecoscope/internal/domain/entity"
)

// ElevationGateway resolves terrain elevations for coordinates.
type ElevationGateway interface {
	// Lookup returns one elevation per input point, in input order, in a single call.
	Lookup(ctx context.Context, points []entity.ElevationPoint) ([]entity.ElevationPoint, error)
}
