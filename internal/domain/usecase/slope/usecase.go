package slope

import (
	"context"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/model"
)

type UseCase interface {
	// Analyze estimates the steepest slope around lat/lon from a 3x3 elevation grid.
	// A non-positive radius uses the configured default.
	Analyze(ctx context.Context, lat, lon, radius float64) (*entity.SlopeAnalysis, error)

	// Profile samples elevations on a straight line between two points
	Profile(ctx context.Context, start, end model.Coordinates, samples int) (*model.SlopeProfileResponse, error)
}
