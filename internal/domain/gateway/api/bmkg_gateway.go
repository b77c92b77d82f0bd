package api

import (
	"context"

	"ecoscope/internal/domain/model/external"
)

// BMKGGateway reads public forecasts from BMKG.
type BMKGGateway interface {
	// GetForecast returns the raw nested forecast for an ADM4 code.
	GetForecast(ctx context.Context, adm4 string) (*external.BMKGResponse, error)
}
