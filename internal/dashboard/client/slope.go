package client

import (
	"context"
	"strconv"

	"ecoscope/internal/domain/entity"
	ecohttp "ecoscope/pkg/http"
)

type SlopeClient struct {
	api *ecohttp.Client
}

func NewSlopeClient(api *ecohttp.Client) *SlopeClient {
	return &SlopeClient{api: api}
}

type slopeEnvelope struct {
	Success bool                 `json:"success"`
	Data    entity.SlopeAnalysis `json:"data"`
}

// Analyze asks for the slope around lat/lon. A radius of 0 uses the server default.
func (s *SlopeClient) Analyze(ctx context.Context, lat, lon, radius float64) Result[entity.SlopeAnalysis] {
	query := map[string]string{
		"lat": strconv.FormatFloat(lat, 'f', -1, 64),
		"lon": strconv.FormatFloat(lon, 'f', -1, 64),
	}
	if radius > 0 {
		query["radius"] = strconv.FormatFloat(radius, 'f', -1, 64)
	}

	response, errResp, err := fetch[slopeEnvelope](ctx, s.api, "slope", call{path: "/slope/analyze", query: query})
	if err != nil {
		return failure[entity.SlopeAnalysis]("slope", err, errResp)
	}
	return success(response.Data, len(response.Data.Samples))
}
