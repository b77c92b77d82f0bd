package api

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/model/external"
	"ecoscope/pkg/http"
)

type elevationGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
}

// NewElevationGateway talks to the Google Elevation API.
func NewElevationGateway(baseUrl string, apiKey string, clientOptions http.ClientOptions) ElevationGateway {
	return &elevationGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		apiKey:     apiKey,
	}
}

func (e *elevationGatewayImpl) Lookup(ctx context.Context, points []entity.ElevationPoint) ([]entity.ElevationPoint, error) {
	if len(points) == 0 {
		return []entity.ElevationPoint{}, nil
	}
	if e.apiKey == "" {
		return nil, errors.New("elevation: api key is not configured")
	}

	locations := make([]string, len(points))
	for i, p := range points {
		locations[i] = strconv.FormatFloat(p.Lat, 'f', 6, 64) + "," + strconv.FormatFloat(p.Lon, 'f', 6, 64)
	}

	successResp, errResp, _, err := e.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/maps/api/elevation/json").
		WithQueryParams(map[string]string{
			"locations": strings.Join(locations, "|"),
			"key":       e.apiKey,
		}).
		WithSuccessResp(&external.ElevationResponse{}).
		WithErrorResp(&external.ElevationResponse{}).
		Execute()

	if err != nil {
		if errResp != nil {
			if msg := errResp.(*external.ElevationResponse).ErrorMessage; msg != "" {
				return nil, fmt.Errorf("elevation: %s: %w", msg, err)
			}
		}
		return nil, fmt.Errorf("elevation: %w", err)
	}

	response := successResp.(*external.ElevationResponse)
	if response.Status != "OK" {
		return nil, fmt.Errorf("elevation: status %s: %s", response.Status, response.ErrorMessage)
	}
	if len(response.Results) != len(points) {
		return nil, fmt.Errorf("elevation: expected %d results, got %d", len(points), len(response.Results))
	}

	out := make([]entity.ElevationPoint, len(points))
	for i, p := range points {
		p.Elevation = response.Results[i].Elevation
		out[i] = p
	}
	return out, nil
}
