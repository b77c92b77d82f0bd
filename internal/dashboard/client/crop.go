package client

import (
	"context"
	"strconv"

	"ecoscope/internal/domain/model"
	ecohttp "ecoscope/pkg/http"
)

type CropClient struct {
	api *ecohttp.Client
}

func NewCropClient(api *ecohttp.Client) *CropClient {
	return &CropClient{api: api}
}

func (c *CropClient) Recommend(ctx context.Context, location string, days int) Result[model.CropRecommendationResponse] {
	return c.recommend(ctx, "/crops/recommend", map[string]string{
		"location": location,
		"days":     strconv.Itoa(days),
	})
}

func (c *CropClient) RecommendByCoordinates(ctx context.Context, lat, lon float64, name string, days int) Result[model.CropRecommendationResponse] {
	query := map[string]string{
		"lat":  strconv.FormatFloat(lat, 'f', -1, 64),
		"lon":  strconv.FormatFloat(lon, 'f', -1, 64),
		"days": strconv.Itoa(days),
	}
	if name != "" {
		query["location_name"] = name
	}
	return c.recommend(ctx, "/crops/recommend/coordinates", query)
}

func (c *CropClient) recommend(ctx context.Context, path string, query map[string]string) Result[model.CropRecommendationResponse] {
	response, errResp, err := fetch[model.CropRecommendationResponse](ctx, c.api, "crops", call{path: path, query: query})
	if err != nil {
		return failure[model.CropRecommendationResponse]("crops", err, errResp)
	}
	r := response.Recommendations
	return success(response, len(r.HighlyRecommended)+len(r.Recommended)+len(r.NotRecommended))
}

func (c *CropClient) Database(ctx context.Context) Result[model.CropDatabaseResponse] {
	response, errResp, err := fetch[model.CropDatabaseResponse](ctx, c.api, "crops", call{path: "/crops/database"})
	if err != nil {
		return failure[model.CropDatabaseResponse]("crops", err, errResp)
	}
	return success(response, response.TotalCrops)
}

func (c *CropClient) Locations(ctx context.Context) Result[model.CropLocationsResponse] {
	response, errResp, err := fetch[model.CropLocationsResponse](ctx, c.api, "crops", call{path: "/crops/locations"})
	if err != nil {
		return failure[model.CropLocationsResponse]("crops", err, errResp)
	}
	return success(response, response.TotalLocations)
}
