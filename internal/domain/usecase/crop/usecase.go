package crop

import (
	"context"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/model"
)

// ForecastSource supplies the forecast slots a recommendation is scored against.
type ForecastSource interface {
	Forecasts(ctx context.Context, adm4 string) ([]entity.WeatherForecast, error)
}

type UseCase interface {
	// RecommendByLocation scores the knowledge base against a named district's forecast
	RecommendByLocation(ctx context.Context, location string, days int) (*model.CropRecommendationResponse, error)

	// RecommendByCoordinates uses the forecast of the district nearest to lat/lon
	RecommendByCoordinates(ctx context.Context, lat, lon float64, locationName string, days int) (*model.CropRecommendationResponse, error)

	Database() *model.CropDatabaseResponse
	Locations() *model.CropLocationsResponse
}
