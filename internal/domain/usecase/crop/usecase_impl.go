package crop

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/insight"
	"ecoscope/internal/domain/model"
	"ecoscope/pkg/log"
	"ecoscope/pkg/msg"
	"ecoscope/pkg/util/geoutils"
)

const (
	defaultDays    = 7
	maxDays        = 14
	sourceBMKG     = "BMKG"
	sourceFallback = "default"
	region         = "Kabupaten Wonosobo"
)

type cropUseCase struct {
	forecasts ForecastSource
}

func NewCropUseCase(forecasts ForecastSource) UseCase {
	return &cropUseCase{forecasts: forecasts}
}

func (uc *cropUseCase) RecommendByLocation(ctx context.Context, location string, days int) (*model.CropRecommendationResponse, error) {
	district, ok := entity.FindDistrict(location)
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownLocation, location)
	}
	return uc.recommend(ctx, district, location, nil, days), nil
}

func (uc *cropUseCase) RecommendByCoordinates(ctx context.Context, lat, lon float64, locationName string, days int) (*model.CropRecommendationResponse, error) {
	if !geoutils.ValidCoordinates(lat, lon) {
		return nil, model.ErrInvalidCoordinates
	}
	if locationName == "" {
		locationName = fmt.Sprintf("Lat%g_Lon%g", lat, lon)
	}
	district := entity.NearestDistrict(lat, lon)
	return uc.recommend(ctx, district, locationName, &model.Coordinates{Lat: lat, Lon: lon}, days), nil
}

// recommend never fails: without a forecast the default summary is scored
// and the response says so through PredictionSource.
func (uc *cropUseCase) recommend(ctx context.Context, district entity.District, name string, coords *model.Coordinates, days int) *model.CropRecommendationResponse {
	if days <= 0 {
		days = defaultDays
	}
	if days > maxDays {
		days = maxDays
	}

	source := sourceBMKG
	var daily []insight.DaySummary

	forecasts, err := uc.forecasts.Forecasts(ctx, district.Adm4)
	if err != nil {
		log.Warn(msg.GetMessage("crop.forecast-failed", district.Name), zap.Error(err))
		source = sourceFallback
	} else {
		daily = insight.DailySummaries(forecasts)
		if len(daily) > days {
			daily = daily[:days]
		}
	}

	weather := Summarize(daily)
	return &model.CropRecommendationResponse{
		Status:                 "success",
		Location:               name,
		Coordinates:            coords,
		WeatherPredictionsUsed: len(daily),
		PredictionSource:       source,
		WeatherAnalysis:        weather,
		Recommendations:        Recommend(entity.Crops, weather),
		PlantingTips:           PlantingTips(weather),
		SeasonInfo:             Season(weather),
	}
}

func (uc *cropUseCase) Database() *model.CropDatabaseResponse {
	crops := make([]model.CropInfo, 0, len(entity.Crops))
	seen := make(map[string]bool)
	categories := make([]string, 0)

	for _, c := range entity.Crops {
		crops = append(crops, model.CropInfo{
			ID:              c.Key,
			Name:            c.Name,
			Category:        c.Category,
			TempOptimal:     c.TempOptimal.String() + "°C",
			RainfallOptimal: c.RainfallOptimal.String() + " mm/bulan",
			GrowthPeriod:    fmt.Sprintf("%d hari", c.GrowthPeriod),
			EconomicValue:   c.EconomicValue,
			Difficulty:      c.Difficulty,
			Description:     c.Description,
		})
		if !seen[c.Category] {
			seen[c.Category] = true
			categories = append(categories, c.Category)
		}
	}
	sort.Strings(categories)

	return &model.CropDatabaseResponse{
		Status:     "success",
		TotalCrops: len(crops),
		Categories: categories,
		Crops:      crops,
	}
}

func (uc *cropUseCase) Locations() *model.CropLocationsResponse {
	locations := make([]model.CropLocation, 0, len(entity.Districts))
	for _, d := range entity.Districts {
		locations = append(locations, model.CropLocation{
			Name:        d.Name,
			Adm4:        d.Adm4,
			Coordinates: model.Coordinates{Lat: d.Lat, Lon: d.Lon},
			Region:      region,
		})
	}
	return &model.CropLocationsResponse{
		Status:         "success",
		TotalLocations: len(locations),
		Locations:      locations,
	}
}
