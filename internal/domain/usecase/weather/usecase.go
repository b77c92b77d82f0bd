package weather

import (
	"context"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/model"
	"ecoscope/internal/domain/model/external"
)

type UseCase interface {
	// GetCurrent returns the flattened forecast for an ADM4 code, served from cache when fresh
	GetCurrent(ctx context.Context, adm4 string) (*model.CurrentWeatherResponse, error)

	// GetDaily groups the forecast by local date and aggregates each day
	GetDaily(ctx context.Context, adm4 string) (*model.DailyWeatherResponse, error)

	// Forecasts returns the raw forecast slots for an ADM4 code
	Forecasts(ctx context.Context, adm4 string) ([]entity.WeatherForecast, error)

	// Districts lists the Wonosobo kecamatan with their ADM4 codes
	Districts() []entity.District

	// GetAllDistricts fetches every district concurrently. A failed district is
	// reported in Errors and estimated from its nearest districts with data
	GetAllDistricts(ctx context.Context) (*model.DistrictsWeatherResponse, error)

	// Wilayah proxies the Disdukcapil region list
	Wilayah(ctx context.Context) ([]external.WilayahEntry, error)

	// FindWilayah returns the region entry whose name matches, ignoring case
	FindWilayah(ctx context.Context, name string) (external.WilayahEntry, error)
}
