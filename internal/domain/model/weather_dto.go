package model

import (
	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/insight"
)

type CurrentWeatherResponse struct {
	Success  bool                     `json:"success"`
	Total    int                      `json:"total"`
	Location entity.Location          `json:"location"`
	Data     []entity.WeatherForecast `json:"data"`
}

type DailyWeatherResponse struct {
	Success  bool                 `json:"success"`
	Location entity.Location      `json:"location"`
	Days     []insight.DaySummary `json:"days"`
}

// DistrictWeather is one district's slice of a region-wide fetch. An
// interpolated district had no BMKG data and was estimated from the
// districts named in InterpolationSources.
type DistrictWeather struct {
	District             entity.District      `json:"district"`
	Today                *insight.DaySummary  `json:"today,omitempty"`
	Days                 []insight.DaySummary `json:"days"`
	Interpolated         bool                 `json:"is_interpolated"`
	InterpolationSources []string             `json:"interpolation_sources,omitempty"`
}

type DistrictError struct {
	District string `json:"district"`
	Error    string `json:"error"`
}

type DistrictsWeatherResponse struct {
	Success bool              `json:"success"`
	Total   int               `json:"total"`
	Data    []DistrictWeather `json:"data"`
	Errors  []DistrictError   `json:"errors,omitempty"`
}

type WilayahListResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    []map[string]any `json:"data"`
}
