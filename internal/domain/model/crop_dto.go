package model

import "ecoscope/internal/domain/entity"

// WeatherSummary is the condensed weather a crop score is computed against.
type WeatherSummary struct {
	AvgTemp        float64 `json:"avg_temp"`
	TotalRainfall  float64 `json:"total_rainfall"`
	AvgHumidity    float64 `json:"avg_humidity"`
	PredictionDays int     `json:"prediction_days"`
}

type Recommendations struct {
	HighlyRecommended []entity.CropRecommendation `json:"highly_recommended"`
	Recommended       []entity.CropRecommendation `json:"recommended"`
	NotRecommended    []entity.CropRecommendation `json:"not_recommended"`
}

type SeasonInfo struct {
	Season      string `json:"season"`
	Description string `json:"description"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type CoordinatesQuery struct {
	Lat float64 `query:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `query:"lon" validate:"gte=-180,lte=180"`
}

type CropRecommendationResponse struct {
	Status                 string          `json:"status"`
	Location               string          `json:"location"`
	Coordinates            *Coordinates    `json:"coordinates,omitempty"`
	WeatherPredictionsUsed int             `json:"weather_predictions_used"`
	PredictionSource       string          `json:"prediction_source"`
	WeatherAnalysis        WeatherSummary  `json:"weather_analysis"`
	Recommendations        Recommendations `json:"recommendations"`
	PlantingTips           []string        `json:"planting_tips"`
	SeasonInfo             SeasonInfo      `json:"season_info"`
}

// CropInfo is the human-readable catalogue row.
type CropInfo struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	TempOptimal     string `json:"temp_optimal"`
	RainfallOptimal string `json:"rainfall_optimal"`
	GrowthPeriod    string `json:"growth_period"`
	EconomicValue   string `json:"economic_value"`
	Difficulty      string `json:"difficulty"`
	Description     string `json:"description"`
}

type CropDatabaseResponse struct {
	Status     string     `json:"status"`
	TotalCrops int        `json:"total_crops"`
	Categories []string   `json:"categories"`
	Crops      []CropInfo `json:"crops"`
}

type CropLocation struct {
	Name        string      `json:"name"`
	Adm4        string      `json:"adm4"`
	Coordinates Coordinates `json:"coordinates"`
	Region      string      `json:"region"`
}

type CropLocationsResponse struct {
	Status         string         `json:"status"`
	TotalLocations int            `json:"total_locations"`
	Locations      []CropLocation `json:"locations"`
}
