package model

import "ecoscope/internal/domain/entity"

const (
	DefaultForecastDays = 30
	DefaultHistoryDays  = 90
)

// ForecastOptions bounds a price forecast: DaysForward in 1..90 and
// DaysBack in 30..365. Zero values take the defaults.
type ForecastOptions struct {
	DaysForward int
	DaysBack    int
}

func (o ForecastOptions) WithDefaults() ForecastOptions {
	if o.DaysForward == 0 {
		o.DaysForward = DefaultForecastDays
	}
	if o.DaysBack == 0 {
		o.DaysBack = DefaultHistoryDays
	}
	return o
}

// Valid reports whether both windows are within their bounds.
func (o ForecastOptions) Valid() bool {
	return o.DaysForward >= 1 && o.DaysForward <= 90 && o.DaysBack >= 30 && o.DaysBack <= 365
}

type ForecastPoint struct {
	Date           entity.Date `json:"date"`
	PredictedPrice float64     `json:"predicted_price"`
	LowerBound     float64     `json:"lower_bound"`
	UpperBound     float64     `json:"upper_bound"`
	ActualPrice    *float64    `json:"actual_price,omitempty"`
}

type ForecastStatistics struct {
	AveragePredictedPrice float64 `json:"average_predicted_price"`
	MinPredictedPrice     float64 `json:"min_predicted_price"`
	MaxPredictedPrice     float64 `json:"max_predicted_price"`
	// PriceTrend is "naik", "turun" or "stabil" against the current price.
	PriceTrend      string  `json:"price_trend"`
	TrendPercentage float64 `json:"trend_percentage"`
}

type BestSellingDate struct {
	Date            entity.Date `json:"date"`
	PredictedPrice  float64     `json:"predicted_price"`
	ConfidenceRange string      `json:"confidence_range"`
}

// PriceForecastResponse is one commodity's forecast. In a batch a failed
// commodity has Success false and only Message set.
type PriceForecastResponse struct {
	Success              bool                `json:"success"`
	Message              string              `json:"message,omitempty"`
	Commodity            string              `json:"commodity"`
	Model                string              `json:"model,omitempty"`
	CurrentPrice         float64             `json:"current_price"`
	LastActualDate       entity.Date         `json:"last_actual_date"`
	ForecastDays         int                 `json:"forecast_days"`
	HistoricalDataPoints int                 `json:"historical_data_points"`
	Statistics           *ForecastStatistics `json:"statistics,omitempty"`
	Historical           []ForecastPoint     `json:"historical,omitempty"`
	Predictions          []ForecastPoint     `json:"predictions,omitempty"`
	BestSellingDates     []BestSellingDate   `json:"best_selling_dates,omitempty"`
}

type BatchForecastRequest struct {
	CommodityNames []string `json:"commodity_names" validate:"required,min=1,max=10,dive,required,max=100"`
}

type BatchForecastResponse struct {
	TotalRequested      int                     `json:"total_requested"`
	SuccessfulForecasts int                     `json:"successful_forecasts"`
	FailedForecasts     int                     `json:"failed_forecasts"`
	Results             []PriceForecastResponse `json:"results"`
}

type AvailableCommoditiesResponse struct {
	Success     bool     `json:"success"`
	Total       int      `json:"total"`
	Commodities []string `json:"commodities"`
}
