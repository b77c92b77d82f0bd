package forecast

import (
	"context"

	"ecoscope/internal/domain/model"
)

type UseCase interface {
	// Commodity fits a linear trend to the commodity's daily mean prices over
	// the last DaysBack days and projects it DaysForward days past the newest one
	Commodity(ctx context.Context, name string, opts model.ForecastOptions) (*model.PriceForecastResponse, error)

	// Batch forecasts each commodity; failures are reported per commodity
	Batch(ctx context.Context, names []string, daysForward int) (*model.BatchForecastResponse, error)

	// Commodities lists the commodity names with stored prices
	Commodities(ctx context.Context) (*model.AvailableCommoditiesResponse, error)
}
