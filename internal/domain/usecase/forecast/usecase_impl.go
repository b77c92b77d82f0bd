package forecast

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/gateway/db"
	"ecoscope/internal/domain/insight"
	"ecoscope/internal/domain/model"
	"ecoscope/pkg/log"
	"ecoscope/pkg/msg"
	"ecoscope/pkg/util/numberutils"
)

const (
	modelName        = "Regresi linear"
	minDailyPoints   = 10
	historicalShown  = 30
	bestSellingShown = 5
	batchConcurrency = 4

	trendUp     = "naik"
	trendDown   = "turun"
	trendStable = "stabil"
)

type forecastUseCase struct {
	priceGateway db.MarketPriceGateway
	now          func() time.Time
}

func NewForecastUseCase(priceGateway db.MarketPriceGateway) UseCase {
	return &forecastUseCase{priceGateway: priceGateway, now: time.Now}
}

func (uc *forecastUseCase) Commodity(ctx context.Context, name string, opts model.ForecastOptions) (*model.PriceForecastResponse, error) {
	name = strings.TrimSpace(name)
	opts = opts.WithDefaults()

	start := entity.NewDate(uc.now().AddDate(0, 0, -opts.DaysBack))
	prices, err := uc.priceGateway.FindAll(ctx, model.MarketFilter{Commodity: name, StartDate: start.String()})
	if err != nil {
		return nil, err
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrCommodityNotFound, name)
	}

	points := insight.DailyMeans(prices)
	if len(points) < minDailyPoints {
		return nil, fmt.Errorf("%w: %s has %d daily prices, need %d",
			model.ErrInsufficientHistory, name, len(points), minDailyPoints)
	}

	trend := insight.FitLinear(points)
	last := points[len(points)-1]

	historical := make([]model.ForecastPoint, 0, historicalShown)
	for _, p := range points[max(0, len(points)-historicalShown):] {
		point := project(trend, p.Date)
		actual := numberutils.Round(p.Price, 2)
		point.ActualPrice = &actual
		historical = append(historical, point)
	}

	predictions := make([]model.ForecastPoint, opts.DaysForward)
	for i := range predictions {
		predictions[i] = project(trend, entity.NewDate(last.Date.AddDate(0, 0, i+1)))
	}

	log.Info(msg.GetMessage("forecast.done", name, len(points)))
	return &model.PriceForecastResponse{
		Success:              true,
		Commodity:            name,
		Model:                modelName,
		CurrentPrice:         numberutils.Round(last.Price, 2),
		LastActualDate:       last.Date,
		ForecastDays:         opts.DaysForward,
		HistoricalDataPoints: len(points),
		Statistics:           statistics(predictions, last.Price),
		Historical:           historical,
		Predictions:          predictions,
		BestSellingDates:     bestSellingDates(predictions),
	}, nil
}

// project evaluates the trend on d. The lower bound never goes below zero.
func project(trend insight.LinearTrend, d entity.Date) model.ForecastPoint {
	predicted := trend.Predict(d)
	band := trend.Band()
	return model.ForecastPoint{
		Date:           d,
		PredictedPrice: numberutils.Round(predicted, 2),
		LowerBound:     numberutils.Round(math.Max(0, predicted-band), 2),
		UpperBound:     numberutils.Round(predicted+band, 2),
	}
}

func statistics(predictions []model.ForecastPoint, current float64) *model.ForecastStatistics {
	stats := &model.ForecastStatistics{
		MinPredictedPrice: predictions[0].PredictedPrice,
		MaxPredictedPrice: predictions[0].PredictedPrice,
	}
	var sum float64
	for _, p := range predictions {
		sum += p.PredictedPrice
		stats.MinPredictedPrice = math.Min(stats.MinPredictedPrice, p.PredictedPrice)
		stats.MaxPredictedPrice = math.Max(stats.MaxPredictedPrice, p.PredictedPrice)
	}
	avg := numberutils.Round(sum/float64(len(predictions)), 2)
	stats.AveragePredictedPrice = avg

	current = numberutils.Round(current, 2)
	switch {
	case avg > current:
		stats.PriceTrend = trendUp
	case avg < current:
		stats.PriceTrend = trendDown
	default:
		stats.PriceTrend = trendStable
	}
	if current != 0 {
		stats.TrendPercentage = numberutils.Round((avg-current)/current*100, 2)
	}
	return stats
}

// bestSellingDates picks the highest predicted prices; earlier dates win ties.
func bestSellingDates(predictions []model.ForecastPoint) []model.BestSellingDate {
	sorted := make([]model.ForecastPoint, len(predictions))
	copy(sorted, predictions)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].PredictedPrice > sorted[j].PredictedPrice })

	best := make([]model.BestSellingDate, 0, bestSellingShown)
	for _, p := range sorted[:min(bestSellingShown, len(sorted))] {
		best = append(best, model.BestSellingDate{
			Date:            p.Date,
			PredictedPrice:  p.PredictedPrice,
			ConfidenceRange: numberutils.FormatRupiah(p.LowerBound) + " - " + numberutils.FormatRupiah(p.UpperBound),
		})
	}
	return best
}

func (uc *forecastUseCase) Batch(ctx context.Context, names []string, daysForward int) (*model.BatchForecastResponse, error) {
	results := make([]model.PriceForecastResponse, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, name := range names {
		g.Go(func() error {
			forecast, err := uc.Commodity(gctx, name, model.ForecastOptions{DaysForward: daysForward})
			if err != nil {
				log.Warn(msg.GetMessage("forecast.failed", name), zap.Error(err))
				results[i] = model.PriceForecastResponse{Commodity: strings.TrimSpace(name), Message: err.Error()}
				return nil
			}
			results[i] = *forecast
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	response := &model.BatchForecastResponse{TotalRequested: len(names), Results: results}
	for _, r := range results {
		if r.Success {
			response.SuccessfulForecasts++
		}
	}
	response.FailedForecasts = response.TotalRequested - response.SuccessfulForecasts
	return response, nil
}

func (uc *forecastUseCase) Commodities(ctx context.Context) (*model.AvailableCommoditiesResponse, error) {
	names, err := uc.priceGateway.Commodities(ctx)
	if err != nil {
		return nil, err
	}
	return &model.AvailableCommoditiesResponse{Success: true, Total: len(names), Commodities: names}, nil
}
