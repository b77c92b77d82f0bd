package insight

import (
	"math"
	"sort"

	"ecoscope/internal/domain/entity"
)

// PricePoint is the mean price observed on one date.
type PricePoint struct {
	Date  entity.Date
	Price float64
}

// DailyMeans averages the prices of each date. Days come out in ascending
// order whatever the input order.
func DailyMeans(prices []entity.MarketPrice) []PricePoint {
	groups := GroupBy(prices, func(p entity.MarketPrice) string { return p.Date.String() })
	points := make([]PricePoint, 0, groups.Len())
	groups.Each(func(_ string, items []entity.MarketPrice) {
		var sum float64
		for _, p := range items {
			sum += p.Price
		}
		points = append(points, PricePoint{Date: items[0].Date, Price: sum / float64(len(items))})
	})
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date.Time) })
	return points
}

// LinearTrend is a least-squares line through prices indexed by the number
// of days since Origin.
type LinearTrend struct {
	Origin    entity.Date
	Slope     float64
	Intercept float64
	// Residual is the standard error of the fit; zero with two points or fewer.
	Residual float64
}

// FitLinear fits points, which must be in ascending date order.
func FitLinear(points []PricePoint) LinearTrend {
	if len(points) == 0 {
		return LinearTrend{}
	}

	trend := LinearTrend{Origin: points[0].Date}
	n := float64(len(points))
	var sx, sy, sxx, sxy float64
	for _, p := range points {
		x := trend.days(p.Date)
		sx += x
		sy += p.Price
		sxx += x * x
		sxy += x * p.Price
	}
	if den := n*sxx - sx*sx; den != 0 {
		trend.Slope = (n*sxy - sx*sy) / den
	}
	trend.Intercept = (sy - trend.Slope*sx) / n

	if len(points) > 2 {
		var ss float64
		for _, p := range points {
			r := p.Price - trend.Predict(p.Date)
			ss += r * r
		}
		trend.Residual = math.Sqrt(ss / (n - 2))
	}
	return trend
}

func (t LinearTrend) days(d entity.Date) float64 {
	return math.Round(d.Sub(t.Origin.Time).Hours() / 24)
}

// Predict returns the fitted price on d.
func (t LinearTrend) Predict(d entity.Date) float64 {
	return t.Intercept + t.Slope*t.days(d)
}

// Band is the half-width of the 95% interval around a prediction.
func (t LinearTrend) Band() float64 {
	return 1.96 * t.Residual
}
