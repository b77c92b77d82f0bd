package insight

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoscope/internal/domain/entity"
)

func TestDailyMeans_AveragesEachDateAscending(t *testing.T) {
	points := DailyMeans([]entity.MarketPrice{
		price("Cabai", 32000, "2024-03-03"),
		price("Cabai", 30000, "2024-03-01"),
		price("Cabai", 34000, "2024-03-03"),
		price("Cabai", 31000, "2024-03-02"),
	})

	require.Len(t, points, 3)
	assert.Equal(t, "2024-03-01", points[0].Date.String())
	assert.Equal(t, "2024-03-02", points[1].Date.String())
	assert.Equal(t, "2024-03-03", points[2].Date.String())
	assert.Equal(t, 33000.0, points[2].Price)
}

func TestFitLinear_ExactLine(t *testing.T) {
	var prices []entity.MarketPrice
	for i := 0; i < 10; i++ {
		prices = append(prices, price("Beras", 12000+float64(i)*50, fmt.Sprintf("2024-03-%02d", i+1)))
	}

	trend := FitLinear(DailyMeans(prices))

	assert.InDelta(t, 50, trend.Slope, 1e-9)
	assert.InDelta(t, 12000, trend.Intercept, 1e-6)
	assert.InDelta(t, 0, trend.Band(), 1e-6)
	next, _ := entity.ParseDate("2024-03-15")
	assert.InDelta(t, 12700, trend.Predict(next), 1e-6)
}

func TestFitLinear_GapsCountAsDays(t *testing.T) {
	trend := FitLinear(DailyMeans([]entity.MarketPrice{
		price("Kentang", 9000, "2024-03-01"),
		price("Kentang", 9400, "2024-03-05"),
	}))

	assert.InDelta(t, 100, trend.Slope, 1e-9)
	assert.Zero(t, trend.Residual)
}

func TestFitLinear_NoisyDataHasBand(t *testing.T) {
	trend := FitLinear(DailyMeans([]entity.MarketPrice{
		price("Cabai", 30000, "2024-03-01"),
		price("Cabai", 31000, "2024-03-02"),
		price("Cabai", 30000, "2024-03-03"),
		price("Cabai", 31000, "2024-03-04"),
	}))

	assert.Greater(t, trend.Band(), 0.0)
	assert.Greater(t, trend.Slope, 0.0)
}

func TestFitLinear_Empty(t *testing.T) {
	assert.Equal(t, LinearTrend{}, FitLinear(nil))
}
