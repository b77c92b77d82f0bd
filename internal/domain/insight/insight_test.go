package insight

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoscope/internal/domain/entity"
)

func price(name string, value float64, date string) entity.MarketPrice {
	d, _ := entity.ParseDate(date)
	return entity.MarketPrice{CommodityName: name, Price: value, Date: d}
}

func slot(local string, temp, rain float64, desc string) entity.WeatherForecast {
	return entity.WeatherForecast{LocalDatetime: local, Temperature: temp, Rainfall: rain, Description: desc}
}

func TestGroupBy_PartitionsInFirstSeenOrder(t *testing.T) {
	prices := []entity.MarketPrice{
		price("Cabai", 30000, "2024-03-02"),
		price("Beras", 12000, "2024-03-02"),
		price("Cabai", 28000, "2024-03-01"),
		price("Kentang", 9000, "2024-03-02"),
		price("Beras", 11800, "2024-03-01"),
	}

	groups := GroupBy(prices, func(p entity.MarketPrice) string { return p.CommodityName })

	assert.Equal(t, []string{"Cabai", "Beras", "Kentang"}, groups.Keys())

	total := 0
	groups.Each(func(_ string, items []entity.MarketPrice) { total += len(items) })
	assert.Equal(t, len(prices), total)

	cabai := groups.Get("Cabai")
	require.Len(t, cabai, 2)
	assert.Equal(t, 30000.0, cabai[0].Price)
	assert.Equal(t, 28000.0, cabai[1].Price)
}

func TestGroupBy_Empty(t *testing.T) {
	groups := GroupBy([]int{}, func(i int) int { return i })
	assert.Equal(t, 0, groups.Len())
	assert.Empty(t, groups.Keys())
}

func TestAggregateDay(t *testing.T) {
	slots := []entity.WeatherForecast{
		slot("2024-03-02 07:00:00", 18, 0.5, "Berawan"),
		slot("2024-03-02 10:00:00", 22, 0, "Cerah"),
		slot("2024-03-02 13:00:00", 24, 2.5, "Hujan Ringan"),
		slot("2024-03-02 16:00:00", 20, 1, "Berawan"),
	}

	day := AggregateDay(slots)

	assert.Equal(t, "2024-03-02", day.Date)
	assert.Equal(t, 21.0, day.MeanTemperature)
	assert.Equal(t, 18.0, day.MinTemperature)
	assert.Equal(t, 24.0, day.MaxTemperature)
	assert.Equal(t, 4.0, day.TotalRainfall)
	assert.Equal(t, "Berawan", day.DominantCondition)
	assert.Equal(t, 4, day.Slots)
}

func TestAggregateDay_TieGoesToFirstSeen(t *testing.T) {
	day := AggregateDay([]entity.WeatherForecast{
		slot("2024-03-02 07:00:00", 20, 0, "Cerah"),
		slot("2024-03-02 10:00:00", 20, 0, "Berawan"),
	})
	assert.Equal(t, "Cerah", day.DominantCondition)
}

func TestAggregateDay_MeanAndSumIgnoreOrder(t *testing.T) {
	slots := []entity.WeatherForecast{
		slot("2024-03-02 01:00:00", 17, 0.2, "Berawan"),
		slot("2024-03-02 04:00:00", 16, 0.4, "Berawan"),
		slot("2024-03-02 07:00:00", 19, 1.1, "Hujan Ringan"),
		slot("2024-03-02 10:00:00", 23, 0, "Cerah"),
		slot("2024-03-02 13:00:00", 25, 3.2, "Hujan Sedang"),
	}
	want := AggregateDay(slots)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		shuffled := append([]entity.WeatherForecast(nil), slots...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		got := AggregateDay(shuffled)
		assert.Equal(t, want.MeanTemperature, got.MeanTemperature)
		assert.Equal(t, want.TotalRainfall, got.TotalRainfall)
	}
}

func TestDailySummaries(t *testing.T) {
	forecasts := []entity.WeatherForecast{
		slot("2024-03-03 01:00:00", 17, 0, "Cerah"),
		slot("2024-03-02 22:00:00", 18, 0, "Berawan"),
		slot("2024-03-03 04:00:00", 19, 1, "Cerah"),
	}

	days := DailySummaries(forecasts)

	require.Len(t, days, 2)
	assert.Equal(t, "2024-03-02", days[0].Date)
	assert.Equal(t, "2024-03-03", days[1].Date)
	assert.Equal(t, 2, days[1].Slots)
	assert.Equal(t, 18.0, days[1].MeanTemperature)
}

func TestDayKey(t *testing.T) {
	ts := time.Date(2024, 3, 2, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-03-02", DayKey(ts))
}

func TestTrend(t *testing.T) {
	tests := []struct {
		name      string
		prices    []entity.MarketPrice
		direction Direction
		percent   float64
		change    string
		defined   bool
	}{
		{
			name:      "up",
			prices:    []entity.MarketPrice{price("Beras", 12000, "2024-03-02"), price("Beras", 10000, "2024-03-01")},
			direction: Up, percent: 20, change: "+20.0%", defined: true,
		},
		{
			name:      "down",
			prices:    []entity.MarketPrice{price("Beras", 9000, "2024-03-02"), price("Beras", 10000, "2024-03-01")},
			direction: Down, percent: -10, change: "-10.0%", defined: true,
		},
		{
			name:      "flat",
			prices:    []entity.MarketPrice{price("Beras", 10000, "2024-03-02"), price("Beras", 10000, "2024-03-01")},
			direction: Flat, percent: 0, change: "+0.0%", defined: true,
		},
		{
			name:      "only the first two count",
			prices:    []entity.MarketPrice{price("Beras", 11000, "2024-03-03"), price("Beras", 10000, "2024-03-02"), price("Beras", 50000, "2024-03-01")},
			direction: Up, percent: 10, change: "+10.0%", defined: true,
		},
		{
			name:      "single observation",
			prices:    []entity.MarketPrice{price("Beras", 10000, "2024-03-02")},
			direction: Flat, change: "n/a",
		},
		{
			name:      "older price zero",
			prices:    []entity.MarketPrice{price("Beras", 10000, "2024-03-02"), price("Beras", 0, "2024-03-01")},
			direction: Up, change: "n/a",
		},
		{
			name:      "both zero",
			prices:    []entity.MarketPrice{price("Beras", 0, "2024-03-02"), price("Beras", 0, "2024-03-01")},
			direction: Flat, change: "n/a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Trend(tt.prices)
			assert.Equal(t, tt.direction, got.Direction)
			assert.Equal(t, tt.percent, got.Percent)
			assert.Equal(t, tt.change, got.Change)
			assert.Equal(t, tt.defined, got.Defined)
		})
	}
}

func TestLatest(t *testing.T) {
	_, ok := Latest(nil)
	assert.False(t, ok)

	got, ok := Latest([]entity.MarketPrice{price("Beras", 12000, "2024-03-02"), price("Beras", 10000, "2024-03-01")})
	require.True(t, ok)
	assert.Equal(t, 12000.0, got.Price)
}
