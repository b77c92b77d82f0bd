package crop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/insight"
	"ecoscope/internal/domain/model"
)

type mockForecastSource struct {
	mock.Mock
}

func (m *mockForecastSource) Forecasts(ctx context.Context, adm4 string) ([]entity.WeatherForecast, error) {
	args := m.Called(ctx, adm4)
	if r := args.Get(0); r != nil {
		return r.([]entity.WeatherForecast), args.Error(1)
	}
	return nil, args.Error(1)
}

// forecastDays builds one slot per day with the given temperatures.
func forecastDays(temps ...float64) []entity.WeatherForecast {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	out := make([]entity.WeatherForecast, len(temps))
	for i, temp := range temps {
		day := start.AddDate(0, 0, i)
		out[i] = entity.WeatherForecast{
			Datetime:      day,
			LocalDatetime: day.Format(time.DateOnly) + " 07:00:00",
			Temperature:   temp,
			Description:   "Cerah",
		}
	}
	return out
}

func findCrop(t *testing.T, key string) entity.Crop {
	t.Helper()
	for _, c := range entity.Crops {
		if c.Key == key {
			return c
		}
	}
	t.Fatalf("crop %s not found", key)
	return entity.Crop{}
}

var mild = model.WeatherSummary{AvgTemp: 22, TotalRainfall: 70, AvgHumidity: 70, PredictionDays: 7}

// --- Scoring ---

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		days []insight.DaySummary
		want model.WeatherSummary
	}{
		{"empty uses defaults", nil, model.WeatherSummary{AvgTemp: 25, TotalRainfall: 50, AvgHumidity: 70}},
		{"cool", []insight.DaySummary{{MeanTemperature: 18}, {MeanTemperature: 19}}, model.WeatherSummary{AvgTemp: 18.5, TotalRainfall: 100, AvgHumidity: 80, PredictionDays: 2}},
		{"hot", []insight.DaySummary{{MeanTemperature: 30}}, model.WeatherSummary{AvgTemp: 30, TotalRainfall: 40, AvgHumidity: 60, PredictionDays: 1}},
		{"mild", []insight.DaySummary{{MeanTemperature: 20}, {MeanTemperature: 24}}, model.WeatherSummary{AvgTemp: 22, TotalRainfall: 70, AvgHumidity: 70, PredictionDays: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.days))
		})
	}
}

func TestScore(t *testing.T) {
	assert.InDelta(t, 100, Score(findCrop(t, "cabai"), mild), 1e-9)
	assert.InDelta(t, 75.5, Score(findCrop(t, "padi"), mild), 1e-9)
	assert.InDelta(t, 86.75, Score(findCrop(t, "jagung"), mild), 1e-9)
	assert.InDelta(t, 96, Score(findCrop(t, "tomat"), mild), 1e-9)
}

func TestBandScore(t *testing.T) {
	optimal := entity.Range{Min: 20, Max: 26}
	tolerance := entity.Range{Min: 16, Max: 32}

	assert.Equal(t, 100.0, bandScore(23, optimal, tolerance, 5, 20))
	assert.Equal(t, 65.0, bandScore(19, optimal, tolerance, 5, 20))
	assert.Equal(t, 60.0, bandScore(28, optimal, tolerance, 5, 20))
	// The decay floors at 50.
	assert.Equal(t, 50.0, bandScore(32, optimal, tolerance, 5, 20))
	assert.Equal(t, 20.0, bandScore(40, optimal, tolerance, 5, 20))
}

func TestScore_StaysWithinBounds(t *testing.T) {
	extremes := []model.WeatherSummary{
		{AvgTemp: -10, TotalRainfall: 0, AvgHumidity: 0},
		{AvgTemp: 50, TotalRainfall: 1000, AvgHumidity: 100},
		mild,
	}
	for _, w := range extremes {
		for _, c := range entity.Crops {
			s := Score(c, w)
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 100.0)
		}
	}
}

func TestSuitability(t *testing.T) {
	assert.Equal(t, "Sangat Cocok", Suitability(80))
	assert.Equal(t, "Cocok", Suitability(79.9))
	assert.Equal(t, "Cocok", Suitability(60))
	assert.Equal(t, "Cukup Cocok", Suitability(40))
	assert.Equal(t, "Kurang Cocok", Suitability(39.9))
}

func TestRecommend_BucketsAndCaps(t *testing.T) {
	recs := Recommend(entity.Crops, mild)

	require.Len(t, recs.HighlyRecommended, 3)
	assert.Equal(t, "cabai", recs.HighlyRecommended[0].Key)
	assert.Equal(t, 100.0, recs.HighlyRecommended[0].Score)
	// Ties keep knowledge-base order.
	assert.Equal(t, "kacang_tanah", recs.HighlyRecommended[1].Key)
	assert.Equal(t, "tomat", recs.HighlyRecommended[2].Key)

	assert.LessOrEqual(t, len(recs.Recommended), 3)
	assert.LessOrEqual(t, len(recs.NotRecommended), 2)
	for _, r := range recs.Recommended {
		assert.GreaterOrEqual(t, r.Score, 60.0)
		assert.LessOrEqual(t, r.Score, 80.0)
		assert.Equal(t, "Cocok", r.Suitability)
	}
}

func TestBucket_UsesUnroundedScore(t *testing.T) {
	byKey := make(map[string]entity.Crop)
	for _, c := range entity.Crops {
		byKey[c.Key] = c
	}
	padi, jagung, kedelai := byKey["padi"], byKey["jagung"], byKey["kedelai"]

	recs := bucket([]scoredCrop{
		{crop: padi, score: 79.96},
		{crop: jagung, score: 80},
		{crop: kedelai, score: 59.96},
	})

	require.Len(t, recs.HighlyRecommended, 1)
	assert.Equal(t, "jagung", recs.HighlyRecommended[0].Key)

	require.Len(t, recs.Recommended, 1)
	assert.Equal(t, "padi", recs.Recommended[0].Key)
	assert.Equal(t, 80.0, recs.Recommended[0].Score)
	assert.Equal(t, "Cocok", recs.Recommended[0].Suitability)

	require.Len(t, recs.NotRecommended, 1)
	assert.Equal(t, 60.0, recs.NotRecommended[0].Score)
	assert.Equal(t, "Cukup Cocok", recs.NotRecommended[0].Suitability)
}

func TestSeason(t *testing.T) {
	assert.Equal(t, entity.SeasonRainy, Season(model.WeatherSummary{AvgTemp: 22, TotalRainfall: 130}).Season)
	assert.Equal(t, entity.SeasonDry, Season(model.WeatherSummary{AvgTemp: 27, TotalRainfall: 50}).Season)
	assert.Equal(t, entity.SeasonTransition, Season(model.WeatherSummary{AvgTemp: 25, TotalRainfall: 50}).Season)
	assert.Contains(t, Season(model.WeatherSummary{AvgTemp: 22, TotalRainfall: 130}).Description, "Musim Hujan")
}

func TestPlantingTips(t *testing.T) {
	assert.Len(t, PlantingTips(model.WeatherSummary{AvgTemp: 25, TotalRainfall: 50, AvgHumidity: 70}), 3)
	assert.Len(t, PlantingTips(model.WeatherSummary{AvgTemp: 18, TotalRainfall: 100, AvgHumidity: 80}), 3)
	assert.Len(t, PlantingTips(model.WeatherSummary{AvgTemp: 30, TotalRainfall: 200, AvgHumidity: 90}), 5)

	for _, tip := range PlantingTips(mild) {
		assert.NotContains(t, tip, "Message not found")
	}
}

// --- UseCase ---

func TestRecommendByLocation(t *testing.T) {
	source := new(mockForecastSource)
	source.On("Forecasts", mock.Anything, "33.07.08.1008").Return(forecastDays(21, 22, 23), nil)
	useCase := NewCropUseCase(source)

	resp, err := useCase.RecommendByLocation(context.Background(), "kertek", 7)

	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "kertek", resp.Location)
	assert.Nil(t, resp.Coordinates)
	assert.Equal(t, 3, resp.WeatherPredictionsUsed)
	assert.Equal(t, "BMKG", resp.PredictionSource)
	assert.Equal(t, mild.AvgTemp, resp.WeatherAnalysis.AvgTemp)
	assert.NotEmpty(t, resp.Recommendations.HighlyRecommended)
}

func TestRecommendByLocation_LimitsDays(t *testing.T) {
	source := new(mockForecastSource)
	source.On("Forecasts", mock.Anything, mock.Anything).Return(forecastDays(20, 20, 30, 30), nil)
	useCase := NewCropUseCase(source)

	resp, err := useCase.RecommendByLocation(context.Background(), "Garung", 2)

	require.NoError(t, err)
	assert.Equal(t, 2, resp.WeatherPredictionsUsed)
	assert.Equal(t, 20.0, resp.WeatherAnalysis.AvgTemp)
}

func TestRecommendByLocation_Unknown(t *testing.T) {
	useCase := NewCropUseCase(new(mockForecastSource))

	_, err := useCase.RecommendByLocation(context.Background(), "Atlantis", 7)
	assert.ErrorIs(t, err, model.ErrUnknownLocation)
}

func TestRecommendByCoordinates(t *testing.T) {
	source := new(mockForecastSource)
	source.On("Forecasts", mock.Anything, "33.07.09.1020").Return(forecastDays(22), nil)
	useCase := NewCropUseCase(source)

	resp, err := useCase.RecommendByCoordinates(context.Background(), -7.3632, 109.9006, "", 7)

	require.NoError(t, err)
	assert.Equal(t, "Lat-7.3632_Lon109.9006", resp.Location)
	require.NotNil(t, resp.Coordinates)
	assert.Equal(t, -7.3632, resp.Coordinates.Lat)
	source.AssertExpectations(t)
}

func TestRecommendByCoordinates_Invalid(t *testing.T) {
	useCase := NewCropUseCase(new(mockForecastSource))

	_, err := useCase.RecommendByCoordinates(context.Background(), 95, 0, "", 7)
	assert.ErrorIs(t, err, model.ErrInvalidCoordinates)

	_, err = useCase.RecommendByCoordinates(context.Background(), 0, -181, "", 7)
	assert.ErrorIs(t, err, model.ErrInvalidCoordinates)
}

func TestRecommend_FallsBackWithoutForecast(t *testing.T) {
	source := new(mockForecastSource)
	source.On("Forecasts", mock.Anything, mock.Anything).Return(nil, errors.New("bmkg down"))
	useCase := NewCropUseCase(source)

	resp, err := useCase.RecommendByLocation(context.Background(), "Kejajar", 7)

	require.NoError(t, err)
	assert.Equal(t, "default", resp.PredictionSource)
	assert.Zero(t, resp.WeatherPredictionsUsed)
	assert.Equal(t, 25.0, resp.WeatherAnalysis.AvgTemp)
	assert.Equal(t, entity.SeasonTransition, resp.SeasonInfo.Season)
}

func TestDatabase(t *testing.T) {
	db := NewCropUseCase(new(mockForecastSource)).Database()

	assert.Equal(t, 10, db.TotalCrops)
	assert.Equal(t, []string{"Biji-bijian", "Kacang-kacangan", "Sayuran", "Umbi-umbian"}, db.Categories)
	assert.Equal(t, "padi", db.Crops[0].ID)
	assert.Equal(t, "22-28°C", db.Crops[0].TempOptimal)
	assert.Equal(t, "150-250 mm/bulan", db.Crops[0].RainfallOptimal)
	assert.Equal(t, "120 hari", db.Crops[0].GrowthPeriod)
}

func TestLocations(t *testing.T) {
	locations := NewCropUseCase(new(mockForecastSource)).Locations()

	assert.Equal(t, 15, locations.TotalLocations)
	assert.Equal(t, "Kabupaten Wonosobo", locations.Locations[0].Region)
	assert.Equal(t, entity.Districts[0].Lat, locations.Locations[0].Coordinates.Lat)
}
