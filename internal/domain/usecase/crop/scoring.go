package crop

import (
	"math"
	"sort"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/insight"
	"ecoscope/internal/domain/model"
	"ecoscope/pkg/msg"
	"ecoscope/pkg/util/numberutils"
)

const (
	tempWeight     = 0.4
	rainfallWeight = 0.3
	humidityWeight = 0.2
	economicWeight = 0.1

	highlyRecommendedScore = 80
	recommendedScore       = 60
)

var economicScores = map[string]float64{
	"sangat_tinggi": 100,
	"tinggi":        80,
	"sedang":        60,
	"rendah":        40,
}

// Summarize condenses daily summaries into the values crops are scored on.
// BMKG gives no monthly rainfall, so rainfall and humidity are estimated
// from the mean temperature.
func Summarize(days []insight.DaySummary) model.WeatherSummary {
	if len(days) == 0 {
		return model.WeatherSummary{AvgTemp: 25, TotalRainfall: 50, AvgHumidity: 70}
	}

	var sum float64
	for _, d := range days {
		sum += d.MeanTemperature
	}
	avg := sum / float64(len(days))

	summary := model.WeatherSummary{
		AvgTemp:        numberutils.Round(avg, 1),
		PredictionDays: len(days),
	}
	switch {
	case avg < 20:
		summary.TotalRainfall, summary.AvgHumidity = 100, 80
	case avg > 28:
		summary.TotalRainfall, summary.AvgHumidity = 40, 60
	default:
		summary.TotalRainfall, summary.AvgHumidity = 70, 70
	}
	return summary
}

// bandScore scores v against an optimal range nested in a tolerance range.
// Inside tolerance the score decays from 70 by slope per unit of distance,
// but never below 50.
func bandScore(v float64, optimal, tolerance entity.Range, slope, outside float64) float64 {
	switch {
	case optimal.Contains(v):
		return 100
	case tolerance.Contains(v):
		return math.Max(50, 70-optimal.Distance(v)*slope)
	default:
		return outside
	}
}

// Score rates a crop from 0 to 100 for the given weather.
func Score(crop entity.Crop, weather model.WeatherSummary) float64 {
	temp := bandScore(weather.AvgTemp, crop.TempOptimal, crop.TempTolerance, 5, 20)
	rain := bandScore(weather.TotalRainfall, crop.RainfallOptimal, crop.RainfallTolerance, 0.5, 25)

	humidity := 100.0
	if !crop.HumidityOptimal.Contains(weather.AvgHumidity) {
		humidity = math.Max(40, 100-crop.HumidityOptimal.Distance(weather.AvgHumidity)*2)
	}

	economic, ok := economicScores[crop.EconomicValue]
	if !ok {
		economic = 60
	}

	score := temp*tempWeight + rain*rainfallWeight + humidity*humidityWeight + economic*economicWeight
	return numberutils.ClampFloat(score, 0, 100)
}

func Suitability(score float64) string {
	switch {
	case score >= 80:
		return "Sangat Cocok"
	case score >= 60:
		return "Cocok"
	case score >= 40:
		return "Cukup Cocok"
	default:
		return "Kurang Cocok"
	}
}

// scoredCrop keeps the unrounded score; bands and ordering use it and
// only the output is rounded.
type scoredCrop struct {
	crop  entity.Crop
	score float64
}

// Recommend scores every crop and buckets the best of each band.
func Recommend(crops []entity.Crop, weather model.WeatherSummary) model.Recommendations {
	scored := make([]scoredCrop, 0, len(crops))
	for _, c := range crops {
		scored = append(scored, scoredCrop{crop: c, score: Score(c, weather)})
	}
	return bucket(scored)
}

func bucket(scored []scoredCrop) model.Recommendations {
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	recs := model.Recommendations{
		HighlyRecommended: []entity.CropRecommendation{},
		Recommended:       []entity.CropRecommendation{},
		NotRecommended:    []entity.CropRecommendation{},
	}
	for _, s := range scored {
		rec := entity.CropRecommendation{
			Crop:        s.crop,
			Score:       numberutils.Round(s.score, 1),
			Suitability: Suitability(s.score),
		}
		switch {
		case s.score >= highlyRecommendedScore:
			recs.HighlyRecommended = append(recs.HighlyRecommended, rec)
		case s.score >= recommendedScore:
			recs.Recommended = append(recs.Recommended, rec)
		default:
			recs.NotRecommended = append(recs.NotRecommended, rec)
		}
	}

	recs.HighlyRecommended = top(recs.HighlyRecommended, 3)
	recs.Recommended = top(recs.Recommended, 3)
	recs.NotRecommended = top(recs.NotRecommended, 2)
	return recs
}

func top(items []entity.CropRecommendation, n int) []entity.CropRecommendation {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func Season(weather model.WeatherSummary) model.SeasonInfo {
	switch {
	case weather.TotalRainfall > 120 && weather.AvgTemp < 25:
		return model.SeasonInfo{Season: entity.SeasonRainy, Description: msg.GetMessage("crop.season.rainy")}
	case weather.TotalRainfall < 60 && weather.AvgTemp > 26:
		return model.SeasonInfo{Season: entity.SeasonDry, Description: msg.GetMessage("crop.season.dry")}
	default:
		return model.SeasonInfo{Season: entity.SeasonTransition, Description: msg.GetMessage("crop.season.transition")}
	}
}

func PlantingTips(weather model.WeatherSummary) []string {
	var keys []string

	switch {
	case weather.AvgTemp < 20:
		keys = append(keys, "crop.tip.temp-cool", "crop.tip.mulch")
	case weather.AvgTemp > 28:
		keys = append(keys, "crop.tip.temp-hot", "crop.tip.irrigation")
	default:
		keys = append(keys, "crop.tip.temp-optimal")
	}

	switch {
	case weather.TotalRainfall < 60:
		keys = append(keys, "crop.tip.rain-low", "crop.tip.water-source")
	case weather.TotalRainfall > 150:
		keys = append(keys, "crop.tip.rain-high", "crop.tip.fungicide")
	default:
		keys = append(keys, "crop.tip.rain-enough")
	}

	switch {
	case weather.AvgHumidity > 80:
		keys = append(keys, "crop.tip.humidity-high")
	case weather.AvgHumidity < 60:
		keys = append(keys, "crop.tip.humidity-low")
	}

	tips := make([]string, len(keys))
	for i, k := range keys {
		tips[i] = msg.GetMessage(k)
	}
	return tips
}
