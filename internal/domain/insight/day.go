package insight

import (
	"sort"
	"time"

	"ecoscope/internal/domain/entity"
	"ecoscope/pkg/util/numberutils"
)

// DaySummary aggregates the forecast slots of one calendar day.
type DaySummary struct {
	Date              string  `json:"date"`
	MeanTemperature   float64 `json:"mean_temperature"`
	MinTemperature    float64 `json:"min_temperature"`
	MaxTemperature    float64 `json:"max_temperature"`
	MeanHumidity      float64 `json:"mean_humidity"`
	TotalRainfall     float64 `json:"total_rainfall"`
	DominantCondition string  `json:"dominant_condition"`
	Slots             int     `json:"slots"`
}

// DayKey formats t as a local calendar date.
func DayKey(t time.Time) string {
	return t.Local().Format(time.DateOnly)
}

// AggregateDay computes the mean temperature, total rainfall and the most
// frequent condition over a day's slots. Ties on the condition go to the
// one seen first, so the result depends on input order only in that case.
func AggregateDay(slots []entity.WeatherForecast) DaySummary {
	if len(slots) == 0 {
		return DaySummary{}
	}

	summary := DaySummary{
		Date:           slots[0].Day(),
		MinTemperature: slots[0].Temperature,
		MaxTemperature: slots[0].Temperature,
		Slots:          len(slots),
	}

	var tempSum, humSum float64
	counts := make(map[string]int)
	var order []string
	for _, s := range slots {
		tempSum += s.Temperature
		humSum += s.Humidity
		summary.TotalRainfall += s.Rainfall
		if s.Temperature < summary.MinTemperature {
			summary.MinTemperature = s.Temperature
		}
		if s.Temperature > summary.MaxTemperature {
			summary.MaxTemperature = s.Temperature
		}
		if _, seen := counts[s.Description]; !seen {
			order = append(order, s.Description)
		}
		counts[s.Description]++
	}

	best := 0
	for _, cond := range order {
		if counts[cond] > best {
			best = counts[cond]
			summary.DominantCondition = cond
		}
	}

	n := float64(len(slots))
	summary.MeanTemperature = numberutils.Round(tempSum/n, 1)
	summary.MeanHumidity = numberutils.Round(humSum/n, 1)
	summary.TotalRainfall = numberutils.Round(summary.TotalRainfall, 1)
	return summary
}

// DailySummaries groups forecasts by their local date and aggregates each
// day. Days come out in ascending date order.
func DailySummaries(forecasts []entity.WeatherForecast) []DaySummary {
	groups := GroupBy(forecasts, entity.WeatherForecast.Day)
	days := make([]DaySummary, 0, groups.Len())
	groups.Each(func(_ string, slots []entity.WeatherForecast) {
		days = append(days, AggregateDay(slots))
	})
	sort.SliceStable(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}
