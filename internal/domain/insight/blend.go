package insight

import (
	"sort"

	"ecoscope/pkg/util/numberutils"
)

// WeightedDays is one source of a blend. Weight must be positive.
type WeightedDays struct {
	Days   []DaySummary
	Weight float64
}

// BlendDays takes the weighted mean of the sources day by day. A date is
// kept when any source has it and is averaged over the sources that do. The
// condition comes from the heaviest source of that date. Blended days carry
// no slots.
func BlendDays(sources []WeightedDays) []DaySummary {
	type acc struct {
		weight, temp, min, max, humidity, rain float64
		heaviest                               float64
		condition                              string
	}

	byDate := make(map[string]*acc)
	var dates []string
	for _, src := range sources {
		w := src.Weight
		for _, d := range src.Days {
			a, ok := byDate[d.Date]
			if !ok {
				a = &acc{}
				byDate[d.Date] = a
				dates = append(dates, d.Date)
			}
			a.weight += w
			a.temp += d.MeanTemperature * w
			a.min += d.MinTemperature * w
			a.max += d.MaxTemperature * w
			a.humidity += d.MeanHumidity * w
			a.rain += d.TotalRainfall * w
			if w > a.heaviest {
				a.heaviest = w
				a.condition = d.DominantCondition
			}
		}
	}

	sort.Strings(dates)
	days := make([]DaySummary, 0, len(dates))
	for _, date := range dates {
		a := byDate[date]
		days = append(days, DaySummary{
			Date:              date,
			MeanTemperature:   numberutils.Round(a.temp/a.weight, 1),
			MinTemperature:    numberutils.Round(a.min/a.weight, 1),
			MaxTemperature:    numberutils.Round(a.max/a.weight, 1),
			MeanHumidity:      numberutils.Round(a.humidity/a.weight, 1),
			TotalRainfall:     numberutils.Round(a.rain/a.weight, 1),
			DominantCondition: a.condition,
		})
	}
	return days
}
