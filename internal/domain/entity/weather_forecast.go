package entity

import "time"

// WeatherForecast is one BMKG forecast slot (usually 3 hours apart).
type WeatherForecast struct {
	Datetime      time.Time `json:"datetime"`
	LocalDatetime string    `json:"local_datetime"`
	Temperature   float64   `json:"temperature"`
	Humidity      float64   `json:"humidity"`
	Rainfall      float64   `json:"rainfall"`
	WindSpeed     float64   `json:"wind_speed"`
	WindDirection string    `json:"wind_direction"`
	WeatherCode   int       `json:"weather_code"`
	Description   string    `json:"description"`
	Image         string    `json:"image"`
	Visibility    string    `json:"visibility"`
}

// Day returns the calendar date of the slot in the forecast site's own
// timezone. BMKG local timestamps look like "2024-03-02 13:00:00".
func (w WeatherForecast) Day() string {
	if len(w.LocalDatetime) >= 10 {
		return w.LocalDatetime[:10]
	}
	if w.Datetime.IsZero() {
		return ""
	}
	return w.Datetime.Format(time.DateOnly)
}
