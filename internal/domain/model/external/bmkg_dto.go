package external

import (
	"time"

	"ecoscope/internal/domain/entity"
)

// BMKGResponse is the payload of /publik/prakiraan-cuaca.
type BMKGResponse struct {
	Lokasi BMKGLocation   `json:"lokasi"`
	Data   []BMKGDataItem `json:"data"`
}

type BMKGLocation struct {
	Adm4      string  `json:"adm4"`
	Desa      string  `json:"desa"`
	Kecamatan string  `json:"kecamatan"`
	Kotkab    string  `json:"kotkab"`
	Provinsi  string  `json:"provinsi"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Timezone  string  `json:"timezone"`
}

// BMKGDataItem holds the forecast slots grouped per day.
type BMKGDataItem struct {
	Cuaca [][]BMKGSlot `json:"cuaca"`
}

type BMKGSlot struct {
	Datetime      string  `json:"datetime"`
	LocalDatetime string  `json:"local_datetime"`
	T             float64 `json:"t"`
	Hu            float64 `json:"hu"`
	Tp            float64 `json:"tp"`
	Ws            float64 `json:"ws"`
	Wd            string  `json:"wd"`
	Weather       int     `json:"weather"`
	WeatherDesc   string  `json:"weather_desc"`
	Image         string  `json:"image"`
	VsText        string  `json:"vs_text"`
}

func (l BMKGLocation) ToEntity() entity.Location {
	return entity.Location{
		Adm4:      l.Adm4,
		Desa:      l.Desa,
		Kecamatan: l.Kecamatan,
		Kotkab:    l.Kotkab,
		Provinsi:  l.Provinsi,
		Lat:       l.Lat,
		Lon:       l.Lon,
		Timezone:  l.Timezone,
	}
}

func (s BMKGSlot) ToEntity() entity.WeatherForecast {
	// BMKG sends UTC as "2024-03-02T06:00:00Z"; older payloads omit the zone.
	ts, err := time.Parse(time.RFC3339, s.Datetime)
	if err != nil {
		ts, _ = time.Parse("2006-01-02 15:04:05", s.Datetime)
	}
	return entity.WeatherForecast{
		Datetime:      ts,
		LocalDatetime: s.LocalDatetime,
		Temperature:   s.T,
		Humidity:      s.Hu,
		Rainfall:      s.Tp,
		WindSpeed:     s.Ws,
		WindDirection: s.Wd,
		WeatherCode:   s.Weather,
		Description:   s.WeatherDesc,
		Image:         s.Image,
		Visibility:    s.VsText,
	}
}

// Flatten concatenates data[*].cuaca[*][*] in response order.
func (r *BMKGResponse) Flatten() []entity.WeatherForecast {
	forecasts := make([]entity.WeatherForecast, 0)
	for _, item := range r.Data {
		for _, day := range item.Cuaca {
			for _, slot := range day {
				forecasts = append(forecasts, slot.ToEntity())
			}
		}
	}
	return forecasts
}
