package view

import (
	"context"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"ecoscope/internal/dashboard/client"
	"ecoscope/internal/domain/insight"
	"ecoscope/internal/domain/model"
	"ecoscope/pkg/log"
)

const cropForecastDays = 7

// WeatherView shows the BMKG forecast per day with crop suggestions and
// re-polls while mounted. Manual refreshes share the same loaders, so a
// slower response never overwrites a newer one.
type WeatherView struct {
	deps     Deps
	forecast *Loader[client.Forecast]
	crops    *Loader[model.CropRecommendationResponse]
	poller   *Poller
}

func NewWeatherView(deps Deps) *WeatherView {
	v := &WeatherView{
		deps: deps,
		forecast: NewLoader(func(ctx context.Context) client.Result[client.Forecast] {
			return deps.Clients.Weather.Fetch(ctx, deps.District.Adm4)
		}, deps.Notifier),
		crops: NewLoader(func(ctx context.Context) client.Result[model.CropRecommendationResponse] {
			return deps.Clients.Crop.Recommend(ctx, deps.District.Name, cropForecastDays)
		}, deps.Notifier),
	}
	v.poller = NewPoller(deps.PollInterval, v.Refresh)
	return v
}

func (v *WeatherView) Title() string { return "Prediksi Cuaca" }

func (v *WeatherView) Mount(ctx context.Context) error {
	v.Refresh(ctx)
	if v.deps.PollInterval <= 0 {
		return nil
	}
	return v.poller.Start(ctx)
}

func (v *WeatherView) Refresh(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); v.forecast.Load(ctx) }()
	go func() { defer wg.Done(); v.crops.Load(ctx) }()
	wg.Wait()
}

func (v *WeatherView) Unmount() {
	if err := v.poller.Stop(); err != nil {
		log.Warn("weather poller did not stop cleanly", zap.Error(err))
	}
}

// Polling reports whether the periodic refresh is active.
func (v *WeatherView) Polling() bool {
	return v.poller.Running()
}

func (v *WeatherView) Render(w io.Writer) error {
	forecast := v.forecast.State()
	location := forecast.Data.Location
	name := v.deps.District.Name
	if location.Desa != "" {
		name = fmt.Sprintf("%s, %s", location.Desa, location.Kecamatan)
	}
	fmt.Fprintf(w, "Prakiraan cuaca %s (%d prakiraan)\n", name, forecast.Total)
	renderStatus(w, forecast)
	fmt.Fprintln(w)

	table := newTable(w)
	fmt.Fprintln(table, "TANGGAL\tSUHU\tMIN-MAKS\tHUJAN\tKONDISI")
	for _, day := range insight.DailySummaries(forecast.Data.Slots) {
		fmt.Fprintf(table, "%s\t%.1f°C\t%.0f-%.0f°C\t%.1f mm\t%s\n",
			day.Date, day.MeanTemperature, day.MinTemperature, day.MaxTemperature, day.TotalRainfall, day.DominantCondition)
	}
	if err := table.Flush(); err != nil {
		return err
	}

	crops := v.crops.State()
	if !crops.Loaded {
		renderStatus(w, crops)
		return nil
	}
	fmt.Fprintf(w, "\n%s\n", crops.Data.SeasonInfo.Description)
	table = newTable(w)
	fmt.Fprintln(table, "TANAMAN\tSKOR\tKESESUAIAN")
	for _, rec := range crops.Data.Recommendations.HighlyRecommended {
		fmt.Fprintf(table, "%s\t%.1f\t%s\n", rec.Name, rec.Score, rec.Suitability)
	}
	return table.Flush()
}
