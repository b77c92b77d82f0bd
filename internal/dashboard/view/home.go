package view

import (
	"context"
	"fmt"
	"io"
	"sync"

	"ecoscope/internal/dashboard/client"
	"ecoscope/internal/domain/insight"
	"ecoscope/internal/domain/model"
)

const homeTrendRows = 5

// HomeView shows today's weather from the backend passthrough and the
// commodities that moved most recently.
type HomeView struct {
	deps    Deps
	weather *Loader[client.Forecast]
	trends  *Loader[[]model.CommodityTrend]
}

func NewHomeView(deps Deps) *HomeView {
	return &HomeView{
		deps: deps,
		weather: NewLoader(func(ctx context.Context) client.Result[client.Forecast] {
			return deps.Clients.Weather.FetchCurrent(ctx, deps.District.Adm4)
		}, deps.Notifier),
		trends: NewLoader(deps.Clients.Market.Trends, deps.Notifier),
	}
}

func (v *HomeView) Title() string { return "Beranda" }

func (v *HomeView) Mount(ctx context.Context) error {
	v.Refresh(ctx)
	return nil
}

func (v *HomeView) Refresh(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); v.weather.Load(ctx) }()
	go func() { defer wg.Done(); v.trends.Load(ctx) }()
	wg.Wait()
}

func (v *HomeView) Unmount() {}

func (v *HomeView) Render(w io.Writer) error {
	fmt.Fprintf(w, "EcoScope Wonosobo - %s\n", v.deps.District.Name)
	if user, ok := v.deps.Session.CurrentUser(); ok {
		fmt.Fprintf(w, "Masuk sebagai %s (%s)\n", user.Name, v.deps.Session.Role())
	}
	fmt.Fprintln(w)

	weather := v.weather.State()
	if days := insight.DailySummaries(weather.Data.Slots); len(days) > 0 {
		today := days[0]
		fmt.Fprintf(w, "Cuaca %s: %s, %.1f°C, hujan %.1f mm\n", today.Date, today.DominantCondition, today.MeanTemperature, today.TotalRainfall)
	} else {
		fmt.Fprintln(w, "Cuaca: data belum tersedia")
	}
	fmt.Fprintln(w)

	trends := v.trends.State()
	table := newTable(w)
	fmt.Fprintln(table, "KOMODITAS\tHARGA\tTREN")
	for i, t := range trends.Data {
		if i == homeTrendRows {
			break
		}
		fmt.Fprintf(table, "%s\t%s/%s\t%s\n", t.Commodity, formatRupiah(t.Latest.Price), t.Unit, trendLabel(t.Trend))
	}
	return table.Flush()
}

func trendLabel(t insight.PriceTrend) string {
	switch t.Direction {
	case insight.Up:
		return "naik " + t.Change
	case insight.Down:
		return "turun " + t.Change
	default:
		if t.Defined {
			return "stabil " + t.Change
		}
		return "stabil"
	}
}
