package view

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"ecoscope/internal/dashboard/client"
	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/insight"
	"ecoscope/internal/domain/model"
	"ecoscope/pkg/log"
)

// PriceView lists the latest price per commodity with the move against
// the previous observation. The backend returns prices newest first.
// With a commodity in the filter it also shows that commodity's forecast.
type PriceView struct {
	deps     Deps
	prices   *Loader[[]entity.MarketPrice]
	forecast *Loader[model.PriceForecastResponse]
	poller   *Poller
}

func NewPriceView(deps Deps, filter model.MarketFilter) *PriceView {
	v := &PriceView{
		deps: deps,
		prices: NewLoader(func(ctx context.Context) client.Result[[]entity.MarketPrice] {
			return deps.Clients.Market.List(ctx, filter)
		}, deps.Notifier),
	}
	if filter.Commodity != "" {
		v.forecast = NewLoader(func(ctx context.Context) client.Result[model.PriceForecastResponse] {
			return deps.Clients.Forecast.Commodity(ctx, filter.Commodity, 0)
		}, deps.Notifier)
	}
	v.poller = NewPoller(deps.PollInterval, v.Refresh)
	return v
}

func (v *PriceView) Title() string { return "Prediksi Harga" }

func (v *PriceView) Mount(ctx context.Context) error {
	v.Refresh(ctx)
	if v.deps.PollInterval <= 0 {
		return nil
	}
	return v.poller.Start(ctx)
}

func (v *PriceView) Refresh(ctx context.Context) {
	v.prices.Load(ctx)
	if v.forecast != nil {
		v.forecast.Load(ctx)
	}
}

func (v *PriceView) Unmount() {
	if err := v.poller.Stop(); err != nil {
		log.Warn("price poller did not stop cleanly", zap.Error(err))
	}
}

func (v *PriceView) Render(w io.Writer) error {
	state := v.prices.State()
	fmt.Fprintf(w, "Harga komoditas (%d data)\n", state.Total)
	renderStatus(w, state)
	fmt.Fprintln(w)
	if err := renderPriceTable(w, state.Data); err != nil {
		return err
	}
	if v.forecast != nil {
		return renderForecast(w, v.forecast.State())
	}
	return nil
}

func renderForecast(w io.Writer, state State[model.PriceForecastResponse]) error {
	f := state.Data
	fmt.Fprintln(w)
	if !state.Loaded {
		fmt.Fprintln(w, "Prakiraan harga")
		renderStatus(w, state)
		return nil
	}

	fmt.Fprintf(w, "Prakiraan harga %s (%d hari, %s)\n", f.Commodity, f.ForecastDays, f.Model)
	renderStatus(w, state)
	fmt.Fprintf(w, "Harga terakhir %s (%s)\n", formatRupiah(f.CurrentPrice), f.LastActualDate)
	if s := f.Statistics; s != nil {
		fmt.Fprintf(w, "Rata-rata prakiraan %s, tren %s %+.2f%%\n",
			formatRupiah(s.AveragePredictedPrice), s.PriceTrend, s.TrendPercentage)
	}
	if len(f.BestSellingDates) == 0 {
		return nil
	}

	fmt.Fprintln(w, "Tanggal jual terbaik:")
	table := newTable(w)
	for _, d := range f.BestSellingDates {
		fmt.Fprintf(table, "  %s\t%s\t%s\n", d.Date, formatRupiah(d.PredictedPrice), d.ConfidenceRange)
	}
	return table.Flush()
}

func renderPriceTable(w io.Writer, prices []entity.MarketPrice) error {
	table := newTable(w)
	fmt.Fprintln(table, "KOMODITAS\tHARGA\tSATUAN\tTANGGAL\tTREN")
	groups := insight.GroupBy(prices, func(p entity.MarketPrice) string { return p.CommodityName })
	groups.Each(func(name string, items []entity.MarketPrice) {
		latest, ok := insight.Latest(items)
		if !ok {
			return
		}
		trend := insight.Trend(items)
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s %s\n",
			name, formatRupiah(latest.Price), latest.Unit, latest.Date, trendMarker(trend.Direction), trend.Change)
	})
	return table.Flush()
}

func trendMarker(d insight.Direction) string {
	switch d {
	case insight.Up:
		return "▲"
	case insight.Down:
		return "▼"
	default:
		return "="
	}
}
