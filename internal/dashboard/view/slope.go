package view

import (
	"context"
	"fmt"
	"io"

	"ecoscope/internal/dashboard/client"
	"ecoscope/internal/domain/entity"
)

// SlopeView analyzes the terrain around the selected district. A radius
// of zero lets the backend pick its default.
type SlopeView struct {
	deps     Deps
	analysis *Loader[entity.SlopeAnalysis]
}

func NewSlopeView(deps Deps, radius float64) *SlopeView {
	return &SlopeView{
		deps: deps,
		analysis: NewLoader(func(ctx context.Context) client.Result[entity.SlopeAnalysis] {
			return deps.Clients.Slope.Analyze(ctx, deps.District.Lat, deps.District.Lon, radius)
		}, deps.Notifier),
	}
}

func (v *SlopeView) Title() string { return "Analisis Lereng" }

func (v *SlopeView) Mount(ctx context.Context) error {
	v.Refresh(ctx)
	return nil
}

func (v *SlopeView) Refresh(ctx context.Context) {
	v.analysis.Load(ctx)
}

func (v *SlopeView) Unmount() {}

func (v *SlopeView) Render(w io.Writer) error {
	state := v.analysis.State()
	fmt.Fprintf(w, "Analisis lereng %s (%.5f, %.5f)\n\n", v.deps.District.Name, v.deps.District.Lat, v.deps.District.Lon)
	renderStatus(w, state)
	if !state.Loaded {
		_, err := fmt.Fprintln(w, "Data lereng belum tersedia")
		return err
	}

	a := state.Data
	table := newTable(w)
	fmt.Fprintf(table, "Elevasi\t%.1f m\n", a.Elevation)
	fmt.Fprintf(table, "Kemiringan\t%.1f%% (%.1f°)\n", a.SlopePercent, a.SlopeDegrees)
	fmt.Fprintf(table, "Radius\t%.0f m\n", a.RadiusMeters)
	fmt.Fprintf(table, "Risiko\t%s\n", a.RiskLevel)
	if err := table.Flush(); err != nil {
		return err
	}
	for _, r := range a.Recommendations {
		fmt.Fprintf(w, "- %s\n", r)
	}
	return nil
}
