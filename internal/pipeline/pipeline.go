// Package pipeline runs one analysis end to end: validate, derive the
// orientation, fetch weather, simulate, summarize. The CLI and the API
// both go through it.
package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"solar-optimizer/internal/analysis"
	"solar-optimizer/internal/data"
	"solar-optimizer/internal/model"
	"solar-optimizer/internal/simulate"
	"solar-optimizer/internal/solar"
	"solar-optimizer/pkg/logger"
)

// WeatherSource yields resolved hourly weather for a location and range.
// *data.Client, data.ArchiveFile and data.ArchiveDir implement it.
type WeatherSource interface {
	FetchSamples(ctx context.Context, params data.ArchiveParams) ([]model.WeatherSample, error)
}

type Analyzer struct {
	Source WeatherSource
	Engine *simulate.Engine
	Now    func() time.Time
	Log    *slog.Logger
}

func New(source WeatherSource, workers int, log *slog.Logger) *Analyzer {
	if log == nil {
		log = logger.Discard()
	}
	return &Analyzer{
		Source: source,
		Engine: simulate.New(workers),
		Now:    time.Now,
		Log:    log,
	}
}

// Plan is everything decided before the fetch.
type Plan struct {
	Inputs         model.AnalysisInputs
	Recommendation solar.Recommendation
	// Fingerprint identifies requests that must produce identical results.
	Fingerprint string
}

// Plan validates inputs and derives the orientation. A nil rng means the
// trailing year ending two days before now.
func (a *Analyzer) Plan(loc model.Location, sys model.SystemParams, rng *model.DateRange) (Plan, error) {
	in := model.AnalysisInputs{Location: loc, System: sys}
	if rng != nil {
		in.Range = *rng
	} else {
		in.Range = model.TrailingYear(a.Now())
	}
	if err := in.Validate(); err != nil {
		return Plan{}, err
	}
	rec := solar.OptimalOrientation(loc.Latitude)
	return Plan{Inputs: in, Recommendation: rec, Fingerprint: Fingerprint(in, rec.Orientation)}, nil
}

// Fingerprint hashes location, date range, orientation and system.
func Fingerprint(in model.AnalysisInputs, o model.PanelOrientation) string {
	s := fmt.Sprintf("%.6f|%.6f|%s|%s|%.4f|%.4f|%.6f|%.6f|%.6f|%.6f",
		in.Location.Latitude, in.Location.Longitude,
		in.Range.StartString(), in.Range.EndString(),
		o.AzimuthDeg, o.TiltDeg,
		in.System.SizeKW, in.System.SystemEfficiencyPct, in.System.PanelEfficiencyPct, in.System.ElectricityRate,
	)
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

type Outcome struct {
	Plan   Plan
	Result *simulate.Result
	Report analysis.Report
}

// Execute fetches weather for the plan and computes the outcome. A fetch
// failure aborts the run; no partial series is ever summarized.
func (a *Analyzer) Execute(ctx context.Context, p Plan) (*Outcome, error) {
	samples, err := a.Source.FetchSamples(ctx, data.ArchiveParams{Location: p.Inputs.Location, Range: p.Inputs.Range})
	if err != nil {
		return nil, fmt.Errorf("fetch weather: %w", err)
	}
	return a.Compute(ctx, p, samples)
}

// Compute simulates and summarizes already-resolved samples.
func (a *Analyzer) Compute(ctx context.Context, p Plan, samples []model.WeatherSample) (*Outcome, error) {
	started := time.Now()
	res, err := a.Engine.Run(ctx, simulate.Inputs{
		Location:       p.Inputs.Location,
		Recommendation: p.Recommendation,
		System:         p.Inputs.System,
		Weather:        samples,
	})
	if err != nil {
		return nil, err
	}
	sys := p.Inputs.System
	report := analysis.Summarize(res.Series(), sys.SizeKW, sys.SystemEfficiencyPct, sys.ElectricityRate)

	a.Log.Info("analysis complete",
		"lat", p.Inputs.Location.Latitude, "lon", p.Inputs.Location.Longitude,
		"samples", len(samples), "annual_kwh", report.AnnualEnergyKWh,
		"duration", time.Since(started))
	return &Outcome{Plan: p, Result: res, Report: report}, nil
}

// Run is Plan followed by Execute.
func (a *Analyzer) Run(ctx context.Context, loc model.Location, sys model.SystemParams, rng *model.DateRange) (*Outcome, error) {
	p, err := a.Plan(loc, sys, rng)
	if err != nil {
		return nil, err
	}
	return a.Execute(ctx, p)
}

// Rank analyzes each site with the same system and ranks them by specific
// yield. Sites are fetched one after another.
func (a *Analyzer) Rank(ctx context.Context, sites []data.Site, sys model.SystemParams, rng *model.DateRange) ([]analysis.SiteYield, error) {
	yields := make([]analysis.SiteYield, 0, len(sites))
	for _, s := range sites {
		out, err := a.Run(ctx, s.Location(), sys, rng)
		if err != nil {
			return nil, fmt.Errorf("site %s: %w", s.Name, err)
		}
		yields = append(yields, analysis.YieldFromReport(s.Name, s.Location(), out.Plan.Recommendation.Orientation, out.Report))
	}
	return analysis.RankBySpecificYield(yields), nil
}
