// Package search finds the panel orientation that maximizes energy yield for a
// given weather year by exhaustive evaluation over an azimuth/tilt grid.
// It complements the latitude rule in package solar: the rule is instant, the
// search is an upper bound the rule can be checked against.
package search

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"solar-optimizer/internal/model"
	"solar-optimizer/internal/solar"
)

const (
	DefaultAzimuthStep = 10.0
	DefaultTiltStep    = 5.0
	MaxTilt            = 90.0

	// MinStep bounds the grid at 360 x 91 candidates.
	MinStep = 1.0
)

type Params struct {
	// AzimuthStep is the spacing of candidate azimuths in [0, 360).
	AzimuthStep float64
	// TiltStep is the spacing of candidate tilts in [0, 90].
	TiltStep float64
	Workers  int
}

// Candidate is one evaluated orientation. EnergyKWh is per kWp, unscaled.
type Candidate struct {
	Orientation model.PanelOrientation `json:"orientation"`
	EnergyKWh   float64                `json:"energy_kwh_per_kwp"`
}

type Result struct {
	Best Candidate `json:"best"`
	Flat Candidate `json:"flat"`
	Rule Candidate `json:"rule"`

	// Improvement of Best over a horizontal panel and over the latitude rule, in percent.
	ImprovementVsFlatPct float64 `json:"improvement_vs_flat_pct"`
	ImprovementVsRulePct float64 `json:"improvement_vs_rule_pct"`

	Evaluated int `json:"evaluated"`
}

// Grid enumerates candidate orientations, azimuth-major, both ascending.
func Grid(p Params) []model.PanelOrientation {
	p = p.withDefaults()
	var out []model.PanelOrientation
	for az := 0.0; az < 360; az += p.AzimuthStep {
		for tilt := 0.0; tilt <= MaxTilt; tilt += p.TiltStep {
			out = append(out, model.PanelOrientation{AzimuthDeg: az, TiltDeg: tilt})
		}
	}
	return out
}

// Validate rejects grid steps finer than MinStep. Zero selects the default.
func (p Params) Validate() error {
	if err := checkStep("azimuth_step", p.AzimuthStep); err != nil {
		return err
	}
	return checkStep("tilt_step", p.TiltStep)
}

func checkStep(field string, step float64) error {
	if step == 0 {
		return nil
	}
	if math.IsNaN(step) || math.IsInf(step, 0) || step < MinStep {
		return &model.InputError{Field: field, Message: fmt.Sprintf("must be >= %v degrees, got %v", MinStep, step)}
	}
	return nil
}

func (p Params) withDefaults() Params {
	if p.AzimuthStep <= 0 || math.IsNaN(p.AzimuthStep) {
		p.AzimuthStep = DefaultAzimuthStep
	}
	if p.TiltStep <= 0 || math.IsNaN(p.TiltStep) {
		p.TiltStep = DefaultTiltStep
	}
	p.AzimuthStep = math.Max(p.AzimuthStep, MinStep)
	p.TiltStep = math.Max(p.TiltStep, MinStep)
	if p.Workers <= 0 {
		p.Workers = runtime.NumCPU()
	}
	return p
}

// Optimize evaluates every grid orientation against the weather year. Sun
// positions are computed once and shared by all candidates. The first
// candidate in grid order wins ties, so results do not depend on Workers.
func Optimize(ctx context.Context, loc model.Location, weather []model.WeatherSample, p Params) (*Result, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(weather) == 0 {
		return nil, fmt.Errorf("search: no weather samples")
	}
	p = p.withDefaults()

	rec := solar.OptimalOrientation(loc.Latitude)
	coeff := rec.Climate.TempCoefficientPct

	suns := make([]solar.Position, len(weather))
	for i, w := range weather {
		suns[i] = solar.SunPosition(loc.Latitude, w.Time)
	}

	grid := Grid(p)
	energy := make([]float64, len(grid))

	jobs := make(chan int)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i := range grid {
			if err := gctx.Err(); err != nil {
				return err
			}
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < p.Workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				energy[i] = yieldKWh(suns, weather, grid[i], coeff)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	best := 0
	for i := range energy {
		if energy[i] > energy[best] {
			best = i
		}
	}

	res := &Result{
		Best:      Candidate{Orientation: grid[best], EnergyKWh: energy[best]},
		Evaluated: len(grid),
	}
	flat := model.PanelOrientation{AzimuthDeg: rec.Orientation.AzimuthDeg, TiltDeg: 0}
	res.Flat = Candidate{Orientation: flat, EnergyKWh: yieldKWh(suns, weather, flat, coeff)}
	res.Rule = Candidate{Orientation: rec.Orientation, EnergyKWh: yieldKWh(suns, weather, rec.Orientation, coeff)}
	res.ImprovementVsFlatPct = improvement(res.Best.EnergyKWh, res.Flat.EnergyKWh)
	res.ImprovementVsRulePct = improvement(res.Best.EnergyKWh, res.Rule.EnergyKWh)
	return res, nil
}

func yieldKWh(suns []solar.Position, weather []model.WeatherSample, o model.PanelOrientation, coeff float64) float64 {
	wh := 0.0
	for i, w := range weather {
		wh += solar.EstimateAt(suns[i], o, w, coeff).PowerW
	}
	return wh / 1000
}

func improvement(v, base float64) float64 {
	if base <= 0 {
		return 0
	}
	return (v - base) / base * 100
}
