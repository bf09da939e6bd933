package simulate

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"solar-optimizer/internal/model"
	"solar-optimizer/internal/solar"
)

// Engine turns a weather series into a production ledger.
// The per-hour model runs on up to Workers goroutines; each goroutine owns a
// contiguous slice of indices, so the ledger order never depends on scheduling.
type Engine struct {
	Workers int
}

// New returns an engine. workers <= 0 means one per CPU.
func New(workers int) *Engine {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Engine{Workers: workers}
}

// Inputs is everything a run needs. The orientation and temperature
// coefficient come from Recommendation and stay fixed for the whole run.
type Inputs struct {
	Location       model.Location
	Recommendation solar.Recommendation
	System         model.SystemParams
	Weather        []model.WeatherSample
}

// Run executes the simulation over a full weather series.
func (e *Engine) Run(ctx context.Context, in Inputs) (*Result, error) {
	if err := in.Location.Validate(); err != nil {
		return nil, err
	}
	if err := in.System.Validate(); err != nil {
		return nil, err
	}
	if len(in.Weather) == 0 {
		return nil, fmt.Errorf("no weather samples")
	}

	ledger := make([]HourlyRow, len(in.Weather))
	scale := in.System.ScaleFactor()

	g, gctx := errgroup.WithContext(ctx)
	for _, span := range chunks(len(in.Weather), e.workers()) {
		lo, hi := span[0], span[1]
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if (i-lo)%512 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				ledger[i] = simulateHour(i, in, scale)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}

	// Cumulative totals are a chronological fold, done after the map.
	res := &Result{
		Location:       in.Location,
		Recommendation: in.Recommendation,
		System:         in.System,
		Ledger:         ledger,
	}
	cumWh := 0.0
	for i := range ledger {
		cumWh += ledger[i].EnergyWh
		ledger[i].CumEnergyKWh = cumWh / 1000
		if ledger[i].Sun == model.SunDay {
			res.DaylightSamples++
		}
	}
	res.TotalEnergyKWh = cumWh / 1000
	return res, nil
}

func simulateHour(idx int, in Inputs, scale float64) HourlyRow {
	w := in.Weather[idx]
	est := solar.EstimatePower(in.Location, in.Recommendation.Orientation, w, in.Recommendation.Climate.TempCoefficientPct)
	power := est.PowerW * scale
	return HourlyRow{
		Index: idx,
		Time:  w.Time,

		TemperatureC:        w.TemperatureC,
		DirectNormalWm2:     w.DirectNormalWm2,
		DiffuseWm2:          w.DiffuseWm2,
		GlobalHorizontalWm2: w.GlobalHorizontalWm2,

		Sun:             model.SunStateFromElevation(est.Sun.ElevationDeg),
		SunElevationDeg: est.Sun.ElevationDeg,
		SunAzimuthDeg:   est.Sun.AzimuthDeg,
		IncidenceDeg:    est.IncidenceDeg,
		PlaneOfArrayWm2: est.PlaneOfArrayWm2,
		DerateFactor:    est.DerateFactor,

		PowerW:   power,
		EnergyWh: power, // hourly interval
	}
}

func (e *Engine) workers() int {
	if e == nil || e.Workers <= 0 {
		return 1
	}
	return e.Workers
}

// chunks splits [0,n) into at most k contiguous [lo,hi) spans.
func chunks(n, k int) [][2]int {
	if k > n {
		k = n
	}
	if k < 1 {
		k = 1
	}
	size := (n + k - 1) / k
	out := make([][2]int, 0, k)
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		out = append(out, [2]int{lo, hi})
	}
	return out
}
