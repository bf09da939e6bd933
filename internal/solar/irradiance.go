package solar

import (
	"math"

	"solar-optimizer/internal/model"
)

// Model constants.
const (
	Albedo          = 0.2
	STCTemperatureC = 25.0
)

// Estimate is the full breakdown of one hour's power computation.
// When the sun is below the horizon only Sun is populated.
type Estimate struct {
	Sun          Position
	IncidenceDeg float64
	// PlaneOfArrayWm2 is beam + sky diffuse + ground-reflected irradiance on the panel.
	PlaneOfArrayWm2 float64
	DerateFactor    float64
	// PowerW is per kW of rated capacity (1000 W/m² at STC yields 1000 W), before
	// any system size or efficiency scaling.
	PowerW float64
}

// IncidenceAngle returns the angle (0..180°) between the sun ray and the panel normal.
func IncidenceAngle(sun Position, o model.PanelOrientation) float64 {
	return deg(math.Acos(cosIncidence(sun, o)))
}

func cosIncidence(sun Position, o model.PanelOrientation) float64 {
	se := rad(sun.ElevationDeg)
	pt := rad(o.TiltDeg)
	c := math.Sin(se)*math.Cos(pt) +
		math.Cos(se)*math.Sin(pt)*math.Cos(rad(sun.AzimuthDeg)-rad(o.AzimuthDeg))
	// floating error can push this just past ±1
	return clamp(c, -1, 1)
}

// PlaneOfArray combines the three irradiance components on a tilted panel:
// DNI projected on the panel, isotropic sky diffuse, and ground reflection.
func PlaneOfArray(sun Position, o model.PanelOrientation, w model.WeatherSample) float64 {
	cosTilt := math.Cos(rad(o.TiltDeg))
	beam := w.DirectNormalWm2 * math.Max(0, cosIncidence(sun, o))
	sky := w.DiffuseWm2 * (1 + cosTilt) / 2
	ground := w.GlobalHorizontalWm2 * Albedo * (1 - cosTilt) / 2
	return beam + sky + ground
}

// DerateFactor is the relative output at ambient tempC for a coefficient in %/°C.
func DerateFactor(tempC, tempCoefficientPct float64) float64 {
	return 1 + (tempC-STCTemperatureC)*(tempCoefficientPct/100)
}

// EstimateAt runs the power model for a precomputed sun position.
func EstimateAt(sun Position, o model.PanelOrientation, w model.WeatherSample, tempCoefficientPct float64) Estimate {
	e := Estimate{Sun: sun}
	if !sun.AboveHorizon() {
		return e
	}
	e.IncidenceDeg = IncidenceAngle(sun, o)
	e.PlaneOfArrayWm2 = PlaneOfArray(sun, o, w)
	e.DerateFactor = DerateFactor(w.TemperatureC, tempCoefficientPct)
	e.PowerW = math.Max(0, e.PlaneOfArrayWm2*e.DerateFactor)
	return e
}

// EstimatePower computes the sun position for the sample time and runs the model.
func EstimatePower(loc model.Location, o model.PanelOrientation, w model.WeatherSample, tempCoefficientPct float64) Estimate {
	return EstimateAt(SunPosition(loc.Latitude, w.Time), o, w, tempCoefficientPct)
}

// Power returns unscaled instantaneous power (W per kWp, >= 0).
func Power(loc model.Location, o model.PanelOrientation, w model.WeatherSample, tempCoefficientPct float64) float64 {
	return EstimatePower(loc, o, w, tempCoefficientPct).PowerW
}
