package solar

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"solar-optimizer/internal/model"
)

func clearSky(ts time.Time) model.WeatherSample {
	return model.WeatherSample{
		Time:                ts,
		TemperatureC:        25,
		DiffuseWm2:          100,
		DirectNormalWm2:     850,
		GlobalHorizontalWm2: 900,
	}
}

func TestPower_ZeroBelowHorizon(t *testing.T) {
	loc := model.Location{Latitude: 37.7749, Longitude: -122.4194}
	o := OptimalOrientation(loc.Latitude).Orientation
	w := clearSky(time.Date(2024, 6, 21, 2, 0, 0, 0, time.UTC))
	w.DirectNormalWm2 = 5000
	w.DiffuseWm2 = 5000

	assert.Equal(t, 0.0, Power(loc, o, w, -0.4))

	e := EstimateAt(Position{ElevationDeg: 0, AzimuthDeg: 180}, o, w, -0.4)
	assert.Equal(t, 0.0, e.PowerW)
	assert.Equal(t, 0.0, e.PlaneOfArrayWm2)
}

func TestEstimateAt_FlatPanelOverheadSun(t *testing.T) {
	flat := model.PanelOrientation{AzimuthDeg: 180, TiltDeg: 0}
	sun := Position{ElevationDeg: 90, AzimuthDeg: 180}
	w := model.WeatherSample{TemperatureC: 25, DirectNormalWm2: 1000, DiffuseWm2: 100, GlobalHorizontalWm2: 1100}

	e := EstimateAt(sun, flat, w, -0.4)
	assert.InDelta(t, 0, e.IncidenceDeg, 1e-6)
	// no ground view for a flat panel
	assert.InDelta(t, 1100, e.PlaneOfArrayWm2, 1e-9)
	assert.InDelta(t, 1, e.DerateFactor, 1e-12)
	assert.InDelta(t, 1100, e.PowerW, 1e-9)
}

func TestPlaneOfArray_VerticalPanelComponents(t *testing.T) {
	wall := model.PanelOrientation{AzimuthDeg: 180, TiltDeg: 90}
	sun := Position{ElevationDeg: 30, AzimuthDeg: 180}
	w := model.WeatherSample{DirectNormalWm2: 800, DiffuseWm2: 100, GlobalHorizontalWm2: 500}

	want := 800*math.Cos(rad(30)) + 100*0.5 + 500*Albedo*0.5
	assert.InDelta(t, want, PlaneOfArray(sun, wall, w), 1e-6)
}

func TestPlaneOfArray_BeamBehindPanelIgnored(t *testing.T) {
	wall := model.PanelOrientation{AzimuthDeg: 180, TiltDeg: 90}
	sun := Position{ElevationDeg: 10, AzimuthDeg: 0}
	w := model.WeatherSample{DirectNormalWm2: 800, DiffuseWm2: 100}

	assert.InDelta(t, 50, PlaneOfArray(sun, wall, w), 1e-9)
	assert.Greater(t, IncidenceAngle(sun, wall), 90.0)
}

func TestDerateFactor(t *testing.T) {
	assert.InDelta(t, 0.96, DerateFactor(35, -0.4), 1e-12)
	assert.InDelta(t, 1.04, DerateFactor(15, -0.4), 1e-12)
	assert.Equal(t, 1.0, DerateFactor(STCTemperatureC, -0.45))
}

func TestPower_NeverNegative(t *testing.T) {
	o := model.PanelOrientation{AzimuthDeg: 180, TiltDeg: 30}
	sun := Position{ElevationDeg: 60, AzimuthDeg: 180}
	w := model.WeatherSample{TemperatureC: 400, DirectNormalWm2: 900}
	e := EstimateAt(sun, o, w, -0.45)
	assert.Less(t, e.DerateFactor, 0.0)
	assert.Equal(t, 0.0, e.PowerW)
}

func TestIncidenceAngle_ClampAbsorbsOvershoot(t *testing.T) {
	for _, elev := range []float64{89.9999999, 90, 45, 1e-9, 0} {
		for _, tilt := range []float64{0, 1e-12, 45, 89.999999, 90} {
			for _, dAz := range []float64{0, 1e-13, 180, 359.9999999} {
				sun := Position{ElevationDeg: elev, AzimuthDeg: 180 + dAz}
				o := model.PanelOrientation{AzimuthDeg: 180, TiltDeg: tilt}
				angle := IncidenceAngle(sun, o)
				assert.False(t, math.IsNaN(angle))
				assert.GreaterOrEqual(t, angle, 0.0)
				assert.LessOrEqual(t, angle, 180.0)
			}
		}
	}
	// sun exactly on the panel normal
	o := model.PanelOrientation{AzimuthDeg: 180, TiltDeg: 30}
	assert.InDelta(t, 0, IncidenceAngle(Position{ElevationDeg: 60, AzimuthDeg: 180}, o), 1e-6)
}

func TestPower_Idempotent(t *testing.T) {
	loc := model.Location{Latitude: 37.7749, Longitude: -122.4194}
	rec := OptimalOrientation(loc.Latitude)
	w := clearSky(time.Date(2024, 6, 21, 13, 0, 0, 0, time.UTC))

	first := Power(loc, rec.Orientation, w, rec.Climate.TempCoefficientPct)
	second := Power(loc, rec.Orientation, w, rec.Climate.TempCoefficientPct)
	assert.Greater(t, first, 0.0)
	assert.Equal(t, first, second)
}

func TestPower_HotterIsLower(t *testing.T) {
	loc := model.Location{Latitude: 10}
	rec := OptimalOrientation(loc.Latitude)
	cool := clearSky(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	hot := cool
	hot.TemperatureC = 40

	assert.Greater(t,
		Power(loc, rec.Orientation, cool, rec.Climate.TempCoefficientPct),
		Power(loc, rec.Orientation, hot, rec.Climate.TempCoefficientPct))
}
