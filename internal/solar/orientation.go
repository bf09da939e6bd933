// Package solar holds the sun-geometry and irradiance formulas. Everything
// here is a pure function of its arguments.
package solar

import (
	"math"

	"solar-optimizer/internal/model"
)

// Climate zone labels.
const (
	ZoneTropical     = "Tropical"
	ZoneTemperate    = "Temperate"
	ZoneHighLatitude = "High Latitude"
)

// Recommendation is the latitude-derived orientation plus its climate profile.
type Recommendation struct {
	Orientation model.PanelOrientation `json:"orientation"`
	Climate     model.ClimateProfile   `json:"climate"`
}

// OptimalOrientation faces the panel at the equator and picks a tilt from the
// latitude band. Bands are half-open: 25 and 50 belong to the higher band.
// Longitude plays no part.
func OptimalOrientation(latitude float64) Recommendation {
	var rec Recommendation
	if latitude >= 0 {
		rec.Orientation.AzimuthDeg = 180
		rec.Climate.Hemisphere = "Northern"
	} else {
		rec.Orientation.AzimuthDeg = 0
		rec.Climate.Hemisphere = "Southern"
	}
	rec.Climate.Facing = Direction(rec.Orientation.AzimuthDeg)

	abs := math.Abs(latitude)
	switch {
	case abs < 25:
		// near-overhead sun favors a shallower panel
		rec.Orientation.TiltDeg = abs * 0.87
		rec.Climate.Zone = ZoneTropical
	case abs < 50:
		rec.Orientation.TiltDeg = abs
		rec.Climate.Zone = ZoneTemperate
	default:
		// flatter to catch the long low summer days
		rec.Orientation.TiltDeg = abs * 0.9
		rec.Climate.Zone = ZoneHighLatitude
	}
	rec.Climate.TempCoefficientPct = TemperatureCoefficient(latitude)
	return rec
}

// TemperatureCoefficient returns the module power coefficient (%/°C) assumed
// for a latitude. Hotter (lower-latitude) climates get the worse value.
func TemperatureCoefficient(latitude float64) float64 {
	abs := math.Abs(latitude)
	switch {
	case abs < 15:
		return -0.45
	case abs < 30:
		return -0.42
	case abs < 45:
		return -0.40
	case abs < 60:
		return -0.38
	default:
		return -0.35
	}
}

var compass = [8]string{"North", "Northeast", "East", "Southeast", "South", "Southwest", "West", "Northwest"}

// Direction names the 8-point compass sector an azimuth falls in.
func Direction(azimuthDeg float64) string {
	a := math.Mod(azimuthDeg, 360)
	if a < 0 {
		a += 360
	}
	idx := int(math.Floor((a+22.5)/45)) % 8
	return compass[idx]
}
