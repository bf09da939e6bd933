package solar

import (
	"math"
	"time"
)

// Position is the sun's apparent position for an observer.
// This is the simplified declination/hour-angle model: no refraction and no
// equation-of-time correction, and local clock time stands in for solar time.
type Position struct {
	ElevationDeg float64 `json:"elevation_deg"`
	AzimuthDeg   float64 `json:"azimuth_deg"`
}

// AboveHorizon reports whether the panel can produce at all.
func (p Position) AboveHorizon() bool { return p.ElevationDeg > 0 }

// Declination in degrees for a 1-based day of year. Day 366 goes through the
// same formula unchanged.
func Declination(dayOfYear int) float64 {
	return 23.45 * math.Sin(rad(float64(284+dayOfYear)*360.0/365))
}

// HourAngle in degrees from local noon, 15° per hour.
func HourAngle(t time.Time) float64 {
	hour := float64(t.Hour()) + float64(t.Minute())/60
	return (hour - 12) * 15
}

// SunPosition computes elevation and azimuth (0..360, 0 = north) for a
// latitude and a location-local timestamp.
func SunPosition(latitude float64, t time.Time) Position {
	decl := rad(Declination(t.YearDay()))
	ha := rad(HourAngle(t))
	lat := rad(latitude)

	sinElev := math.Sin(decl)*math.Sin(lat) + math.Cos(decl)*math.Cos(lat)*math.Cos(ha)
	elev := math.Asin(clamp(sinElev, -1, 1))

	az := deg(math.Atan2(
		-math.Sin(ha),
		math.Tan(decl)*math.Cos(lat)-math.Sin(lat)*math.Cos(ha),
	))
	az = math.Mod(az+360, 360)

	return Position{ElevationDeg: deg(elev), AzimuthDeg: az}
}

func rad(d float64) float64 { return d * math.Pi / 180 }
func deg(r float64) float64 { return r * 180 / math.Pi }

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
