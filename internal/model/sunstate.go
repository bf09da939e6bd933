package model

// SunState marks whether an hour had the sun above the horizon.
// Keep these values stable; they are written to CSV output.
type SunState string

const (
	SunDay   SunState = "DAY"
	SunNight SunState = "NIGHT"
)

func SunStateFromElevation(elevationDeg float64) SunState {
	if elevationDeg > 0 {
		return SunDay
	}
	return SunNight
}
