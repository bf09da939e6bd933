package model

import "math"

// Location is a ground point in decimal degrees.
type Location struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

func (l Location) Validate() error {
	if math.IsNaN(l.Latitude) || l.Latitude < -90 || l.Latitude > 90 {
		return inputErr("latitude", "%v is outside [-90, 90]", l.Latitude)
	}
	if math.IsNaN(l.Longitude) || l.Longitude < -180 || l.Longitude > 180 {
		return inputErr("longitude", "%v is outside [-180, 180]", l.Longitude)
	}
	return nil
}

// PanelOrientation is a fixed (non-tracking) panel pose.
// Azimuth: 0=N, 90=E, 180=S, 270=W. Tilt: 0=flat, 90=vertical.
type PanelOrientation struct {
	AzimuthDeg float64 `json:"azimuth_deg"`
	TiltDeg    float64 `json:"tilt_deg"`
}

// ClimateProfile is the latitude-band classification that goes with an orientation.
type ClimateProfile struct {
	Hemisphere string `json:"hemisphere"`
	Facing     string `json:"facing"`
	Zone       string `json:"zone"`
	// TempCoefficientPct is the power temperature coefficient in %/°C (always negative).
	TempCoefficientPct float64 `json:"temp_coefficient_pct"`
}
