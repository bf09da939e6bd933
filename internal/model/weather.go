package model

import (
	"fmt"
	"time"
)

// Hourly fields requested from the archive API.
const (
	FieldTemperature  = "temperature_2m"
	FieldDiffuse      = "diffuse_radiation"
	FieldDirectNormal = "direct_normal_irradiance"
	FieldShortwave    = "shortwave_radiation"
)

// HourlyFields is the comma-joined field list in request order.
var HourlyFields = []string{FieldTemperature, FieldDiffuse, FieldDirectNormal, FieldShortwave}

// Substitutes for provider nulls. Applied once, at ingestion.
const (
	DefaultTemperatureC = 20.0
	DefaultIrradiance   = 0.0
)

// ArchiveResponse matches the JSON shape of the Open-Meteo archive API.
//
// Example:
//
//	{
//	  "latitude": 37.76, "longitude": -122.41,
//	  "timezone": "America/Los_Angeles", "utc_offset_seconds": -25200,
//	  "hourly": {"time": ["2024-01-01T00:00", ...], "temperature_2m": [9.1, null, ...], ...}
//	}
type ArchiveResponse struct {
	Latitude             float64      `json:"latitude"`
	Longitude            float64      `json:"longitude"`
	Elevation            float64      `json:"elevation"`
	Timezone             string       `json:"timezone"`
	TimezoneAbbreviation string       `json:"timezone_abbreviation"`
	UTCOffsetSeconds     int          `json:"utc_offset_seconds"`
	Hourly               HourlySeries `json:"hourly"`
}

// HourlySeries holds parallel per-hour arrays. Any value may be null.
type HourlySeries struct {
	Time                   []string   `json:"time"`
	Temperature2m          []*float64 `json:"temperature_2m"`
	DiffuseRadiation       []*float64 `json:"diffuse_radiation"`
	DirectNormalIrradiance []*float64 `json:"direct_normal_irradiance"`
	ShortwaveRadiation     []*float64 `json:"shortwave_radiation"`
}

// WeatherSample is one resolved hour of weather. No field is ever missing.
type WeatherSample struct {
	Time                time.Time `json:"time"`
	TemperatureC        float64   `json:"temperature_c"`
	DiffuseWm2          float64   `json:"diffuse_wm2"`
	DirectNormalWm2     float64   `json:"direct_normal_wm2"`
	GlobalHorizontalWm2 float64   `json:"global_horizontal_wm2"`
}

var timeLayouts = []string{"2006-01-02T15:04", "2006-01-02T15:04:05"}

// TimeLocation returns the location-local zone reported by the provider.
// Falls back to a fixed offset when the IANA name is unknown to this host.
func (r *ArchiveResponse) TimeLocation() *time.Location {
	if r.Timezone != "" {
		if loc, err := time.LoadLocation(r.Timezone); err == nil {
			return loc
		}
	}
	name := r.TimezoneAbbreviation
	if name == "" {
		name = "LOCAL"
	}
	return time.FixedZone(name, r.UTCOffsetSeconds)
}

// Samples resolves the hourly arrays into WeatherSamples, substituting
// defaults for nulls. A payload whose arrays disagree in length or whose
// timestamps do not parse is rejected as a whole.
func (r *ArchiveResponse) Samples() ([]WeatherSample, error) {
	h := r.Hourly
	n := len(h.Time)
	if n == 0 {
		return nil, fmt.Errorf("hourly.time is empty")
	}
	for i, vals := range [][]*float64{
		h.Temperature2m,
		h.DiffuseRadiation,
		h.DirectNormalIrradiance,
		h.ShortwaveRadiation,
	} {
		if len(vals) != n {
			return nil, fmt.Errorf("hourly.%s has %d values, hourly.time has %d", HourlyFields[i], len(vals), n)
		}
	}

	loc := r.TimeLocation()
	out := make([]WeatherSample, n)
	for i, raw := range h.Time {
		ts, err := parseLocal(raw, loc)
		if err != nil {
			return nil, fmt.Errorf("hourly.time[%d]: %w", i, err)
		}
		out[i] = WeatherSample{
			Time:                ts,
			TemperatureC:        valueOr(h.Temperature2m[i], DefaultTemperatureC),
			DiffuseWm2:          valueOr(h.DiffuseRadiation[i], DefaultIrradiance),
			DirectNormalWm2:     valueOr(h.DirectNormalIrradiance[i], DefaultIrradiance),
			GlobalHorizontalWm2: valueOr(h.ShortwaveRadiation[i], DefaultIrradiance),
		}
	}
	return out, nil
}

func parseLocal(raw string, loc *time.Location) (time.Time, error) {
	var lastErr error
	for _, layout := range timeLayouts {
		ts, err := time.ParseInLocation(layout, raw, loc)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
