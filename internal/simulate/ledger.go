package simulate

import (
	"time"

	"solar-optimizer/internal/model"
	"solar-optimizer/internal/solar"
)

// HourlyRow is one row of per-hour output.
// This is the primary artifact for "what happened" in a simulation; the
// hourly exports are written straight from it.
type HourlyRow struct {
	Index int       `json:"index"`
	Time  time.Time `json:"time"`

	TemperatureC        float64 `json:"temperature_c"`
	DirectNormalWm2     float64 `json:"direct_normal_wm2"`
	DiffuseWm2          float64 `json:"diffuse_wm2"`
	GlobalHorizontalWm2 float64 `json:"global_horizontal_wm2"`

	Sun             model.SunState `json:"sun"`
	SunElevationDeg float64        `json:"sun_elevation_deg"`
	SunAzimuthDeg   float64        `json:"sun_azimuth_deg"`
	IncidenceDeg    float64        `json:"incidence_deg"`
	PlaneOfArrayWm2 float64        `json:"plane_of_array_wm2"`
	DerateFactor    float64        `json:"derate_factor"`

	// PowerW is system output (already scaled by size and efficiency).
	PowerW       float64 `json:"power_w"`
	EnergyWh     float64 `json:"energy_wh"`
	CumEnergyKWh float64 `json:"cum_energy_kwh"`
}

// Result is the outcome of one simulation run.
type Result struct {
	Location       model.Location       `json:"location"`
	Recommendation solar.Recommendation `json:"recommendation"`
	System         model.SystemParams   `json:"system"`

	Ledger          []HourlyRow `json:"ledger"`
	TotalEnergyKWh  float64     `json:"total_energy_kwh"`
	DaylightSamples int         `json:"daylight_samples"`
}

// Series returns the ProductionSeries view of the ledger, in the same order.
func (r *Result) Series() []model.ProductionSample {
	out := make([]model.ProductionSample, len(r.Ledger))
	for i, row := range r.Ledger {
		out[i] = model.ProductionSample{Time: row.Time, PowerW: row.PowerW}
	}
	return out
}
