package model

import (
	"errors"
	"math"
)

// Defaults used when a request or config leaves a system field unset.
const (
	DefaultSystemSizeKW        = 5.0
	DefaultSystemEfficiencyPct = 95.0
	DefaultPanelEfficiencyPct  = 21.0
	DefaultElectricityRate     = 0.12 // $/kWh
)

// SystemParams describes the installed PV system.
// Units:
// - SizeKW: rated DC capacity at STC (kW)
// - SystemEfficiencyPct: inverter + wiring efficiency (0..100]
// - PanelEfficiencyPct: module efficiency, only used for the area estimate
// - ElectricityRate: $/kWh
type SystemParams struct {
	SizeKW              float64 `json:"size_kw"`
	SystemEfficiencyPct float64 `json:"system_efficiency_pct"`
	PanelEfficiencyPct  float64 `json:"panel_efficiency_pct"`
	ElectricityRate     float64 `json:"electricity_rate"`
}

// DefaultSystem returns the reference 5 kW / 95% system.
func DefaultSystem() SystemParams {
	return SystemParams{
		SizeKW:              DefaultSystemSizeKW,
		SystemEfficiencyPct: DefaultSystemEfficiencyPct,
		PanelEfficiencyPct:  DefaultPanelEfficiencyPct,
		ElectricityRate:     DefaultElectricityRate,
	}
}

func (p SystemParams) Validate() error {
	if !finite(p.SizeKW) || p.SizeKW <= 0 {
		return inputErr("system_size_kw", "must be > 0, got %v", p.SizeKW)
	}
	if math.IsNaN(p.SystemEfficiencyPct) || p.SystemEfficiencyPct <= 0 || p.SystemEfficiencyPct > 100 {
		return inputErr("system_efficiency_pct", "must be in (0, 100], got %v", p.SystemEfficiencyPct)
	}
	if math.IsNaN(p.PanelEfficiencyPct) || p.PanelEfficiencyPct < 0 || p.PanelEfficiencyPct > 100 {
		return inputErr("panel_efficiency_pct", "must be in [0, 100], got %v", p.PanelEfficiencyPct)
	}
	if !finite(p.ElectricityRate) || p.ElectricityRate < 0 {
		return inputErr("electricity_rate", "must be a finite value >= 0, got %v", p.ElectricityRate)
	}
	return nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// ScaleFactor converts unscaled per-kWp power into system output.
func (p SystemParams) ScaleFactor() float64 {
	return p.SizeKW * p.SystemEfficiencyPct / 100
}

// PanelArea estimates the module area (m²) needed for sizeKW at the given
// module efficiency, using the 1000 W/m² STC irradiance.
func PanelArea(sizeKW, panelEfficiencyPct float64) (float64, error) {
	if panelEfficiencyPct <= 0 {
		return 0, errors.New("panel efficiency must be > 0")
	}
	return (sizeKW * 1000) / (1000 * (panelEfficiencyPct / 100)), nil
}
