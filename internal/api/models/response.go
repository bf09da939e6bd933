package models

import (
	"time"

	"solar-optimizer/internal/analysis"
	"solar-optimizer/internal/model"
	"solar-optimizer/internal/simulate"
	"solar-optimizer/internal/solar"
)

// AnalysisResponse is returned by POST /api/v1/analysis and GET /api/v1/analysis/:id.
type AnalysisResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Reused    bool      `json:"reused"`
	CreatedAt time.Time `json:"created_at"`

	Location       model.Location       `json:"location"`
	Recommendation solar.Recommendation `json:"recommendation"`
	System         model.SystemParams   `json:"system"`
	PanelAreaM2    float64              `json:"panel_area_m2,omitempty"`
	Window         TimeWindow           `json:"window"`

	Summary Summary              `json:"summary"`
	Ledger  []simulate.HourlyRow `json:"ledger,omitempty"`
}

type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Summary struct {
	Samples           int                     `json:"samples"`
	AnnualEnergyKWh   float64                 `json:"annual_energy_kwh"`
	DailyAverageKWh   float64                 `json:"daily_average_kwh"`
	CapacityFactorPct float64                 `json:"capacity_factor_pct"`
	SpecificYield     float64                 `json:"specific_yield_kwh_per_kwp"`
	PeakDay           analysis.DailyTotal     `json:"peak_day"`
	Daily             []analysis.DailyTotal   `json:"daily"`
	Monthly           []analysis.MonthlyTotal `json:"monthly"`
	HourlyProfileW    [24]float64             `json:"hourly_profile_w"`
	Financials        Financials              `json:"financials"`
}

// Financials flattens analysis.Financials; PaybackYears is null when there
// are no savings.
type Financials struct {
	ElectricityRate  float64  `json:"electricity_rate"`
	AnnualSavings    float64  `json:"annual_savings"`
	MonthlySavings   float64  `json:"monthly_savings"`
	SystemCost       float64  `json:"system_cost"`
	PaybackYears     *float64 `json:"payback_years"`
	Payback          string   `json:"payback"`
	NetSavings25Y    float64  `json:"net_savings_25y"`
	CO2AvoidedTonnes float64  `json:"co2_avoided_tonnes"`
}

func NewSummary(r analysis.Report) Summary {
	f := r.Financials
	fin := Financials{
		ElectricityRate:  f.ElectricityRate,
		AnnualSavings:    f.AnnualSavings,
		MonthlySavings:   f.MonthlySavings,
		SystemCost:       f.SystemCost,
		Payback:          f.Payback.String(),
		NetSavings25Y:    f.NetSavings25Y,
		CO2AvoidedTonnes: f.CO2AvoidedTonnes,
	}
	if f.Payback.Applicable {
		years := f.Payback.Years
		fin.PaybackYears = &years
	}
	return Summary{
		Samples:           r.Samples,
		AnnualEnergyKWh:   r.AnnualEnergyKWh,
		DailyAverageKWh:   r.DailyAverageKWh,
		CapacityFactorPct: r.CapacityFactorPct,
		SpecificYield:     r.SpecificYield,
		PeakDay:           r.PeakDay,
		Daily:             r.Daily,
		Monthly:           r.Monthly,
		HourlyProfileW:    r.HourlyProfile,
		Financials:        fin,
	}
}

type OrientationResponse struct {
	Location    model.Location         `json:"location"`
	Orientation model.PanelOrientation `json:"orientation"`
	Climate     model.ClimateProfile   `json:"climate"`
}

// RankResponse lists sites by specific yield, best first.
type RankResponse struct {
	Rankings []Ranking `json:"rankings"`
}

type Ranking struct {
	Rank              int                    `json:"rank"`
	Name              string                 `json:"name"`
	Location          model.Location         `json:"location"`
	Orientation       model.PanelOrientation `json:"orientation"`
	AnnualEnergyKWh   float64                `json:"annual_energy_kwh"`
	SpecificYield     float64                `json:"specific_yield"`
	CapacityFactorPct float64                `json:"capacity_factor_pct"`
}

// AssumptionsResponse documents the fixed model constants.
type AssumptionsResponse struct {
	Albedo             float64            `json:"albedo"`
	STCTemperatureC    float64            `json:"stc_temperature_c"`
	CostPerKW          float64            `json:"cost_per_kw"`
	LifetimeYears      int                `json:"lifetime_years"`
	CO2TonnesPerKWh    float64            `json:"co2_tonnes_per_kwh"`
	HoursPerYear       int                `json:"hours_per_year"`
	DefaultSystem      model.SystemParams `json:"default_system"`
	NullTemperatureC   float64            `json:"null_temperature_c"`
	NullIrradiance     float64            `json:"null_irradiance"`
	ArchiveLagDays     int                `json:"archive_lag_days"`
	TrailingWindowDays int                `json:"trailing_window_days"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
