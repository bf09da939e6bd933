package models

import (
	"solar-optimizer/internal/analysis"
	"solar-optimizer/internal/model"
)

// ToSystem resolves a system override against the defaults.
func (s SystemRequest) ToSystem() model.SystemParams {
	sys := model.DefaultSystem()
	if s.SizeKW != nil {
		sys.SizeKW = *s.SizeKW
	}
	if s.SystemEfficiencyPct != nil {
		sys.SystemEfficiencyPct = *s.SystemEfficiencyPct
	}
	if s.PanelEfficiencyPct != nil {
		sys.PanelEfficiencyPct = *s.PanelEfficiencyPct
	}
	switch {
	case s.ElectricityRate != nil:
		sys.ElectricityRate = *s.ElectricityRate
	default:
		if rate, ok := analysis.RateFromBill(s.MonthlyBill, s.MonthlyKWh); ok {
			sys.ElectricityRate = rate
		}
	}
	return sys
}

// DateRange returns nil for the default window. A half-specified window is
// passed through so validation rejects it.
func DateRange(start, end string) (*model.DateRange, error) {
	if start == "" && end == "" {
		return nil, nil
	}
	r, err := model.ParseDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (q LocationQuery) Location() model.Location {
	return model.Location{Latitude: *q.Latitude, Longitude: *q.Longitude}
}

func (r AnalysisRequest) Location() model.Location {
	return model.Location{Latitude: *r.Latitude, Longitude: *r.Longitude}
}
