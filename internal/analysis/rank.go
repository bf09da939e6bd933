package analysis

import (
	"sort"

	"solar-optimizer/internal/model"
)

// SiteYield is a site-level summary used for ranking. Specific yield
// (kWh per installed kWp) makes sites with different system sizes comparable.
type SiteYield struct {
	Name              string                 `json:"name"`
	Location          model.Location         `json:"location"`
	Orientation       model.PanelOrientation `json:"orientation"`
	AnnualEnergyKWh   float64                `json:"annual_energy_kwh"`
	SpecificYield     float64                `json:"specific_yield"`
	CapacityFactorPct float64                `json:"capacity_factor_pct"`
}

// YieldFromReport extracts the ranking fields from a finished report.
func YieldFromReport(name string, loc model.Location, o model.PanelOrientation, r Report) SiteYield {
	return SiteYield{
		Name:              name,
		Location:          loc,
		Orientation:       o,
		AnnualEnergyKWh:   r.AnnualEnergyKWh,
		SpecificYield:     r.SpecificYield,
		CapacityFactorPct: r.CapacityFactorPct,
	}
}

// RankBySpecificYield sorts descending by specific yield. Equal yields keep
// their input order.
func RankBySpecificYield(sites []SiteYield) []SiteYield {
	out := make([]SiteYield, len(sites))
	copy(out, sites)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SpecificYield > out[j].SpecificYield
	})
	return out
}
