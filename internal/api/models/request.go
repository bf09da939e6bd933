package models

// AnalysisRequest is the body of POST /api/v1/analysis.
// Coordinates are pointers so 0 (equator, prime meridian) is distinguishable from missing.
type AnalysisRequest struct {
	Latitude  *float64        `json:"latitude" binding:"required"`
	Longitude *float64        `json:"longitude" binding:"required"`
	System    SystemRequest   `json:"system,omitempty"`
	StartDate string          `json:"start_date,omitempty"` // YYYY-MM-DD, with end_date; default trailing year
	EndDate   string          `json:"end_date,omitempty"`
	Options   AnalysisOptions `json:"options,omitempty"`
}

// SystemRequest overrides system defaults. Unset fields take the default;
// the rate may instead be derived from a monthly bill.
type SystemRequest struct {
	SizeKW              *float64 `json:"size_kw,omitempty"`
	SystemEfficiencyPct *float64 `json:"system_efficiency_pct,omitempty"`
	PanelEfficiencyPct  *float64 `json:"panel_efficiency_pct,omitempty"`
	ElectricityRate     *float64 `json:"electricity_rate,omitempty"`
	MonthlyBill         float64  `json:"monthly_bill,omitempty"`
	MonthlyKWh          float64  `json:"monthly_kwh,omitempty"`
}

type AnalysisOptions struct {
	IncludeLedger bool `json:"include_ledger,omitempty"` // default: false
}

// LocationQuery is the query string shared by the orientation endpoints.
type LocationQuery struct {
	Latitude  *float64 `form:"latitude" binding:"required"`
	Longitude *float64 `form:"longitude" binding:"required"`
}

type SearchQuery struct {
	LocationQuery
	AzimuthStep float64 `form:"azimuth_step,omitempty"`
	TiltStep    float64 `form:"tilt_step,omitempty"`
}

// RankRequest ranks saved sites. Empty Sites means all of them.
type RankRequest struct {
	Sites     []string      `json:"sites,omitempty"`
	System    SystemRequest `json:"system,omitempty"`
	StartDate string        `json:"start_date,omitempty"`
	EndDate   string        `json:"end_date,omitempty"`
}
