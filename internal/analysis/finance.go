package analysis

import "fmt"

// Flat financial assumptions. These are estimates, not quotes.
const (
	CostPerKW       = 1000.0 // $ installed
	LifetimeYears   = 25
	CO2TonnesPerKWh = 0.0004 // EPA average grid factor
)

// Payback is a simple payback period. Applicable is false when there are no
// savings to pay the system back with.
type Payback struct {
	Years      float64 `json:"years"`
	Applicable bool    `json:"applicable"`
}

func (p Payback) String() string {
	if !p.Applicable {
		return "N/A"
	}
	return fmt.Sprintf("%.1f years", p.Years)
}

// Financials are the money and emissions figures derived from annual energy.
type Financials struct {
	ElectricityRate  float64 `json:"electricity_rate"`
	AnnualSavings    float64 `json:"annual_savings"`
	MonthlySavings   float64 `json:"monthly_savings"`
	SystemCost       float64 `json:"system_cost"`
	Payback          Payback `json:"payback"`
	NetSavings25Y    float64 `json:"net_savings_25y"`
	CO2AvoidedTonnes float64 `json:"co2_avoided_tonnes"`
}

func ComputeFinancials(annualKWh, sizeKW, rate float64) Financials {
	f := Financials{
		ElectricityRate:  rate,
		AnnualSavings:    annualKWh * rate,
		SystemCost:       sizeKW * CostPerKW,
		CO2AvoidedTonnes: annualKWh * CO2TonnesPerKWh,
	}
	f.MonthlySavings = f.AnnualSavings / 12
	if f.AnnualSavings > 0 {
		f.Payback = Payback{Years: f.SystemCost / f.AnnualSavings, Applicable: true}
	}
	f.NetSavings25Y = f.AnnualSavings*LifetimeYears - f.SystemCost
	return f
}

// RateFromBill derives a $/kWh rate from one bill. ok is false when either
// figure is missing, in which case callers fall back to a default rate.
func RateFromBill(billAmount, billedKWh float64) (rate float64, ok bool) {
	if billAmount <= 0 || billedKWh <= 0 {
		return 0, false
	}
	return billAmount / billedKWh, true
}
