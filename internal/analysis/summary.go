package analysis

import (
	"time"

	"solar-optimizer/internal/model"
)

// HoursPerYear is the capacity-factor denominator. It ignores leap years so
// results stay comparable across locations and years.
const HoursPerYear = 8760

// DailyTotal is the energy produced on one location-local calendar date.
type DailyTotal struct {
	Date      time.Time `json:"date"` // local midnight
	EnergyKWh float64   `json:"energy_kwh"`
	Samples   int       `json:"samples"`
}

// MonthlyTotal is the energy produced in one calendar month.
type MonthlyTotal struct {
	Year      int        `json:"year"`
	Month     time.Month `json:"month"`
	EnergyKWh float64    `json:"energy_kwh"`
	Days      int        `json:"days"`
}

// Label renders the month as YYYY-MM.
func (m MonthlyTotal) Label() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// Report is a read-only summary derived from a production series.
// It is recomputed from the series, never updated in place.
type Report struct {
	SystemSizeKW        float64 `json:"system_size_kw"`
	SystemEfficiencyPct float64 `json:"system_efficiency_pct"`

	Samples int       `json:"samples"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`

	AnnualEnergyKWh   float64 `json:"annual_energy_kwh"`
	DailyAverageKWh   float64 `json:"daily_average_kwh"`
	SpecificYield     float64 `json:"specific_yield_kwh_per_kwp"`
	CapacityFactorPct float64 `json:"capacity_factor_pct"`

	PeakDay DailyTotal     `json:"peak_day"`
	Daily   []DailyTotal   `json:"daily"`
	Monthly []MonthlyTotal `json:"monthly"`

	// HourlyProfile is the mean output (W) for each local hour of day.
	HourlyProfile [24]float64 `json:"hourly_profile_w"`

	Financials Financials `json:"financials"`
}

// Summarize folds a production series into a Report. The series must already
// carry system size and efficiency scaling; sizeKW and efficiencyPct are used
// for capacity factor and cost only. Input order is trusted: grouping and
// peak-day tie-breaking follow it.
func Summarize(series []model.ProductionSample, sizeKW, efficiencyPct, rate float64) Report {
	r := Report{
		SystemSizeKW:        sizeKW,
		SystemEfficiencyPct: efficiencyPct,
		Samples:             len(series),
	}
	if len(series) > 0 {
		r.Start = series[0].Time
		r.End = series[len(series)-1].Time
	}

	totalWh := 0.0
	var hourSum [24]float64
	var hourCount [24]int
	for _, s := range series {
		totalWh += s.EnergyWh()
		h := s.Time.Hour()
		hourSum[h] += s.PowerW
		hourCount[h]++
	}
	for h := 0; h < 24; h++ {
		if hourCount[h] > 0 {
			r.HourlyProfile[h] = hourSum[h] / float64(hourCount[h])
		}
	}

	r.AnnualEnergyKWh = totalWh / 1000
	r.Daily = DailyTotals(series)
	r.Monthly = MonthlyTotals(r.Daily)
	r.PeakDay = PeakDay(r.Daily)
	if n := len(r.Daily); n > 0 {
		r.DailyAverageKWh = r.AnnualEnergyKWh / float64(n)
	}
	r.CapacityFactorPct = CapacityFactor(r.AnnualEnergyKWh, sizeKW)
	if sizeKW > 0 {
		r.SpecificYield = r.AnnualEnergyKWh / sizeKW
	}
	r.Financials = ComputeFinancials(r.AnnualEnergyKWh, sizeKW, rate)
	return r
}

type dayKey struct {
	Year  int
	Month time.Month
	Day   int
}

// DailyTotals groups samples by their local calendar date, in first-seen order.
func DailyTotals(series []model.ProductionSample) []DailyTotal {
	out := []DailyTotal{}
	index := map[dayKey]int{}
	for _, s := range series {
		y, m, d := s.Time.Date()
		k := dayKey{y, m, d}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, DailyTotal{Date: time.Date(y, m, d, 0, 0, 0, 0, s.Time.Location())})
		}
		out[i].EnergyKWh += s.EnergyWh() / 1000
		out[i].Samples++
	}
	return out
}

// MonthlyTotals groups daily totals by (year, month), in first-seen order.
func MonthlyTotals(daily []DailyTotal) []MonthlyTotal {
	type monthKey struct {
		Year  int
		Month time.Month
	}
	out := []MonthlyTotal{}
	index := map[monthKey]int{}
	for _, d := range daily {
		k := monthKey{d.Date.Year(), d.Date.Month()}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, MonthlyTotal{Year: k.Year, Month: k.Month})
		}
		out[i].EnergyKWh += d.EnergyKWh
		out[i].Days++
	}
	return out
}

// PeakDay returns the day with the highest total; the earliest wins a tie.
func PeakDay(daily []DailyTotal) DailyTotal {
	var best DailyTotal
	for i, d := range daily {
		if i == 0 || d.EnergyKWh > best.EnergyKWh {
			best = d
		}
	}
	return best
}

// CapacityFactor is actual over theoretical-maximum output, in percent.
func CapacityFactor(annualKWh, sizeKW float64) float64 {
	if sizeKW <= 0 {
		return 0
	}
	return annualKWh / (sizeKW * HoursPerYear) * 100
}
