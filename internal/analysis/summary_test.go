package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-optimizer/internal/model"
)

func hourly(start time.Time, powers ...float64) []model.ProductionSample {
	out := make([]model.ProductionSample, len(powers))
	for i, p := range powers {
		out[i] = model.ProductionSample{Time: start.Add(time.Duration(i) * time.Hour), PowerW: p}
	}
	return out
}

func TestSummarize_OneDay(t *testing.T) {
	powers := make([]float64, 24)
	for h := 8; h < 16; h++ {
		powers[h] = 500
	}
	series := hourly(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), powers...)

	r := Summarize(series, 5, 95, 0.12)
	assert.Equal(t, 24, r.Samples)
	assert.InDelta(t, 4.0, r.AnnualEnergyKWh, 1e-9)
	require.Len(t, r.Daily, 1)
	assert.InDelta(t, 4.0, r.Daily[0].EnergyKWh, 1e-9)
	assert.Equal(t, 24, r.Daily[0].Samples)
	assert.InDelta(t, 4.0, r.DailyAverageKWh, 1e-9)
	require.Len(t, r.Monthly, 1)
	assert.Equal(t, "2024-06", r.Monthly[0].Label())
	assert.Equal(t, 500.0, r.HourlyProfile[10])
	assert.Equal(t, 0.0, r.HourlyProfile[2])
	assert.InDelta(t, 0.8, r.SpecificYield, 1e-9)
}

func TestSummarize_PeakDayTieGoesToEarlier(t *testing.T) {
	start := time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC)
	powers := make([]float64, 72)
	powers[12] = 1000    // Jan 30
	powers[24+12] = 1000 // Jan 31
	powers[48+12] = 400  // Feb 1
	r := Summarize(hourly(start, powers...), 5, 95, 0.12)

	require.Len(t, r.Daily, 3)
	assert.Equal(t, 30, r.PeakDay.Date.Day())
	require.Len(t, r.Monthly, 2)
	assert.Equal(t, time.January, r.Monthly[0].Month)
	assert.Equal(t, 2, r.Monthly[0].Days)
	assert.InDelta(t, 2.0, r.Monthly[0].EnergyKWh, 1e-9)
	assert.Equal(t, time.February, r.Monthly[1].Month)
}

func TestSummarize_GroupsByLocalDate(t *testing.T) {
	la := time.FixedZone("PDT", -7*3600)
	// 23:00 and 00:00 local fall on different dates even though both are the same UTC day.
	series := hourly(time.Date(2024, 7, 1, 23, 0, 0, 0, la), 100, 200)
	r := Summarize(series, 5, 95, 0.12)
	require.Len(t, r.Daily, 2)
	assert.Equal(t, 1, r.Daily[0].Date.Day())
	assert.Equal(t, 2, r.Daily[1].Date.Day())
}

func TestSummarize_Empty(t *testing.T) {
	r := Summarize(nil, 5, 95, 0.12)
	assert.Equal(t, 0, r.Samples)
	assert.Empty(t, r.Daily)
	assert.Equal(t, 0.0, r.AnnualEnergyKWh)
	assert.False(t, r.Financials.Payback.Applicable)
}

func TestCapacityFactor(t *testing.T) {
	assert.InDelta(t, 17.123, CapacityFactor(7500, 5), 1e-3)
	assert.Equal(t, 0.0, CapacityFactor(7500, 0))
}
