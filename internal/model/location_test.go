package model

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationValidate(t *testing.T) {
	cases := []struct {
		name    string
		loc     Location
		wantErr string
	}{
		{"san francisco", Location{37.7749, -122.4194}, ""},
		{"poles and dateline", Location{-90, 180}, ""},
		{"lat too high", Location{90.01, 0}, "latitude"},
		{"lon too low", Location{0, -180.5}, "longitude"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.loc.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var inErr *InputError
			require.True(t, errors.As(err, &inErr))
			assert.Equal(t, tc.wantErr, inErr.Field)
		})
	}
}

func TestSystemValidate(t *testing.T) {
	assert.NoError(t, DefaultSystem().Validate())

	sys := DefaultSystem()
	sys.SizeKW = 0
	var inErr *InputError
	require.ErrorAs(t, sys.Validate(), &inErr)
	assert.Equal(t, "system_size_kw", inErr.Field)

	sys = DefaultSystem()
	sys.SystemEfficiencyPct = 120
	require.ErrorAs(t, sys.Validate(), &inErr)
	assert.Equal(t, "system_efficiency_pct", inErr.Field)
}

func TestSystemValidate_NonFinite(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(*SystemParams)
		field string
	}{
		{"nan size", func(p *SystemParams) { p.SizeKW = math.NaN() }, "system_size_kw"},
		{"inf size", func(p *SystemParams) { p.SizeKW = math.Inf(1) }, "system_size_kw"},
		{"nan system efficiency", func(p *SystemParams) { p.SystemEfficiencyPct = math.NaN() }, "system_efficiency_pct"},
		{"nan panel efficiency", func(p *SystemParams) { p.PanelEfficiencyPct = math.NaN() }, "panel_efficiency_pct"},
		{"nan rate", func(p *SystemParams) { p.ElectricityRate = math.NaN() }, "electricity_rate"},
		{"inf rate", func(p *SystemParams) { p.ElectricityRate = math.Inf(1) }, "electricity_rate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sys := DefaultSystem()
			tc.edit(&sys)
			var inErr *InputError
			require.ErrorAs(t, sys.Validate(), &inErr)
			assert.Equal(t, tc.field, inErr.Field)
		})
	}
}

func TestScaleFactor(t *testing.T) {
	sys := SystemParams{SizeKW: 5, SystemEfficiencyPct: 95}
	assert.InDelta(t, 4.75, sys.ScaleFactor(), 1e-12)
}

func TestPanelArea(t *testing.T) {
	area, err := PanelArea(5, 20)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, area, 1e-9)

	_, err = PanelArea(5, 0)
	assert.Error(t, err)
}

func TestTrailingYear(t *testing.T) {
	now := time.Date(2026, time.October, 18, 15, 30, 0, 0, time.UTC)
	r := TrailingYear(now)
	assert.Equal(t, "2025-10-16", r.StartString())
	assert.Equal(t, "2026-10-16", r.EndString())
	assert.Equal(t, 366, r.Days())
	assert.Equal(t, 366*24, r.Hours())
}

func TestParseDateRange(t *testing.T) {
	r, err := ParseDateRange("2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, 31, r.Days())

	_, err = ParseDateRange("2024-02-01", "2024-01-01")
	assert.Error(t, err)

	_, err = ParseDateRange("01/01/2024", "2024-01-01")
	assert.Error(t, err)
}

func TestSunStateFromElevation(t *testing.T) {
	assert.Equal(t, SunDay, SunStateFromElevation(0.1))
	assert.Equal(t, SunNight, SunStateFromElevation(0))
	assert.Equal(t, SunNight, SunStateFromElevation(-12))
}
