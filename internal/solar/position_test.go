package solar

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeclination_Solstices(t *testing.T) {
	assert.InDelta(t, 23.45, Declination(172), 0.01)
	assert.InDelta(t, -23.45, Declination(355), 0.01)
	assert.InDelta(t, 0, Declination(81), 0.5)
	// day 366 is fed through unchanged
	assert.InDelta(t, 23.45*math.Sin(rad(650*360.0/365)), Declination(366), 1e-12)
}

func TestHourAngle(t *testing.T) {
	noon := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 0.0, HourAngle(noon))
	assert.Equal(t, -180.0, HourAngle(noon.Add(-12*time.Hour)))
	assert.Equal(t, 22.5, HourAngle(noon.Add(90*time.Minute)))
}

func TestSunPosition_EquatorEquinox(t *testing.T) {
	midnight := time.Date(2024, 3, 21, 0, 0, 0, 0, time.UTC)
	assert.LessOrEqual(t, SunPosition(0, midnight).ElevationDeg, 0.0)

	noon := time.Date(2024, 3, 21, 12, 0, 0, 0, time.UTC)
	p := SunPosition(0, noon)
	assert.Greater(t, p.ElevationDeg, 0.0)
	assert.InDelta(t, 90, p.ElevationDeg, 1.5)
}

func TestSunPosition_MidLatitudeNoonIsSouth(t *testing.T) {
	noon := time.Date(2024, 12, 21, 12, 0, 0, 0, time.UTC)
	p := SunPosition(40, noon)
	// winter solstice: 90 - 40 - 23.45
	assert.InDelta(t, 26.55, p.ElevationDeg, 0.1)
	assert.InDelta(t, 180, p.AzimuthDeg, 1e-6)

	south := SunPosition(-40, time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC))
	assert.InDelta(t, 0, math.Min(south.AzimuthDeg, 360-south.AzimuthDeg), 1e-6)
}

func TestSunPosition_MorningEastAfternoonWest(t *testing.T) {
	day := time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC)
	am := SunPosition(45, day.Add(9*time.Hour))
	pm := SunPosition(45, day.Add(15*time.Hour))
	assert.Less(t, am.AzimuthDeg, 180.0)
	assert.Greater(t, pm.AzimuthDeg, 180.0)
	assert.InDelta(t, am.ElevationDeg, pm.ElevationDeg, 1e-9)
}

func TestSunPosition_AzimuthRangeAndTotal(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, lat := range []float64{-90, -66.5, -23.45, 0, 23.45, 51.5, 90} {
		for h := 0; h < 24*366; h += 7 {
			p := SunPosition(lat, start.Add(time.Duration(h)*time.Hour))
			assert.False(t, math.IsNaN(p.ElevationDeg), "lat=%v h=%d", lat, h)
			assert.GreaterOrEqual(t, p.AzimuthDeg, 0.0)
			assert.Less(t, p.AzimuthDeg, 360.0)
			assert.LessOrEqual(t, math.Abs(p.ElevationDeg), 90.0)
		}
	}
}
