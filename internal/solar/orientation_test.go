package solar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptimalOrientation_TiltAndAzimuthBounds(t *testing.T) {
	for lat := -90.0; lat <= 90.0; lat += 0.5 {
		rec := OptimalOrientation(lat)
		assert.GreaterOrEqual(t, rec.Orientation.TiltDeg, 0.0, "lat=%v", lat)
		assert.LessOrEqual(t, rec.Orientation.TiltDeg, 90.0, "lat=%v", lat)
		if lat >= 0 {
			assert.Equal(t, 180.0, rec.Orientation.AzimuthDeg, "lat=%v", lat)
		} else {
			assert.Equal(t, 0.0, rec.Orientation.AzimuthDeg, "lat=%v", lat)
		}
	}
}

func TestOptimalOrientation_BandBoundaries(t *testing.T) {
	at25 := OptimalOrientation(25.0)
	assert.Equal(t, 25.0, at25.Orientation.TiltDeg)
	assert.Equal(t, ZoneTemperate, at25.Climate.Zone)

	below := OptimalOrientation(24.999)
	assert.InDelta(t, 24.999*0.87, below.Orientation.TiltDeg, 1e-9)
	assert.Equal(t, ZoneTropical, below.Climate.Zone)

	at50 := OptimalOrientation(50.0)
	assert.InDelta(t, 45.0, at50.Orientation.TiltDeg, 1e-9)
	assert.Equal(t, ZoneHighLatitude, at50.Climate.Zone)

	assert.InDelta(t, 49.99, OptimalOrientation(-49.99).Orientation.TiltDeg, 1e-9)
}

func TestOptimalOrientation_SanFrancisco(t *testing.T) {
	rec := OptimalOrientation(37.7749)
	assert.Equal(t, 180.0, rec.Orientation.AzimuthDeg)
	assert.InDelta(t, 37.77, rec.Orientation.TiltDeg, 0.01)
	assert.Equal(t, "Northern", rec.Climate.Hemisphere)
	assert.Equal(t, "South", rec.Climate.Facing)
	assert.Equal(t, ZoneTemperate, rec.Climate.Zone)
	assert.Equal(t, -0.40, rec.Climate.TempCoefficientPct)
}

func TestOptimalOrientation_Sydney(t *testing.T) {
	rec := OptimalOrientation(-33.87)
	assert.Equal(t, 0.0, rec.Orientation.AzimuthDeg)
	assert.Equal(t, "North", rec.Climate.Facing)
	assert.Equal(t, "Southern", rec.Climate.Hemisphere)
	assert.InDelta(t, 33.87, rec.Orientation.TiltDeg, 1e-9)
}

func TestTemperatureCoefficient(t *testing.T) {
	cases := map[float64]float64{
		0:      -0.45,
		14.99:  -0.45,
		15:     -0.42,
		-29.9:  -0.42,
		30:     -0.40,
		44.99:  -0.40,
		45:     -0.38,
		-59.99: -0.38,
		60:     -0.35,
		90:     -0.35,
	}
	for lat, want := range cases {
		got := TemperatureCoefficient(lat)
		assert.Equal(t, want, got, "lat=%v", lat)
		assert.Less(t, got, 0.0)
	}
}

func TestDirection(t *testing.T) {
	cases := map[float64]string{
		0:     "North",
		359:   "North",
		337.5: "North",
		22.5:  "Northeast",
		90:    "East",
		135:   "Southeast",
		180:   "South",
		225:   "Southwest",
		270:   "West",
		315:   "Northwest",
		-90:   "West",
		540:   "South",
	}
	for az, want := range cases {
		assert.Equal(t, want, Direction(az), "azimuth=%v", az)
	}
}
