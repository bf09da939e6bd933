package search

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-optimizer/internal/model"
)

func TestGrid_Defaults(t *testing.T) {
	g := Grid(Params{})
	// 36 azimuths x 19 tilts
	require.Len(t, g, 36*19)
	assert.Equal(t, model.PanelOrientation{AzimuthDeg: 0, TiltDeg: 0}, g[0])
	assert.Equal(t, model.PanelOrientation{AzimuthDeg: 0, TiltDeg: 90}, g[18])
	assert.Equal(t, model.PanelOrientation{AzimuthDeg: 350, TiltDeg: 90}, g[len(g)-1])
}

func TestGrid_StepFloor(t *testing.T) {
	g := Grid(Params{AzimuthStep: 0.1, TiltStep: 0.1})
	assert.Len(t, g, 360*91)
}

func TestOptimize_RejectsFineSteps(t *testing.T) {
	loc := model.Location{Latitude: 40, Longitude: -105}
	weather := ClearSkyYear(loc.Latitude, 2023, nil)

	cases := []struct {
		name   string
		params Params
		field  string
	}{
		{"azimuth below floor", Params{AzimuthStep: 0.1}, "azimuth_step"},
		{"tilt below floor", Params{TiltStep: 0.5}, "tilt_step"},
		{"negative azimuth", Params{AzimuthStep: -10}, "azimuth_step"},
		{"nan tilt", Params{TiltStep: math.NaN()}, "tilt_step"},
		{"inf azimuth", Params{AzimuthStep: math.Inf(1)}, "azimuth_step"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Optimize(context.Background(), loc, weather, tc.params)
			var inErr *model.InputError
			require.ErrorAs(t, err, &inErr)
			assert.Equal(t, tc.field, inErr.Field)
		})
	}

	assert.NoError(t, Params{AzimuthStep: MinStep, TiltStep: MinStep}.Validate())
}

func TestOptimize_NorthernFacesSouth(t *testing.T) {
	loc := model.Location{Latitude: 40, Longitude: -105}
	weather := ClearSkyYear(loc.Latitude, 2023, nil)

	res, err := Optimize(context.Background(), loc, weather, Params{AzimuthStep: 30, TiltStep: 10, Workers: 4})
	require.NoError(t, err)

	assert.Equal(t, 180.0, res.Best.Orientation.AzimuthDeg)
	assert.Greater(t, res.Best.Orientation.TiltDeg, 10.0)
	assert.Less(t, res.Best.Orientation.TiltDeg, 60.0)
	assert.Greater(t, res.ImprovementVsFlatPct, 0.0)
	assert.GreaterOrEqual(t, res.Best.EnergyKWh, res.Rule.EnergyKWh)
	assert.Equal(t, 12*10, res.Evaluated)
}

func TestOptimize_SouthernFacesNorth(t *testing.T) {
	loc := model.Location{Latitude: -33.87, Longitude: 151.21}
	weather := ClearSkyYear(loc.Latitude, 2023, nil)

	res, err := Optimize(context.Background(), loc, weather, Params{AzimuthStep: 30, TiltStep: 10})
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Best.Orientation.AzimuthDeg)
}

func TestOptimize_WorkersDoNotChangeResult(t *testing.T) {
	loc := model.Location{Latitude: 52, Longitude: 13}
	weather := ClearSkyYear(loc.Latitude, 2023, nil)

	a, err := Optimize(context.Background(), loc, weather, Params{AzimuthStep: 45, TiltStep: 15, Workers: 1})
	require.NoError(t, err)
	b, err := Optimize(context.Background(), loc, weather, Params{AzimuthStep: 45, TiltStep: 15, Workers: 6})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestOptimize_Errors(t *testing.T) {
	_, err := Optimize(context.Background(), model.Location{Latitude: 95}, ClearSkyYear(0, 2023, nil), Params{})
	var inErr *model.InputError
	assert.ErrorAs(t, err, &inErr)

	_, err = Optimize(context.Background(), model.Location{}, nil, Params{})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Optimize(ctx, model.Location{Latitude: 10}, ClearSkyYear(10, 2023, nil), Params{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClearSkySample(t *testing.T) {
	night := ClearSkySample(40, ClearSkyYear(40, 2023, nil)[0].Time)
	assert.Equal(t, 0.0, night.DirectNormalWm2)
	assert.Equal(t, ClearSkyTemperatureC, night.TemperatureC)

	noon := ClearSkyYear(40, 2023, nil)[24*171+12]
	assert.Greater(t, noon.DirectNormalWm2, 700.0)
	assert.Greater(t, noon.GlobalHorizontalWm2, noon.DirectNormalWm2*0.8)
}
