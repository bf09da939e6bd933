package search

import (
	"math"
	"time"

	"solar-optimizer/internal/model"
	"solar-optimizer/internal/solar"
)

// ClearSkyTemperatureC is the ambient temperature assumed for synthetic weather.
const ClearSkyTemperatureC = 20.0

// ClearSkyYear synthesizes one hourly year of cloudless weather for a latitude,
// for use when no archive data is available. DNI follows a simple air-mass
// attenuation (900·e^(-0.13·AM)); diffuse is 100·sin(elevation).
func ClearSkyYear(latitude float64, year int, tz *time.Location) []model.WeatherSample {
	if tz == nil {
		tz = time.UTC
	}
	start := time.Date(year, 1, 1, 0, 0, 0, 0, tz)
	end := start.AddDate(1, 0, 0)
	var out []model.WeatherSample
	for ts := start; ts.Before(end); ts = ts.Add(time.Hour) {
		out = append(out, ClearSkySample(latitude, ts))
	}
	return out
}

func ClearSkySample(latitude float64, ts time.Time) model.WeatherSample {
	w := model.WeatherSample{Time: ts, TemperatureC: ClearSkyTemperatureC}
	sun := solar.SunPosition(latitude, ts)
	if !sun.AboveHorizon() {
		return w
	}
	sinE := math.Sin(sun.ElevationDeg * math.Pi / 180)
	airMass := 1 / sinE
	w.DirectNormalWm2 = 900 * math.Exp(-0.13*airMass)
	w.DiffuseWm2 = 100 * sinE
	w.GlobalHorizontalWm2 = w.DirectNormalWm2*sinE + w.DiffuseWm2
	return w
}
