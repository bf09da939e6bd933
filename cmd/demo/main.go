package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	_ "time/tzdata"

	"solar-optimizer/internal/data"
	"solar-optimizer/internal/model"
	"solar-optimizer/internal/simulate"
	"solar-optimizer/internal/solar"
)

// Demo:
// - Load a saved Open-Meteo archive (see cmd/fetch-weather)
// - Derive the orientation for its latitude
// - Simulate the first N hours and print each step of the power model
func main() {
	dataPath := flag.String("data", "data/archives/site.json", "Path to saved archive JSON")
	n := flag.Int("n", 24, "Number of hours to show")
	size := flag.Float64("size", model.DefaultSystemSizeKW, "System size (kW)")
	flag.Parse()

	resp, err := data.LoadArchiveJSON(*dataPath)
	if err != nil {
		panic(err)
	}
	weather, err := resp.Samples()
	if err != nil {
		panic(err)
	}
	if *n > 0 && *n < len(weather) {
		weather = weather[:*n]
	}

	loc := model.Location{Latitude: resp.Latitude, Longitude: resp.Longitude}
	rec := solar.OptimalOrientation(loc.Latitude)
	sys := model.DefaultSystem()
	sys.SizeKW = *size

	res, err := simulate.New(1).Run(context.Background(), simulate.Inputs{
		Location:       loc,
		Recommendation: rec,
		System:         sys,
		Weather:        weather,
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.4f, %.4f  tz=%s  azimuth=%.0f tilt=%.1f coeff=%.2f%%/°C\n",
		loc.Latitude, loc.Longitude, resp.Timezone,
		rec.Orientation.AzimuthDeg, rec.Orientation.TiltDeg, rec.Climate.TempCoefficientPct)
	fmt.Printf("%-17s %-5s %-7s %-7s %-7s %-7s %-7s %-6s %-8s\n",
		"time", "sun", "elev", "az", "aoi", "poa", "temp", "derate", "power_w")
	for _, r := range res.Ledger {
		fmt.Printf("%-17s %-5s %-7.1f %-7.1f %-7.1f %-7.1f %-7.1f %-6.3f %-8.1f\n",
			r.Time.Format("2006-01-02 15:04"), r.Sun,
			r.SunElevationDeg, r.SunAzimuthDeg, r.IncidenceDeg,
			r.PlaneOfArrayWm2, r.TemperatureC, r.DerateFactor, r.PowerW)
	}
	fmt.Fprintf(os.Stdout, "\nTotal: %.3f kWh over %d hours (%d daylight)\n",
		res.TotalEnergyKWh, len(res.Ledger), res.DaylightSamples)
}
