package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"
	_ "time/tzdata"

	"solar-optimizer/internal/config"
	"solar-optimizer/internal/data"
	"solar-optimizer/internal/export"
	"solar-optimizer/internal/model"
	"solar-optimizer/internal/pipeline"
	"solar-optimizer/internal/search"
	"solar-optimizer/internal/solar"
	"solar-optimizer/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch os.Args[1] {
	case "orient":
		cmdOrient(os.Args[2:])
	case "analyze":
		cmdAnalyze(ctx, os.Args[2:])
	case "search":
		cmdSearch(ctx, os.Args[2:])
	case "rank":
		cmdRank(ctx, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli orient --lat 37.7749 --lon -122.4194")
	fmt.Println("  cli analyze --config examples/config.yaml [--data archive.json] [--out results/] [--workers N]")
	fmt.Println("  cli search --lat 37.7749 --lon -122.4194 [--data archive.json] [--azimuth-step 10] [--tilt-step 5]")
	fmt.Println("  cli rank [--sites data/sites.json] [--data data/archives] [--start YYYY-MM-DD --end YYYY-MM-DD]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - without --data, weather is fetched from the Open-Meteo archive for the trailing year")
	fmt.Println("  - analyze writes hourly/daily/monthly CSVs and an xlsx workbook into --out")
	fmt.Println("  - search without --data evaluates a synthetic clear-sky year")
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func cmdOrient(args []string) {
	fs := flag.NewFlagSet("orient", flag.ExitOnError)
	lat := fs.Float64("lat", 0, "Latitude in decimal degrees")
	lon := fs.Float64("lon", 0, "Longitude in decimal degrees")
	_ = fs.Parse(args)

	loc := model.Location{Latitude: *lat, Longitude: *lon}
	must(loc.Validate())

	rec := solar.OptimalOrientation(loc.Latitude)
	fmt.Printf("Location:      %.4f, %.4f (%s hemisphere)\n", loc.Latitude, loc.Longitude, rec.Climate.Hemisphere)
	fmt.Printf("Azimuth:       %.0f° (%s)\n", rec.Orientation.AzimuthDeg, rec.Climate.Facing)
	fmt.Printf("Tilt:          %.1f°\n", rec.Orientation.TiltDeg)
	fmt.Printf("Climate zone:  %s\n", rec.Climate.Zone)
	fmt.Printf("Temp coeff:    %.2f %%/°C\n", rec.Climate.TempCoefficientPct)
}

func cmdAnalyze(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	dataPath := fs.String("data", "", "Optional: saved Open-Meteo archive JSON instead of fetching")
	outDir := fs.String("out", "results", "Output directory")
	workers := fs.Int("workers", 0, "Simulation workers (0 = config or NumCPU)")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}
	cfg, err := config.Load(*cfgPath)
	must(err)
	if *workers == 0 {
		*workers = cfg.Simulation.Workers
	}

	log := logger.NewWithWriter(os.Stderr, os.Getenv("LOG_LEVEL"))
	var src pipeline.WeatherSource = data.NewClient(os.Getenv("OPEN_METEO_BASE_URL"), nil, log)
	if *dataPath != "" {
		src = data.ArchiveFile{Path: *dataPath}
	}
	analyzer := pipeline.New(src, *workers, log)

	rng, err := cfg.DateRange(analyzer.Now())
	must(err)
	out, err := analyzer.Run(ctx, cfg.Location(), cfg.System.ToModelParams(), &rng)
	must(err)

	paths, err := export.WriteAll(*outDir, out.Result, out.Report)
	must(err)
	for _, p := range paths {
		fmt.Printf("Wrote %s\n", p)
	}
	printReport(cfg.Site.Name, out)
}

func printReport(name string, out *pipeline.Outcome) {
	rep := out.Report
	rec := out.Plan.Recommendation
	fin := rep.Financials
	if name == "" {
		name = "site"
	}
	fmt.Println("")
	fmt.Printf("%s: azimuth %.0f° (%s), tilt %.1f°, %s\n",
		name, rec.Orientation.AzimuthDeg, rec.Climate.Facing, rec.Orientation.TiltDeg, rec.Climate.Zone)
	fmt.Printf("Window:            %s .. %s (%d samples)\n",
		out.Plan.Inputs.Range.StartString(), out.Plan.Inputs.Range.EndString(), rep.Samples)
	fmt.Printf("Annual energy:     %.1f kWh\n", rep.AnnualEnergyKWh)
	fmt.Printf("Daily average:     %.2f kWh\n", rep.DailyAverageKWh)
	fmt.Printf("Peak day:          %s (%.2f kWh)\n", rep.PeakDay.Date.Format("2006-01-02"), rep.PeakDay.EnergyKWh)
	fmt.Printf("Capacity factor:   %.2f%%\n", rep.CapacityFactorPct)
	fmt.Printf("Specific yield:    %.0f kWh/kWp\n", rep.SpecificYield)
	fmt.Printf("Annual savings:    $%.2f ($%.2f/month at $%.3f/kWh)\n", fin.AnnualSavings, fin.MonthlySavings, fin.ElectricityRate)
	fmt.Printf("System cost:       $%.0f, payback %s\n", fin.SystemCost, fin.Payback)
	fmt.Printf("25-year net:       $%.0f\n", fin.NetSavings25Y)
	fmt.Printf("CO2 avoided:       %.2f t/yr\n", fin.CO2AvoidedTonnes)
}

func cmdSearch(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	lat := fs.Float64("lat", 0, "Latitude in decimal degrees")
	lon := fs.Float64("lon", 0, "Longitude in decimal degrees")
	dataPath := fs.String("data", "", "Optional: saved archive JSON (default: synthetic clear-sky year)")
	azStep := fs.Float64("azimuth-step", search.DefaultAzimuthStep, "Azimuth grid spacing (degrees, >= 1)")
	tiltStep := fs.Float64("tilt-step", search.DefaultTiltStep, "Tilt grid spacing (degrees, >= 1)")
	workers := fs.Int("workers", 0, "Search workers (0 = NumCPU)")
	_ = fs.Parse(args)

	loc := model.Location{Latitude: *lat, Longitude: *lon}
	must(loc.Validate())

	var weather []model.WeatherSample
	if *dataPath != "" {
		samples, err := data.ArchiveFile{Path: *dataPath}.FetchSamples(ctx, data.ArchiveParams{Location: loc})
		must(err)
		weather = samples
	} else {
		weather = search.ClearSkyYear(loc.Latitude, time.Now().Year()-1, nil)
	}

	res, err := search.Optimize(ctx, loc, weather, search.Params{
		AzimuthStep: *azStep,
		TiltStep:    *tiltStep,
		Workers:     *workers,
	})
	must(err)

	fmt.Printf("Evaluated %d orientations over %d hours\n", res.Evaluated, len(weather))
	fmt.Printf("%-10s %-9s %-7s %-14s\n", "candidate", "azimuth", "tilt", "kWh/kWp")
	for _, row := range []struct {
		name string
		c    search.Candidate
	}{{"best", res.Best}, {"rule", res.Rule}, {"flat", res.Flat}} {
		fmt.Printf("%-10s %-9.0f %-7.1f %-14.1f\n", row.name, row.c.Orientation.AzimuthDeg, row.c.Orientation.TiltDeg, row.c.EnergyKWh)
	}
	fmt.Printf("Best vs flat: %+.2f%%  Best vs rule: %+.2f%%\n", res.ImprovementVsFlatPct, res.ImprovementVsRulePct)
}

func cmdRank(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	sitesPath := fs.String("sites", data.DefaultSitesPath(), "Sites JSON")
	dataDir := fs.String("data", "", "Optional: directory of saved archives named <site>.json")
	start := fs.String("start", "", "Range start YYYY-MM-DD (default: trailing year)")
	end := fs.String("end", "", "Range end YYYY-MM-DD")
	size := fs.Float64("size", model.DefaultSystemSizeKW, "System size (kW)")
	_ = fs.Parse(args)

	list, err := data.LoadSites(*sitesPath)
	must(err)

	log := logger.NewWithWriter(os.Stderr, os.Getenv("LOG_LEVEL"))
	var src pipeline.WeatherSource = data.NewClient(os.Getenv("OPEN_METEO_BASE_URL"), nil, log)
	if *dataDir != "" {
		src = data.ArchiveDir{Dir: *dataDir, Sites: list.Sites}
	}
	analyzer := pipeline.New(src, 0, log)

	var rng *model.DateRange
	if *start != "" || *end != "" {
		r, err := model.ParseDateRange(*start, *end)
		must(err)
		rng = &r
	}
	sys := model.DefaultSystem()
	sys.SizeKW = *size

	ranked, err := analyzer.Rank(ctx, list.Sites, sys, rng)
	must(err)

	fmt.Printf("%-4s %-18s %-20s %-12s %-12s %-8s\n", "rank", "site", "lat/lon", "kWh", "kWh/kWp", "CF%")
	for i, r := range ranked {
		fmt.Printf(
			"%-4d %-18s %-9.3f/%-10.3f %-12.1f %-12.1f %-8.2f\n",
			i+1,
			r.Name,
			r.Location.Latitude,
			r.Location.Longitude,
			r.AnnualEnergyKWh,
			r.SpecificYield,
			r.CapacityFactorPct,
		)
	}
}
