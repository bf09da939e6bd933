package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"solar-optimizer/internal/data"
	"solar-optimizer/internal/model"
	"solar-optimizer/pkg/logger"
)

// fetch-weather downloads Open-Meteo archive payloads to disk so analyses can
// be re-run offline with --data.
func main() {
	var (
		lat       = flag.Float64("lat", 0, "Latitude (single-site mode)")
		lon       = flag.Float64("lon", 0, "Longitude (single-site mode)")
		name      = flag.String("name", "", "Site name; with --lat/--lon selects single-site mode")
		sitesPath = flag.String("sites", "", "Sites JSON; fetches every site (default: single-site mode)")
		outDir    = flag.String("out", "./data/archives", "Output directory")
		start     = flag.String("start", "", "Range start YYYY-MM-DD (default: trailing year)")
		end       = flag.String("end", "", "Range end YYYY-MM-DD")
		pause     = flag.Duration("pause", time.Second, "Pause between sites")
	)
	flag.Parse()

	var sites []data.Site
	switch {
	case *sitesPath != "":
		list, err := data.LoadSites(*sitesPath)
		if err != nil {
			log.Fatalf("Failed to load sites: %v", err)
		}
		sites = list.Sites
	case *name != "":
		sites = []data.Site{{Name: *name, Latitude: *lat, Longitude: *lon}}
	default:
		log.Fatal("either --sites or --name with --lat/--lon is required")
	}

	rng := model.TrailingYear(time.Now())
	if *start != "" || *end != "" {
		r, err := model.ParseDateRange(*start, *end)
		if err != nil {
			log.Fatalf("Invalid range: %v", err)
		}
		rng = r
	}

	client := data.NewClient(os.Getenv("OPEN_METEO_BASE_URL"), nil, logger.NewWithWriter(os.Stderr, os.Getenv("LOG_LEVEL")))
	ctx := context.Background()

	fmt.Printf("Fetching %d site(s) for %s .. %s\n", len(sites), rng.StartString(), rng.EndString())
	for i, s := range sites {
		if i > 0 && *pause > 0 {
			time.Sleep(*pause)
		}
		resp, err := client.FetchArchive(ctx, data.ArchiveParams{Location: s.Location(), Range: rng})
		if err != nil {
			log.Fatalf("Failed to fetch %s: %v", s.Name, err)
		}
		path := filepath.Join(*outDir, data.ArchiveFileName(s.Name))
		if err := data.SaveArchiveJSON(resp, path); err != nil {
			log.Fatalf("Failed to save %s: %v", s.Name, err)
		}
		fmt.Printf("Saved %d hours for %s (%s) to %s\n", len(resp.Hourly.Time), s.Name, resp.Timezone, path)
	}
}
