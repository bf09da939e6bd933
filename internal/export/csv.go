package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"solar-optimizer/internal/analysis"
	"solar-optimizer/internal/simulate"
)

// File names written by WriteAll.
const (
	HourlyCSV   = "hourly.csv"
	DailyCSV    = "daily.csv"
	MonthlyCSV  = "monthly.csv"
	WorkbookXLS = "solar_analysis.xlsx"
)

var hourlyHeader = []string{
	"index",
	"time_local",
	"temperature_c",
	"direct_normal_wm2",
	"diffuse_wm2",
	"global_horizontal_wm2",
	"sun",
	"sun_elevation_deg",
	"sun_azimuth_deg",
	"incidence_deg",
	"plane_of_array_wm2",
	"derate_factor",
	"power_w",
	"energy_wh",
	"cum_energy_kwh",
}

func WriteHourlyCSV(out io.Writer, ledger []simulate.HourlyRow) error {
	w := csv.NewWriter(out)
	if err := w.Write(hourlyHeader); err != nil {
		return err
	}
	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Index),
			fmtTime(r.Time),
			fmtFloat(r.TemperatureC),
			fmtFloat(r.DirectNormalWm2),
			fmtFloat(r.DiffuseWm2),
			fmtFloat(r.GlobalHorizontalWm2),
			string(r.Sun),
			fmtFloat(r.SunElevationDeg),
			fmtFloat(r.SunAzimuthDeg),
			fmtFloat(r.IncidenceDeg),
			fmtFloat(r.PlaneOfArrayWm2),
			fmtFloat(r.DerateFactor),
			fmtFloat(r.PowerW),
			fmtFloat(r.EnergyWh),
			fmtFloat(r.CumEnergyKWh),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func WriteDailyCSV(out io.Writer, daily []analysis.DailyTotal) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"date", "energy_kwh", "samples"}); err != nil {
		return err
	}
	for _, d := range daily {
		if err := w.Write([]string{fmtDate(d.Date), fmtFloat(d.EnergyKWh), strconv.Itoa(d.Samples)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func WriteMonthlyCSV(out io.Writer, monthly []analysis.MonthlyTotal) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"month", "energy_kwh", "days"}); err != nil {
		return err
	}
	for _, m := range monthly {
		if err := w.Write([]string{m.Label(), fmtFloat(m.EnergyKWh), strconv.Itoa(m.Days)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteAll writes the three CSVs and the workbook into dir and returns their paths.
func WriteAll(dir string, res *simulate.Result, rep analysis.Report) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	var paths []string
	write := func(name string, fn func(io.Writer) error) error {
		p := filepath.Join(dir, name)
		f, err := os.Create(p)
		if err != nil {
			return err
		}
		if err := fn(f); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", name, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		paths = append(paths, p)
		return nil
	}

	if err := write(HourlyCSV, func(w io.Writer) error { return WriteHourlyCSV(w, res.Ledger) }); err != nil {
		return nil, err
	}
	if err := write(DailyCSV, func(w io.Writer) error { return WriteDailyCSV(w, rep.Daily) }); err != nil {
		return nil, err
	}
	if err := write(MonthlyCSV, func(w io.Writer) error { return WriteMonthlyCSV(w, rep.Monthly) }); err != nil {
		return nil, err
	}
	if err := write(WorkbookXLS, func(w io.Writer) error { return WriteWorkbook(w, res, rep) }); err != nil {
		return nil, err
	}
	return paths, nil
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
