package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"solar-optimizer/internal/analysis"
	"solar-optimizer/internal/model"
	"solar-optimizer/internal/simulate"
)

// Sheet names, in workbook order.
const (
	SheetHourly  = "Hourly Data"
	SheetDaily   = "Daily Summary"
	SheetMonthly = "Monthly Summary"
	SheetSystem  = "System Parameters"
)

// BuildWorkbook lays out the result and report over four sheets. Values are
// copied as computed; nothing is re-derived here.
func BuildWorkbook(res *simulate.Result, rep analysis.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetHourly); err != nil {
		return nil, err
	}
	for _, name := range []string{SheetDaily, SheetMonthly, SheetSystem} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	if err := writeHourlySheet(f, res.Ledger); err != nil {
		return nil, fmt.Errorf("%s: %w", SheetHourly, err)
	}

	daily := [][]any{{"Date", "Energy (kWh)", "Samples"}}
	for _, d := range rep.Daily {
		daily = append(daily, []any{fmtDate(d.Date), d.EnergyKWh, d.Samples})
	}
	if err := writeRows(f, SheetDaily, daily); err != nil {
		return nil, err
	}

	monthly := [][]any{{"Month", "Energy (kWh)", "Days"}}
	for _, m := range rep.Monthly {
		monthly = append(monthly, []any{m.Label(), m.EnergyKWh, m.Days})
	}
	if err := writeRows(f, SheetMonthly, monthly); err != nil {
		return nil, err
	}

	if err := writeRows(f, SheetSystem, systemRows(res, rep)); err != nil {
		return nil, err
	}
	return f, nil
}

func WriteWorkbook(w io.Writer, res *simulate.Result, rep analysis.Report) error {
	f, err := BuildWorkbook(res, rep)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteTo(w)
	return err
}

func writeHourlySheet(f *excelize.File, ledger []simulate.HourlyRow) error {
	sw, err := f.NewStreamWriter(SheetHourly)
	if err != nil {
		return err
	}
	header := make([]any, len(hourlyHeader))
	for i, h := range hourlyHeader {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}
	for i, r := range ledger {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			r.Index, fmtTime(r.Time),
			r.TemperatureC, r.DirectNormalWm2, r.DiffuseWm2, r.GlobalHorizontalWm2,
			string(r.Sun), r.SunElevationDeg, r.SunAzimuthDeg, r.IncidenceDeg,
			r.PlaneOfArrayWm2, r.DerateFactor, r.PowerW, r.EnergyWh, r.CumEnergyKWh,
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	return sw.Flush()
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s: %w", sheet, err)
		}
	}
	return nil
}

func systemRows(res *simulate.Result, rep analysis.Report) [][]any {
	rec := res.Recommendation
	sys := res.System
	fin := rep.Financials
	rows := [][]any{
		{"Parameter", "Value"},
		{"Latitude", res.Location.Latitude},
		{"Longitude", res.Location.Longitude},
		{"Panel azimuth (deg)", rec.Orientation.AzimuthDeg},
		{"Panel tilt (deg)", rec.Orientation.TiltDeg},
		{"Facing", rec.Climate.Facing},
		{"Hemisphere", rec.Climate.Hemisphere},
		{"Climate zone", rec.Climate.Zone},
		{"Temperature coefficient (%/C)", rec.Climate.TempCoefficientPct},
		{"System size (kW)", sys.SizeKW},
		{"System efficiency (%)", sys.SystemEfficiencyPct},
		{"Panel efficiency (%)", sys.PanelEfficiencyPct},
	}
	if area, err := model.PanelArea(sys.SizeKW, sys.PanelEfficiencyPct); err == nil {
		rows = append(rows, []any{"Panel area (m2)", area})
	}
	rows = append(rows,
		[]any{"Period start", fmtTime(rep.Start)},
		[]any{"Period end", fmtTime(rep.End)},
		[]any{"Samples", rep.Samples},
		[]any{"Annual energy (kWh)", rep.AnnualEnergyKWh},
		[]any{"Daily average (kWh)", rep.DailyAverageKWh},
		[]any{"Peak day", fmtDate(rep.PeakDay.Date)},
		[]any{"Peak day energy (kWh)", rep.PeakDay.EnergyKWh},
		[]any{"Capacity factor (%)", rep.CapacityFactorPct},
		[]any{"Specific yield (kWh/kWp)", rep.SpecificYield},
		[]any{"Electricity rate ($/kWh)", fin.ElectricityRate},
		[]any{"Annual savings ($)", fin.AnnualSavings},
		[]any{"Monthly savings ($)", fin.MonthlySavings},
		[]any{"System cost ($)", fin.SystemCost},
		[]any{"Payback", fin.Payback.String()},
		[]any{"25-year net savings ($)", fin.NetSavings25Y},
		[]any{"CO2 avoided (t/yr)", fin.CO2AvoidedTonnes},
	)
	return rows
}
