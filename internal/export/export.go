package export

import (
	"fmt"
	"os"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/oreclock/ore/internal/calc"
	"github.com/oreclock/ore/internal/model"
	"github.com/oreclock/ore/internal/report"
	"github.com/oreclock/ore/internal/timecalc"
)

// Sheet names, in workbook order.
const (
	SheetSummary = "Summary"
	SheetMonthly = "Monthly"
	SheetWeekly  = "Weekly"
	SheetDaily   = "Daily"
	SheetDetail  = "Detail"
)

// Table is one named sheet: ordered rows of ordered cells, first row the
// header (the Summary sheet uses label/value pairs instead).
type Table struct {
	Name string
	Rows [][]any
}

// Build assembles the five export tables for one 4-digit year: a per-shift
// detail plus daily, weekly and monthly aggregates sorted by ascending key
// (lexical order coincides with chronological order for these key formats),
// and a summary whose totals are summed from the monthly rows.
func Build(st *model.State, year string) []Table {
	rate := st.Settings.HourlyRate
	dates := st.DatesInYear(year)

	detail := [][]any{{"Date", "Start", "End", "Break_min", "Rate", "Hours", "Earnings", "Note"}}
	daily := map[string]report.Totals{}
	weekly := map[string]report.Totals{}
	monthly := map[string]report.Totals{}

	for _, date := range dates {
		for _, sh := range st.Shifts(date) {
			r := calc.ComputeShift(sh, rate)
			detail = append(detail, []any{
				date, sh.Start, sh.End, r.BreakMin,
				r.Rate.InexactFloat64(),
				float64(r.WorkMin) / 60,
				r.Money.InexactFloat64(),
				sh.Note,
			})
			accumulate(daily, date, r)
			accumulate(weekly, timecalc.ISOWeekKey(date), r)
			accumulate(monthly, timecalc.MonthKey(date), r)
		}
	}

	monthlyTable := aggregateTable(SheetMonthly, "Month", monthly)

	// The yearly totals are summed from the monthly rows as emitted, not by
	// re-aggregating raw shifts, so the summary always matches the sheet the
	// reader sees.
	var totalHours, totalMoney float64
	for _, row := range monthlyTable.Rows[1:] {
		totalHours += row[1].(float64)
		totalMoney += row[2].(float64)
	}
	summary := Table{Name: SheetSummary, Rows: [][]any{
		{"Year", year},
		{"Hourly_rate", rate},
		{"Total_hours", totalHours},
		{"Total_earnings", totalMoney},
	}}

	return []Table{
		summary,
		monthlyTable,
		aggregateTable(SheetWeekly, "Week", weekly),
		aggregateTable(SheetDaily, "Date", daily),
		{Name: SheetDetail, Rows: detail},
	}
}

func accumulate(m map[string]report.Totals, key string, r calc.Result) {
	t := m[key]
	t.WorkMin += r.WorkMin
	t.Money = t.Money.Add(r.Money)
	m[key] = t
}

func aggregateTable(name, keyHeader string, m map[string]report.Totals) Table {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := [][]any{{keyHeader, "Hours", "Earnings"}}
	for _, k := range keys {
		t := m[k]
		rows = append(rows, []any{k, float64(t.WorkMin) / 60, t.Money.InexactFloat64()})
	}
	return Table{Name: name, Rows: rows}
}

// WriteFile serializes the tables to an .xlsx workbook, one sheet per table.
// The workbook is assembled fully in memory and lands via a temp file and
// rename, so a failed export never leaves a partial file behind.
func WriteFile(tables []Table, path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, tbl := range tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", tbl.Name); err != nil {
				return fmt.Errorf("export error naming sheet %s: %w", tbl.Name, err)
			}
		} else if _, err := f.NewSheet(tbl.Name); err != nil {
			return fmt.Errorf("export error creating sheet %s: %w", tbl.Name, err)
		}
		for r, row := range tbl.Rows {
			for c, cell := range row {
				ref, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					return fmt.Errorf("export error addressing cell: %w", err)
				}
				if err := f.SetCellValue(tbl.Name, ref, cell); err != nil {
					return fmt.Errorf("export error writing cell %s!%s: %w", tbl.Name, ref, err)
				}
			}
		}
	}

	// The temp name must keep the .xlsx extension: SaveAs refuses to write
	// workbook formats it does not recognise from the file name.
	tmpPath := path + ".tmp.xlsx"
	if err := f.SaveAs(tmpPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("export error writing %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("export error renaming temp file: %w", err)
	}
	return nil
}
