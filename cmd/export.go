package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oreclock/ore/internal/export"
	"github.com/oreclock/ore/internal/timecalc"
)

var (
	exportYear string
	exportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a year to an .xlsx workbook",
	Long: `Export every shift of one calendar year to a spreadsheet with five
sheets: Summary, Monthly, Weekly, Daily, and a per-shift Detail.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportYear, "year", "", "4-digit year, default: year of the last viewed day")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file, default: Ore_<year>.xlsx")
}

func runExport(cmd *cobra.Command, args []string) error {
	_, _, st := openState()

	year := exportYear
	if year == "" {
		date, err := resolveDate("", st)
		if err != nil {
			return err
		}
		year = timecalc.YearKey(date)
	}
	if len(year) != 4 {
		return fmt.Errorf("invalid year %q (expected YYYY)", year)
	}

	dates := st.DatesInYear(year)
	if len(dates) == 0 {
		return fmt.Errorf("nothing recorded in %s", year)
	}

	out := exportOut
	if out == "" {
		out = fmt.Sprintf("Ore_%s.xlsx", year)
	}

	if err := export.WriteFile(export.Build(st, year), out); err != nil {
		return fmt.Errorf("export failed, no file written: %w", err)
	}
	fmt.Printf("Exported %d day(s) of %s to %s\n", len(dates), year, out)
	return nil
}
