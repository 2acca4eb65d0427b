package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oreclock/ore/internal/report"
	"github.com/oreclock/ore/internal/timecalc"
)

var (
	reportPeriod string
	reportDate   string
	reportFormat string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show aggregated hours and earnings",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportPeriod, "period", "all", "Period: day, week, month, year, all")
	reportCmd.Flags().StringVar(&reportDate, "date", "", "Anchor date (YYYY-MM-DD), default: last viewed day")
	reportCmd.Flags().StringVar(&reportFormat, "format", "md", "Output format: md, csv")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, _, st := openState()

	date, err := resolveDate(reportDate, st)
	if err != nil {
		return err
	}

	type bucket struct {
		period string
		key    string
		totals report.Totals
	}
	all := []bucket{
		{"day", date, report.TotalsFor(st, report.OnDate(date))},
		{"week", timecalc.ISOWeekKey(date), report.TotalsFor(st, report.InWeekOf(date))},
		{"month", timecalc.MonthKey(date), report.TotalsFor(st, report.InMonthOf(date))},
		{"year", timecalc.YearKey(date), report.TotalsFor(st, report.InYearOf(date))},
	}

	var selected []bucket
	for _, b := range all {
		if reportPeriod == "all" || reportPeriod == b.period {
			selected = append(selected, b)
		}
	}
	if len(selected) == 0 {
		return fmt.Errorf("unknown period %q (day, week, month, year, all)", reportPeriod)
	}

	switch reportFormat {
	case "csv":
		fmt.Println("period,key,hours,earnings")
		for _, b := range selected {
			hours := float64(b.totals.WorkMin) / 60
			fmt.Printf("%s,%s,%.4f,%s\n", b.period, b.key, hours, b.totals.Money.StringFixed(2))
		}
	default: // md
		fmt.Printf("Totals around %s\n", date)
		fmt.Println("--------------------------------")
		for _, b := range selected {
			fmt.Printf("%-7s %-10s %8s  %s\n", b.period, b.key,
				timecalc.FormatHM(float64(b.totals.WorkMin)),
				formatMoney(b.totals.Money, cfg.Currency))
		}
	}
	return nil
}
