package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oreclock/ore/internal/report"
	"github.com/oreclock/ore/internal/store"
	"github.com/oreclock/ore/internal/timecalc"
)

var (
	showPrev bool
	showNext bool
)

var showCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Show a day and its day/week/month/year totals",
	Long: `Show the shifts of a day together with the aggregated totals of its
day, ISO week, month, and year. The viewed date is remembered, so a bare
"ore show" resumes where you left off; --prev and --next step through days.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showPrev, "prev", false, "Step one day back")
	showCmd.Flags().BoolVar(&showNext, "next", false, "Step one day forward")
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, dir, st := openState()

	arg := ""
	if len(args) == 1 {
		arg = args[0]
	}
	date, err := resolveDate(arg, st)
	if err != nil {
		return err
	}
	if showPrev {
		date = timecalc.AddDays(date, -1)
	}
	if showNext {
		date = timecalc.AddDays(date, 1)
	}

	// Remember the viewed date for the next invocation.
	if date != st.CurrentDate {
		st.CurrentDate = date
		if err := store.Save(dir, st); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	fmt.Printf("%s (week %s)\n", date, timecalc.ISOWeekKey(date))
	shifts := st.Shifts(date)
	if len(shifts) == 0 {
		fmt.Println("Nothing recorded for this date.")
	}
	for i, sh := range shifts {
		fmt.Printf("  %d. %s–%s%s%s\n", i+1, sh.Start, sh.End, describeBreaks(sh), describeNote(sh))
	}
	fmt.Println()

	rows := []struct {
		label  string
		totals report.Totals
	}{
		{"Day", report.TotalsFor(st, report.OnDate(date))},
		{"Week", report.TotalsFor(st, report.InWeekOf(date))},
		{"Month", report.TotalsFor(st, report.InMonthOf(date))},
		{"Year", report.TotalsFor(st, report.InYearOf(date))},
	}
	for _, row := range rows {
		fmt.Printf("%-8s%8s   %s\n", row.label,
			timecalc.FormatHM(float64(row.totals.WorkMin)),
			formatMoney(row.totals.Money, cfg.Currency))
	}
	return nil
}
