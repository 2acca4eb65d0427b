package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oreclock/ore/internal/calc"
	"github.com/oreclock/ore/internal/model"
	"github.com/oreclock/ore/internal/report"
	"github.com/oreclock/ore/internal/timecalc"
)

var listCmd = &cobra.Command{
	Use:   "list [date]",
	Short: "List the shifts recorded for a day",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, _, st := openState()

	arg := ""
	if len(args) == 1 {
		arg = args[0]
	}
	date, err := resolveDate(arg, st)
	if err != nil {
		return err
	}

	shifts := st.Shifts(date)
	if len(shifts) == 0 {
		fmt.Printf("Nothing recorded on %s.\n", date)
		return nil
	}

	fmt.Printf("%s\n", date)
	for i, sh := range shifts {
		r := calc.ComputeShift(sh, st.Settings.HourlyRate)
		fmt.Printf("  %d. %s–%s%s  %s  %s%s\n",
			i+1, sh.Start, sh.End, describeBreaks(sh),
			timecalc.FormatHM(float64(r.WorkMin)),
			formatMoney(r.Money, cfg.Currency),
			describeNote(sh))
	}

	day := report.DayTotals(st, date)
	fmt.Printf("Total: %s worked, %s\n",
		timecalc.FormatHM(float64(day.WorkMin)), formatMoney(day.Money, cfg.Currency))
	return nil
}

func describeBreaks(sh model.Shift) string {
	if len(sh.Breaks) == 0 {
		return ""
	}
	parts := make([]string, len(sh.Breaks))
	for i, b := range sh.Breaks {
		parts[i] = b.Start + "–" + b.End
	}
	return " (breaks " + strings.Join(parts, ", ") + ")"
}

func describeNote(sh model.Shift) string {
	if sh.Note == "" {
		return ""
	}
	return "  # " + sh.Note
}
