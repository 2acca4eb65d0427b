package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oreclock/ore/internal/store"
	"github.com/oreclock/ore/internal/timecalc"
)

var rateCmd = &cobra.Command{
	Use:   "rate [value]",
	Short: "Show or set the global hourly rate",
	Long: `Without an argument, print the global hourly rate. With one, set it.
The value accepts comma or dot decimals ("12,50" and "12.50" are the same);
anything unparseable counts as 0. Shifts recorded with their own rate are
not affected.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRate,
}

func runRate(cmd *cobra.Command, args []string) error {
	cfg, dir, st := openState()

	if len(args) == 0 {
		fmt.Printf("Hourly rate: %g %s\n", st.Settings.HourlyRate, cfg.Currency)
		return nil
	}

	rate := timecalc.ParseLocaleNumber(args[0])
	if rate < 0 {
		rate = 0
	}
	st.Settings.HourlyRate = rate
	if err := store.Save(dir, st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Printf("Hourly rate set to %g %s\n", rate, cfg.Currency)
	return nil
}
