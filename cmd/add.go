package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oreclock/ore/internal/calc"
	"github.com/oreclock/ore/internal/model"
	"github.com/oreclock/ore/internal/store"
	"github.com/oreclock/ore/internal/timecalc"
)

var (
	addDate   string
	addStart  string
	addEnd    string
	addBreaks []string
	addRate   string
	addNote   string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a work shift",
	Args:  cobra.NoArgs,
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "Date (YYYY-MM-DD), default: last viewed day")
	addCmd.Flags().StringVar(&addStart, "start", "", "Shift start (HH:MM)")
	addCmd.Flags().StringVar(&addEnd, "end", "", "Shift end (HH:MM)")
	addCmd.Flags().StringArrayVar(&addBreaks, "break", nil, "Break interval HH:MM-HH:MM (repeatable)")
	addCmd.Flags().StringVar(&addRate, "rate", "", "Hourly rate override for this shift")
	addCmd.Flags().StringVar(&addNote, "note", "", "Optional note")
	_ = addCmd.MarkFlagRequired("start")
	_ = addCmd.MarkFlagRequired("end")
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, dir, st := openState()

	date, err := resolveDate(addDate, st)
	if err != nil {
		return err
	}

	shift, err := buildShift(cmd, addStart, addEnd, addBreaks, addRate, addNote)
	if err != nil {
		return err
	}
	if err := calc.Validate(shift); err != nil {
		return fmt.Errorf("shift not saved: %w", err)
	}

	st.AddShift(date, shift)
	st.CurrentDate = date
	if err := store.Save(dir, st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	r := calc.ComputeShift(shift, st.Settings.HourlyRate)
	fmt.Printf("Added shift %s–%s on %s: %s worked, %s\n",
		shift.Start, shift.End, date,
		timecalc.FormatHM(float64(r.WorkMin)), formatMoney(r.Money, cfg.Currency))
	return nil
}

// buildShift assembles a shift from command flags. The rate flag is parsed
// with the same permissive locale rules as the stored numbers; clock values
// and break syntax are validated here, at the input boundary.
func buildShift(cmd *cobra.Command, start, end string, breaks []string, rate, note string) (model.Shift, error) {
	startClock, err := parseClockArg(start)
	if err != nil {
		return model.Shift{}, err
	}
	endClock, err := parseClockArg(end)
	if err != nil {
		return model.Shift{}, err
	}

	shift := model.Shift{Start: startClock, End: endClock, Breaks: []model.Break{}, Note: note}
	for _, b := range breaks {
		br, err := parseBreakArg(b)
		if err != nil {
			return model.Shift{}, err
		}
		shift.Breaks = append(shift.Breaks, br)
	}
	if cmd.Flags().Changed("rate") {
		r := timecalc.ParseLocaleNumber(rate)
		shift.Rate = &r
	}
	return shift, nil
}
