package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/oreclock/ore/internal/calc"
	"github.com/oreclock/ore/internal/model"
	"github.com/oreclock/ore/internal/store"
	"github.com/oreclock/ore/internal/timecalc"
)

var (
	editDate   string
	editStart  string
	editEnd    string
	editBreaks []string
	editRate   string
	editNote   string
)

var editCmd = &cobra.Command{
	Use:   "edit <index>",
	Short: "Change a recorded shift",
	Long: `Change the shift at the given index (see "ore list") of a day.
Only the flags you pass are changed; everything else keeps its value.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editDate, "date", "", "Date (YYYY-MM-DD), default: last viewed day")
	editCmd.Flags().StringVar(&editStart, "start", "", "Shift start (HH:MM)")
	editCmd.Flags().StringVar(&editEnd, "end", "", "Shift end (HH:MM)")
	editCmd.Flags().StringArrayVar(&editBreaks, "break", nil, "Replace breaks with HH:MM-HH:MM intervals (repeatable)")
	editCmd.Flags().StringVar(&editRate, "rate", "", "Hourly rate override; empty string clears it")
	editCmd.Flags().StringVar(&editNote, "note", "", "Note text")
}

func runEdit(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid shift index %q", args[0])
	}

	cfg, dir, st := openState()

	date, err := resolveDate(editDate, st)
	if err != nil {
		return err
	}
	shifts := st.Shifts(date)
	if index < 1 || index > len(shifts) {
		return fmt.Errorf("no shift %d on %s (%d recorded)", index, date, len(shifts))
	}
	shift := shifts[index-1]

	if cmd.Flags().Changed("start") {
		if shift.Start, err = parseClockArg(editStart); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("end") {
		if shift.End, err = parseClockArg(editEnd); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("break") {
		shift.Breaks = []model.Break{}
		for _, b := range editBreaks {
			br, err := parseBreakArg(b)
			if err != nil {
				return err
			}
			shift.Breaks = append(shift.Breaks, br)
		}
	}
	if cmd.Flags().Changed("rate") {
		if editRate == "" {
			shift.Rate = nil
		} else {
			r := timecalc.ParseLocaleNumber(editRate)
			shift.Rate = &r
		}
	}
	if cmd.Flags().Changed("note") {
		shift.Note = editNote
	}

	if err := calc.Validate(shift); err != nil {
		return fmt.Errorf("shift not saved: %w", err)
	}

	st.ReplaceShift(date, index-1, shift)
	st.CurrentDate = date
	if err := store.Save(dir, st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	r := calc.ComputeShift(shift, st.Settings.HourlyRate)
	fmt.Printf("Updated shift %d on %s: %s–%s, %s worked, %s\n",
		index, date, shift.Start, shift.End,
		timecalc.FormatHM(float64(r.WorkMin)), formatMoney(r.Money, cfg.Currency))
	return nil
}
