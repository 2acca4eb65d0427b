package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oreclock/ore/internal/store"
)

var (
	rmDate string
	rmDay  bool
	rmYes  bool
)

var rmCmd = &cobra.Command{
	Use:   "rm [index]",
	Short: "Delete a recorded shift, or a whole day",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRm,
}

func init() {
	rmCmd.Flags().StringVar(&rmDate, "date", "", "Date (YYYY-MM-DD), default: last viewed day")
	rmCmd.Flags().BoolVar(&rmDay, "day", false, "Delete every shift of the day")
	rmCmd.Flags().BoolVar(&rmYes, "yes", false, "Skip the confirmation prompt")
}

func runRm(cmd *cobra.Command, args []string) error {
	if rmDay == (len(args) == 1) {
		return fmt.Errorf("pass a shift index (see \"ore list\") or --day, not both")
	}

	_, dir, st := openState()

	date, err := resolveDate(rmDate, st)
	if err != nil {
		return err
	}
	shifts := st.Shifts(date)
	if len(shifts) == 0 {
		return fmt.Errorf("nothing recorded on %s", date)
	}

	if rmDay {
		if !confirm(fmt.Sprintf("Delete all %d shift(s) of %s?", len(shifts), date)) {
			fmt.Println("Aborted.")
			return nil
		}
		st.DeleteDay(date)
	} else {
		index, err := strconv.Atoi(args[0])
		if err != nil || index < 1 || index > len(shifts) {
			return fmt.Errorf("no shift %q on %s (%d recorded)", args[0], date, len(shifts))
		}
		sh := shifts[index-1]
		if !confirm(fmt.Sprintf("Delete shift %d (%s–%s) of %s?", index, sh.Start, sh.End, date)) {
			fmt.Println("Aborted.")
			return nil
		}
		st.DeleteShift(date, index-1)
	}

	st.CurrentDate = date
	if err := store.Save(dir, st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Println("Deleted.")
	return nil
}

// confirm asks on stdin unless --yes was given.
func confirm(question string) bool {
	if rmYes {
		return true
	}
	fmt.Printf("%s [y/N] ", question)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
