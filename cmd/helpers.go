package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/oreclock/ore/internal/config"
	"github.com/oreclock/ore/internal/model"
	"github.com/oreclock/ore/internal/store"
	"github.com/oreclock/ore/internal/timecalc"
)

// openState loads config and the full state. Config problems degrade to
// defaults with a warning; an unusable data directory is fatal.
func openState() (config.Config, string, *model.State) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}

	dir := cfg.DataDir
	if os.Getenv("ORE_DATA_DIR") != "" || dir == "" {
		dir, err = store.DefaultDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	return cfg, dir, store.Load(dir)
}

// resolveDate picks the date a command operates on: explicit argument, else
// the last viewed date, else today.
func resolveDate(arg string, st *model.State) (string, error) {
	switch {
	case arg != "":
		if !timecalc.ValidDate(arg) {
			return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", arg)
		}
		return arg, nil
	case st.CurrentDate != "":
		return st.CurrentDate, nil
	default:
		return timecalc.Today(), nil
	}
}

// parseClockArg validates and normalizes a user-supplied "HH:MM" value, so
// "9:00" is stored as "09:00". Inside the stored model clock values are
// permissive; the command line is where bad input is caught.
func parseClockArg(s string) (string, error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return "", fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return "", fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	minutes, err := strconv.Atoi(m)
	if err != nil {
		return "", fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	total := hours*60 + minutes
	if hours < 0 || minutes < 0 || minutes > 59 || total > 1440 {
		return "", fmt.Errorf("time %q out of range (00:00 to 24:00)", s)
	}
	return timecalc.MinutesToClock(total), nil
}

// parseBreakArg splits a "HH:MM-HH:MM" break flag. The bounds themselves are
// permissive (clipped at computation time); only the flag syntax is checked.
func parseBreakArg(s string) (model.Break, error) {
	from, to, ok := strings.Cut(s, "-")
	if !ok {
		return model.Break{}, fmt.Errorf("invalid break %q (expected HH:MM-HH:MM)", s)
	}
	start, err := parseClockArg(from)
	if err != nil {
		return model.Break{}, err
	}
	end, err := parseClockArg(to)
	if err != nil {
		return model.Break{}, err
	}
	return model.Break{Start: start, End: end}, nil
}

func formatMoney(money decimal.Decimal, currency string) string {
	return money.StringFixed(2) + " " + currency
}
