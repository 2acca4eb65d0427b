package report

import (
	"github.com/shopspring/decimal"

	"github.com/oreclock/ore/internal/calc"
	"github.com/oreclock/ore/internal/model"
	"github.com/oreclock/ore/internal/timecalc"
)

// Totals is an aggregate of worked minutes and money over some set of days.
type Totals struct {
	WorkMin int
	Money   decimal.Decimal
}

// Predicate selects date keys for aggregation.
type Predicate func(date string) bool

// OnDate matches exactly one date.
func OnDate(date string) Predicate {
	return func(d string) bool { return d == date }
}

// InWeekOf matches every date sharing the ISO week of the given date.
func InWeekOf(date string) Predicate {
	week := timecalc.ISOWeekKey(date)
	return func(d string) bool { return timecalc.ISOWeekKey(d) == week }
}

// InMonthOf matches every date in the calendar month of the given date.
func InMonthOf(date string) Predicate {
	month := timecalc.MonthKey(date)
	return func(d string) bool { return timecalc.MonthKey(d) == month }
}

// InYearOf matches every date in the calendar year of the given date.
func InYearOf(date string) Predicate {
	year := timecalc.YearKey(date)
	return func(d string) bool { return timecalc.YearKey(d) == year }
}

// TotalsFor rescans every stored shift and accumulates the ones whose date
// matches. Invalid shifts contribute nothing. A full rescan per query is
// fine: the horizon is one person's hand-entered days.
func TotalsFor(st *model.State, match Predicate) Totals {
	var t Totals
	for _, yd := range st.Years {
		for date, shifts := range yd.Days {
			if !match(date) {
				continue
			}
			for _, sh := range shifts {
				r := calc.ComputeShift(sh, st.Settings.HourlyRate)
				t.WorkMin += r.WorkMin
				t.Money = t.Money.Add(r.Money)
			}
		}
	}
	return t
}

// DayTotals sums one date's shifts.
func DayTotals(st *model.State, date string) Totals {
	return TotalsFor(st, OnDate(date))
}
