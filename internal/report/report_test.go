package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oreclock/ore/internal/model"
	"github.com/oreclock/ore/internal/report"
)

// fixtureState spreads shifts over two ISO-week-sharing years:
// 2022-12-30/31 and 2023-01-01 all belong to 2022-W52.
func fixtureState() *model.State {
	st := model.Default()
	st.Settings.HourlyRate = 10

	add := func(date, start, end string) {
		st.AddShift(date, model.Shift{Start: start, End: end, Breaks: []model.Break{}})
	}
	add("2022-12-30", "09:00", "11:00") // 120 min
	add("2022-12-31", "09:00", "12:00") // 180 min
	add("2023-01-01", "10:00", "11:30") // 90 min, same ISO week as above
	add("2023-01-10", "09:00", "10:00") // 60 min, different week/month bucket
	add("2023-02-01", "09:00", "13:00") // 240 min
	return st
}

func TestOnDate(t *testing.T) {
	st := fixtureState()
	got := report.TotalsFor(st, report.OnDate("2022-12-31"))
	assert.Equal(t, 180, got.WorkMin)
	assert.Equal(t, "30.00", got.Money.StringFixed(2))
}

func TestInWeekOfCrossesYearBoundary(t *testing.T) {
	st := fixtureState()
	// 2023-01-01 is owned by 2022-W52; the week total spans both years.
	got := report.TotalsFor(st, report.InWeekOf("2023-01-01"))
	assert.Equal(t, 120+180+90, got.WorkMin)

	same := report.TotalsFor(st, report.InWeekOf("2022-12-30"))
	assert.Equal(t, got.WorkMin, same.WorkMin)
}

func TestInMonthOf(t *testing.T) {
	st := fixtureState()
	got := report.TotalsFor(st, report.InMonthOf("2023-01-15"))
	assert.Equal(t, 90+60, got.WorkMin)
}

func TestInYearOf(t *testing.T) {
	st := fixtureState()
	got := report.TotalsFor(st, report.InYearOf("2023-06-01"))
	assert.Equal(t, 90+60+240, got.WorkMin)
	assert.Equal(t, "65.00", got.Money.StringFixed(2))
}

func TestInvalidShiftsContributeNothing(t *testing.T) {
	st := model.Default()
	st.Settings.HourlyRate = 10
	st.AddShift("2026-08-29", model.Shift{Start: "09:00", End: "09:00", Breaks: []model.Break{}})
	st.AddShift("2026-08-29", model.Shift{Start: "10:00", End: "11:00", Breaks: []model.Break{}})

	got := report.DayTotals(st, "2026-08-29")
	assert.Equal(t, 60, got.WorkMin)
	assert.Equal(t, "10.00", got.Money.StringFixed(2))
}

func TestPerShiftRateOverrides(t *testing.T) {
	st := model.Default()
	st.Settings.HourlyRate = 10
	override := 20.0
	st.AddShift("2026-08-29", model.Shift{Start: "09:00", End: "10:00", Breaks: []model.Break{}})
	st.AddShift("2026-08-29", model.Shift{Start: "10:00", End: "11:00", Breaks: []model.Break{}, Rate: &override})

	got := report.DayTotals(st, "2026-08-29")
	assert.Equal(t, 120, got.WorkMin)
	assert.Equal(t, "30.00", got.Money.StringFixed(2))
}

func TestAggregationIsOrderIndependent(t *testing.T) {
	// Build the same logical state with two different insertion orders and
	// check the sums agree exactly (decimal arithmetic, no float drift).
	shifts := []struct{ date, start, end string }{
		{"2026-01-05", "09:00", "17:00"},
		{"2026-01-06", "08:15", "12:45"},
		{"2026-01-07", "10:00", "16:30"},
		{"2026-02-01", "09:00", "11:00"},
	}

	forward := model.Default()
	forward.Settings.HourlyRate = 12.34
	for _, s := range shifts {
		forward.AddShift(s.date, model.Shift{Start: s.start, End: s.end, Breaks: []model.Break{}})
	}

	backward := model.Default()
	backward.Settings.HourlyRate = 12.34
	for i := len(shifts) - 1; i >= 0; i-- {
		s := shifts[i]
		backward.AddShift(s.date, model.Shift{Start: s.start, End: s.end, Breaks: []model.Break{}})
	}

	a := report.TotalsFor(forward, report.InYearOf("2026-01-01"))
	b := report.TotalsFor(backward, report.InYearOf("2026-01-01"))
	require.Equal(t, a.WorkMin, b.WorkMin)
	require.True(t, a.Money.Equal(b.Money), "%s != %s", a.Money, b.Money)
}

func TestEmptyStateTotals(t *testing.T) {
	st := model.Default()
	got := report.TotalsFor(st, report.InYearOf("2026-01-01"))
	assert.Zero(t, got.WorkMin)
	assert.True(t, got.Money.IsZero())
}
