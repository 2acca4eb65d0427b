package calc

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/oreclock/ore/internal/model"
	"github.com/oreclock/ore/internal/timecalc"
)

var sixty = decimal.NewFromInt(60)

// ErrInvalidRange rejects a shift whose end is not after its start. This is
// the one hard error of the arithmetic core; everything else normalizes.
var ErrInvalidRange = errors.New("shift end must be after its start")

// Result is the outcome of computing one shift. An invalid shift has
// OK=false and contributes zero minutes and zero money everywhere.
type Result struct {
	OK       bool
	WorkMin  int
	BreakMin int
	Rate     decimal.Decimal
	Money    decimal.Decimal
}

// Validate checks the save-boundary invariant: a shift may only be persisted
// when its end is strictly after its start.
func Validate(shift model.Shift) error {
	if timecalc.ClockToMinutes(shift.End) <= timecalc.ClockToMinutes(shift.Start) {
		return ErrInvalidRange
	}
	return nil
}

// EffectiveRate resolves the hourly rate to apply: the shift's own override
// when present, otherwise the global fallback.
func EffectiveRate(shift model.Shift, fallback float64) decimal.Decimal {
	if shift.Rate != nil {
		return decimal.NewFromFloat(*shift.Rate)
	}
	return decimal.NewFromFloat(fallback)
}

// Earnings converts worked minutes at an hourly rate into money.
func Earnings(workMin int, rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(workMin)).Mul(rate).Div(sixty)
}

// ComputeShift derives worked minutes and money for one shift. Breaks are
// clipped to the shift interval, their clipped durations subtracted from the
// raw span, and the result floored at zero. Invalid shifts (end <= start)
// short-circuit to the zero Result.
func ComputeShift(shift model.Shift, fallbackRate float64) Result {
	start := timecalc.ClockToMinutes(shift.Start)
	end := timecalc.ClockToMinutes(shift.End)
	if end <= start {
		return Result{}
	}

	breakMin := 0
	for _, b := range shift.Breaks {
		breakMin += clippedBreak(b, start, end)
	}

	work := end - start - breakMin
	if work < 0 {
		work = 0
	}

	rate := EffectiveRate(shift, fallbackRate)
	return Result{
		OK:       true,
		WorkMin:  work,
		BreakMin: breakMin,
		Rate:     rate,
		Money:    Earnings(work, rate),
	}
}

// clippedBreak returns the minutes of b that overlap [start, end]. Breaks
// partially or fully outside the shift are truncated, not rejected, and a
// degenerate break (end <= start) counts as zero.
func clippedBreak(b model.Break, start, end int) int {
	bs := timecalc.ClockToMinutes(b.Start)
	be := timecalc.ClockToMinutes(b.End)
	if bs < start {
		bs = start
	}
	if be > end {
		be = end
	}
	if be <= bs {
		return 0
	}
	return be - bs
}
