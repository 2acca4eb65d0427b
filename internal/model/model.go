package model

import "sort"

// Settings holds the global configuration stored alongside the recorded days.
type Settings struct {
	// HourlyRate is the fallback pay rate applied to shifts that carry no
	// rate of their own. Non-negative; 0 means "unpaid / not configured".
	HourlyRate float64 `json:"hourlyRate"`
}

// Break is a deduction interval within a shift, as "HH:MM" clock times.
// A break whose end is not after its start contributes nothing.
type Break struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Shift is one work interval within a day.
type Shift struct {
	Start  string   `json:"start"`
	End    string   `json:"end"`
	Breaks []Break  `json:"breaks"`
	Rate   *float64 `json:"rate,omitempty"`
	Note   string   `json:"note,omitempty"`
}

// YearData groups the recorded days of one calendar year.
type YearData struct {
	// Days maps "YYYY-MM-DD" to that day's shifts in insertion order.
	Days map[string][]Shift `json:"days"`
}

// State is the root of everything the tool persists: settings, all recorded
// shifts keyed by year and date, and the last viewed date.
type State struct {
	CurrentDate string              `json:"currentDate"`
	Settings    Settings            `json:"settings"`
	Years       map[string]YearData `json:"years"`
}

// Default returns a fresh empty state.
func Default() *State {
	return &State{
		Settings: Settings{HourlyRate: 0},
		Years:    map[string]YearData{},
	}
}

func yearOf(date string) string {
	if len(date) < 4 {
		return date
	}
	return date[:4]
}

// Shifts returns the shifts recorded for date, nil if none.
func (s *State) Shifts(date string) []Shift {
	yd, ok := s.Years[yearOf(date)]
	if !ok {
		return nil
	}
	return yd.Days[date]
}

// SetShifts replaces the shifts of date. An empty list prunes the day (and
// the year bucket, once its last day is gone) so no placeholder is stored.
func (s *State) SetShifts(date string, shifts []Shift) {
	year := yearOf(date)
	if len(shifts) == 0 {
		yd, ok := s.Years[year]
		if !ok {
			return
		}
		delete(yd.Days, date)
		if len(yd.Days) == 0 {
			delete(s.Years, year)
		}
		return
	}
	yd, ok := s.Years[year]
	if !ok {
		yd = YearData{Days: map[string][]Shift{}}
		s.Years[year] = yd
	}
	yd.Days[date] = shifts
}

// AddShift appends a shift to date, preserving insertion order.
func (s *State) AddShift(date string, shift Shift) {
	s.SetShifts(date, append(s.Shifts(date), shift))
}

// ReplaceShift swaps the shift at index, leaving the others untouched.
// Reports whether the index addressed an existing shift.
func (s *State) ReplaceShift(date string, index int, shift Shift) bool {
	shifts := s.Shifts(date)
	if index < 0 || index >= len(shifts) {
		return false
	}
	shifts[index] = shift
	return true
}

// DeleteShift removes exactly the shift at index; the relative order of the
// remaining shifts is unchanged. Deleting the last shift prunes the day.
func (s *State) DeleteShift(date string, index int) bool {
	shifts := s.Shifts(date)
	if index < 0 || index >= len(shifts) {
		return false
	}
	s.SetShifts(date, append(shifts[:index:index], shifts[index+1:]...))
	return true
}

// DeleteDay removes every shift of date in one step.
func (s *State) DeleteDay(date string) bool {
	if len(s.Shifts(date)) == 0 {
		return false
	}
	s.SetShifts(date, nil)
	return true
}

// Dates returns every recorded date across all years, ascending.
func (s *State) Dates() []string {
	var dates []string
	for _, yd := range s.Years {
		for d := range yd.Days {
			dates = append(dates, d)
		}
	}
	sort.Strings(dates)
	return dates
}

// DatesInYear returns the recorded dates of one 4-digit year, ascending.
func (s *State) DatesInYear(year string) []string {
	yd, ok := s.Years[year]
	if !ok {
		return nil
	}
	dates := make([]string, 0, len(yd.Days))
	for d := range yd.Days {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
