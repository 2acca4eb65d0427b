package store

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/oreclock/ore/internal/model"
	"github.com/oreclock/ore/internal/timecalc"
)

const stateFile = "state.json"

// DefaultDir returns the root data directory (~/.ore), overridable with the
// ORE_DATA_DIR environment variable.
func DefaultDir() (string, error) {
	if dir := os.Getenv("ORE_DATA_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".ore"), nil
}

// Load reads the whole state from dir. An absent file yields a fresh default
// state; a corrupt file is backed up alongside and silently replaced by
// defaults. State written under the legacy two-slot layout is upgraded once,
// here, so the rest of the program only ever sees the multi-shift model.
func Load(dir string) *model.State {
	path := filepath.Join(dir, stateFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return model.Default()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot read %s: %v (starting empty)\n", path, err)
		return model.Default()
	}

	st, err := decode(data)
	if err != nil {
		// Keep the unreadable file around for manual recovery, then start over.
		backup := path + ".corrupt"
		_ = os.Rename(path, backup)
		fmt.Fprintf(os.Stderr, "Warning: corrupt state in %s (backed up to %s): %v\n", path, backup, err)
		return model.Default()
	}
	return st
}

// decode unmarshals raw state, dispatching on the stored layout. A top-level
// "days" object marks the legacy two-slot generation.
func decode(data []byte) (*model.State, error) {
	var probe struct {
		Days json.RawMessage `json:"days"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parsing state: %w", err)
	}
	if len(probe.Days) > 0 && string(probe.Days) != "null" {
		var legacy model.LegacyState
		if err := json.Unmarshal(data, &legacy); err != nil {
			return nil, fmt.Errorf("parsing legacy state: %w", err)
		}
		return migrate(&legacy), nil
	}

	// Unmarshalling over a pre-filled default state gives a shallow merge:
	// keys absent from the file keep their documented defaults.
	st := model.Default()
	if err := json.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("parsing state: %w", err)
	}
	if st.Years == nil {
		st.Years = map[string]model.YearData{}
	}
	return st, nil
}

// migrate converts a legacy two-slot state into the multi-shift model. Each
// populated slot becomes one shift; its flat gap becomes a single break
// anchored at the shift start, which the calculator's clipping makes
// arithmetically identical to the old flat subtraction. Slots that were
// never computable (end <= start) are dropped.
func migrate(legacy *model.LegacyState) *model.State {
	st := model.Default()
	st.CurrentDate = legacy.CurrentDate
	st.Settings = legacy.Settings

	dates := make([]string, 0, len(legacy.Days))
	for d := range legacy.Days {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	for _, date := range dates {
		day := legacy.Days[date]
		var shifts []model.Shift
		if s, ok := slotShift(day.Morning); ok {
			shifts = append(shifts, s)
		}
		if s, ok := slotShift(day.Afternoon); ok {
			shifts = append(shifts, s)
		}
		st.SetShifts(date, shifts)
	}
	return st
}

func slotShift(slot *model.LegacySlot) (model.Shift, bool) {
	if slot == nil {
		return model.Shift{}, false
	}
	start := timecalc.ClockToMinutes(slot.Start)
	end := timecalc.ClockToMinutes(slot.End)
	if end <= start {
		return model.Shift{}, false
	}
	shift := model.Shift{Start: slot.Start, End: slot.End, Breaks: []model.Break{}}
	if gap := int(math.Round(math.Max(0, slot.GapMin))); gap > 0 {
		shift.Breaks = append(shift.Breaks, model.Break{
			Start: slot.Start,
			End:   timecalc.MinutesToClock(start + gap),
		})
	}
	return shift, true
}

// Save atomically rewrites the whole state in dir. Every mutation goes
// through a full rewrite; there is no partial or incremental persistence.
func Save(dir string, st *model.State) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("storage error creating directory: %w", err)
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	// Atomic write: write to temp file then rename.
	path := filepath.Join(dir, stateFile)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}
