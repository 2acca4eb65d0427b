package model

// Legacy types describe the first-generation state layout: at most two fixed
// slots per day (morning/afternoon) with a flat break-minutes deduction
// instead of explicit break intervals. They exist only so the store can
// recognise and upgrade old state files; nothing else reads them.

// LegacySlot is one populated half-day: clock times plus a flat gap.
type LegacySlot struct {
	Start  string  `json:"start"`
	End    string  `json:"end"`
	GapMin float64 `json:"gapMin"`
}

// LegacyDay holds the two optional slots of the coarse model.
type LegacyDay struct {
	Morning   *LegacySlot `json:"morning"`
	Afternoon *LegacySlot `json:"afternoon"`
}

// LegacyState is the old root layout, keyed by a top-level "days" object.
type LegacyState struct {
	CurrentDate string               `json:"currentDate"`
	Settings    Settings             `json:"settings"`
	Days        map[string]LegacyDay `json:"days"`
}
