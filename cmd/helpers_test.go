package cmd

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/oreclock/ore/internal/model"
)

func TestParseClockArg(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"09:00", "09:00", false},
		{"9:00", "09:00", false},
		{"9:5", "09:05", false},
		{"24:00", "24:00", false},
		{"00:00", "00:00", false},
		{"24:01", "", true},
		{"12:60", "", true},
		{"12", "", true},
		{"ab:cd", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := parseClockArg(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseClockArg(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseClockArg(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseBreakArg(t *testing.T) {
	got, err := parseBreakArg("12:00-12:30")
	if err != nil {
		t.Fatalf("parseBreakArg: %v", err)
	}
	if got.Start != "12:00" || got.End != "12:30" {
		t.Errorf("parseBreakArg = %+v", got)
	}

	for _, bad := range []string{"12:00", "12:00/12:30", "noon-one", ""} {
		if _, err := parseBreakArg(bad); err == nil {
			t.Errorf("parseBreakArg(%q) expected error", bad)
		}
	}
}

func TestResolveDate(t *testing.T) {
	st := model.Default()

	if _, err := resolveDate("2026-99-99", st); err == nil {
		t.Error("resolveDate with bad argument expected error")
	}
	got, err := resolveDate("2026-08-29", st)
	if err != nil || got != "2026-08-29" {
		t.Errorf("resolveDate(explicit) = %q, %v", got, err)
	}

	st.CurrentDate = "2026-01-15"
	got, err = resolveDate("", st)
	if err != nil || got != "2026-01-15" {
		t.Errorf("resolveDate(remembered) = %q, %v", got, err)
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"75", "75.00 EUR"},
		{"93.5", "93.50 EUR"},
		{"0", "0.00 EUR"},
		{"18.754", "18.75 EUR"},
	}
	for _, tt := range tests {
		got := formatMoney(decimal.RequireFromString(tt.amount), "EUR")
		if got != tt.want {
			t.Errorf("formatMoney(%s) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
