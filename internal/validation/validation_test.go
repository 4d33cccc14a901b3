package validation

import (
	"strings"
	"testing"

	"unhook/internal/constants"
)

func TestReason(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain reason", "for my family", "for my family", false},
		{"trims whitespace", "  health  ", "health", false},
		{"empty", "", "", true},
		{"whitespace only", " \t\n ", "", true},
		{"at the limit", strings.Repeat("a", constants.MaxReasonLen), strings.Repeat("a", constants.MaxReasonLen), false},
		{"over the limit", strings.Repeat("a", constants.MaxReasonLen+1), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reason(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Reason() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Reason() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSubstanceID(t *testing.T) {
	if err := SubstanceID("alcohol"); err != nil {
		t.Errorf("SubstanceID(alcohol) error = %v", err)
	}
	if err := SubstanceID("cocaine"); err != nil {
		t.Errorf("SubstanceID(cocaine) error = %v", err)
	}

	err := SubstanceID("caffeine")
	if err == nil {
		t.Fatal("SubstanceID(caffeine) error = nil, want error")
	}
	if !strings.Contains(err.Error(), "alcohol") {
		t.Errorf("error %q does not list the valid choices", err)
	}
}

func TestReminderTime(t *testing.T) {
	for _, ok := range []string{"00:00", "08:00", "23:59"} {
		if err := ReminderTime(ok); err != nil {
			t.Errorf("ReminderTime(%q) error = %v", ok, err)
		}
	}
	for _, bad := range []string{"8:00am", "24:00", "noon", ""} {
		if err := ReminderTime(bad); err == nil {
			t.Errorf("ReminderTime(%q) error = nil, want error", bad)
		}
	}
}

func TestTimezone(t *testing.T) {
	for _, ok := range []string{"", "Local", "UTC", "America/New_York"} {
		if err := Timezone(ok); err != nil {
			t.Errorf("Timezone(%q) error = %v", ok, err)
		}
	}
	if err := Timezone("Mars/Olympus_Mons"); err == nil {
		t.Error("Timezone(Mars/Olympus_Mons) error = nil, want error")
	}
}
