package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"unhook/internal/constants"
)

func TestJourneyValidate(t *testing.T) {
	valid := Journey{
		ID:          "a1b2",
		SubstanceID: "alcohol",
		Reason:      "for my family",
		StartDate:   time.Now(),
	}

	tests := []struct {
		name    string
		mutate  func(j *Journey)
		wantErr bool
	}{
		{"valid journey", func(j *Journey) {}, false},
		{"empty id", func(j *Journey) { j.ID = "" }, true},
		{"empty substance", func(j *Journey) { j.SubstanceID = "" }, true},
		{"whitespace reason", func(j *Journey) { j.Reason = "   " }, true},
		{"overlong reason", func(j *Journey) { j.Reason = strings.Repeat("x", constants.MaxReasonLen+1) }, true},
		{"zero start date", func(j *Journey) { j.StartDate = time.Time{} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := valid
			tt.mutate(&j)
			err := j.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// Persisted journeys use camelCase field names and RFC3339 instants; a
// missing check-in serializes as null rather than being dropped.
func TestJourneyJSONFieldNames(t *testing.T) {
	j := Journey{
		ID:          "a1b2",
		SubstanceID: "alcohol",
		Reason:      "health",
		StartDate:   time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(j)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	for _, field := range []string{"id", "substanceId", "reason", "startDate", "hasReadIntro", "lastCheckIn"} {
		if _, ok := doc[field]; !ok {
			t.Errorf("persisted journey missing field %q", field)
		}
	}
	if string(doc["lastCheckIn"]) != "null" {
		t.Errorf("lastCheckIn = %s, want null when never checked in", doc["lastCheckIn"])
	}
	if !strings.Contains(string(doc["startDate"]), "2026-02-01T12:00:00Z") {
		t.Errorf("startDate = %s, want RFC3339 instant", doc["startDate"])
	}
}
