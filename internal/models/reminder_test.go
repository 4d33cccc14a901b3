package models

import (
	"testing"
	"time"
)

func TestReminderValidate(t *testing.T) {
	tests := []struct {
		name     string
		reminder Reminder
		wantErr  bool
	}{
		{"valid", Reminder{JourneyID: "j1", Time: "08:00"}, false},
		{"missing journey", Reminder{Time: "08:00"}, true},
		{"bad time format", Reminder{JourneyID: "j1", Time: "8am"}, true},
		{"out of range time", Reminder{JourneyID: "j1", Time: "25:00"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.reminder.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestReminderIsDue(t *testing.T) {
	day := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time {
		return time.Date(2026, 4, 2, h, m, 0, 0, time.UTC)
	}

	t.Run("before the scheduled minute", func(t *testing.T) {
		r := Reminder{JourneyID: "j1", Time: "08:00"}
		if r.IsDue(at(7, 59), 10) {
			t.Error("IsDue() = true before the scheduled time")
		}
	})

	t.Run("on the scheduled minute", func(t *testing.T) {
		r := Reminder{JourneyID: "j1", Time: "08:00"}
		if !r.IsDue(at(8, 0), 10) {
			t.Error("IsDue() = false at the scheduled time")
		}
	})

	t.Run("inside the grace window", func(t *testing.T) {
		r := Reminder{JourneyID: "j1", Time: "08:00"}
		if !r.IsDue(at(8, 10), 10) {
			t.Error("IsDue() = false at the edge of the grace window")
		}
	})

	t.Run("past the grace window", func(t *testing.T) {
		r := Reminder{JourneyID: "j1", Time: "08:00"}
		if r.IsDue(at(8, 11), 10) {
			t.Error("IsDue() = true past the grace window")
		}
	})

	t.Run("already sent today", func(t *testing.T) {
		sent := at(8, 1)
		r := Reminder{JourneyID: "j1", Time: "08:00", LastSent: &sent}
		if r.IsDue(at(8, 5), 10) {
			t.Error("IsDue() = true after today's delivery")
		}
	})

	t.Run("sent yesterday fires again", func(t *testing.T) {
		sent := day.AddDate(0, 0, -1).Add(8 * time.Hour)
		r := Reminder{JourneyID: "j1", Time: "08:00", LastSent: &sent}
		if !r.IsDue(at(8, 5), 10) {
			t.Error("IsDue() = false when last delivery was yesterday")
		}
	})

	t.Run("unparseable time never fires", func(t *testing.T) {
		r := Reminder{JourneyID: "j1", Time: "bogus"}
		if r.IsDue(at(8, 0), 10) {
			t.Error("IsDue() = true for an unparseable reminder time")
		}
	})
}

func TestReminderSentOn(t *testing.T) {
	sent := time.Date(2026, 4, 2, 8, 3, 0, 0, time.UTC)
	r := Reminder{JourneyID: "j1", Time: "08:00", LastSent: &sent}

	if !r.SentOn(time.Date(2026, 4, 2, 23, 0, 0, 0, time.UTC)) {
		t.Error("SentOn() = false for the same calendar day")
	}
	if r.SentOn(time.Date(2026, 4, 3, 8, 3, 0, 0, time.UTC)) {
		t.Error("SentOn() = true for the following day")
	}

	none := Reminder{JourneyID: "j1", Time: "08:00"}
	if none.SentOn(sent) {
		t.Error("SentOn() = true for a reminder never sent")
	}
}
