package journeys

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"unhook/internal/models"
	"unhook/internal/reminders"
	"unhook/internal/storage"
)

func newTestService(t *testing.T) (*Service, storage.Provider) {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "unhook.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	sched := reminders.New(store)
	return New(store, sched), store
}

func TestStart(t *testing.T) {
	svc, _ := newTestService(t)

	journey, err := svc.Start("alcohol", "  for my health  ")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if journey.ID == "" {
		t.Error("Start() returned a journey with no id")
	}
	if journey.Reason != "for my health" {
		t.Errorf("Reason = %q, want trimmed %q", journey.Reason, "for my health")
	}
	if journey.HasReadIntro {
		t.Error("HasReadIntro = true for a fresh journey")
	}
	if journey.LastCheckIn != nil {
		t.Error("LastCheckIn set on a fresh journey")
	}
	if time.Since(journey.StartDate) > time.Minute {
		t.Errorf("StartDate = %v, want roughly now", journey.StartDate)
	}

	stored, ok := svc.Get(journey.ID)
	if !ok {
		t.Fatal("Get() after Start ok = false")
	}
	if stored.Reason != journey.Reason {
		t.Errorf("stored reason = %q, want %q", stored.Reason, journey.Reason)
	}
}

func TestStartValidation(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name      string
		substance string
		reason    string
	}{
		{"unknown substance", "nicotine", "reason"},
		{"empty reason", "alcohol", ""},
		{"whitespace reason", "alcohol", "   \t  "},
		{"overlong reason", "alcohol", strings.Repeat("x", 501)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Start(tt.substance, tt.reason); err == nil {
				t.Error("Start() error = nil, want validation error")
			}
		})
	}

	all, err := svc.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 0 {
		t.Errorf("len(journeys) = %d after rejected starts, want 0", len(all))
	}
}

func TestMarkIntroRead(t *testing.T) {
	svc, _ := newTestService(t)
	journey, err := svc.Start("cocaine", "sleep")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if err := svc.MarkIntroRead(journey.ID); err != nil {
		t.Fatalf("MarkIntroRead() error = %v", err)
	}
	got, _ := svc.Get(journey.ID)
	if !got.HasReadIntro {
		t.Error("HasReadIntro = false after MarkIntroRead")
	}

	// Idempotent: marking again changes nothing and does not error.
	if err := svc.MarkIntroRead(journey.ID); err != nil {
		t.Errorf("second MarkIntroRead() error = %v", err)
	}

	// Unknown journey is a silent no-op.
	if err := svc.MarkIntroRead("no-such-journey"); err != nil {
		t.Errorf("MarkIntroRead(unknown) error = %v, want nil", err)
	}
}

func TestRecordCheckIn(t *testing.T) {
	svc, _ := newTestService(t)
	journey, err := svc.Start("alcohol", "health")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if err := svc.RecordCheckIn(journey.ID); err != nil {
		t.Fatalf("RecordCheckIn() error = %v", err)
	}
	got, _ := svc.Get(journey.ID)
	if got.LastCheckIn == nil {
		t.Fatal("LastCheckIn = nil after RecordCheckIn")
	}
	if time.Since(*got.LastCheckIn) > time.Minute {
		t.Errorf("LastCheckIn = %v, want roughly now", got.LastCheckIn)
	}

	if err := svc.RecordCheckIn("no-such-journey"); err != nil {
		t.Errorf("RecordCheckIn(unknown) error = %v, want nil", err)
	}
}

func TestDeleteCancelsReminders(t *testing.T) {
	svc, store := newTestService(t)
	sched := reminders.New(store)

	journey, err := svc.Start("alcohol", "health")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if _, _, err := sched.ScheduleMorning(journey); err != nil {
		t.Fatalf("ScheduleMorning() error = %v", err)
	}

	if err := svc.Delete(journey.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, ok := svc.Get(journey.ID); ok {
		t.Error("Get() after Delete ok = true")
	}
	left, _ := store.GetRemindersForJourney(journey.ID)
	if len(left) != 0 {
		t.Errorf("len(reminders) after Delete = %d, want 0", len(left))
	}
}

func TestDeleteMissingStillCancels(t *testing.T) {
	svc, store := newTestService(t)

	// Orphan reminder for a journey that was already removed.
	orphan := models.Reminder{ID: "r1", JourneyID: "gone", Time: "08:00", CreatedAt: time.Now().UTC()}
	if err := store.AddReminder(orphan); err != nil {
		t.Fatalf("AddReminder() error = %v", err)
	}

	if err := svc.Delete("gone"); err == nil {
		t.Error("Delete() on missing journey error = nil, want not-found error")
	}

	left, _ := store.GetRemindersForJourney("gone")
	if len(left) != 0 {
		t.Errorf("orphan reminder survived Delete, %d left", len(left))
	}
}

func TestListOrder(t *testing.T) {
	svc, _ := newTestService(t)

	first, err := svc.Start("alcohol", "one")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	second, err := svc.Start("cocaine", "two")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	all, err := svc.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len(journeys) = %d, want 2", len(all))
	}
	if all[0].ID != first.ID || all[1].ID != second.ID {
		t.Error("List() order is not insertion order")
	}
}
