package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"unhook/internal/models"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "unhook.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return store
}

func TestJSONStoreInit(t *testing.T) {
	store := newTestJSONStore(t)

	if err := store.Init(); err == nil {
		t.Error("Init() on an existing file error = nil, want error")
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if settings.ReminderTime != "08:00" || !settings.NotificationsEnabled {
		t.Errorf("default settings = %+v, want 08:00 with notifications on", settings)
	}
}

func TestJSONStoreLoadMissingFile(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "nope.json"))
	if err := store.Load(); err != nil {
		t.Fatalf("Load() on missing file error = %v, want nil", err)
	}
	journeys, err := store.GetAllJourneys()
	if err != nil {
		t.Fatalf("GetAllJourneys() error = %v", err)
	}
	if len(journeys) != 0 {
		t.Errorf("len(journeys) = %d, want 0", len(journeys))
	}
}

func TestJSONStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unhook.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() on corrupt file error = %v, want nil", err)
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if settings.ReminderTime != "08:00" {
		t.Errorf("ReminderTime after corrupt load = %q, want default", settings.ReminderTime)
	}
}

func TestJSONStoreJourneyRoundTrip(t *testing.T) {
	store := newTestJSONStore(t)

	checkIn := time.Date(2026, 3, 4, 19, 30, 0, 0, time.UTC)
	first := models.Journey{
		ID:          "j-one",
		SubstanceID: "alcohol",
		Reason:      "for my kids",
		StartDate:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	second := models.Journey{
		ID:           "j-two",
		SubstanceID:  "cocaine",
		Reason:       "money and sleep",
		StartDate:    time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		HasReadIntro: true,
		LastCheckIn:  &checkIn,
	}

	if err := store.AddJourney(first); err != nil {
		t.Fatalf("AddJourney() error = %v", err)
	}
	if err := store.AddJourney(second); err != nil {
		t.Fatalf("AddJourney() error = %v", err)
	}

	// Simulate a restart by loading a fresh store from the same file.
	reloaded := NewJSONStore(store.GetConfigPath())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	journeys, err := reloaded.GetAllJourneys()
	if err != nil {
		t.Fatalf("GetAllJourneys() error = %v", err)
	}
	if len(journeys) != 2 {
		t.Fatalf("len(journeys) = %d, want 2", len(journeys))
	}
	if journeys[0].ID != "j-one" || journeys[1].ID != "j-two" {
		t.Errorf("journey order = [%s %s], want insertion order", journeys[0].ID, journeys[1].ID)
	}
	if journeys[0].LastCheckIn != nil {
		t.Error("first journey LastCheckIn survived as non-nil")
	}
	if journeys[1].LastCheckIn == nil || !journeys[1].LastCheckIn.Equal(checkIn) {
		t.Errorf("second journey LastCheckIn = %v, want %v", journeys[1].LastCheckIn, checkIn)
	}
	if !journeys[1].HasReadIntro {
		t.Error("HasReadIntro lost across reload")
	}
}

func TestJSONStoreAddDuplicateJourney(t *testing.T) {
	store := newTestJSONStore(t)
	j := models.Journey{ID: "dup", SubstanceID: "alcohol", Reason: "r", StartDate: time.Now()}
	if err := store.AddJourney(j); err != nil {
		t.Fatalf("AddJourney() error = %v", err)
	}
	if err := store.AddJourney(j); err == nil {
		t.Error("AddJourney() duplicate error = nil, want error")
	}
}

func TestJSONStoreUpdateAndDeleteJourney(t *testing.T) {
	store := newTestJSONStore(t)
	j := models.Journey{ID: "j1", SubstanceID: "alcohol", Reason: "r", StartDate: time.Now()}
	if err := store.AddJourney(j); err != nil {
		t.Fatalf("AddJourney() error = %v", err)
	}

	j.HasReadIntro = true
	if err := store.UpdateJourney(j); err != nil {
		t.Fatalf("UpdateJourney() error = %v", err)
	}
	got, err := store.GetJourney("j1")
	if err != nil {
		t.Fatalf("GetJourney() error = %v", err)
	}
	if !got.HasReadIntro {
		t.Error("UpdateJourney() did not persist HasReadIntro")
	}

	if err := store.DeleteJourney("j1"); err != nil {
		t.Fatalf("DeleteJourney() error = %v", err)
	}
	if _, err := store.GetJourney("j1"); err == nil {
		t.Error("GetJourney() after delete error = nil, want error")
	}
	if err := store.DeleteJourney("j1"); err == nil {
		t.Error("DeleteJourney() on missing journey error = nil, want error")
	}
}

func TestJSONStoreReminders(t *testing.T) {
	store := newTestJSONStore(t)

	r1 := models.Reminder{ID: "r1", JourneyID: "j1", Time: "08:00", CreatedAt: time.Now()}
	r2 := models.Reminder{ID: "r2", JourneyID: "j2", Time: "09:00", CreatedAt: time.Now()}
	for _, r := range []models.Reminder{r1, r2} {
		if err := store.AddReminder(r); err != nil {
			t.Fatalf("AddReminder() error = %v", err)
		}
	}

	forJ1, err := store.GetRemindersForJourney("j1")
	if err != nil {
		t.Fatalf("GetRemindersForJourney() error = %v", err)
	}
	if len(forJ1) != 1 || forJ1[0].ID != "r1" {
		t.Errorf("GetRemindersForJourney(j1) = %+v, want just r1", forJ1)
	}

	if err := store.DeleteRemindersForJourney("j1"); err != nil {
		t.Fatalf("DeleteRemindersForJourney() error = %v", err)
	}
	// Deleting with no matches is a no-op, not an error.
	if err := store.DeleteRemindersForJourney("j1"); err != nil {
		t.Errorf("DeleteRemindersForJourney() second call error = %v, want nil", err)
	}

	all, err := store.GetAllReminders()
	if err != nil {
		t.Fatalf("GetAllReminders() error = %v", err)
	}
	if len(all) != 1 || all[0].ID != "r2" {
		t.Errorf("remaining reminders = %+v, want just r2", all)
	}

	if err := store.DeleteAllReminders(); err != nil {
		t.Fatalf("DeleteAllReminders() error = %v", err)
	}
	all, _ = store.GetAllReminders()
	if len(all) != 0 {
		t.Errorf("len(reminders) after DeleteAllReminders = %d, want 0", len(all))
	}
}

func TestJSONStoreNotLoaded(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "unhook.json"))
	if _, err := store.GetAllJourneys(); err == nil {
		t.Error("GetAllJourneys() before Load error = nil, want error")
	}
	if err := store.SaveSettings(models.Settings{}); err == nil {
		t.Error("SaveSettings() before Load error = nil, want error")
	}
}
