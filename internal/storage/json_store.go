package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"unhook/internal/constants"
	"unhook/internal/logger"
	"unhook/internal/models"
)

// Store is the persisted document. Journeys are an ordered array, not a map:
// listing order is insertion order, and the on-disk format predates this
// implementation. Unknown fields in an older or newer document are ignored
// on load.
type Store struct {
	Version   int               `json:"version"`
	Settings  models.Settings   `json:"settings"`
	Journeys  []models.Journey  `json:"journeys"`
	Reminders []models.Reminder `json:"reminders"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func defaultStore() *Store {
	return &Store{
		Version: 1,
		Settings: models.Settings{
			ReminderTime:         constants.DefaultReminderTime,
			NotificationsEnabled: true,
			Timezone:             "Local",
		},
		Journeys:  []models.Journey{},
		Reminders: []models.Reminder{},
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = defaultStore()
	return s.save()
}

// Load reads the persisted document. A missing or unreadable file degrades
// to an empty store rather than failing: losing the motivational state is
// recoverable, refusing to start is not.
func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Storage unreadable, starting empty", "path", s.path, "error", err)
		}
		s.store = defaultStore()
		return nil
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		logger.Warn("Storage corrupt, starting empty", "path", s.path, "error", err)
		s.store = defaultStore()
		return nil
	}

	// Ensure slices and settings survive documents written by older versions
	if s.store.Journeys == nil {
		s.store.Journeys = []models.Journey{}
	}
	if s.store.Reminders == nil {
		s.store.Reminders = []models.Reminder{}
	}
	if s.store.Settings.ReminderTime == "" {
		s.store.Settings.ReminderTime = constants.DefaultReminderTime
	}
	if s.store.Settings.Timezone == "" {
		s.store.Settings.Timezone = "Local"
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.store == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) AddJourney(journey models.Journey) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	for _, j := range s.store.Journeys {
		if j.ID == journey.ID {
			return fmt.Errorf("journey already exists: %s", journey.ID)
		}
	}

	s.store.Journeys = append(s.store.Journeys, journey)
	return s.save()
}

func (s *JSONStore) GetJourney(id string) (models.Journey, error) {
	if s.store == nil {
		return models.Journey{}, fmt.Errorf("storage not loaded")
	}

	for _, j := range s.store.Journeys {
		if j.ID == id {
			return j, nil
		}
	}

	return models.Journey{}, fmt.Errorf("journey not found: %s", id)
}

func (s *JSONStore) GetAllJourneys() ([]models.Journey, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	journeys := make([]models.Journey, len(s.store.Journeys))
	copy(journeys, s.store.Journeys)
	return journeys, nil
}

func (s *JSONStore) UpdateJourney(journey models.Journey) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	for i, j := range s.store.Journeys {
		if j.ID == journey.ID {
			s.store.Journeys[i] = journey
			return s.save()
		}
	}

	return fmt.Errorf("journey not found: %s", journey.ID)
}

func (s *JSONStore) DeleteJourney(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	for i, j := range s.store.Journeys {
		if j.ID == id {
			s.store.Journeys = append(s.store.Journeys[:i], s.store.Journeys[i+1:]...)
			return s.save()
		}
	}

	return fmt.Errorf("journey not found: %s", id)
}

func (s *JSONStore) AddReminder(reminder models.Reminder) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Reminders = append(s.store.Reminders, reminder)
	return s.save()
}

func (s *JSONStore) GetRemindersForJourney(journeyID string) ([]models.Reminder, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	var out []models.Reminder
	for _, r := range s.store.Reminders {
		if r.JourneyID == journeyID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *JSONStore) GetAllReminders() ([]models.Reminder, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	reminders := make([]models.Reminder, len(s.store.Reminders))
	copy(reminders, s.store.Reminders)
	return reminders, nil
}

func (s *JSONStore) UpdateReminder(reminder models.Reminder) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	for i, r := range s.store.Reminders {
		if r.ID == reminder.ID {
			s.store.Reminders[i] = reminder
			return s.save()
		}
	}

	return fmt.Errorf("reminder not found: %s", reminder.ID)
}

// DeleteRemindersForJourney removes every reminder whose journey matches.
// Matching by journey rather than by reminder ID cleans up duplicates left
// behind by an earlier crash between schedule and save.
func (s *JSONStore) DeleteRemindersForJourney(journeyID string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	kept := s.store.Reminders[:0]
	removed := false
	for _, r := range s.store.Reminders {
		if r.JourneyID == journeyID {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	s.store.Reminders = kept

	if !removed {
		return nil
	}
	return s.save()
}

func (s *JSONStore) DeleteAllReminders() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Reminders = []models.Reminder{}
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
