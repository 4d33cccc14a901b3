package storage

import "unhook/internal/models"

// Provider persists journeys, reminders and settings. Implementations are
// not safe for concurrent use by multiple goroutines or processes; unhook is
// a single-writer application and every mutating call writes through before
// returning.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Journeys. Listing preserves insertion order.
	AddJourney(models.Journey) error
	GetJourney(id string) (models.Journey, error)
	GetAllJourneys() ([]models.Journey, error)
	UpdateJourney(models.Journey) error
	DeleteJourney(id string) error

	// Reminders
	AddReminder(models.Reminder) error
	GetRemindersForJourney(journeyID string) ([]models.Reminder, error)
	GetAllReminders() ([]models.Reminder, error)
	UpdateReminder(models.Reminder) error
	DeleteRemindersForJourney(journeyID string) error
	DeleteAllReminders() error

	// Utils
	GetConfigPath() string
}
