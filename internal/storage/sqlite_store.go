package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"unhook/internal/constants"
	"unhook/internal/models"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS journeys (
	id             TEXT PRIMARY KEY,
	substance_id   TEXT NOT NULL,
	reason         TEXT NOT NULL,
	start_date     TEXT NOT NULL,
	has_read_intro INTEGER NOT NULL DEFAULT 0,
	last_check_in  TEXT
);
CREATE TABLE IF NOT EXISTS reminders (
	id         TEXT PRIMARY KEY,
	journey_id TEXT NOT NULL,
	time       TEXT NOT NULL,
	last_sent  TEXT,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_reminders_journey ON reminders(journey_id);
`

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	// Seed default settings on first init only
	if _, err := s.GetSettings(); err != nil {
		defaults := models.Settings{
			ReminderTime:         constants.DefaultReminderTime,
			NotificationsEnabled: true,
			Timezone:             "Local",
		}
		if err := s.SaveSettings(defaults); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}
	return s.open()
}

func (s *SQLiteStore) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	if s.db == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	settings := models.Settings{}
	found := false
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, fmt.Errorf("failed to scan setting: %w", err)
		}
		found = true
		switch key {
		case constants.SettingReminderTime:
			settings.ReminderTime = value
		case constants.SettingNotificationsEnabled:
			settings.NotificationsEnabled = value == "true"
		case constants.SettingTimezone:
			settings.Timezone = value
		}
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}
	if !found {
		return models.Settings{}, fmt.Errorf("settings not initialized")
	}

	if settings.ReminderTime == "" {
		settings.ReminderTime = constants.DefaultReminderTime
	}
	if settings.Timezone == "" {
		settings.Timezone = "Local"
	}

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	pairs := map[string]string{
		constants.SettingReminderTime:         settings.ReminderTime,
		constants.SettingNotificationsEnabled: fmt.Sprintf("%v", settings.NotificationsEnabled),
		constants.SettingTimezone:             settings.Timezone,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for key, value := range pairs {
		if _, err := tx.Exec(
			"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			key, value,
		); err != nil {
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) AddJourney(journey models.Journey) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(
		"INSERT INTO journeys (id, substance_id, reason, start_date, has_read_intro, last_check_in) VALUES (?, ?, ?, ?, ?, ?)",
		journey.ID, journey.SubstanceID, journey.Reason,
		journey.StartDate.UTC().Format(time.RFC3339),
		boolToInt(journey.HasReadIntro),
		timePtrToString(journey.LastCheckIn),
	)
	if err != nil {
		return fmt.Errorf("failed to insert journey: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetJourney(id string) (models.Journey, error) {
	if s.db == nil {
		return models.Journey{}, fmt.Errorf("storage not loaded")
	}

	row := s.db.QueryRow(
		"SELECT id, substance_id, reason, start_date, has_read_intro, last_check_in FROM journeys WHERE id = ?",
		id,
	)

	journey, err := scanJourney(row)
	if err == sql.ErrNoRows {
		return models.Journey{}, fmt.Errorf("journey not found: %s", id)
	}
	if err != nil {
		return models.Journey{}, fmt.Errorf("failed to get journey: %w", err)
	}
	return journey, nil
}

func (s *SQLiteStore) GetAllJourneys() ([]models.Journey, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	// rowid order is insertion order
	rows, err := s.db.Query(
		"SELECT id, substance_id, reason, start_date, has_read_intro, last_check_in FROM journeys ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query journeys: %w", err)
	}
	defer rows.Close()

	journeys := []models.Journey{}
	for rows.Next() {
		journey, err := scanJourney(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journey: %w", err)
		}
		journeys = append(journeys, journey)
	}
	return journeys, rows.Err()
}

func (s *SQLiteStore) UpdateJourney(journey models.Journey) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	res, err := s.db.Exec(
		"UPDATE journeys SET substance_id = ?, reason = ?, start_date = ?, has_read_intro = ?, last_check_in = ? WHERE id = ?",
		journey.SubstanceID, journey.Reason,
		journey.StartDate.UTC().Format(time.RFC3339),
		boolToInt(journey.HasReadIntro),
		timePtrToString(journey.LastCheckIn),
		journey.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update journey: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("journey not found: %s", journey.ID)
	}
	return nil
}

func (s *SQLiteStore) DeleteJourney(id string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	res, err := s.db.Exec("DELETE FROM journeys WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete journey: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("journey not found: %s", id)
	}
	return nil
}

func (s *SQLiteStore) AddReminder(reminder models.Reminder) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(
		"INSERT INTO reminders (id, journey_id, time, last_sent, created_at) VALUES (?, ?, ?, ?, ?)",
		reminder.ID, reminder.JourneyID, reminder.Time,
		timePtrToString(reminder.LastSent),
		reminder.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert reminder: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetRemindersForJourney(journeyID string) ([]models.Reminder, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.queryReminders("SELECT id, journey_id, time, last_sent, created_at FROM reminders WHERE journey_id = ? ORDER BY rowid", journeyID)
}

func (s *SQLiteStore) GetAllReminders() ([]models.Reminder, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.queryReminders("SELECT id, journey_id, time, last_sent, created_at FROM reminders ORDER BY rowid")
}

func (s *SQLiteStore) queryReminders(query string, args ...interface{}) ([]models.Reminder, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reminders: %w", err)
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		var r models.Reminder
		var lastSent sql.NullString
		var createdAt string
		if err := rows.Scan(&r.ID, &r.JourneyID, &r.Time, &lastSent, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		r.LastSent, err = stringToTimePtr(lastSent)
		if err != nil {
			return nil, err
		}
		r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("invalid created_at timestamp: %w", err)
		}
		reminders = append(reminders, r)
	}
	return reminders, rows.Err()
}

func (s *SQLiteStore) UpdateReminder(reminder models.Reminder) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	res, err := s.db.Exec(
		"UPDATE reminders SET journey_id = ?, time = ?, last_sent = ? WHERE id = ?",
		reminder.JourneyID, reminder.Time,
		timePtrToString(reminder.LastSent),
		reminder.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("reminder not found: %s", reminder.ID)
	}
	return nil
}

func (s *SQLiteStore) DeleteRemindersForJourney(journeyID string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, err := s.db.Exec("DELETE FROM reminders WHERE journey_id = ?", journeyID); err != nil {
		return fmt.Errorf("failed to delete reminders: %w", err)
	}
	return nil
}

func (s *SQLiteStore) DeleteAllReminders() error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, err := s.db.Exec("DELETE FROM reminders"); err != nil {
		return fmt.Errorf("failed to delete reminders: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJourney(row rowScanner) (models.Journey, error) {
	var j models.Journey
	var startDate string
	var hasReadIntro int
	var lastCheckIn sql.NullString

	if err := row.Scan(&j.ID, &j.SubstanceID, &j.Reason, &startDate, &hasReadIntro, &lastCheckIn); err != nil {
		return models.Journey{}, err
	}

	var err error
	j.StartDate, err = time.Parse(time.RFC3339, startDate)
	if err != nil {
		return models.Journey{}, fmt.Errorf("invalid start_date timestamp: %w", err)
	}
	j.HasReadIntro = hasReadIntro != 0
	j.LastCheckIn, err = stringToTimePtr(lastCheckIn)
	if err != nil {
		return models.Journey{}, err
	}

	return j, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func timePtrToString(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func stringToTimePtr(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}
	return &t, nil
}
