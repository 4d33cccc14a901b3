package storage

import (
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "github.com/lib/pq"

	"unhook/internal/constants"
	"unhook/internal/models"
)

// PostgresStore backs the Provider with a PostgreSQL database. Credentials
// must come from the environment, .pgpass, or the OS keyring; connection
// strings with embedded passwords are rejected at the CLI boundary.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS journeys (
	position       BIGSERIAL,
	id             TEXT PRIMARY KEY,
	substance_id   TEXT NOT NULL,
	reason         TEXT NOT NULL,
	start_date     TIMESTAMPTZ NOT NULL,
	has_read_intro BOOLEAN NOT NULL DEFAULT FALSE,
	last_check_in  TIMESTAMPTZ
);
CREATE TABLE IF NOT EXISTS reminders (
	position   BIGSERIAL,
	id         TEXT PRIMARY KEY,
	journey_id TEXT NOT NULL,
	reminder_time TEXT NOT NULL,
	last_sent  TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_reminders_journey ON reminders(journey_id);
`

func (s *PostgresStore) Init() error {
	if err := s.open(); err != nil {
		return err
	}

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

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}
	return s.open()
}

func (s *PostgresStore) open() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := s.db.Exec(postgresSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) GetSettings() (models.Settings, error) {
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

func (s *PostgresStore) SaveSettings(settings models.Settings) error {
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
			"INSERT INTO settings (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value",
			key, value,
		); err != nil {
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
	}

	return tx.Commit()
}

func (s *PostgresStore) AddJourney(journey models.Journey) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(
		"INSERT INTO journeys (id, substance_id, reason, start_date, has_read_intro, last_check_in) VALUES ($1, $2, $3, $4, $5, $6)",
		journey.ID, journey.SubstanceID, journey.Reason,
		journey.StartDate.UTC(), journey.HasReadIntro, nullableTime(journey.LastCheckIn),
	)
	if err != nil {
		return fmt.Errorf("failed to insert journey: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetJourney(id string) (models.Journey, error) {
	if s.db == nil {
		return models.Journey{}, fmt.Errorf("storage not loaded")
	}

	row := s.db.QueryRow(
		"SELECT id, substance_id, reason, start_date, has_read_intro, last_check_in FROM journeys WHERE id = $1",
		id,
	)

	journey, err := scanPgJourney(row)
	if err == sql.ErrNoRows {
		return models.Journey{}, fmt.Errorf("journey not found: %s", id)
	}
	if err != nil {
		return models.Journey{}, fmt.Errorf("failed to get journey: %w", err)
	}
	return journey, nil
}

func (s *PostgresStore) GetAllJourneys() ([]models.Journey, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(
		"SELECT id, substance_id, reason, start_date, has_read_intro, last_check_in FROM journeys ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query journeys: %w", err)
	}
	defer rows.Close()

	journeys := []models.Journey{}
	for rows.Next() {
		journey, err := scanPgJourney(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journey: %w", err)
		}
		journeys = append(journeys, journey)
	}
	return journeys, rows.Err()
}

func (s *PostgresStore) UpdateJourney(journey models.Journey) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	res, err := s.db.Exec(
		"UPDATE journeys SET substance_id = $1, reason = $2, start_date = $3, has_read_intro = $4, last_check_in = $5 WHERE id = $6",
		journey.SubstanceID, journey.Reason, journey.StartDate.UTC(),
		journey.HasReadIntro, nullableTime(journey.LastCheckIn), journey.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update journey: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("journey not found: %s", journey.ID)
	}
	return nil
}

func (s *PostgresStore) DeleteJourney(id string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	res, err := s.db.Exec("DELETE FROM journeys WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete journey: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("journey not found: %s", id)
	}
	return nil
}

func (s *PostgresStore) AddReminder(reminder models.Reminder) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(
		"INSERT INTO reminders (id, journey_id, reminder_time, last_sent, created_at) VALUES ($1, $2, $3, $4, $5)",
		reminder.ID, reminder.JourneyID, reminder.Time,
		nullableTime(reminder.LastSent), reminder.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert reminder: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetRemindersForJourney(journeyID string) ([]models.Reminder, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.queryReminders(
		"SELECT id, journey_id, reminder_time, last_sent, created_at FROM reminders WHERE journey_id = $1 ORDER BY position",
		journeyID,
	)
}

func (s *PostgresStore) GetAllReminders() ([]models.Reminder, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.queryReminders(
		"SELECT id, journey_id, reminder_time, last_sent, created_at FROM reminders ORDER BY position",
	)
}

func (s *PostgresStore) queryReminders(query string, args ...interface{}) ([]models.Reminder, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reminders: %w", err)
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		var r models.Reminder
		var lastSent sql.NullTime
		if err := rows.Scan(&r.ID, &r.JourneyID, &r.Time, &lastSent, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		if lastSent.Valid {
			t := lastSent.Time
			r.LastSent = &t
		}
		reminders = append(reminders, r)
	}
	return reminders, rows.Err()
}

func (s *PostgresStore) UpdateReminder(reminder models.Reminder) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	res, err := s.db.Exec(
		"UPDATE reminders SET journey_id = $1, reminder_time = $2, last_sent = $3 WHERE id = $4",
		reminder.JourneyID, reminder.Time, nullableTime(reminder.LastSent), reminder.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("reminder not found: %s", reminder.ID)
	}
	return nil
}

func (s *PostgresStore) DeleteRemindersForJourney(journeyID string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, err := s.db.Exec("DELETE FROM reminders WHERE journey_id = $1", journeyID); err != nil {
		return fmt.Errorf("failed to delete reminders: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeleteAllReminders() error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, err := s.db.Exec("DELETE FROM reminders"); err != nil {
		return fmt.Errorf("failed to delete reminders: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}

func scanPgJourney(row rowScanner) (models.Journey, error) {
	var j models.Journey
	var lastCheckIn sql.NullTime

	if err := row.Scan(&j.ID, &j.SubstanceID, &j.Reason, &j.StartDate, &j.HasReadIntro, &lastCheckIn); err != nil {
		return models.Journey{}, err
	}

	if lastCheckIn.Valid {
		t := lastCheckIn.Time
		j.LastCheckIn = &t
	}
	return j, nil
}

func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC()
}
