package models

// Settings holds the user-tunable application settings.
type Settings struct {
	ReminderTime         string `json:"reminder_time"`         // HH:MM wall-clock time for the daily reminder
	NotificationsEnabled bool   `json:"notifications_enabled"` // whether reminders are delivered at all
	Timezone             string `json:"timezone"`              // IANA timezone name, or "Local" for the system timezone
}
