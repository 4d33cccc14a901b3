package constants

const (
	AppName            = "unhook"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/unhook/unhook.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DefaultReminderTime is the wall-clock time the daily morning reminder fires at.
	DefaultReminderTime = "08:00"

	// ReminderGracePeriodMin is how many minutes past the scheduled time a
	// reminder is still considered due. The remind tick runs from cron, which
	// can drift or miss a minute under load.
	ReminderGracePeriodMin = 10

	// MorningBody is the reminder text for milestones authored without one.
	MorningBody = "Your daily insight is ready. You're doing great."

	// MaxReasonLen bounds the user-authored quit reason. The reason is quoted
	// back verbatim on the daily view, so it has to stay screen-sized.
	MaxReasonLen = 500

	// Tray app integration
	TrayAppIdentifier      = "unhook-tray"
	NotifierLockfileName   = "unhook-tray.lock"
	NotificationDurationMs = 8000
)

// SessionState represents the current state of the TUI application
type SessionState int

const (
	StateJourneys SessionState = iota
	StateDaily
	StateTimeline
	StateOnboarding
	StateNewJourney
	StateConfirmDelete
)

// Settings keys accepted by `unhook settings set`.
const (
	SettingReminderTime         = "reminder_time"
	SettingNotificationsEnabled = "notifications_enabled"
	SettingTimezone             = "timezone"
)
