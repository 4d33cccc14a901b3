// Package reminders maps journeys to recurring daily local reminders. A
// journey has at most one active reminder; scheduling replaces any existing
// one, and deleting a journey cancels its reminders on every path.
package reminders

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"unhook/internal/catalog"
	"unhook/internal/constants"
	"unhook/internal/logger"
	"unhook/internal/models"
	"unhook/internal/progress"
	"unhook/internal/storage"
)

// Message is the title/body pair delivered in a morning reminder.
type Message struct {
	Title string
	Body  string
}

// SendFunc delivers a single notification. The remind command passes the
// tray notifier; tests and --dry-run pass something tamer.
type SendFunc func(title, body string) error

type Scheduler struct {
	store storage.Provider
}

func New(store storage.Provider) *Scheduler {
	return &Scheduler{store: store}
}

// ScheduleMorning records a recurring daily reminder for the journey at the
// configured wall-clock time. Any pre-existing reminders for the same
// journey are cancelled first, so calling this twice leaves exactly one.
// The boolean is false when notifications are disabled in settings; that is
// a normal outcome, not an error.
func (s *Scheduler) ScheduleMorning(journey models.Journey) (models.Reminder, bool, error) {
	settings, err := s.store.GetSettings()
	if err != nil {
		return models.Reminder{}, false, fmt.Errorf("failed to get settings: %w", err)
	}

	if !settings.NotificationsEnabled {
		logger.Debug("Notifications disabled, skipping reminder", "journey", journey.ID)
		return models.Reminder{}, false, nil
	}

	if err := s.store.DeleteRemindersForJourney(journey.ID); err != nil {
		return models.Reminder{}, false, fmt.Errorf("failed to cancel existing reminders: %w", err)
	}

	remindAt := settings.ReminderTime
	if remindAt == "" {
		remindAt = constants.DefaultReminderTime
	}

	reminder := models.Reminder{
		ID:        uuid.New().String(),
		JourneyID: journey.ID,
		Time:      remindAt,
		CreatedAt: time.Now().UTC(),
	}
	if err := reminder.Validate(); err != nil {
		return models.Reminder{}, false, err
	}

	if err := s.store.AddReminder(reminder); err != nil {
		return models.Reminder{}, false, fmt.Errorf("failed to save reminder: %w", err)
	}

	logger.Debug("Scheduled morning reminder", "journey", journey.ID, "time", remindAt)
	return reminder, true, nil
}

// CancelForJourney cancels every reminder carrying the journey identifier,
// duplicates included.
func (s *Scheduler) CancelForJourney(journeyID string) error {
	return s.store.DeleteRemindersForJourney(journeyID)
}

// CancelAll clears every reminder the app owns. Full-reset path only.
func (s *Scheduler) CancelAll() error {
	return s.store.DeleteAllReminders()
}

// Dispatch sends every reminder due at now, resolving each journey's current
// day and message. Reminders whose journey no longer exists are cancelled
// instead of sent. Returns the number delivered.
func (s *Scheduler) Dispatch(now time.Time, send SendFunc) (int, error) {
	settings, err := s.store.GetSettings()
	if err != nil {
		return 0, fmt.Errorf("failed to get settings: %w", err)
	}
	if !settings.NotificationsEnabled {
		return 0, nil
	}

	all, err := s.store.GetAllReminders()
	if err != nil {
		return 0, fmt.Errorf("failed to load reminders: %w", err)
	}

	sent := 0
	for _, r := range all {
		if !r.IsDue(now, constants.ReminderGracePeriodMin) {
			continue
		}

		journey, err := s.store.GetJourney(r.JourneyID)
		if err != nil {
			// Stale reminder left behind by an interrupted delete
			logger.Warn("Cancelling reminder for missing journey", "journey", r.JourneyID)
			if err := s.store.DeleteRemindersForJourney(r.JourneyID); err != nil {
				logger.Error("Failed to cancel stale reminder", "journey", r.JourneyID, "error", err)
			}
			continue
		}

		day := progress.DayCount(journey.StartDate, now)
		msg := MessageFor(journey.SubstanceID, day)

		if err := send(msg.Title, msg.Body); err != nil {
			// Delivery failure is normal when the tray app is absent; leave
			// LastSent unset so a later tick in the grace window can retry.
			logger.Debug("Reminder delivery failed", "journey", journey.ID, "error", err)
			continue
		}

		ts := now.UTC()
		r.LastSent = &ts
		if err := s.store.UpdateReminder(r); err != nil {
			logger.Error("Failed to record reminder delivery", "reminder", r.ID, "error", err)
		}
		sent++
	}

	return sent, nil
}

// MessageFor builds the morning message for a substance at the given day
// count: the current milestone's title and reminder text, or a generic
// still-free message when nothing resolves. It never fails.
func MessageFor(substanceID string, day int) Message {
	fallback := Message{
		Title: fmt.Sprintf("Day %d", day),
		Body:  "You're still free. That's what matters.",
	}

	sub, ok := catalog.Get(substanceID)
	if !ok || len(sub.Timeline) == 0 {
		return fallback
	}

	m := progress.MilestoneAtOrBefore(sub, day)
	if m.Title == "" {
		return fallback
	}

	body := m.Reminder
	if body == "" {
		body = constants.MorningBody
	}
	return Message{Title: m.Title, Body: body}
}
