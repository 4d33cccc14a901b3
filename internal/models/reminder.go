package models

import (
	"fmt"
	"time"

	"unhook/internal/constants"
)

// Reminder is a recurring daily local notification tied to a journey. At most
// one active reminder exists per journey; scheduling replaces, never stacks.
type Reminder struct {
	ID        string     `json:"id"`
	JourneyID string     `json:"journeyId"`
	Time      string     `json:"time"` // HH:MM local wall-clock
	LastSent  *time.Time `json:"lastSent,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (r *Reminder) Validate() error {
	if r.JourneyID == "" {
		return fmt.Errorf("reminder journey id cannot be empty")
	}
	if _, err := time.Parse(constants.TimeFormat, r.Time); err != nil {
		return fmt.Errorf("invalid reminder time format (expected HH:MM): %w", err)
	}
	return nil
}

// IsDue reports whether the reminder should fire at the given local time.
// A reminder is due when now is within the grace window after its wall-clock
// time and it has not already been sent today. The grace window covers cron
// ticks that land late or skip a minute.
func (r *Reminder) IsDue(now time.Time, gracePeriodMin int) bool {
	t, err := time.Parse(constants.TimeFormat, r.Time)
	if err != nil {
		return false
	}

	target := t.Hour()*60 + t.Minute()
	current := now.Hour()*60 + now.Minute()
	if current < target || current > target+gracePeriodMin {
		return false
	}

	return !r.SentOn(now)
}

// SentOn reports whether the reminder was already delivered on the calendar
// day containing the given time.
func (r *Reminder) SentOn(day time.Time) bool {
	if r.LastSent == nil {
		return false
	}
	y1, m1, d1 := r.LastSent.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
