package cli

import (
	"fmt"
	"strings"
	"time"

	"unhook/internal/catalog"
	"unhook/internal/journeys"
	"unhook/internal/models"
	"unhook/internal/progress"
	"unhook/internal/reminders"
	"unhook/internal/storage"
	"unhook/internal/utils"
)

type Context struct {
	Store     storage.Provider
	Journeys  *journeys.Service
	Reminders *reminders.Scheduler
	Debug     bool
}

// resolveJourney finds a journey by full ID or unique ID prefix, so users
// can type the short prefix shown by `unhook list`.
func resolveJourney(ctx *Context, idOrPrefix string) (models.Journey, error) {
	if journey, ok := ctx.Journeys.Get(idOrPrefix); ok {
		return journey, nil
	}

	all, err := ctx.Journeys.List()
	if err != nil {
		return models.Journey{}, err
	}

	var matches []models.Journey
	for _, j := range all {
		if strings.HasPrefix(j.ID, idOrPrefix) {
			matches = append(matches, j)
		}
	}

	switch len(matches) {
	case 0:
		return models.Journey{}, fmt.Errorf("journey not found: %s", idOrPrefix)
	case 1:
		return matches[0], nil
	default:
		return models.Journey{}, fmt.Errorf("ambiguous journey id %q matches %d journeys", idOrPrefix, len(matches))
	}
}

// journeyNow returns the current time in the configured timezone, falling
// back to the system zone when settings are unreadable.
func journeyNow(ctx *Context) time.Time {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return time.Now()
	}
	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		return time.Now()
	}
	return now
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// journeyLine formats the one-line summary used by list output.
func journeyLine(j models.Journey, now time.Time) string {
	sub, ok := catalog.Get(j.SubstanceID)
	if !ok {
		return fmt.Sprintf("%s  (unknown substance %q)", shortID(j.ID), j.SubstanceID)
	}
	day := progress.DayCount(j.StartDate, now)
	return fmt.Sprintf("%s  %s %s Freedom — Day %d", shortID(j.ID), sub.Icon, sub.Name, day)
}
