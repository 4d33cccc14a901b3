// Package validation holds the input checks applied at the journey-creation
// boundary, before any record is constructed.
package validation

import (
	"fmt"
	"strings"

	"unhook/internal/catalog"
	"unhook/internal/constants"
	"unhook/internal/utils"
)

// Reason validates and normalizes a user-authored quit reason. The reason is
// displayed back verbatim as the user's core motivation, so an empty or
// whitespace-only reason is rejected rather than silently stored.
func Reason(reason string) (string, error) {
	trimmed := strings.TrimSpace(reason)
	if trimmed == "" {
		return "", fmt.Errorf("reason cannot be empty")
	}
	if len(trimmed) > constants.MaxReasonLen {
		return "", fmt.Errorf("reason cannot exceed %d characters", constants.MaxReasonLen)
	}
	return trimmed, nil
}

// SubstanceID checks that an identifier resolves in the content catalog. A
// journey must never be created against a substance with no content.
func SubstanceID(id string) error {
	if _, ok := catalog.Get(id); !ok {
		return fmt.Errorf("unknown substance: %q (choose from %s)", id, strings.Join(catalog.IDs(), ", "))
	}
	return nil
}

// ReminderTime checks an HH:MM wall-clock time.
func ReminderTime(timeStr string) error {
	if !utils.ValidateTimeFormat(timeStr) {
		return fmt.Errorf("invalid time format (expected HH:MM): %q", timeStr)
	}
	return nil
}

// Timezone checks an IANA timezone name ("Local" and "" mean the system zone).
func Timezone(tz string) error {
	if !utils.ValidateTimezone(tz) {
		return fmt.Errorf("invalid timezone: %q", tz)
	}
	return nil
}
