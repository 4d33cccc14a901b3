package models

import (
	"fmt"
	"strings"
	"time"

	"unhook/internal/constants"
)

// Journey represents one active attempt to stop a specific substance, from
// start date to deletion. JSON field names follow the persisted document
// format (camelCase, RFC3339 instants), so stored state round-trips across
// versions of the app.
type Journey struct {
	ID           string     `json:"id"`
	SubstanceID  string     `json:"substanceId"`
	Reason       string     `json:"reason"`
	StartDate    time.Time  `json:"startDate"`
	HasReadIntro bool       `json:"hasReadIntro"`
	LastCheckIn  *time.Time `json:"lastCheckIn"`
}

func (j *Journey) Validate() error {
	if j.ID == "" {
		return fmt.Errorf("journey id cannot be empty")
	}
	if j.SubstanceID == "" {
		return fmt.Errorf("journey substance id cannot be empty")
	}
	if strings.TrimSpace(j.Reason) == "" {
		return fmt.Errorf("journey reason cannot be empty")
	}
	if len(j.Reason) > constants.MaxReasonLen {
		return fmt.Errorf("journey reason exceeds %d characters", constants.MaxReasonLen)
	}
	if j.StartDate.IsZero() {
		return fmt.Errorf("journey start date cannot be zero")
	}
	return nil
}
