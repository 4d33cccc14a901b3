// Package progress computes elapsed-day counts for a journey and resolves
// which milestone applies to a given day. Everything here is a pure function
// of its inputs; day counts are derived, never stored.
package progress

import (
	"time"

	"unhook/internal/catalog"
)

// DayCount returns the 1-indexed elapsed-day count for a journey started at
// start, observed at now. It is floor((now-start)/24h)+1, clamped to 1.
//
// This is absolute-duration arithmetic, not calendar-day snapping: a journey
// started at 23:59 stays on day 1 until a full 24 hours have passed, midnight
// notwithstanding. That matches the behavior users have seen since the first
// release, so it stays.
func DayCount(start, now time.Time) int {
	days := int(now.Sub(start).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days + 1
}

// MilestoneAtOrBefore returns the last milestone whose day offset is at or
// before day. If day precedes every offset it returns the first milestone;
// timelines start at day 1, so that branch only matters for day < 1.
func MilestoneAtOrBefore(s catalog.Substance, day int) catalog.Milestone {
	if len(s.Timeline) == 0 {
		return catalog.Milestone{}
	}
	closest := s.Timeline[0]
	for _, m := range s.Timeline {
		if m.Day > day {
			break
		}
		closest = m
	}
	return closest
}

// NextMilestone returns the first milestone strictly after day. The second
// return is false once the journey has passed the final authored milestone.
func NextMilestone(s catalog.Substance, day int) (catalog.Milestone, bool) {
	for _, m := range s.Timeline {
		if m.Day > day {
			return m, true
		}
	}
	return catalog.Milestone{}, false
}
