package cli

import (
	"fmt"

	"unhook/internal/catalog"
	"unhook/internal/progress"
)

type TimelineCmd struct {
	ID string `arg:"" help:"Journey ID (or unique prefix)."`
}

func (c *TimelineCmd) Run(ctx *Context) error {
	journey, err := resolveJourney(ctx, c.ID)
	if err != nil {
		return err
	}

	sub, ok := catalog.Get(journey.SubstanceID)
	if !ok {
		return fmt.Errorf("no content for substance %q", journey.SubstanceID)
	}

	now := journeyNow(ctx)
	day := progress.DayCount(journey.StartDate, now)
	current := progress.MilestoneAtOrBefore(sub, day)

	fmt.Printf("%s %s Freedom — Day %d\n\n", sub.Icon, sub.Name, day)

	for _, m := range sub.Timeline {
		marker := "  ○"
		if m.Day <= day {
			marker = "  ●"
		}
		if m.Day == current.Day {
			marker = "▶ ●"
		}
		fmt.Printf("%s Day %-3d %s\n", marker, m.Day, m.Title)
	}

	fmt.Println()
	if next, ok := progress.NextMilestone(sub, day); ok {
		fmt.Printf("Next up: %s (day %d, %d days away)\n", next.Title, next.Day, next.Day-day)
	} else {
		fmt.Println("Every milestone reached.")
	}

	return nil
}
