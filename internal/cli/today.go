package cli

import (
	"fmt"
	"strings"

	"unhook/internal/catalog"
	"unhook/internal/constants"
	"unhook/internal/progress"
)

type TodayCmd struct {
	ID string `arg:"" help:"Journey ID (or unique prefix)."`
}

func (c *TodayCmd) Run(ctx *Context) error {
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
	milestone := progress.MilestoneAtOrBefore(sub, day)

	fmt.Printf("%s %s Freedom — Day %d\n", sub.Icon, sub.Name, day)
	fmt.Printf("%s\n\n", milestone.Title)

	fmt.Println("YOUR REASON")
	fmt.Printf("  %q\n\n", journey.Reason)

	sections := []struct {
		label string
		text  string
	}{
		{"💡 Reframe Your Thinking", milestone.Reframe},
		{"🫀 What's Happening In Your Body", milestone.Physical},
		{"🧠 What's Happening In Your Mind", milestone.Mental},
		{"🎯 Remember This", milestone.Reminder},
	}
	for _, s := range sections {
		fmt.Println(s.label)
		fmt.Printf("  %s\n\n", strings.ReplaceAll(s.text, "\n", "\n  "))
	}

	if next, ok := progress.NextMilestone(sub, day); ok {
		fmt.Printf("Next milestone: %s (in %d days)\n", next.Title, next.Day-day)
	} else {
		fmt.Println("You've passed every authored milestone. You escaped. Now live your free life.")
	}

	if journey.LastCheckIn != nil {
		fmt.Printf("Last check-in: %s\n", journey.LastCheckIn.In(now.Location()).Format(constants.DateFormat+" "+constants.TimeFormat))
	}

	return nil
}
