package cli

import (
	"fmt"
	"strings"

	"unhook/internal/catalog"
	"unhook/internal/notifier"
)

type IntroCmd struct {
	ID string `arg:"" help:"Journey ID (or unique prefix)."`
}

// Run prints the substance's freedom guide, marks the introduction read, and
// schedules the daily morning reminder — the same sequence as finishing the
// onboarding flow in the TUI.
func (c *IntroCmd) Run(ctx *Context) error {
	journey, err := resolveJourney(ctx, c.ID)
	if err != nil {
		return err
	}

	sub, ok := catalog.Get(journey.SubstanceID)
	if !ok {
		return fmt.Errorf("no content for substance %q", journey.SubstanceID)
	}

	intro := sub.Introduction
	fmt.Printf("%s %s\n", sub.Icon, strings.ToUpper(intro.Title))
	for i, section := range intro.Sections {
		fmt.Printf("\n%d. %s\n\n", i+1, section.Title)
		fmt.Printf("  %s\n", strings.ReplaceAll(section.Content, "\n", "\n  "))
	}

	if err := ctx.Journeys.MarkIntroRead(journey.ID); err != nil {
		return err
	}

	_, scheduled, err := ctx.Reminders.ScheduleMorning(journey)
	if err != nil {
		return err
	}

	fmt.Println()
	if scheduled {
		fmt.Println("You're ready. A morning reminder is set — see your daily insight with `unhook today " + shortID(journey.ID) + "`.")
		if !notifier.New().Available() {
			fmt.Println("(unhook-tray isn't running, so reminders won't be delivered until it is.)")
		}
	} else {
		fmt.Println("You're ready. Reminders are disabled; see your daily insight with `unhook today " + shortID(journey.ID) + "`.")
	}

	return nil
}
