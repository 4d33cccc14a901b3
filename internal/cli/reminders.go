package cli

import (
	"fmt"
)

type ReminderListCmd struct{}

func (c *ReminderListCmd) Run(ctx *Context) error {
	all, err := ctx.Store.GetAllReminders()
	if err != nil {
		return err
	}

	if len(all) == 0 {
		fmt.Println("No reminders scheduled.")
		return nil
	}

	now := journeyNow(ctx)
	for _, r := range all {
		line := fmt.Sprintf("%s  daily at %s", shortID(r.ID), r.Time)
		if journey, ok := ctx.Journeys.Get(r.JourneyID); ok {
			line += "  → " + journeyLine(journey, now)
		} else {
			line += fmt.Sprintf("  → (missing journey %s)", shortID(r.JourneyID))
		}
		if r.SentOn(now) {
			line += "  [sent today]"
		}
		fmt.Println(line)
	}

	return nil
}

type ReminderCancelCmd struct {
	ID string `arg:"" help:"Journey ID (or unique prefix)."`
}

func (c *ReminderCancelCmd) Run(ctx *Context) error {
	journey, err := resolveJourney(ctx, c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Reminders.CancelForJourney(journey.ID); err != nil {
		return err
	}
	fmt.Printf("Cancelled reminders for journey %s.\n", shortID(journey.ID))
	return nil
}

type ReminderCancelAllCmd struct{}

func (c *ReminderCancelAllCmd) Run(ctx *Context) error {
	if err := ctx.Reminders.CancelAll(); err != nil {
		return err
	}
	fmt.Println("Cancelled all reminders.")
	return nil
}
