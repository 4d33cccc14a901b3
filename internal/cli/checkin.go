package cli

import "fmt"

type CheckinCmd struct {
	ID string `arg:"" help:"Journey ID (or unique prefix)."`
}

func (c *CheckinCmd) Run(ctx *Context) error {
	journey, err := resolveJourney(ctx, c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Journeys.RecordCheckIn(journey.ID); err != nil {
		return err
	}

	fmt.Println("Checked in. Still free — that's what matters.")
	return nil
}
