package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

type DeleteCmd struct {
	ID  string `arg:"" help:"Journey ID (or unique prefix)."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	journey, err := resolveJourney(ctx, c.ID)
	if err != nil {
		return err
	}

	if !c.Yes {
		confirmed := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Delete this journey?").
				Description("This will delete all your progress and cancel its reminders.").
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := ctx.Journeys.Delete(journey.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted journey %s.\n", shortID(journey.ID))
	return nil
}
