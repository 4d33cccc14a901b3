package cli

import (
	"fmt"

	"unhook/internal/catalog"
)

type StartCmd struct {
	Substance string `arg:"" help:"Substance to quit (alcohol|cocaine)."`
	Reason    string `short:"r" help:"Your personal reason for quitting." required:""`
}

func (c *StartCmd) Run(ctx *Context) error {
	journey, err := ctx.Journeys.Start(c.Substance, c.Reason)
	if err != nil {
		return err
	}

	sub, _ := catalog.Get(journey.SubstanceID)
	fmt.Printf("%s Started your %s freedom journey (ID: %s)\n", sub.Icon, sub.Name, shortID(journey.ID))
	fmt.Printf("Your reason: %q\n\n", journey.Reason)
	fmt.Printf("Next: read the freedom guide with `unhook intro %s`\n", shortID(journey.ID))
	return nil
}
