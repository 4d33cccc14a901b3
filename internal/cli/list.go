package cli

import "fmt"

type ListCmd struct{}

func (c *ListCmd) Run(ctx *Context) error {
	all, err := ctx.Journeys.List()
	if err != nil {
		return err
	}

	if len(all) == 0 {
		fmt.Println("No journeys yet. Ready to be free? Run `unhook start <substance> -r \"your reason\"`.")
		return nil
	}

	now := journeyNow(ctx)

	// Journeys whose intro is unread are still in setup
	printedActive := false
	for _, j := range all {
		if !j.HasReadIntro {
			continue
		}
		if !printedActive {
			fmt.Println("YOUR JOURNEYS")
			printedActive = true
		}
		fmt.Printf("  %s\n", journeyLine(j, now))
	}

	printedPending := false
	for _, j := range all {
		if j.HasReadIntro {
			continue
		}
		if !printedPending {
			if printedActive {
				fmt.Println()
			}
			fmt.Println("CONTINUE SETUP")
			printedPending = true
		}
		fmt.Printf("  %s  (read the guide: `unhook intro %s`)\n", journeyLine(j, now), shortID(j.ID))
	}

	return nil
}
