package cli

import (
	"fmt"

	"unhook/internal/logger"
	"unhook/internal/notifier"
)

// RemindCmd is the hidden dispatch tick, meant to be invoked every minute by
// cron or a systemd timer. It sends any due morning reminders through the
// tray app and records delivery.
type RemindCmd struct {
	DryRun bool `help:"Print notifications to stdout instead of sending them."`
}

func (c *RemindCmd) Run(ctx *Context) error {
	now := journeyNow(ctx)

	send := func(title, body string) error {
		fmt.Printf("[DryRun] %s — %s\n", title, body)
		return nil
	}
	if !c.DryRun {
		n := notifier.New()
		send = n.Notify
	}

	sent, err := ctx.Reminders.Dispatch(now, send)
	if err != nil {
		return err
	}

	if sent > 0 {
		logger.Info("Dispatched reminders", "count", sent)
	}
	if c.DryRun {
		fmt.Printf("%d reminder(s) due.\n", sent)
	}
	return nil
}
