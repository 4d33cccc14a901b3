package cli

import (
	"fmt"

	"unhook/internal/constants"
	"unhook/internal/validation"
)

type SettingsGetCmd struct{}

func (c *SettingsGetCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Printf("%s = %s\n", constants.SettingReminderTime, settings.ReminderTime)
	fmt.Printf("%s = %v\n", constants.SettingNotificationsEnabled, settings.NotificationsEnabled)
	fmt.Printf("%s = %s\n", constants.SettingTimezone, settings.Timezone)
	return nil
}

type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting key (reminder_time|notifications_enabled|timezone)."`
	Value string `arg:"" help:"New value."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	switch c.Key {
	case constants.SettingReminderTime:
		if err := validation.ReminderTime(c.Value); err != nil {
			return err
		}
		settings.ReminderTime = c.Value
	case constants.SettingNotificationsEnabled:
		switch c.Value {
		case "true", "false":
			settings.NotificationsEnabled = c.Value == "true"
		default:
			return fmt.Errorf("notifications_enabled must be true or false")
		}
	case constants.SettingTimezone:
		if err := validation.Timezone(c.Value); err != nil {
			return err
		}
		settings.Timezone = c.Value
	default:
		return fmt.Errorf("unknown setting: %s", c.Key)
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("Set %s = %s\n", c.Key, c.Value)
	return nil
}
