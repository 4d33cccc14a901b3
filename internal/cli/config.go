package cli

import (
	"fmt"

	"unhook/internal/keyring"
	"unhook/internal/storage"
)

type ConfigSetConnectionStringCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in the OS keyring."`
}

func (c *ConfigSetConnectionStringCmd) Run(ctx *Context) error {
	if !storage.HasEmbeddedCredentials(c.ConnectionString) {
		fmt.Println("Note: the connection string has no embedded password; the keyring is only needed for strings that do.")
	}
	if err := keyring.SetConnectionString(c.ConnectionString); err != nil {
		return err
	}
	fmt.Println("Connection string stored in OS keyring.")
	return nil
}

type ConfigDeleteConnectionStringCmd struct{}

func (c *ConfigDeleteConnectionStringCmd) Run(ctx *Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		return err
	}
	fmt.Println("Connection string removed from OS keyring.")
	return nil
}
