package account

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/reportingcloud/internal/cmd/base"
)

type APIKeysCommand struct {
	*base.Command

	service    base.ServiceFlags
	flagCreate bool
	flagDelete string
}

func (c *APIKeysCommand) Synopsis() string {
	return "List, create or delete API keys"
}

func (c *APIKeysCommand) Help() string {
	return `Usage: reportingcloud account api-keys [options]

  List the API keys of the account. With -create a new key is created and
  printed; with -delete the given key is removed.` + c.Flags().Help()
}

func (c *APIKeysCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("api-keys", flag.ContinueOnError))
	c.service.Register(f)
	f.BoolVar(
		&c.flagCreate, "create", false, "Create a new API key.",
	)
	f.StringVar(
		&c.flagDelete, "delete", "", "API key to delete.",
	)
	return f
}

func (c *APIKeysCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagCreate && c.flagDelete != "" {
		ui.Error("-create and -delete are mutually exclusive")
		return 1
	}

	_, client, err := c.Setup(&c.service)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	switch {
	case c.flagCreate:
		key, err := client.CreateAPIKey(ctx)
		if err != nil {
			ui.Error(fmt.Sprintf("error creating API key: %v", err))
			return 1
		}
		if key == "" {
			ui.Error("the service did not create an API key")
			return 1
		}
		ui.Output(key)

	case c.flagDelete != "":
		ok, err := client.DeleteAPIKey(ctx, c.flagDelete)
		if err != nil {
			ui.Error(fmt.Sprintf("error deleting API key: %v", err))
			return 1
		}
		if !ok {
			ui.Error("the service did not delete the API key")
			return 1
		}
		ui.Info("API key deleted")

	default:
		keys, err := client.APIKeys(ctx)
		if err != nil {
			ui.Error(fmt.Sprintf("error listing API keys: %v", err))
			return 1
		}
		for _, key := range keys {
			state := "inactive"
			if key.Active {
				state = "active"
			}
			ui.Output(fmt.Sprintf("%s  %s", key.Key, state))
		}
	}

	return 0
}
