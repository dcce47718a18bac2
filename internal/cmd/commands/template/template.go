package template

import (
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/reportingcloud/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage templates stored in the template storage"
}

func (c *Command) Help() string {
	return `Usage: reportingcloud template <subcommand> [options] [args]

  This command groups subcommands that list, inspect, upload, download and
  delete templates in the account's template storage.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
