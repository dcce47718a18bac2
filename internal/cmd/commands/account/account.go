package account

import (
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/reportingcloud/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Inspect the ReportingCloud account"
}

func (c *Command) Help() string {
	return `Usage: reportingcloud account <subcommand> [options]

  This command groups subcommands that report on the authenticated account.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
