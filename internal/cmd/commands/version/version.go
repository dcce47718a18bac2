package version

import (
	"github.com/hashicorp-forge/reportingcloud/internal/cmd/base"
	"github.com/hashicorp-forge/reportingcloud/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return `Usage: reportingcloud version`
}

func (c *Command) Run(args []string) int {
	c.UI.Output("reportingcloud " + version.Version)
	return 0
}
