package account

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/reportingcloud/internal/cmd/base"
	"github.com/hashicorp-forge/reportingcloud/pkg/filter"
)

type SettingsCommand struct {
	*base.Command

	service base.ServiceFlags
}

func (c *SettingsCommand) Synopsis() string {
	return "Show the document and template quota of the account"
}

func (c *SettingsCommand) Help() string {
	return `Usage: reportingcloud account settings [options]

  Print the serial number and the document, template and proofing quota of
  the account.` + c.Flags().Help()
}

func (c *SettingsCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("settings", flag.ContinueOnError))
	c.service.Register(f)
	return f
}

func (c *SettingsCommand) Run(args []string) int {
	logger, ui := c.Log, c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	_, client, err := c.Setup(&c.service)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	settings, err := client.AccountSettings(ctx)
	if err != nil {
		ui.Error(fmt.Sprintf("error getting account settings: %v", err))
		return 1
	}
	if settings == nil {
		ui.Error("the service returned no account settings")
		return 1
	}
	logger.Debug("got account settings", "serial_number", settings.SerialNumber)

	ui.Output(fmt.Sprintf("Serial number:        %s", settings.SerialNumber))
	ui.Output(fmt.Sprintf("Documents:            %d / %d", settings.CreatedDocuments, settings.MaxDocuments))
	ui.Output(fmt.Sprintf("Templates:            %d / %d", settings.UploadedTemplates, settings.MaxTemplates))
	ui.Output(fmt.Sprintf("Proofing:             %d / %d",
		settings.ProofingTransactions, settings.MaxProofingTransactions))
	ui.Output(fmt.Sprintf("Valid until:          %s", filter.TimestampToDateTime(settings.ValidUntil)))

	return 0
}
