package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/reportingcloud/internal/cmd/base"
	"github.com/hashicorp-forge/reportingcloud/internal/cmd/commands/account"
	"github.com/hashicorp-forge/reportingcloud/internal/cmd/commands/document"
	"github.com/hashicorp-forge/reportingcloud/internal/cmd/commands/template"
	"github.com/hashicorp-forge/reportingcloud/internal/cmd/commands/version"
)

// Commands is the mapping of all available reportingcloud commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	initCommandsWith(base.NewCommand(log, ui))
}

func initCommandsWith(b *base.Command) {
	Commands = map[string]cli.CommandFactory{
		"account": func() (cli.Command, error) {
			return &account.Command{Command: b}, nil
		},
		"account settings": func() (cli.Command, error) {
			return &account.SettingsCommand{Command: b}, nil
		},
		"account api-keys": func() (cli.Command, error) {
			return &account.APIKeysCommand{Command: b}, nil
		},

		"template": func() (cli.Command, error) {
			return &template.Command{Command: b}, nil
		},
		"template list": func() (cli.Command, error) {
			return &template.ListCommand{Command: b}, nil
		},
		"template count": func() (cli.Command, error) {
			return &template.CountCommand{Command: b}, nil
		},
		"template exists": func() (cli.Command, error) {
			return &template.ExistsCommand{Command: b}, nil
		},
		"template info": func() (cli.Command, error) {
			return &template.InfoCommand{Command: b}, nil
		},
		"template pagecount": func() (cli.Command, error) {
			return &template.PageCountCommand{Command: b}, nil
		},
		"template upload": func() (cli.Command, error) {
			return &template.UploadCommand{Command: b}, nil
		},
		"template download": func() (cli.Command, error) {
			return &template.DownloadCommand{Command: b}, nil
		},
		"template delete": func() (cli.Command, error) {
			return &template.DeleteCommand{Command: b}, nil
		},
		"template thumbnails": func() (cli.Command, error) {
			return &template.ThumbnailsCommand{Command: b}, nil
		},

		"document": func() (cli.Command, error) {
			return &document.Command{Command: b}, nil
		},
		"document convert": func() (cli.Command, error) {
			return &document.ConvertCommand{Command: b}, nil
		},
		"document merge": func() (cli.Command, error) {
			return &document.MergeCommand{Command: b}, nil
		},
		"document find-and-replace": func() (cli.Command, error) {
			return &document.FindAndReplaceCommand{Command: b}, nil
		},
		"document append": func() (cli.Command, error) {
			return &document.AppendCommand{Command: b}, nil
		},

		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
