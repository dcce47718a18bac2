package document

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/reportingcloud/internal/cmd/base"
	"github.com/hashicorp-forge/reportingcloud/internal/config"
	doc "github.com/hashicorp-forge/reportingcloud/pkg/document"
	"github.com/hashicorp-forge/reportingcloud/pkg/reportingcloud"
)

type FindAndReplaceCommand struct {
	*base.Command

	service  base.ServiceFlags
	output   base.OutputFlags
	template templateFlags

	flagReplace  []string
	flagFormat   string
	flagSettings []string
}

func (c *FindAndReplaceCommand) Synopsis() string {
	return "Replace placeholders in a template"
}

func (c *FindAndReplaceCommand) Help() string {
	return `Usage: reportingcloud document find-and-replace [options]

  Replace placeholders in a stored or local template. Replacements are
  applied in the order they are given:

      -replace %%NAME%%=Jane -replace %%CITY%%=Berlin` + c.Flags().Help()
}

func (c *FindAndReplaceCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("find-and-replace", flag.ContinueOnError))
	c.service.Register(f)
	c.output.Register(f)
	c.template.register(f)
	f.StringSliceVar(
		&c.flagReplace, "replace", "(Required) Replacement as placeholder=text. May be repeated.",
	)
	f.StringVar(
		&c.flagFormat, "format", doc.FormatPDF, "Return format.",
	)
	f.StringSliceVar(
		&c.flagSettings, "setting", "Merge setting as key=value. May be repeated.",
	)
	return f
}

func (c *FindAndReplaceCommand) Run(args []string) int {
	return c.Execute(c.Flags(), args, 0, &c.service,
		func(ctx context.Context, cfg *config.Config, client *reportingcloud.Client) error {
			if len(c.flagReplace) == 0 {
				return fmt.Errorf("at least one -replace is required")
			}
			data, err := parseReplacements(c.flagReplace)
			if err != nil {
				return err
			}
			settings, err := parseSettings(c.flagSettings)
			if err != nil {
				return err
			}

			document, err := client.FindAndReplace(ctx, reportingcloud.FindAndReplaceRequest{
				Data:          data,
				ReturnFormat:  c.flagFormat,
				Template:      c.template.reference(),
				MergeSettings: settings,
			})
			if err != nil {
				return fmt.Errorf("error replacing placeholders: %w", err)
			}
			_, err = c.WriteOutputs(ctx, cfg, &c.output, c.template.outputBase(), c.flagFormat, [][]byte{document})
			return err
		})
}
