package document

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/reportingcloud/internal/cmd/base"
	"github.com/hashicorp-forge/reportingcloud/internal/config"
	"github.com/hashicorp-forge/reportingcloud/pkg/builder"
	doc "github.com/hashicorp-forge/reportingcloud/pkg/document"
	"github.com/hashicorp-forge/reportingcloud/pkg/reportingcloud"
)

type AppendCommand struct {
	*base.Command

	service base.ServiceFlags
	output  base.OutputFlags

	flagDivider  string
	flagFormat   string
	flagSettings []string
}

func (c *AppendCommand) Synopsis() string {
	return "Concatenate local documents"
}

func (c *AppendCommand) Help() string {
	return `Usage: reportingcloud document append [options] FILE...

  Append documents in the order given into a single document, written as
  "appended" unless -output is set. Document settings such as
  document_title are given as key=value.` + c.Flags().Help()
}

func (c *AppendCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("append", flag.ContinueOnError))
	c.service.Register(f)
	c.output.Register(f)
	f.StringVar(
		&c.flagDivider, "divider", doc.DividerNone.String(),
		"Divider between documents: none, new-paragraph or new-section.",
	)
	f.StringVar(
		&c.flagFormat, "format", doc.FormatPDF, "Return format.",
	)
	f.StringSliceVar(
		&c.flagSettings, "setting", "Document setting as key=value. May be repeated.",
	)
	return f
}

func (c *AppendCommand) Run(args []string) int {
	f := c.Flags()
	return c.Execute(f, args, -1, &c.service,
		func(ctx context.Context, cfg *config.Config, client *reportingcloud.Client) error {
			if f.NArg() == 0 {
				return fmt.Errorf("at least one document is required")
			}
			divider, ok := doc.ParseDivider(c.flagDivider)
			if !ok {
				return fmt.Errorf("unknown divider %q", c.flagDivider)
			}
			settings, err := parseSettings(c.flagSettings)
			if err != nil {
				return err
			}

			entries := make([]builder.DocumentEntry, 0, f.NArg())
			for _, filename := range f.Args() {
				entries = append(entries, builder.DocumentEntry{Filename: filename, Divider: divider})
			}

			document, err := client.AppendDocuments(ctx, reportingcloud.AppendRequest{
				Documents:        entries,
				ReturnFormat:     c.flagFormat,
				DocumentSettings: settings,
			})
			if err != nil {
				return fmt.Errorf("error appending documents: %w", err)
			}
			_, err = c.WriteOutputs(ctx, cfg, &c.output, "appended", c.flagFormat, [][]byte{document})
			return err
		})
}
