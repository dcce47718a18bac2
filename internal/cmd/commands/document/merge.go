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

type MergeCommand struct {
	*base.Command

	service  base.ServiceFlags
	output   base.OutputFlags
	template templateFlags

	flagData     string
	flagFormat   string
	flagAppend   bool
	flagSettings []string
}

func (c *MergeCommand) Synopsis() string {
	return "Merge JSON data into a template"
}

func (c *MergeCommand) Help() string {
	return `Usage: reportingcloud document merge [options] -data=records.json

  Merge the records of a JSON file into a stored or local template. One
  document is written per record unless -append is set.

  Merge settings are given as key=value, for example:

      -setting remove_empty_blocks=true -setting culture=de-DE` + c.Flags().Help()
}

func (c *MergeCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("merge", flag.ContinueOnError))
	c.service.Register(f)
	c.output.Register(f)
	c.template.register(f)
	f.StringVar(
		&c.flagData, "data", "", "(Required) Path to a JSON record or array of records.",
	)
	f.StringVar(
		&c.flagFormat, "format", doc.FormatPDF, "Return format.",
	)
	f.BoolVar(
		&c.flagAppend, "append", false, "Merge all records into a single document.",
	)
	f.StringSliceVar(
		&c.flagSettings, "setting", "Merge setting as key=value. May be repeated.",
	)
	return f
}

func (c *MergeCommand) Run(args []string) int {
	return c.Execute(c.Flags(), args, 0, &c.service,
		func(ctx context.Context, cfg *config.Config, client *reportingcloud.Client) error {
			if c.flagData == "" {
				return fmt.Errorf("data flag is required")
			}
			data, err := readMergeData(c.Fs, c.flagData)
			if err != nil {
				return err
			}
			settings, err := parseSettings(c.flagSettings)
			if err != nil {
				return err
			}

			req := reportingcloud.MergeRequest{
				MergeData:     data,
				ReturnFormat:  c.flagFormat,
				Template:      c.template.reference(),
				MergeSettings: settings,
			}
			if c.flagAppend {
				req.Append = &c.flagAppend
			}

			documents, err := client.MergeDocument(ctx, req)
			if err != nil {
				return fmt.Errorf("error merging: %w", err)
			}
			if len(documents) == 0 {
				return fmt.Errorf("the service returned no documents")
			}
			_, err = c.WriteOutputs(ctx, cfg, &c.output, c.template.outputBase(), c.flagFormat, documents)
			return err
		})
}
