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

type ConvertCommand struct {
	*base.Command

	service base.ServiceFlags
	output  base.OutputFlags

	flagFormat string
}

func (c *ConvertCommand) Synopsis() string {
	return "Convert a local document to another format"
}

func (c *ConvertCommand) Help() string {
	return `Usage: reportingcloud document convert [options] FILE

  Convert a DOC, DOCX, HTML, PDF, RTF or TX document to the format given by
  -format.` + c.Flags().Help()
}

func (c *ConvertCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("convert", flag.ContinueOnError))
	c.service.Register(f)
	c.output.Register(f)
	f.StringVar(
		&c.flagFormat, "format", doc.FormatPDF, "Return format, e.g. PDF, PDFA, DOCX, HTML or TXT.",
	)
	return f
}

func (c *ConvertCommand) Run(args []string) int {
	f := c.Flags()
	return c.Execute(f, args, 1, &c.service,
		func(ctx context.Context, cfg *config.Config, client *reportingcloud.Client) error {
			filename := f.Arg(0)
			data, err := client.ConvertDocument(ctx, filename, c.flagFormat)
			if err != nil {
				return fmt.Errorf("error converting %s: %w", filename, err)
			}
			_, err = c.WriteOutputs(ctx, cfg, &c.output, filename, c.flagFormat, [][]byte{data})
			return err
		})
}
