package template

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/reportingcloud/internal/cmd/base"
	"github.com/hashicorp-forge/reportingcloud/internal/config"
	"github.com/hashicorp-forge/reportingcloud/pkg/document"
	"github.com/hashicorp-forge/reportingcloud/pkg/reportingcloud"
)

type UploadCommand struct {
	*base.Command

	service base.ServiceFlags
}

func (c *UploadCommand) Synopsis() string {
	return "Upload a local template file"
}

func (c *UploadCommand) Help() string {
	return `Usage: reportingcloud template upload [options] FILE

  Upload FILE to the template storage under its base name. Supported
  template formats are DOC, DOCX, RTF and TX.` + c.Flags().Help()
}

func (c *UploadCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("upload", flag.ContinueOnError))
	c.service.Register(f)
	return f
}

func (c *UploadCommand) Run(args []string) int {
	f := c.Flags()
	return c.Execute(f, args, 1, &c.service,
		func(ctx context.Context, _ *config.Config, client *reportingcloud.Client) error {
			ok, err := client.UploadTemplate(ctx, f.Arg(0))
			if err != nil {
				return fmt.Errorf("error uploading template: %w", err)
			}
			if !ok {
				return fmt.Errorf("the service did not store %s", f.Arg(0))
			}
			c.UI.Info(fmt.Sprintf("Uploaded %s", f.Arg(0)))
			return nil
		})
}

type DownloadCommand struct {
	*base.Command

	service base.ServiceFlags
	output  base.OutputFlags
}

func (c *DownloadCommand) Synopsis() string {
	return "Download a stored template"
}

func (c *DownloadCommand) Help() string {
	return `Usage: reportingcloud template download [options] NAME

  Download a stored template and write it to the configured output.` +
		c.Flags().Help()
}

func (c *DownloadCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("download", flag.ContinueOnError))
	c.service.Register(f)
	c.output.Register(f)
	return f
}

func (c *DownloadCommand) Run(args []string) int {
	f := c.Flags()
	return c.Execute(f, args, 1, &c.service,
		func(ctx context.Context, cfg *config.Config, client *reportingcloud.Client) error {
			name := f.Arg(0)
			data, err := client.DownloadTemplate(ctx, name)
			if err != nil {
				return fmt.Errorf("error downloading template: %w", err)
			}
			if data == nil {
				return fmt.Errorf("template %s not found", name)
			}
			_, err = c.WriteOutputs(ctx, cfg, &c.output, name, document.Extension(name), [][]byte{data})
			return err
		})
}

type DeleteCommand struct {
	*base.Command

	service base.ServiceFlags
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete a stored template"
}

func (c *DeleteCommand) Help() string {
	return `Usage: reportingcloud template delete [options] NAME` + c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("delete", flag.ContinueOnError))
	c.service.Register(f)
	return f
}

func (c *DeleteCommand) Run(args []string) int {
	f := c.Flags()
	return c.Execute(f, args, 1, &c.service,
		func(ctx context.Context, _ *config.Config, client *reportingcloud.Client) error {
			ok, err := client.DeleteTemplate(ctx, f.Arg(0))
			if err != nil {
				return fmt.Errorf("error deleting template: %w", err)
			}
			if !ok {
				return fmt.Errorf("template %s was not deleted", f.Arg(0))
			}
			c.UI.Info(fmt.Sprintf("Deleted %s", f.Arg(0)))
			return nil
		})
}

type ThumbnailsCommand struct {
	*base.Command

	service base.ServiceFlags
	output  base.OutputFlags

	flagZoom   int
	flagFrom   int64
	flagTo     int64
	flagFormat string
}

func (c *ThumbnailsCommand) Synopsis() string {
	return "Render pages of a stored template as images"
}

func (c *ThumbnailsCommand) Help() string {
	return `Usage: reportingcloud template thumbnails [options] NAME

  Render the pages -from through -to of a stored template and write one
  image per page to the configured output.` + c.Flags().Help()
}

func (c *ThumbnailsCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("thumbnails", flag.ContinueOnError))
	c.service.Register(f)
	c.output.Register(f)
	f.IntVar(
		&c.flagZoom, "zoom", 100, "Zoom factor in percent (1 to 400).",
	)
	f.Int64Var(
		&c.flagFrom, "from", 1, "First page to render.",
	)
	f.Int64Var(
		&c.flagTo, "to", 1, "Last page to render.",
	)
	f.StringVar(
		&c.flagFormat, "format", document.FormatPNG, "Image format: BMP, GIF, JPG or PNG.",
	)
	return f
}

func (c *ThumbnailsCommand) Run(args []string) int {
	f := c.Flags()
	return c.Execute(f, args, 1, &c.service,
		func(ctx context.Context, cfg *config.Config, client *reportingcloud.Client) error {
			name := f.Arg(0)
			images, err := client.TemplateThumbnails(ctx, name, c.flagZoom, c.flagFrom, c.flagTo, c.flagFormat)
			if err != nil {
				return fmt.Errorf("error rendering thumbnails: %w", err)
			}
			if images == nil {
				return fmt.Errorf("no thumbnails for template %s", name)
			}
			_, err = c.WriteOutputs(ctx, cfg, &c.output, name, c.flagFormat, images)
			return err
		})
}
