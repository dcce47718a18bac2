package template

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp-forge/reportingcloud/internal/cmd/base"
	"github.com/hashicorp-forge/reportingcloud/internal/config"
	"github.com/hashicorp-forge/reportingcloud/pkg/filter"
	"github.com/hashicorp-forge/reportingcloud/pkg/reportingcloud"
)

type ListCommand struct {
	*base.Command

	service base.ServiceFlags
}

func (c *ListCommand) Synopsis() string {
	return "List stored templates"
}

func (c *ListCommand) Help() string {
	return `Usage: reportingcloud template list [options]

  List the name, modification time and size of every stored template.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("list", flag.ContinueOnError))
	c.service.Register(f)
	return f
}

func (c *ListCommand) Run(args []string) int {
	return c.Execute(c.Flags(), args, 0, &c.service,
		func(ctx context.Context, _ *config.Config, client *reportingcloud.Client) error {
			templates, err := client.TemplateList(ctx)
			if err != nil {
				return fmt.Errorf("error listing templates: %w", err)
			}
			for _, t := range templates {
				c.UI.Output(fmt.Sprintf("%-40s %s %10d",
					t.TemplateName, filter.TimestampToDateTime(t.Modified), t.Size))
			}
			return nil
		})
}

type CountCommand struct {
	*base.Command

	service base.ServiceFlags
}

func (c *CountCommand) Synopsis() string {
	return "Count stored templates"
}

func (c *CountCommand) Help() string {
	return `Usage: reportingcloud template count [options]` + c.Flags().Help()
}

func (c *CountCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("count", flag.ContinueOnError))
	c.service.Register(f)
	return f
}

func (c *CountCommand) Run(args []string) int {
	return c.Execute(c.Flags(), args, 0, &c.service,
		func(ctx context.Context, _ *config.Config, client *reportingcloud.Client) error {
			count, ok, err := client.TemplateCount(ctx)
			if err != nil {
				return fmt.Errorf("error counting templates: %w", err)
			}
			if !ok {
				return fmt.Errorf("the service returned no template count")
			}
			c.UI.Output(fmt.Sprint(count))
			return nil
		})
}

type ExistsCommand struct {
	*base.Command

	service base.ServiceFlags
}

func (c *ExistsCommand) Synopsis() string {
	return "Check whether a template is stored"
}

func (c *ExistsCommand) Help() string {
	return `Usage: reportingcloud template exists [options] NAME

  Print "true" if the template is stored and "false" otherwise. The exit
  code is 2 when the template does not exist.` + c.Flags().Help()
}

func (c *ExistsCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("exists", flag.ContinueOnError))
	c.service.Register(f)
	return f
}

func (c *ExistsCommand) Run(args []string) int {
	f := c.Flags()
	exists := false
	code := c.Execute(f, args, 1, &c.service,
		func(ctx context.Context, _ *config.Config, client *reportingcloud.Client) error {
			var err error
			if exists, err = client.TemplateExists(ctx, f.Arg(0)); err != nil {
				return fmt.Errorf("error checking template: %w", err)
			}
			c.UI.Output(fmt.Sprint(exists))
			return nil
		})
	if code == 0 && !exists {
		return 2
	}
	return code
}

type PageCountCommand struct {
	*base.Command

	service base.ServiceFlags
}

func (c *PageCountCommand) Synopsis() string {
	return "Print the number of pages of a stored template"
}

func (c *PageCountCommand) Help() string {
	return `Usage: reportingcloud template pagecount [options] NAME` + c.Flags().Help()
}

func (c *PageCountCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("pagecount", flag.ContinueOnError))
	c.service.Register(f)
	return f
}

func (c *PageCountCommand) Run(args []string) int {
	f := c.Flags()
	return c.Execute(f, args, 1, &c.service,
		func(ctx context.Context, _ *config.Config, client *reportingcloud.Client) error {
			count, ok, err := client.TemplatePageCount(ctx, f.Arg(0))
			if err != nil {
				return fmt.Errorf("error counting pages: %w", err)
			}
			if !ok {
				return fmt.Errorf("template %s not found", f.Arg(0))
			}
			c.UI.Output(fmt.Sprint(count))
			return nil
		})
}

type InfoCommand struct {
	*base.Command

	service base.ServiceFlags
}

func (c *InfoCommand) Synopsis() string {
	return "Show the merge fields and blocks of a stored template"
}

func (c *InfoCommand) Help() string {
	return `Usage: reportingcloud template info [options] NAME

  Print the merge blocks, merge fields and user document properties of a
  stored template.` + c.Flags().Help()
}

func (c *InfoCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("info", flag.ContinueOnError))
	c.service.Register(f)
	return f
}

func (c *InfoCommand) Run(args []string) int {
	f := c.Flags()
	return c.Execute(f, args, 1, &c.service,
		func(ctx context.Context, _ *config.Config, client *reportingcloud.Client) error {
			info, err := client.TemplateInfo(ctx, f.Arg(0))
			if err != nil {
				return fmt.Errorf("error getting template info: %w", err)
			}
			if info == nil {
				return fmt.Errorf("template %s not found", f.Arg(0))
			}

			c.UI.Output(fmt.Sprintf("Template: %s", info.TemplateName))
			c.outputFields(info.MergeFields, 1)
			c.outputBlocks(info.MergeBlocks, 1)
			for _, p := range info.UserDocumentProperties {
				c.UI.Output(fmt.Sprintf("  property %s (%s) = %v", p.Name, p.Type, p.Value))
			}
			return nil
		})
}

func (c *InfoCommand) outputFields(fields []reportingcloud.MergeField, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, f := range fields {
		c.UI.Output(fmt.Sprintf("%sfield %s", indent, f.Name))
	}
}

func (c *InfoCommand) outputBlocks(blocks []reportingcloud.MergeBlock, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, b := range blocks {
		c.UI.Output(fmt.Sprintf("%sblock %s", indent, b.Name))
		c.outputFields(b.MergeFields, depth+1)
		c.outputBlocks(b.MergeBlocks, depth+1)
	}
}
