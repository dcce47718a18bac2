package document

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/reportingcloud/internal/cmd/base"
	"github.com/hashicorp-forge/reportingcloud/pkg/builder"
	"github.com/hashicorp-forge/reportingcloud/pkg/filter"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Convert, merge and combine documents"
}

func (c *Command) Help() string {
	return `Usage: reportingcloud document <subcommand> [options] [args]

  This command groups subcommands that generate documents with the
  ReportingCloud service and write them to the configured output.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

// templateFlags select the template of merge and find-and-replace.
type templateFlags struct {
	name string
	file string
}

func (t *templateFlags) register(f *base.FlagSet) {
	f.StringVar(
		&t.name, "template", "", "Name of a stored template.",
	)
	f.StringVar(
		&t.file, "template-file", "", "Path to a local template file. Excludes -template.",
	)
}

func (t *templateFlags) reference() builder.TemplateReference {
	return builder.TemplateReference{Name: t.name, Filename: t.file}
}

// outputBase names generated documents after the template.
func (t *templateFlags) outputBase() string {
	switch {
	case t.name != "":
		return t.name
	case t.file != "":
		return t.file
	default:
		return "document"
	}
}

// parseSettings turns key=value flags into a settings map. Booleans and
// integers are recognized, and values of *_date keys may be given as wire
// dates.
func parseSettings(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	settings := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("setting %q must have the form key=value", pair)
		}

		switch {
		case value == "true" || value == "false":
			settings[key] = value == "true"
		case strings.HasSuffix(key, "_date"):
			ts, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				if ts, err = filter.DateTimeToTimestamp(value); err != nil {
					return nil, fmt.Errorf("setting %s: %w", key, err)
				}
			}
			settings[key] = ts
		default:
			settings[key] = value
		}
	}
	return settings, nil
}

// parseReplacements keeps the order replacements were given in.
func parseReplacements(pairs []string) (*builder.FindAndReplaceData, error) {
	data := builder.NewFindAndReplaceData()
	for _, pair := range pairs {
		placeholder, replacement, ok := strings.Cut(pair, "=")
		if !ok || placeholder == "" {
			return nil, fmt.Errorf("replacement %q must have the form placeholder=text", pair)
		}
		data.Set(placeholder, replacement)
	}
	return data, nil
}

// readMergeData reads a JSON record or list of records. A single record is
// merged as a list of one.
func readMergeData(fs afero.Fs, filename string) (any, error) {
	raw, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, fmt.Errorf("error reading merge data: %w", err)
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("error decoding merge data %s: %w", filename, err)
	}

	switch v := data.(type) {
	case []any:
		return v, nil
	case map[string]any:
		return []any{v}, nil
	default:
		return nil, fmt.Errorf("merge data %s must be a JSON object or array", filename)
	}
}
