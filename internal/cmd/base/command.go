// Package base holds what every reportingcloud CLI command shares: the UI,
// the logger and the way a command turns flags into a configured client and
// an output sink.
package base

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/pkg/browser"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/reportingcloud/internal/config"
	"github.com/hashicorp-forge/reportingcloud/pkg/reportingcloud"
	"github.com/hashicorp-forge/reportingcloud/pkg/storage"
)

// Command is embedded by every CLI command.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// Fs holds input documents and locally written outputs.
	Fs afero.Fs

	// LookupEnv resolves configuration overrides.
	LookupEnv func(string) (string, bool)

	// Transport, when set, replaces the HTTP transport of created clients.
	Transport reportingcloud.Transport

	// Open shows a locally written document in the system viewer.
	Open func(path string) error
}

// NewCommand returns a Command that works on the OS filesystem and
// environment.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log:       log,
		UI:        ui,
		Fs:        afero.NewOsFs(),
		LookupEnv: os.LookupEnv,
		Open:      browser.OpenFile,
	}
}

// Context is canceled on interrupt.
func (c *Command) Context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// ServiceFlags select the configuration file and override credentials.
type ServiceFlags struct {
	Config  string
	APIKey  string
	BaseURI string
	Test    bool
}

// Register adds the service flags to f.
func (s *ServiceFlags) Register(f *FlagSet) {
	f.StringVar(
		&s.Config, "config", "", "Path to a reportingcloud HCL config file.",
	)
	f.StringVar(
		&s.APIKey, "api-key", "",
		"API key. Overrides the config file and REPORTING_CLOUD_API_KEY.",
	)
	f.StringVar(
		&s.BaseURI, "base-uri", "",
		"Service base URI. Overrides the config file and REPORTING_CLOUD_BASE_URI.",
	)
	f.BoolVar(
		&s.Test, "test", false,
		"Generate watermarked test documents that do not count against the quota.",
	)
}

// LoadConfig reads the config file when one is given, then applies the
// environment and finally the flags.
func (c *Command) LoadConfig(s *ServiceFlags) (*config.Config, error) {
	cfg := config.Default()
	if s.Config != "" {
		var err error
		if cfg, err = config.Load(s.Config); err != nil {
			return nil, err
		}
	}

	lookup := c.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg.ApplyEnv(lookup)

	if s.APIKey != "" {
		cfg.ReportingCloud.APIKey = s.APIKey
	}
	if s.BaseURI != "" {
		cfg.ReportingCloud.BaseURI = s.BaseURI
	}
	if s.Test {
		cfg.ReportingCloud.Test = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if level := hclog.LevelFromString(cfg.LogLevel); level != hclog.NoLevel {
		c.Log.SetLevel(level)
	}
	return cfg, nil
}

// Client creates a service client from cfg.
func (c *Command) Client(cfg *config.Config) (*reportingcloud.Client, error) {
	clientCfg, err := cfg.ClientConfig(c.Log, c.Fs)
	if err != nil {
		return nil, err
	}
	clientCfg.Transport = c.Transport
	return reportingcloud.NewClient(clientCfg)
}

// Setup loads the configuration and creates a client in one step.
func (c *Command) Setup(s *ServiceFlags) (*config.Config, *reportingcloud.Client, error) {
	cfg, err := c.LoadConfig(s)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading configuration: %w", err)
	}
	client, err := c.Client(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating client: %w", err)
	}
	return cfg, client, nil
}

// OutputFlags control how generated documents are stored.
type OutputFlags struct {
	Name string
	Open bool
}

// Register adds the output flags to f.
func (o *OutputFlags) Register(f *FlagSet) {
	f.StringVar(
		&o.Name, "output", "",
		"Base name of written documents. Several documents are numbered, e.g. invoice-1.pdf.",
	)
	f.BoolVar(
		&o.Open, "open", false,
		"Open written documents with the system viewer (local output only).",
	)
}

// WriteOutputs stores blobs through the configured sink, names them after
// base and format and prints every location.
func (c *Command) WriteOutputs(
	ctx context.Context, cfg *config.Config, o *OutputFlags,
	base, format string, blobs [][]byte,
) ([]string, error) {
	if o.Name != "" {
		base = o.Name
	}

	sink, err := cfg.Sink(c.Fs, c.Log)
	if err != nil {
		return nil, fmt.Errorf("error creating output sink: %w", err)
	}

	names := storage.OutputNames(base, format, len(blobs))
	locations := make([]string, 0, len(blobs))
	for i, data := range blobs {
		location, err := sink.Put(ctx, names[i], data)
		if err != nil {
			return locations, fmt.Errorf("error writing %s: %w", names[i], err)
		}
		locations = append(locations, location)
		c.UI.Output(location)
	}

	if o.Open {
		if !cfg.IsLocal() {
			c.UI.Warn("-open is ignored for remote outputs")
			return locations, nil
		}
		open := c.Open
		if open == nil {
			open = browser.OpenFile
		}
		for _, location := range locations {
			if err := open(location); err != nil {
				c.Log.Warn("error opening document", "path", location, "error", err)
			}
		}
	}

	return locations, nil
}

// RunFunc does the work of a command once flags are parsed and a client is
// configured.
type RunFunc func(ctx context.Context, cfg *config.Config, client *reportingcloud.Client) error

// Execute parses args with f, requires exactly nargs positional arguments
// (-1 for any), sets up a client and calls fn. It returns the exit code.
func (c *Command) Execute(f *FlagSet, args []string, nargs int, s *ServiceFlags, fn RunFunc) int {
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if nargs >= 0 && f.NArg() != nargs {
		c.UI.Error(fmt.Sprintf("expected %d argument(s), got %d", nargs, f.NArg()))
		return 1
	}

	cfg, client, err := c.Setup(s)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	if err := fn(ctx, cfg, client); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
