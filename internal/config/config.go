// Package config loads the reportingcloud CLI configuration.
//
// Example configuration (HCL):
//
//	log_level = "info"
//
//	reportingcloud {
//	  api_key     = "..."
//	  timeout     = "2m"
//	  max_retries = 2
//	  test        = true
//	}
//
//	output "s3" {
//	  region = "eu-central-1"
//	  bucket = "generated-documents"
//	}
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/reportingcloud/pkg/reportingcloud"
	"github.com/hashicorp-forge/reportingcloud/pkg/storage"
	"github.com/hashicorp-forge/reportingcloud/pkg/storage/local"
	"github.com/hashicorp-forge/reportingcloud/pkg/storage/s3"
)

// Environment variables that override values from the configuration file.
const (
	EnvAPIKey   = "REPORTING_CLOUD_API_KEY"
	EnvBaseURI  = "REPORTING_CLOUD_BASE_URI"
	EnvUsername = "REPORTING_CLOUD_USERNAME"
	EnvPassword = "REPORTING_CLOUD_PASSWORD"
)

// Output kinds.
const (
	OutputLocal = "local"
	OutputS3    = "s3"
)

// Config is the CLI configuration.
type Config struct {
	// LogLevel of the CLI logger.
	// Default: "warn"
	LogLevel string `hcl:"log_level,optional"`

	ReportingCloud *ReportingCloud `hcl:"reportingcloud,block"`

	// Output selects where generated documents are written.
	// Default: the current directory
	Output *Output `hcl:"output,block"`
}

// ReportingCloud configures the service client.
type ReportingCloud struct {
	BaseURI  string `hcl:"base_uri,optional"`
	Version  string `hcl:"version,optional"`
	APIKey   string `hcl:"api_key,optional"`
	Username string `hcl:"username,optional"`
	Password string `hcl:"password,optional"`

	// Timeout and RetryDelay are Go durations, e.g. "90s".
	Timeout    string `hcl:"timeout,optional"`
	RetryDelay string `hcl:"retry_delay,optional"`
	MaxRetries int    `hcl:"max_retries,optional"`

	// Test watermarks generated documents instead of counting them.
	Test bool `hcl:"test,optional"`
}

// Output is an output block. Its body is decoded according to Kind.
type Output struct {
	Kind string   `hcl:"kind,label"`
	Body hcl.Body `hcl:",remain"`

	Local *local.Config
	S3    *s3.Config
}

// Default returns a configuration that writes to the current directory and
// uses client defaults.
func Default() *Config {
	return &Config{
		LogLevel:       "warn",
		ReportingCloud: &ReportingCloud{},
		Output: &Output{
			Kind:  OutputLocal,
			Local: &local.Config{},
		},
	}
}

// Load decodes an HCL configuration file and fills unset values with defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return nil, fmt.Errorf("configuration file path is required")
	}

	// Check if file exists
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", filename)
	}

	var cfg Config
	if err := hclsimple.DecodeFile(filename, nil, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	if err := cfg.Output.decode(); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	cfg.setDefaults()
	return &cfg, nil
}

func (o *Output) decode() error {
	if o == nil || o.Body == nil {
		return nil
	}

	var diags hcl.Diagnostics
	switch o.Kind {
	case OutputLocal:
		o.Local = &local.Config{}
		diags = gohcl.DecodeBody(o.Body, nil, o.Local)
	case OutputS3:
		o.S3 = &s3.Config{}
		diags = gohcl.DecodeBody(o.Body, nil, o.S3)
	default:
		return fmt.Errorf("unsupported output kind %q, expected %q or %q",
			o.Kind, OutputLocal, OutputS3)
	}
	if diags.HasErrors() {
		return diags
	}
	return nil
}

func (c *Config) setDefaults() {
	defaults := Default()
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.ReportingCloud == nil {
		c.ReportingCloud = defaults.ReportingCloud
	}
	if c.Output == nil {
		c.Output = defaults.Output
	}
}

// ApplyEnv overrides credentials and the base URI with environment values
// returned by lookup, typically os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	c.setDefaults()
	rc := c.ReportingCloud

	for name, target := range map[string]*string{
		EnvAPIKey:   &rc.APIKey,
		EnvBaseURI:  &rc.BaseURI,
		EnvUsername: &rc.Username,
		EnvPassword: &rc.Password,
	} {
		if v, ok := lookup(name); ok && v != "" {
			*target = v
		}
	}
}

// Validate checks the configuration. All problems are reported together.
func (c *Config) Validate() error {
	c.setDefaults()

	var result *multierror.Error

	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		result = multierror.Append(result, fmt.Errorf("log_level %q is not a valid level", c.LogLevel))
	}

	rc := c.ReportingCloud
	if _, err := parseDuration(rc.Timeout); err != nil {
		result = multierror.Append(result, fmt.Errorf("reportingcloud.timeout: %w", err))
	}
	if _, err := parseDuration(rc.RetryDelay); err != nil {
		result = multierror.Append(result, fmt.Errorf("reportingcloud.retry_delay: %w", err))
	}
	if rc.MaxRetries < 0 {
		result = multierror.Append(result, fmt.Errorf("reportingcloud.max_retries must not be negative"))
	}

	switch c.Output.Kind {
	case OutputLocal:
	case OutputS3:
		if c.Output.S3 == nil {
			result = multierror.Append(result, fmt.Errorf("output %q: missing configuration", OutputS3))
		} else if err := c.Output.S3.Validate(); err != nil {
			result = multierror.Append(result, fmt.Errorf("output %q: %w", OutputS3, err))
		}
	default:
		result = multierror.Append(result, fmt.Errorf("unsupported output kind %q", c.Output.Kind))
	}

	return result.ErrorOrNil()
}

// ClientConfig builds the service client configuration.
func (c *Config) ClientConfig(logger hclog.Logger, fs afero.Fs) (*reportingcloud.Config, error) {
	c.setDefaults()
	rc := c.ReportingCloud

	timeout, err := parseDuration(rc.Timeout)
	if err != nil {
		return nil, fmt.Errorf("reportingcloud.timeout: %w", err)
	}
	retryDelay, err := parseDuration(rc.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("reportingcloud.retry_delay: %w", err)
	}

	return &reportingcloud.Config{
		BaseURI:    rc.BaseURI,
		Version:    rc.Version,
		APIKey:     rc.APIKey,
		Username:   rc.Username,
		Password:   rc.Password,
		Timeout:    timeout,
		RetryDelay: retryDelay,
		MaxRetries: rc.MaxRetries,
		Test:       rc.Test,
		Logger:     logger,
		Fs:         fs,
	}, nil
}

// Sink creates the configured output sink.
func (c *Config) Sink(fs afero.Fs, logger hclog.Logger) (storage.Sink, error) {
	c.setDefaults()

	switch c.Output.Kind {
	case OutputLocal:
		cfg := c.Output.Local
		if cfg == nil {
			cfg = &local.Config{}
		}
		sink, err := local.New(fs, cfg, logger)
		if err != nil {
			return nil, err
		}
		return sink, nil
	case OutputS3:
		if c.Output.S3 == nil {
			return nil, fmt.Errorf("output %q: missing configuration", OutputS3)
		}
		sink, err := s3.New(c.Output.S3, logger)
		if err != nil {
			return nil, err
		}
		return sink, nil
	default:
		return nil, fmt.Errorf("unsupported output kind %q", c.Output.Kind)
	}
}

// IsLocal reports whether documents are written to the local filesystem.
func (c *Config) IsLocal() bool {
	return c.Output == nil || c.Output.Kind == OutputLocal
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration %s must not be negative", s)
	}
	return d, nil
}
