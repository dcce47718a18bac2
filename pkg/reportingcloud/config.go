package reportingcloud

import (
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/reportingcloud/pkg/assert"
)

const (
	// DefaultBaseURI is the public ReportingCloud endpoint.
	DefaultBaseURI = "https://api.reporting.cloud"

	// DefaultVersion is the API version prefixed to every path.
	DefaultVersion = "v1"

	// DefaultTimeout bounds a single HTTP round trip. Merges of large
	// templates can take a while.
	DefaultTimeout = 120 * time.Second

	// DefaultRetryDelay is the initial backoff interval between retries.
	DefaultRetryDelay = 500 * time.Millisecond
)

var versionPattern = regexp.MustCompile(`^v[0-9]+$`)

// Config contains configuration for a ReportingCloud client.
//
// Either APIKey or Username and Password authenticate requests sent by the
// built-in HTTP transport. A custom Transport handles authentication itself.
type Config struct {
	// BaseURI of the service. Must point at api.reporting.cloud or one of
	// its subdomains.
	// Default: https://api.reporting.cloud
	BaseURI string

	// Version is the API version path segment.
	// Default: v1
	Version string

	// APIKey authenticates with the ReportingCloud-APIKey scheme.
	APIKey string

	// Username and Password authenticate with HTTP basic auth.
	Username string
	Password string

	// Timeout for a single HTTP request.
	// Default: 120 seconds
	Timeout time.Duration

	// MaxRetries of requests that failed without a response. Status codes
	// are never retried.
	// Default: 0
	MaxRetries int

	// RetryDelay is the initial exponential backoff interval.
	// Default: 500 milliseconds
	RetryDelay time.Duration

	// Test asks the service to watermark generated documents instead of
	// counting them against the account quota.
	Test bool

	// Logger receives request and failure logs.
	// Default: null logger
	Logger hclog.Logger

	// Fs is the filesystem templates and documents are read from.
	// Default: the OS filesystem
	Fs afero.Fs

	// Transport sends requests. When nil an HTTP transport is built from
	// this Config.
	Transport Transport

	// HTTPClient is used by the built-in HTTP transport.
	// Default: a client with Timeout
	HTTPClient *http.Client

	// OnOperationFailure is called for every unexpected status code,
	// including those the client reports as an absent result.
	OnOperationFailure func(*OperationError)
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURI:    DefaultBaseURI,
		Version:    DefaultVersion,
		Timeout:    DefaultTimeout,
		RetryDelay: DefaultRetryDelay,
		Logger:     hclog.NewNullLogger(),
		Fs:         afero.NewOsFs(),
	}
}

// withDefaults returns a copy of c with zero fields filled from
// DefaultConfig. c itself is left untouched.
func (c Config) withDefaults() *Config {
	defaults := DefaultConfig()
	if c.BaseURI == "" {
		c.BaseURI = defaults.BaseURI
	}
	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.Timeout == 0 {
		c.Timeout = defaults.Timeout
	}
	if c.RetryDelay == 0 {
		c.RetryDelay = defaults.RetryDelay
	}
	if c.Logger == nil {
		c.Logger = defaults.Logger
	}
	if c.Fs == nil {
		c.Fs = defaults.Fs
	}
	return &c
}

// Validate checks if the configuration is valid. All problems are reported
// together.
func (c *Config) Validate() error {
	var result *multierror.Error

	if err := assert.BaseURI(c.BaseURI); err != nil {
		result = multierror.Append(result, fmt.Errorf("base_uri: %w", err))
	}

	if !versionPattern.MatchString(c.Version) {
		result = multierror.Append(result, fmt.Errorf("version must look like v1, got: %q", c.Version))
	}

	if c.APIKey != "" {
		if err := assert.APIKey(c.APIKey); err != nil {
			result = multierror.Append(result, fmt.Errorf("api_key: %w", err))
		}
	} else if c.Transport == nil && (c.Username == "" || c.Password == "") {
		result = multierror.Append(result, fmt.Errorf("api_key or username and password are required"))
	}

	if c.Timeout < 0 {
		result = multierror.Append(result, fmt.Errorf("timeout must be non-negative, got: %v", c.Timeout))
	}

	if c.MaxRetries < 0 {
		result = multierror.Append(result, fmt.Errorf("max_retries must be non-negative, got: %d", c.MaxRetries))
	}

	if c.RetryDelay < 0 {
		result = multierror.Append(result, fmt.Errorf("retry_delay must be non-negative, got: %v", c.RetryDelay))
	}

	return result.ErrorOrNil()
}

// NewHTTPClient creates the HTTP client used by the built-in transport.
func (c *Config) NewHTTPClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{
		Timeout: c.Timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
