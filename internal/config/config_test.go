package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/reportingcloud/pkg/storage/local"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "reportingcloud.hcl")
	require.NoError(t, os.WriteFile(filename, []byte(body), 0o600))
	return filename
}

func TestLoad(t *testing.T) {
	filename := writeConfig(t, `
log_level = "debug"

reportingcloud {
  api_key     = "abcdefghijklmnopqrstuvwxyz"
  version     = "v1"
  timeout     = "90s"
  retry_delay = "250ms"
  max_retries = 2
  test        = true
}

output "s3" {
  region = "eu-central-1"
  bucket = "docs"
  prefix = "invoices/"
}
`)

	cfg, err := Load(filename)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "abcdefghijklmnopqrstuvwxyz", cfg.ReportingCloud.APIKey)
	assert.True(t, cfg.ReportingCloud.Test)
	assert.Equal(t, OutputS3, cfg.Output.Kind)
	require.NotNil(t, cfg.Output.S3)
	assert.Equal(t, "docs", cfg.Output.S3.Bucket)
	assert.Equal(t, "invoices/", cfg.Output.S3.Prefix)
	assert.False(t, cfg.IsLocal())

	clientCfg, err := cfg.ClientConfig(hclog.NewNullLogger(), afero.NewMemMapFs())
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, clientCfg.Timeout)
	assert.Equal(t, 250*time.Millisecond, clientCfg.RetryDelay)
	assert.Equal(t, 2, clientCfg.MaxRetries)
	assert.Equal(t, "v1", clientCfg.Version)
	assert.True(t, clientCfg.Test)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `reportingcloud {}`))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.IsLocal())

	sink, err := cfg.Sink(afero.NewMemMapFs(), nil)
	require.NoError(t, err)
	assert.IsType(t, &local.Sink{}, sink)
}

func TestLoadLocalOutput(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
output "local" {
  directory = "/out"
}
`))
	require.NoError(t, err)
	require.NotNil(t, cfg.Output.Local)
	assert.Equal(t, "/out", cfg.Output.Local.Directory)

	fs := afero.NewMemMapFs()
	sink, err := cfg.Sink(fs, nil)
	require.NoError(t, err)
	assert.NotNil(t, sink)

	exists, err := afero.DirExists(fs, "/out")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("")
	assert.ErrorContains(t, err, "path is required")

	_, err = Load(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.ErrorContains(t, err, "configuration file not found")

	_, err = Load(writeConfig(t, `reportingcloud {`))
	assert.ErrorContains(t, err, "failed to parse configuration file")

	_, err = Load(writeConfig(t, `output "ftp" {}`))
	assert.ErrorContains(t, err, `unsupported output kind "ftp"`)

	_, err = Load(writeConfig(t, `
output "local" {
  bucket = "docs"
}
`))
	assert.Error(t, err)
}

func TestValidateAggregatesErrors(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "loud"
	cfg.ReportingCloud.Timeout = "soon"
	cfg.ReportingCloud.RetryDelay = "-1s"
	cfg.ReportingCloud.MaxRetries = -1
	cfg.Output = &Output{Kind: OutputS3}

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{
		"log_level",
		"reportingcloud.timeout",
		"reportingcloud.retry_delay",
		"reportingcloud.max_retries",
		`output "s3"`,
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvAPIKey:   "fromenvironmentkey12345",
		EnvBaseURI:  "https://eu.api.reporting.cloud",
		EnvUsername: "",
	}
	lookup := func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}

	cfg := Default()
	cfg.ReportingCloud.APIKey = "fromfile"
	cfg.ReportingCloud.Username = "alice"
	cfg.ApplyEnv(lookup)

	assert.Equal(t, "fromenvironmentkey12345", cfg.ReportingCloud.APIKey)
	assert.Equal(t, "https://eu.api.reporting.cloud", cfg.ReportingCloud.BaseURI)
	assert.Equal(t, "alice", cfg.ReportingCloud.Username, "empty values do not override")
}
