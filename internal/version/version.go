// Package version holds the build version of the reportingcloud CLI.
package version

// Version is overridden at build time with
// -ldflags "-X github.com/hashicorp-forge/reportingcloud/internal/version.Version=...".
var Version = "0.1.0-dev"
