// Package local writes generated documents to a directory.
package local

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/reportingcloud/pkg/storage"
)

// Config contains configuration for the local sink.
//
// Example configuration (HCL):
//
//	output "local" {
//	  directory = "./out"
//	}
type Config struct {
	// Directory documents are written to. Created if missing.
	// Default: current directory
	Directory string `hcl:"directory,optional"`
}

// Sink writes documents below a directory of an afero filesystem.
type Sink struct {
	fs     afero.Fs
	dir    string
	logger hclog.Logger
}

var _ storage.Sink = (*Sink)(nil)

// New creates the sink and its directory.
func New(fs afero.Fs, cfg *Config, logger hclog.Logger) (*Sink, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	dir := cfg.Directory
	if dir == "" {
		dir = "."
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	return &Sink{
		fs:     fs,
		dir:    dir,
		logger: logger.Named("local-sink"),
	}, nil
}

// Put writes data to name below the sink's directory and returns the path.
func (s *Sink) Put(_ context.Context, name string, data []byte) (string, error) {
	name, err := storage.CleanName(name)
	if err != nil {
		return "", err
	}

	target := filepath.Join(s.dir, filepath.FromSlash(name))
	if err := s.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", target, err)
	}
	if err := afero.WriteFile(s.fs, target, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}

	s.logger.Debug("wrote document", "path", target, "size", len(data))
	return target, nil
}
