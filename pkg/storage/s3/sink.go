// Package s3 writes generated documents to an S3-compatible bucket.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hashicorp/go-hclog"

	"github.com/hashicorp-forge/reportingcloud/pkg/storage"
)

// Config contains configuration for the S3 sink.
//
// Example configuration (HCL):
//
//	output "s3" {
//	  region = "eu-central-1"
//	  bucket = "generated-documents"
//	  prefix = "invoices/"
//	}
type Config struct {
	Endpoint  string `hcl:"endpoint,optional"`   // S3 endpoint URL for MinIO and other compatible services
	Region    string `hcl:"region"`              // AWS region (e.g., "us-west-2")
	Bucket    string `hcl:"bucket"`              // Bucket name
	Prefix    string `hcl:"prefix,optional"`     // Optional key prefix (e.g., "documents/")
	AccessKey string `hcl:"access_key,optional"` // Access key ID; falls back to the default credential chain
	SecretKey string `hcl:"secret_key,optional"` // Secret access key

	RequestTimeoutSeconds int `hcl:"request_timeout_seconds,optional"` // Request timeout (default: 30)
}

// Validate validates the S3 configuration
func (c *Config) Validate() error {
	if c.Region == "" {
		return fmt.Errorf("region is required")
	}
	if c.Bucket == "" {
		return fmt.Errorf("bucket is required")
	}
	if (c.AccessKey == "") != (c.SecretKey == "") {
		return fmt.Errorf("access_key and secret_key must be set together")
	}
	return nil
}

// SetDefaults sets default values for optional configuration fields
func (c *Config) SetDefaults() {
	if c.RequestTimeoutSeconds == 0 {
		c.RequestTimeoutSeconds = 30
	}
}

// PutObjectAPI is the part of the S3 client the sink uses.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Sink uploads documents as S3 objects.
type Sink struct {
	client PutObjectAPI
	cfg    *Config
	logger hclog.Logger
}

var _ storage.Sink = (*Sink)(nil)

// New creates a sink with an S3 client built from cfg.
func New(cfg *Config, logger hclog.Logger) (*Sink, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid S3 configuration: %w", err)
	}
	cfg.SetDefaults()

	awsCfg, err := createAWSConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			// Path-style addressing for MinIO
			o.UsePathStyle = true
		}
	})

	return NewWithClient(client, cfg, logger)
}

// NewWithClient creates a sink that uploads through client.
func NewWithClient(client PutObjectAPI, cfg *Config, logger hclog.Logger) (*Sink, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid S3 configuration: %w", err)
	}
	cfg.SetDefaults()

	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Sink{
		client: client,
		cfg:    cfg,
		logger: logger.Named("s3-sink"),
	}, nil
}

// createAWSConfig creates AWS SDK configuration from S3 config
func createAWSConfig(cfg *Config) (aws.Config, error) {
	httpClient := &http.Client{
		Timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
		config.WithHTTPClient(httpClient),
	}

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	return config.LoadDefaultConfig(context.Background(), opts...)
}

// Key returns the object key name is stored under.
func (s *Sink) Key(name string) (string, error) {
	name, err := storage.CleanName(name)
	if err != nil {
		return "", err
	}
	return path.Join(s.cfg.Prefix, name), nil
}

// Put uploads data and returns its s3:// URL.
func (s *Sink) Put(ctx context.Context, name string, data []byte) (string, error) {
	key, err := s.Key(name)
	if err != nil {
		return "", err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(storage.ContentType(name)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object to S3: %w", err)
	}

	location := fmt.Sprintf("s3://%s/%s", s.cfg.Bucket, key)
	s.logger.Debug("uploaded document", "location", location, "size", len(data))
	return location, nil
}
