package reportingcloud

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/reportingcloud/pkg/builder"
	"github.com/hashicorp-forge/reportingcloud/pkg/normalize"
	"github.com/hashicorp-forge/reportingcloud/pkg/propertymap"
)

// Client is a ReportingCloud service client. It is safe for concurrent use.
type Client struct {
	config    *Config
	transport Transport
	registry  *propertymap.Registry
	fs        afero.Fs
	logger    hclog.Logger
}

// NewClient creates a client from cfg, filling zero fields with defaults.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg = cfg.withDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid reportingcloud config: %w", err)
	}

	transport := cfg.Transport
	if transport == nil {
		transport = NewHTTPTransport(cfg)
	}

	return &Client{
		config:    cfg,
		transport: transport,
		registry:  propertymap.NewRegistry(),
		fs:        cfg.Fs,
		logger:    cfg.Logger.Named("reportingcloud"),
	}, nil
}

// Registry returns the property maps the client translates field names with.
func (c *Client) Registry() *propertymap.Registry {
	return c.registry
}

// call describes one dispatch: the operation name used in logs and errors,
// the request and the status code that means success.
type call struct {
	op      string
	method  string
	path    string
	query   map[string]string
	body    any
	success int
}

// send dispatches once and returns the response body on success. An
// unexpected status code yields an *OperationError; transport errors are
// returned unchanged.
func (c *Client) send(ctx context.Context, cl call) ([]byte, error) {
	req := &Request{
		Method: cl.method,
		Path:   "/" + c.config.Version + cl.path,
		Query:  cl.query,
		Header: map[string]string{},
	}

	if cl.body != nil {
		body, err := json.Marshal(cl.body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		req.Body = body
		req.Header["Content-Type"] = "application/json"
	}

	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != cl.success {
		opErr := newOperationError(cl.op, resp)
		c.logger.Warn("operation failed",
			"operation", cl.op,
			"status_code", resp.StatusCode,
			"message", opErr.Message,
		)
		if c.config.OnOperationFailure != nil {
			c.config.OnOperationFailure(opErr)
		}
		return nil, opErr
	}

	return resp.Body, nil
}

// get sends a GET expecting 200 and decodes the JSON body. A failed
// operation yields nil.
func (c *Client) get(ctx context.Context, op, path string, query map[string]string) (any, error) {
	body, err := c.send(ctx, call{op: op, method: http.MethodGet, path: path, query: query, success: http.StatusOK})
	if err != nil {
		return nil, noResult(err)
	}
	return normalize.JSON(body)
}

// records fetches path and decodes its records, renamed through pm, into
// out. It reports whether the service returned anything.
func (c *Client) records(ctx context.Context, op, path string, query map[string]string, pm *propertymap.PropertyMap, out any) (bool, error) {
	data, err := c.get(ctx, op, path, query)
	if err != nil || data == nil {
		return false, err
	}
	return c.decode(data, pm, out)
}

func (c *Client) decode(data any, pm *propertymap.PropertyMap, out any) (bool, error) {
	normalized, err := normalize.Records(data, pm)
	if err != nil {
		return false, err
	}
	if err := normalize.Decode(normalized, out); err != nil {
		return false, err
	}
	return true, nil
}

// documentQuery starts the query of a document processing request.
func (c *Client) documentQuery(returnFormat string) map[string]string {
	query := map[string]string{}
	if returnFormat != "" {
		query["returnFormat"] = returnFormat
	}
	if c.config.Test {
		query["test"] = builder.TestQueryValue(true)
	}
	return query
}
