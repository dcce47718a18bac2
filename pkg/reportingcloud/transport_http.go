package reportingcloud

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

const (
	authorizationScheme = "ReportingCloud-APIKey"
	requestIDHeader     = "X-Request-ID"
	userAgent           = "reportingcloud-go"
)

// HTTPTransport sends requests to the ReportingCloud REST API.
type HTTPTransport struct {
	baseURI  string
	apiKey   string
	username string
	password string

	client *http.Client
	retry  func() backoff.BackOff
	logger hclog.Logger
}

var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport creates a transport from cfg. Zero fields take their
// defaults; cfg is neither validated nor modified.
func NewHTTPTransport(cfg *Config) *HTTPTransport {
	cfg = cfg.withDefaults()

	maxRetries := uint64(cfg.MaxRetries)
	delay := cfg.RetryDelay

	return &HTTPTransport{
		baseURI:  strings.TrimRight(cfg.BaseURI, "/"),
		apiKey:   cfg.APIKey,
		username: cfg.Username,
		password: cfg.Password,
		client:   cfg.NewHTTPClient(),
		retry: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = delay
			return backoff.WithMaxRetries(b, maxRetries)
		},
		logger: cfg.Logger.Named("http"),
	}
}

// Send executes req once, retrying only failures that produced no response.
func (t *HTTPTransport) Send(ctx context.Context, req *Request) (*Response, error) {
	endpoint := t.baseURI + req.Path
	if len(req.Query) > 0 {
		q := url.Values{}
		for k, v := range req.Query {
			q.Set(k, v)
		}
		endpoint += "?" + q.Encode()
	}

	requestID := uuid.New().String()
	logger := t.logger.With("method", req.Method, "path", req.Path, "request_id", requestID)

	var resp *Response
	attempt := 0
	op := func() error {
		attempt++
		httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, bytes.NewReader(req.Body))
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		t.setHeaders(httpReq, req, requestID)

		logger.Debug("sending request", "attempt", attempt, "body_size", len(req.Body))

		httpResp, err := t.client.Do(httpReq)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			logger.Debug("request failed", "attempt", attempt, "error", err)
			return err
		}
		defer httpResp.Body.Close()

		// The service has seen the request; sending it again could repeat
		// a merge or upload.
		body, err := io.ReadAll(httpResp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to read response: %w", err))
		}

		logger.Debug("received response", "status_code", httpResp.StatusCode, "body_size", len(body))
		resp = &Response{StatusCode: httpResp.StatusCode, Body: body}
		return nil
	}

	if err := backoff.Retry(op, backoff.WithContext(t.retry(), ctx)); err != nil {
		return nil, err
	}
	return resp, nil
}

func (t *HTTPTransport) setHeaders(httpReq *http.Request, req *Request, requestID string) {
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set(requestIDHeader, requestID)
	for k, v := range req.Header {
		httpReq.Header.Set(k, v)
	}

	if t.apiKey != "" {
		httpReq.Header.Set("Authorization", authorizationScheme+" "+t.apiKey)
	} else if t.username != "" {
		httpReq.SetBasicAuth(t.username, t.password)
	}
}
