package reportingcloud

import (
	"context"
)

// Request is a single call to the service. Path includes the API version
// prefix, e.g. "/v1/templates/list".
type Request struct {
	Method string
	Path   string
	Header map[string]string
	Query  map[string]string
	Body   []byte
}

// Response is the raw outcome of a Request.
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport delivers requests to the service. Implementations return an error
// only when no response was received; any status code is a valid Response.
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, req *Request) (*Response, error)

// Send calls f(ctx, req).
func (f TransportFunc) Send(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}
