package api

import (
	"context"
	"log/slog"
	"time"
)

// Options configures a Client.
type Options struct {
	Username    string
	APIKey      string
	EndpointURL string
	// Timeout bounds each HTTP call made by the default REST transport.
	Timeout time.Duration
	// Transport replaces the default REST transport when set. Test
	// harnesses use this to substitute mockable fixture transports.
	Transport Transport
	Logger    *slog.Logger
}

// Client executes API calls through a pluggable transport.
type Client struct {
	transport Transport
}

// NewClient builds a client from resolved credentials and endpoint.
func NewClient(opts Options) *Client {
	transport := opts.Transport
	if transport == nil {
		transport = NewRESTTransport(opts.EndpointURL, opts.Username, opts.APIKey, opts.Timeout, opts.Logger)
	}
	return &Client{transport: transport}
}

// Call invokes service::method with the given options and returns the
// decoded response data.
func (c *Client) Call(ctx context.Context, service, method string, opts ...CallOption) (any, error) {
	call := &Call{Service: service, Method: method}
	for _, opt := range opts {
		opt(call)
	}
	return c.transport.DoCall(ctx, call)
}
