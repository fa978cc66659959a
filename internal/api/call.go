package api

import "context"

// Call describes a single remote invocation against the Cumulus API.
// Once a transport has seen a Call it must be treated as immutable.
type Call struct {
	Service string
	Method  string
	Args    []any
	Mask    string
	Filter  map[string]any
	ID      any
	Limit   int
	Offset  int
}

// Key identifies the service/method pair of the call.
func (c *Call) Key() string {
	return callKey(c.Service, c.Method)
}

func callKey(service, method string) string {
	return service + "::" + method
}

// Transport performs one remote call and returns the decoded result.
type Transport interface {
	DoCall(ctx context.Context, call *Call) (any, error)
}

// CallOption customizes a single call.
type CallOption func(*Call)

// WithArgs sets positional method arguments.
func WithArgs(args ...any) CallOption {
	return func(c *Call) { c.Args = args }
}

// WithMask sets the object mask restricting returned properties.
func WithMask(mask string) CallOption {
	return func(c *Call) { c.Mask = mask }
}

// WithFilter sets the object filter applied server-side.
func WithFilter(filter map[string]any) CallOption {
	return func(c *Call) { c.Filter = filter }
}

// WithID addresses a specific object of the service.
func WithID(id any) CallOption {
	return func(c *Call) { c.ID = id }
}

// WithLimit sets result pagination.
func WithLimit(limit, offset int) CallOption {
	return func(c *Call) {
		c.Limit = limit
		c.Offset = offset
	}
}
