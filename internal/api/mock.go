package api

import (
	"context"
	"log/slog"

	"cumulus/internal/logging"
)

// MockableTransport wraps an inner transport and intercepts selected
// service/method pairs. Every call is appended to an in-memory log before
// dispatch; unmocked calls fall through to the inner transport unchanged,
// which lets tests mock a few calls and let the rest hit fixtures.
type MockableTransport struct {
	inner  Transport
	logger *slog.Logger
	calls  []*Call
	mocked map[string]*Mock
}

// NewMockableTransport wraps inner with call recording and mock dispatch.
func NewMockableTransport(inner Transport, logger *slog.Logger) *MockableTransport {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &MockableTransport{
		inner:  inner,
		logger: logger,
		mocked: make(map[string]*Mock),
	}
}

func (m *MockableTransport) DoCall(ctx context.Context, call *Call) (any, error) {
	m.record(call)

	if mock, ok := m.mocked[call.Key()]; ok {
		return mock.respond(call)
	}
	return m.inner.DoCall(ctx, call)
}

// SetMock registers a stand-in responder for a service/method pair and
// returns it for programming. Registering the same pair again replaces the
// previous mock.
func (m *MockableTransport) SetMock(service, method string) *Mock {
	mock := &Mock{}
	m.mocked[callKey(service, method)] = mock
	return mock
}

// Calls returns the logged calls in the order they occurred, optionally
// filtered by service and/or method. Empty strings match everything.
func (m *MockableTransport) Calls(service, method string) []*Call {
	out := make([]*Call, 0, len(m.calls))
	for _, call := range m.calls {
		if service != "" && call.Service != service {
			continue
		}
		if method != "" && call.Method != method {
			continue
		}
		out = append(out, call)
	}
	return out
}

func (m *MockableTransport) record(call *Call) {
	m.calls = append(m.calls, call)
	m.logger.Info("api call recorded",
		"service", call.Service,
		"method", call.Method,
		"id", call.ID,
		"args", call.Args,
		"mask", call.Mask,
		"filter", call.Filter,
		"limit", call.Limit,
		"offset", call.Offset)
}

// Mock is a programmable responder for one service/method pair. A mock
// answers every matching call the same way until reprogrammed.
type Mock struct {
	result any
	err    error
	calls  []*Call
}

// Return sets the value every matching call receives.
func (m *Mock) Return(v any) *Mock {
	m.result = v
	m.err = nil
	return m
}

// Fail makes every matching call return err.
func (m *Mock) Fail(err error) *Mock {
	m.err = err
	return m
}

// Calls returns the calls routed to this mock, in order.
func (m *Mock) Calls() []*Call {
	return m.calls
}

func (m *Mock) respond(call *Call) (any, error) {
	m.calls = append(m.calls, call)
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}
