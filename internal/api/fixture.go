package api

import (
	"context"

	"cumulus/internal/fixtures"
)

// FixtureTransport answers every call from the embedded fixture data set.
// Calls with no fixture fail with a NotImplemented provider error.
type FixtureTransport struct{}

func (FixtureTransport) DoCall(_ context.Context, call *Call) (any, error) {
	data, ok := fixtures.Get(call.Service, call.Method)
	if !ok {
		return nil, NotImplemented(call.Service, call.Method)
	}
	return data, nil
}
