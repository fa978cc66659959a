// Package clitest provides an end-to-end harness for CLI command tests.
//
// A Harness runs commands in-process against a client whose transport
// records every call, answers registered mocks first, and falls back to the
// embedded fixtures for everything else. No network access is involved.
package clitest

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"testing"

	"cumulus/internal/api"
	"cumulus/internal/cli"
	"cumulus/internal/commands"
	"cumulus/internal/logging"
)

// Harness wires a recording mock transport into a full CLI environment.
type Harness struct {
	Env   *cli.Environment
	Mocks *api.MockableTransport

	t   *testing.T
	out *bytes.Buffer
}

// New builds a harness with the built-in command registry, buffered output,
// and a home directory isolated under t.TempDir.
func New(t *testing.T) *Harness {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	mocks := api.NewMockableTransport(api.FixtureTransport{}, logging.NewNop())
	out := new(bytes.Buffer)

	env := cli.NewEnvironment(commands.Registry())
	env.Out = out
	env.Logger = logging.NewNop()
	env.Transport = mocks

	return &Harness{Env: env, Mocks: mocks, t: t, out: out}
}

// RunCommand executes one CLI invocation in-process and returns its output
// and exit code.
func (h *Harness) RunCommand(args ...string) (string, int) {
	h.t.Helper()
	h.out.Reset()
	code := cli.Main(context.Background(), args, h.Env)
	return h.out.String(), code
}

// SetMock registers a programmable responder for a service/method pair.
func (h *Harness) SetMock(service, method string) *api.Mock {
	return h.Mocks.SetMock(service, method)
}

// Calls returns logged calls, optionally filtered by service and/or method.
func (h *Harness) Calls(service, method string) []*api.Call {
	return h.Mocks.Calls(service, method)
}

// AssertCalledWith fails the test unless at least one logged call to
// service/method matches every given property exactly. Property names:
// service, method, id, args, mask, filter, limit, offset.
func (h *Harness) AssertCalledWith(service, method string, props map[string]any) {
	h.t.Helper()

	calls := h.Calls(service, method)
	for _, call := range calls {
		if len(mismatches(call, props)) == 0 {
			return
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s::%s was not called with the given properties", service, method)
	if len(calls) == 0 {
		b.WriteString(" (no matching calls logged)")
	}
	for i, call := range calls {
		for _, miss := range mismatches(call, props) {
			fmt.Fprintf(&b, "\ncall %d: %s: expected=%v; actual=%v",
				i, miss.field, miss.expected, miss.actual)
		}
	}
	h.t.Fatal(b.String())
}

type mismatch struct {
	field    string
	expected any
	actual   any
}

// mismatches compares props against a call field by field, in sorted
// property order so diagnostics are deterministic.
func mismatches(call *api.Call, props map[string]any) []mismatch {
	fields := make([]string, 0, len(props))
	for field := range props {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var out []mismatch
	for _, field := range fields {
		expected := props[field]
		actual, ok := callProperty(call, field)
		if !ok {
			out = append(out, mismatch{field, expected, "<unknown property>"})
			continue
		}
		if !reflect.DeepEqual(actual, expected) {
			out = append(out, mismatch{field, expected, actual})
		}
	}
	return out
}

func callProperty(call *api.Call, field string) (any, bool) {
	switch field {
	case "service":
		return call.Service, true
	case "method":
		return call.Method, true
	case "id", "identifier":
		return call.ID, true
	case "args":
		return call.Args, true
	case "mask":
		return call.Mask, true
	case "filter":
		return call.Filter, true
	case "limit":
		return call.Limit, true
	case "offset":
		return call.Offset, true
	}
	return nil, false
}
