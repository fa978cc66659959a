package api

import (
	"context"
	"reflect"
	"testing"
)

type capturingTransport struct {
	last *Call
}

func (c *capturingTransport) DoCall(_ context.Context, call *Call) (any, error) {
	c.last = call
	return "ok", nil
}

func TestClientBuildsCallFromOptions(t *testing.T) {
	transport := &capturingTransport{}
	client := NewClient(Options{Transport: transport})

	filter := map[string]any{"hardware": map[string]any{"domain": map[string]any{"operation": "x"}}}
	got, err := client.Call(context.Background(), "Hardware_Server", "getObject",
		WithID(1000),
		WithMask("id,hostname"),
		WithFilter(filter),
		WithArgs("a", 2),
		WithLimit(25, 50),
	)
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if got != "ok" {
		t.Fatalf("transport result not returned: %v", got)
	}

	call := transport.last
	if call.Service != "Hardware_Server" || call.Method != "getObject" {
		t.Fatalf("wrong call target: %s", call.Key())
	}
	if call.ID != 1000 || call.Mask != "id,hostname" {
		t.Fatalf("options not applied: %#v", call)
	}
	if !reflect.DeepEqual(call.Filter, filter) {
		t.Fatalf("filter not applied: %#v", call.Filter)
	}
	if !reflect.DeepEqual(call.Args, []any{"a", 2}) {
		t.Fatalf("args not applied: %#v", call.Args)
	}
	if call.Limit != 25 || call.Offset != 50 {
		t.Fatalf("pagination not applied: %#v", call)
	}
}

func TestClientDefaultsToRESTTransport(t *testing.T) {
	client := NewClient(Options{EndpointURL: "https://api.example.test/v3"})
	if _, ok := client.transport.(*RESTTransport); !ok {
		t.Fatalf("expected REST transport, got %T", client.transport)
	}
}
