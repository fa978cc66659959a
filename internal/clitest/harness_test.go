package clitest

import (
	"testing"

	"cumulus/internal/api"
)

func TestMismatchesMatchingCall(t *testing.T) {
	call := &api.Call{
		Service: "Hardware_Server",
		Method:  "getObject",
		ID:      123,
		Mask:    "id,hostname",
	}

	misses := mismatches(call, map[string]any{
		"service": "Hardware_Server",
		"id":      123,
		"mask":    "id,hostname",
	})
	if len(misses) != 0 {
		t.Fatalf("expected full match, got %#v", misses)
	}
}

func TestMismatchesNamesFields(t *testing.T) {
	call := &api.Call{Service: "Hardware_Server", Method: "getObject", ID: 123}

	misses := mismatches(call, map[string]any{
		"id":   456,
		"mask": "id",
	})
	if len(misses) != 2 {
		t.Fatalf("expected two mismatches, got %#v", misses)
	}
	// Sorted property order keeps diagnostics stable.
	if misses[0].field != "id" || misses[0].expected != 456 || misses[0].actual != 123 {
		t.Fatalf("id mismatch wrong: %#v", misses[0])
	}
	if misses[1].field != "mask" || misses[1].actual != "" {
		t.Fatalf("mask mismatch wrong: %#v", misses[1])
	}
}

func TestMismatchesUnknownProperty(t *testing.T) {
	call := &api.Call{Service: "Account", Method: "getObject"}

	misses := mismatches(call, map[string]any{"color": "blue"})
	if len(misses) != 1 || misses[0].actual != "<unknown property>" {
		t.Fatalf("unknown property not reported: %#v", misses)
	}
}

func TestAssertCalledWithIdentifierMatch(t *testing.T) {
	h := New(t)

	_, code := h.RunCommand("hardware", "detail", "1000")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}

	h.AssertCalledWith("Hardware_Server", "getObject", map[string]any{"identifier": 1000})
}
