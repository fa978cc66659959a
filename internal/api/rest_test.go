package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRESTTransportRequestShape(t *testing.T) {
	var seen *http.Request
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Clone(context.Background())
		body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id": 1000}`)
	}))
	defer server.Close()

	transport := NewRESTTransport(server.URL, "alice", "k3y", 0, nil)
	got, err := transport.DoCall(context.Background(), &Call{
		Service: "Hardware_Server",
		Method:  "getObject",
		ID:      1000,
		Mask:    "id,hostname",
		Args:    []any{"x"},
		Limit:   10,
		Offset:  5,
	})
	if err != nil {
		t.Fatalf("call: %v", err)
	}

	record, ok := got.(map[string]any)
	if !ok || record["id"] != float64(1000) {
		t.Fatalf("decoded response wrong: %#v", got)
	}
	if seen.Method != http.MethodPost {
		t.Fatalf("expected POST, got %s", seen.Method)
	}
	if seen.URL.Path != "/Hardware_Server/1000/getObject" {
		t.Fatalf("wrong path: %s", seen.URL.Path)
	}
	query := seen.URL.Query()
	if query.Get("objectMask") != "id,hostname" {
		t.Fatalf("objectMask missing: %s", seen.URL.RawQuery)
	}
	if query.Get("resultLimit") != "5,10" {
		t.Fatalf("resultLimit wrong: %s", query.Get("resultLimit"))
	}
	if seen.Header.Get("X-Request-Id") == "" {
		t.Fatal("request id header missing")
	}
	user, pass, ok := seen.BasicAuth()
	if !ok || user != "alice" || pass != "k3y" {
		t.Fatalf("basic auth wrong: %s/%s", user, pass)
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("request body not JSON: %v", err)
	}
	params, ok := payload["parameters"].([]any)
	if !ok || len(params) != 1 || params[0] != "x" {
		t.Fatalf("parameters wrong: %#v", payload)
	}
}

func TestRESTTransportDecodesProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error": "Object does not exist", "code": "ObjectNotFound"}`)
	}))
	defer server.Close()

	transport := NewRESTTransport(server.URL, "alice", "k3y", 0, nil)
	_, err := transport.DoCall(context.Background(), &Call{Service: "Account", Method: "getObject"})

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Code != "ObjectNotFound" || apiErr.Message != "Object does not exist" {
		t.Fatalf("error fields wrong: %#v", apiErr)
	}
}

func TestRESTTransportNonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "upstream broke")
	}))
	defer server.Close()

	transport := NewRESTTransport(server.URL, "", "", 0, nil)
	_, err := transport.DoCall(context.Background(), &Call{Service: "Account", Method: "getObject"})

	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Code != "HTTP502" {
		t.Fatalf("expected HTTP502 error, got %v", err)
	}
}

func TestRESTTransportTimeout(t *testing.T) {
	transport := NewRESTTransport("https://api.example.test", "alice", "k3y", 15*time.Second, nil)
	client, ok := transport.client.(*http.Client)
	if !ok {
		t.Fatalf("expected *http.Client, got %T", transport.client)
	}
	if client.Timeout != 15*time.Second {
		t.Fatalf("timeout wrong: %s", client.Timeout)
	}

	transport = NewRESTTransport("https://api.example.test", "alice", "k3y", 0, nil)
	if got := transport.client.(*http.Client).Timeout; got != defaultTimeout {
		t.Fatalf("default timeout wrong: %s", got)
	}
}

type failingDoer struct {
	err error
}

func (d failingDoer) Do(*http.Request) (*http.Response, error) {
	return nil, d.err
}

func TestRESTTransportWrapsClientErrors(t *testing.T) {
	transport := NewRESTTransport("https://api.example.test", "alice", "k3y", 0, nil)
	transport.SetHTTPClient(failingDoer{err: errors.New("connection refused")})

	_, err := transport.DoCall(context.Background(), &Call{Service: "Account", Method: "getObject"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "Account::getObject") {
		t.Fatalf("error does not name the call: %v", err)
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("error loses the cause: %v", err)
	}
}

func TestRESTTransportMissingEndpoint(t *testing.T) {
	transport := NewRESTTransport("", "alice", "k3y", 0, nil)
	_, err := transport.DoCall(context.Background(), &Call{Service: "Account", Method: "getObject"})

	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Code != "MissingEndpoint" {
		t.Fatalf("expected MissingEndpoint error, got %v", err)
	}
}
