package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"cumulus/internal/logging"
)

// HTTPDoer describes the HTTP client used by the REST transport.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RESTTransport speaks JSON over HTTP to the Cumulus API endpoint.
//
// Calls map to POST {endpoint}/{Service}[/{ID}]/{method}, with the object
// mask, filter, and pagination carried as query parameters and positional
// arguments as a JSON body.
type RESTTransport struct {
	endpoint string
	username string
	apiKey   string
	client   HTTPDoer
	logger   *slog.Logger
}

const defaultTimeout = 60 * time.Second

// NewRESTTransport builds the default HTTP transport. A non-positive
// timeout falls back to defaultTimeout.
func NewRESTTransport(endpoint, username, apiKey string, timeout time.Duration, logger *slog.Logger) *RESTTransport {
	if logger == nil {
		logger = logging.NewNop()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &RESTTransport{
		endpoint: strings.TrimRight(strings.TrimSpace(endpoint), "/"),
		username: strings.TrimSpace(username),
		apiKey:   strings.TrimSpace(apiKey),
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// SetHTTPClient replaces the underlying HTTP client, mainly for tests.
func (t *RESTTransport) SetHTTPClient(client HTTPDoer) {
	t.client = client
}

func (t *RESTTransport) DoCall(ctx context.Context, call *Call) (any, error) {
	requestID := uuid.NewString()

	callURL, err := t.callURL(call)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if len(call.Args) > 0 {
		encoded, err := json.Marshal(map[string]any{"parameters": call.Args})
		if err != nil {
			return nil, fmt.Errorf("encode call arguments: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, callURL, body)
	if err != nil {
		return nil, fmt.Errorf("build api request: %w", err)
	}
	req.SetBasicAuth(t.username, t.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", call.Key(), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read api response: %w", err)
	}

	t.logger.Debug("api call completed",
		"service", call.Service,
		"method", call.Method,
		"status", resp.StatusCode,
		"request_id", requestID,
		"elapsed", time.Since(start))

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, decodeError(resp.StatusCode, data)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("decode api response: %w", err)
	}
	return decoded, nil
}

func (t *RESTTransport) callURL(call *Call) (string, error) {
	if t.endpoint == "" {
		return "", &Error{Code: "MissingEndpoint", Message: "no endpoint_url configured"}
	}

	segments := []string{t.endpoint, url.PathEscape(call.Service)}
	if call.ID != nil {
		segments = append(segments, url.PathEscape(fmt.Sprint(call.ID)))
	}
	segments = append(segments, url.PathEscape(call.Method))

	query := url.Values{}
	if call.Mask != "" {
		query.Set("objectMask", call.Mask)
	}
	if call.Filter != nil {
		encoded, err := json.Marshal(call.Filter)
		if err != nil {
			return "", fmt.Errorf("encode object filter: %w", err)
		}
		query.Set("objectFilter", string(encoded))
	}
	if call.Limit > 0 {
		query.Set("resultLimit", fmt.Sprintf("%d,%d", call.Offset, call.Limit))
	}

	callURL := strings.Join(segments, "/")
	if len(query) > 0 {
		callURL += "?" + query.Encode()
	}
	return callURL, nil
}

func decodeError(status int, body []byte) error {
	var payload struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return &Error{Code: payload.Code, Message: payload.Error}
	}
	return &Error{
		Code:    fmt.Sprintf("HTTP%d", status),
		Message: fmt.Sprintf("api endpoint returned status %d", status),
	}
}
