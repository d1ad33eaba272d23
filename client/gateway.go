// Package client implements the administration workflow layer that sits
// between the HTTP API and a rendering surface: a typed API gateway, the
// cascading selector chain, the list presenter, the form controller, and the
// deactivation confirmation flow.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"
)

// ErrorKind classifies gateway failures so callers can react differently to
// missing credentials, unreachable servers, and rejected requests.
type ErrorKind int

const (
	// ErrAuth means the request never carried, or the server rejected, credentials
	ErrAuth ErrorKind = iota
	// ErrNetwork means the server could not be reached or did not answer
	ErrNetwork
	// ErrServer means the server answered with a failure envelope
	ErrServer
)

// Error is the only error type the gateway returns.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	// Fields holds field-keyed validation messages when the server returned them
	Fields map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

// TokenSource supplies the bearer token for every request. Authentication is
// injected here rather than read from ambient state.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource holding a fixed token string.
type StaticToken string

func (s StaticToken) Token() string { return string(s) }

// Option is a label/value pair for selector widgets.
type Option struct {
	Label string `json:"label"`
	Value uint   `json:"value"`
}

// Gateway performs authenticated JSON calls against the administration API
// and unwraps its response envelope.
type Gateway struct {
	BaseURL string
	Tokens  TokenSource
	HTTP    *http.Client
}

// NewGateway builds a Gateway with a 10 second request timeout.
func NewGateway(baseURL string, tokens TokenSource) *Gateway {
	return &Gateway{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Tokens:  tokens,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// envelope is the wire shape of every API response: payload on success,
// message (or a field-keyed payload map) on failure.
type envelope struct {
	Payload json.RawMessage `json:"payload"`
	Message string          `json:"message"`
}

// do performs one request and returns the raw payload. fallback is the
// operation-specific message used when the server supplied none.
func (g *Gateway) do(ctx context.Context, method, path string, body interface{}, fallback string) (json.RawMessage, error) {
	token := ""
	if g.Tokens != nil {
		token = g.Tokens.Token()
	}
	// Without a token the request is doomed; fail before touching the network.
	if token == "" {
		return nil, &Error{Kind: ErrAuth, Status: http.StatusUnauthorized, Message: "No access token found."}
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Kind: ErrServer, Message: fallback}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.BaseURL+path, reader)
	if err != nil {
		return nil, &Error{Kind: ErrNetwork, Message: fallback}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.HTTP.Do(req)
	if err != nil {
		return nil, &Error{Kind: ErrNetwork, Message: fallback}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: ErrNetwork, Message: fallback}
	}

	var env envelope
	if len(raw) > 0 {
		// A non-JSON body is treated as an empty envelope; the status code decides.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return env.Payload, nil
	}

	kind := ErrServer
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		kind = ErrAuth
	}
	return nil, buildError(kind, resp.StatusCode, env, fallback)
}

// buildError resolves the user-facing message: field-keyed validation
// messages joined together, then the server message, then the fallback.
func buildError(kind ErrorKind, status int, env envelope, fallback string) *Error {
	e := &Error{Kind: kind, Status: status, Message: fallback}

	if len(env.Payload) > 0 {
		var fields map[string]string
		if err := json.Unmarshal(env.Payload, &fields); err == nil && len(fields) > 0 {
			e.Fields = fields
			keys := make([]string, 0, len(fields))
			for k := range fields {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			parts := make([]string, 0, len(fields))
			for _, k := range keys {
				parts = append(parts, fields[k])
			}
			e.Message = strings.Join(parts, ", ")
			return e
		}
	}

	if env.Message != "" {
		e.Message = env.Message
	}
	return e
}

// List fetches the full collection of an entity type.
func List[T any](ctx context.Context, g *Gateway, entityPath string) ([]T, error) {
	raw, err := g.do(ctx, http.MethodGet, entityPath, nil, "Failed to load data.")
	if err != nil {
		return nil, err
	}
	return decodeSlice[T](raw)
}

// GetByID fetches a single record.
func GetByID[T any](ctx context.Context, g *Gateway, entityPath string, id uint) (*T, error) {
	raw, err := g.do(ctx, http.MethodGet, fmt.Sprintf("%s/findById/%d", entityPath, id), nil, "Failed to load record.")
	if err != nil {
		return nil, err
	}
	return decodeOne[T](raw)
}

// ListByParent fetches the children of one parent record, e.g.
// /region/bySubChannelId/7.
func ListByParent[T any](ctx context.Context, g *Gateway, entityPath, parentSegment string, parentID uint) ([]T, error) {
	raw, err := g.do(ctx, http.MethodGet, fmt.Sprintf("%s/%s/%d", entityPath, parentSegment, parentID), nil, "Failed to load data.")
	if err != nil {
		return nil, err
	}
	return decodeSlice[T](raw)
}

// Create persists a new record and returns the stored copy.
func Create[T any](ctx context.Context, g *Gateway, entityPath string, record *T) (*T, error) {
	raw, err := g.do(ctx, http.MethodPost, entityPath, record, "Failed to save record.")
	if err != nil {
		return nil, err
	}
	return decodeOne[T](raw)
}

// CreateBatch persists a list of records in one call (mapping screens).
func CreateBatch[T any](ctx context.Context, g *Gateway, entityPath string, records []T) ([]T, error) {
	raw, err := g.do(ctx, http.MethodPost, entityPath, records, "Failed to save records.")
	if err != nil {
		return nil, err
	}
	return decodeSlice[T](raw)
}

// Update modifies an existing record and returns the stored copy.
func Update[T any](ctx context.Context, g *Gateway, entityPath string, record *T) (*T, error) {
	raw, err := g.do(ctx, http.MethodPut, entityPath, record, "Failed to update record.")
	if err != nil {
		return nil, err
	}
	return decodeOne[T](raw)
}

// SetActive toggles a record's active flag. When pin is non-nil the flag is
// set to that exact value instead of being inverted.
func SetActive[T any](ctx context.Context, g *Gateway, entityPath, deactivateSegment string, id uint, pin *bool) (*T, error) {
	path := fmt.Sprintf("%s/%s/%d", entityPath, deactivateSegment, id)
	if pin != nil {
		path = fmt.Sprintf("%s?active=%t", path, *pin)
	}
	raw, err := g.do(ctx, http.MethodDelete, path, nil, "Failed to change record status.")
	if err != nil {
		return nil, err
	}
	return decodeOne[T](raw)
}

// Options fetches a label/value option list, e.g.
// /options/subChannelsByChannel/3.
func (g *Gateway) Options(ctx context.Context, path string) ([]Option, error) {
	raw, err := g.do(ctx, http.MethodGet, path, nil, "Failed to load options.")
	if err != nil {
		return nil, err
	}
	return decodeSlice[Option](raw)
}

func decodeSlice[T any](raw json.RawMessage) ([]T, error) {
	if len(raw) == 0 {
		return []T{}, nil
	}
	var rows []T
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, &Error{Kind: ErrServer, Message: "Unexpected response from server."}
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

func decodeOne[T any](raw json.RawMessage) (*T, error) {
	row := new(T)
	if len(raw) == 0 {
		return row, nil
	}
	if err := json.Unmarshal(raw, row); err != nil {
		return nil, &Error{Kind: ErrServer, Message: "Unexpected response from server."}
	}
	return row, nil
}
