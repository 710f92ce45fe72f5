package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
)

var ErrAuthExpired = errors.New("session expired, please log in again")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource supplies the bearer token attached to every request.
type TokenSource interface {
	Token() string
}

// AuthHandler is invoked once for every 401 returned by the backend.
type AuthHandler interface {
	ForceLogout(ctx context.Context)
}

// APIError is a non-2xx, non-401 response. Message is the server-supplied text when present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

type Client struct {
	baseURL string
	http    HTTPClient
	tokens  TokenSource
	auth    AuthHandler
}

func New(baseURL string, httpClient HTTPClient) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// WithSession returns a copy of the client bound to a session's token and logout hook.
func (c *Client) WithSession(tokens TokenSource, auth AuthHandler) *Client {
	bound := *c
	bound.tokens = tokens
	bound.auth = auth
	return &bound
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		log.Printf("[portal-svc] %s %s: unauthorized, forcing logout", method, path)
		if c.auth != nil {
			c.auth.ForceLogout(ctx)
		}
		return ErrAuthExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: serverMessage(data)}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func serverMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

// list decodes either a raw JSON array or an object wrapping the array under key.
type list[T any] struct {
	key   string
	items []T
}

func (l *list[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return json.Unmarshal(data, &l.items)
	}
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}
	raw, ok := wrapper[l.key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		l.items = nil
		return nil
	}
	return json.Unmarshal(raw, &l.items)
}

func getList[T any](ctx context.Context, c *Client, path, key string) ([]T, error) {
	out := &list[T]{key: key}
	if err := c.do(ctx, http.MethodGet, path, nil, out); err != nil {
		return nil, err
	}
	return out.items, nil
}
