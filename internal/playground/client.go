package playground

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	app_errors "fpt-assistant/core/internal/errors"
	"fpt-assistant/core/internal/model"
)

// API defines the remote agent ("playground") endpoints the assistant consumes.
type API interface {
	ListAgents(ctx context.Context) ([]model.Agent, error)
	Status(ctx context.Context) int
	ListSessions(ctx context.Context, agentID, userID string) ([]model.Session, error)
	GetSession(ctx context.Context, agentID, sessionID, userID string) (*model.SessionDetail, error)
	DeleteSession(ctx context.Context, agentID, sessionID, userID string) error
	GetChatHistory(ctx context.Context, sessionID, userID string) (*model.ChatHistoryResponse, error)
	StreamRun(ctx context.Context, req *RunRequest, ch chan<- model.RunEvent) error
}

// RunRequest is one user turn sent to an agent.
type RunRequest struct {
	AgentID   string
	Message   string
	SessionID string
	UserID    string
}

// StatusError is returned for a non-2xx answer from the remote API.
type StatusError struct {
	Op     string
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: api returned status %d: %s", e.Op, e.Code, e.Body)
	}
	return fmt.Sprintf("%s: api returned status %d", e.Op, e.Code)
}

// Unwrap maps 404 to ErrNotFound ("feature disabled / empty") and every other
// status to ErrUpstream.
func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusNotFound {
		return app_errors.ErrNotFound
	}
	return app_errors.ErrUpstream
}

// Client talks to the remote agent API over HTTP.
type Client struct {
	http    *http.Client
	stream  *http.Client
	baseURL string
	prefix  string
}

// NewClient builds a client for baseURL+prefix. requestTimeout bounds every
// non-streaming call; streaming runs are bounded only by their context.
func NewClient(baseURL, prefix string, requestTimeout time.Duration) *Client {
	return &Client{
		http:    &http.Client{Timeout: requestTimeout},
		stream:  &http.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		prefix:  "/" + strings.Trim(prefix, "/"),
	}
}

func (c *Client) route(parts ...string) string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	if c.prefix != "/" {
		b.WriteString(c.prefix)
	}
	for _, p := range parts {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(p))
	}
	return b.String()
}

// ListAgents returns the agents exposed by the playground.
func (c *Client) ListAgents(ctx context.Context) ([]model.Agent, error) {
	var agents []model.Agent
	if err := c.getJSON(ctx, "list agents", c.route("agents"), "", &agents); err != nil {
		return nil, err
	}
	return agents, nil
}

// Status returns the HTTP status of the health endpoint, or 503 when the
// endpoint cannot be reached at all.
func (c *Client) Status(ctx context.Context) int {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.route("status"), nil)
	if err != nil {
		return http.StatusServiceUnavailable
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return http.StatusServiceUnavailable
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode
}

// ListSessions returns the stored sessions of an agent for a user.
func (c *Client) ListSessions(ctx context.Context, agentID, userID string) ([]model.Session, error) {
	var sessions []model.Session
	if err := c.getJSON(ctx, "list sessions", c.route("agents", agentID, "sessions"), userID, &sessions); err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = []model.Session{}
	}
	return sessions, nil
}

// GetSession returns one stored session.
func (c *Client) GetSession(ctx context.Context, agentID, sessionID, userID string) (*model.SessionDetail, error) {
	var detail model.SessionDetail
	if err := c.getJSON(ctx, "get session", c.route("agents", agentID, "sessions", sessionID), userID, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// DeleteSession deletes one stored session.
func (c *Client) DeleteSession(ctx context.Context, agentID, sessionID, userID string) error {
	resp, err := c.do(ctx, c.http, http.MethodDelete, c.route("agents", agentID, "sessions", sessionID), userID, nil, "application/json")
	if err != nil {
		return fmt.Errorf("delete session: %w: %w", app_errors.ErrUpstream, err)
	}
	defer resp.Body.Close()
	if err := checkStatus("delete session", resp); err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// GetChatHistory returns the stored messages of a session.
func (c *Client) GetChatHistory(ctx context.Context, sessionID, userID string) (*model.ChatHistoryResponse, error) {
	var history model.ChatHistoryResponse
	if err := c.getJSON(ctx, "get chat history", c.route("sessions", sessionID, "history"), userID, &history); err != nil {
		return nil, err
	}
	return &history, nil
}

func (c *Client) getJSON(ctx context.Context, op, endpoint, userID string, out interface{}) error {
	resp, err := c.do(ctx, c.http, http.MethodGet, endpoint, userID, nil, "application/json")
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, app_errors.ErrUpstream, err)
	}
	defer resp.Body.Close()
	if err := checkStatus(op, resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: could not decode response: %w: %w", op, app_errors.ErrUpstream, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, client *http.Client, method, endpoint, userID string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	return resp, nil
}

func checkStatus(op string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &StatusError{
		Op:     op,
		Code:   resp.StatusCode,
		Status: resp.Status,
		Body:   string(bytes.TrimSpace(bodyBytes)),
	}
}
