// Package client is a typed HTTP client for the issue tracker API, plus the
// inline edit controls built on top of it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// APIError is a non-2xx answer. Message is the server's {"error": ...} text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

const signInSecretHeader = "X-Signin-Secret"

// Client talks to one server. It is safe for concurrent use once configured.
type Client struct {
	baseURL      string
	token        string
	signInSecret string
	http         *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithSignInSecret sets the provider secret SignIn presents to the server.
func WithSignInSecret(secret string) Option {
	return func(c *Client) { c.signInSecret = secret }
}

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a Client for baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SignIn exchanges an identity for a session token and keeps the token for later calls.
func (c *Client) SignIn(ctx context.Context, email string, name *string) (*Session, error) {
	body := map[string]any{"email": email}
	if name != nil {
		body["name"] = *name
	}
	header := http.Header{}
	if c.signInSecret != "" {
		header.Set(signInSecretHeader, c.signInSecret)
	}
	var s Session
	if err := c.send(ctx, http.MethodPost, "/auth/signin", header, body, &s); err != nil {
		return nil, err
	}
	c.token = s.AccessToken
	return &s, nil
}

// ListIssues returns the issues matching q.
func (c *Client) ListIssues(ctx context.Context, q Query) (*IssueList, error) {
	v := url.Values{}
	for k, val := range map[string]string{
		"search": q.Search, "status": q.Status, "priority": q.Priority,
		"assignee": q.Assignee, "sortBy": q.SortBy, "order": q.Order,
	} {
		if val != "" {
			v.Set(k, val)
		}
	}
	path := "/api/issues"
	if len(v) > 0 {
		path += "?" + v.Encode()
	}
	var out IssueList
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetIssue returns one issue with its comments.
func (c *Client) GetIssue(ctx context.Context, id int64) (*IssueDetail, error) {
	var out IssueDetail
	if err := c.do(ctx, http.MethodGet, "/api/issues/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Dashboard returns the overview aggregate.
func (c *Client) Dashboard(ctx context.Context) (*Dashboard, error) {
	var out Dashboard
	if err := c.do(ctx, http.MethodGet, "/api/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Users returns every user, for assignee pickers.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	var out struct {
		Users []User `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// CreateIssue creates an issue authored by the signed-in user.
func (c *Client) CreateIssue(ctx context.Context, in IssueInput) (*ActionResult, error) {
	return c.action(ctx, "create-issue", 0, in)
}

// UpdateIssue replaces every editable field of an issue.
func (c *Client) UpdateIssue(ctx context.Context, id int64, in IssueInput) (*ActionResult, error) {
	return c.action(ctx, "update-issue", id, in)
}

// DeleteIssue deletes an issue and its comments.
func (c *Client) DeleteIssue(ctx context.Context, id int64) (*ActionResult, error) {
	return c.action(ctx, "delete-issue", id, nil)
}

// CloneIssue copies an issue; the result carries the new id.
func (c *Client) CloneIssue(ctx context.Context, id int64) (*ActionResult, error) {
	return c.action(ctx, "clone-issue", id, nil)
}

// AddComment comments on an issue as the signed-in user.
func (c *Client) AddComment(ctx context.Context, id int64, content string) (*ActionResult, error) {
	return c.action(ctx, "add-comment", id, map[string]string{"content": content})
}

// UpdateStatus sets an issue's status.
func (c *Client) UpdateStatus(ctx context.Context, id int64, status string) (*ActionResult, error) {
	return c.action(ctx, "update-issue-status", id, map[string]string{"status": status})
}

// UpdatePriority sets an issue's priority.
func (c *Client) UpdatePriority(ctx context.Context, id int64, priority string) (*ActionResult, error) {
	return c.action(ctx, "update-issue-priority", id, map[string]string{"priority": priority})
}

// UpdateAssignee sets or, with nil, clears an issue's assignee.
func (c *Client) UpdateAssignee(ctx context.Context, id int64, assigneeID *int64) (*ActionResult, error) {
	return c.action(ctx, "update-issue-assignee", id, map[string]*int64{"assigneeId": assigneeID})
}

func (c *Client) action(ctx context.Context, name string, id int64, body any) (*ActionResult, error) {
	path := "/api/actions/" + name
	if id != 0 {
		path += "/" + strconv.FormatInt(id, 10)
	}
	if body == nil {
		body = struct{}{}
	}
	var out ActionResult
	if err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	return c.send(ctx, method, path, nil, body, out)
}

func (c *Client) send(ctx context.Context, method, path string, header http.Header, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		if json.Unmarshal(raw, &e) != nil || e.Error == "" {
			e.Error = strings.TrimSpace(string(raw))
		}
		return &APIError{StatusCode: resp.StatusCode, Message: e.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
