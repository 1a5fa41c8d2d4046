// Package opsclient is a Go client for the backoffice REST API: housekeeping
// tasks plus the room and user directories.
package opsclient

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

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/innkeep/backoffice/internal/domain"
)

// DefaultTimeout bounds each request when no custom http.Client is supplied.
const DefaultTimeout = 30 * time.Second

// Client talks to the backoffice REST API. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client (30s timeout, otel-instrumented
// transport).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListTasks fetches housekeeping tasks, optionally filtered by date, status,
// and assignee.
func (c *Client) ListTasks(ctx context.Context, params domain.ListTasksParams) ([]domain.Task, error) {
	query := url.Values{}
	if params.Date != nil {
		query.Set("date", params.Date.String())
	}
	if params.Status != nil {
		query.Set("status", string(*params.Status))
	}
	if params.AssignedUserID != nil {
		query.Set("userId", *params.AssignedUserID)
	}

	path := "/housekeeping-tasks"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var resp struct {
		Tasks []taskJSON `json:"tasks"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(resp.Tasks))
	for _, t := range resp.Tasks {
		tasks = append(tasks, t.toDomain())
	}
	return tasks, nil
}

// CreateTask creates a housekeeping task and returns the stored entity.
func (c *Client) CreateTask(ctx context.Context, params CreateTaskParams) (domain.Task, error) {
	body := createTaskJSON{
		RoomID:         params.RoomID,
		AssignedUserID: params.AssignedUserID,
		TaskDate:       params.TaskDate,
		TaskType:       string(params.TaskType),
		Priority:       string(params.Priority),
		Notes:          params.Notes,
	}

	var resp taskJSON
	if err := c.do(ctx, http.MethodPost, "/housekeeping-tasks", body, &resp); err != nil {
		return domain.Task{}, err
	}
	return resp.toDomain(), nil
}

// UpdateTask applies a partial update and returns the stored entity. Only
// non-nil patch fields are sent.
func (c *Client) UpdateTask(ctx context.Context, taskID string, patch TaskPatch) (domain.Task, error) {
	var resp taskJSON
	if err := c.do(ctx, http.MethodPut, "/housekeeping-tasks/"+url.PathEscape(taskID), patch, &resp); err != nil {
		return domain.Task{}, err
	}
	return resp.toDomain(), nil
}

// RescheduleTask issues a date-only patch, the commit half of a confirmed
// drag move.
func (c *Client) RescheduleTask(ctx context.Context, taskID string, to domain.Date) (domain.Task, error) {
	return c.UpdateTask(ctx, taskID, TaskPatch{TaskDate: &to})
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	return c.do(ctx, http.MethodDelete, "/housekeeping-tasks/"+url.PathEscape(taskID), nil, nil)
}

// ListRooms fetches the room directory.
func (c *Client) ListRooms(ctx context.Context) ([]domain.Room, error) {
	var resp struct {
		Rooms []roomJSON `json:"rooms"`
	}
	if err := c.do(ctx, http.MethodGet, "/rooms", nil, &resp); err != nil {
		return nil, err
	}

	rooms := make([]domain.Room, 0, len(resp.Rooms))
	for _, r := range resp.Rooms {
		rooms = append(rooms, r.toDomain())
	}
	return rooms, nil
}

// ListUsers fetches the staff directory.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var resp struct {
		Users []userJSON `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/users", nil, &resp); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(resp.Users))
	for _, u := range resp.Users {
		users = append(users, u.toDomain())
	}
	return users, nil
}

// CreateUser creates a staff account.
func (c *Client) CreateUser(ctx context.Context, params CreateUserParams) (domain.User, error) {
	var resp userJSON
	body := createUserJSON{Name: params.Name, Email: params.Email, Role: params.Role}
	if err := c.do(ctx, http.MethodPost, "/users", body, &resp); err != nil {
		return domain.User{}, err
	}
	return resp.toDomain(), nil
}

// UpdateUser applies a partial update to a staff account.
func (c *Client) UpdateUser(ctx context.Context, userID string, patch UserPatch) (domain.User, error) {
	var resp userJSON
	if err := c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(userID), patch, &resp); err != nil {
		return domain.User{}, err
	}
	return resp.toDomain(), nil
}

// DeleteUser removes a staff account. Fails with a conflict while tasks still
// reference the user.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(userID), nil, nil)
}

// do sends one request and decodes the response into out (unless out is nil).
// Non-2xx responses decode into *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeAPIError converts a non-2xx response into an *APIError, keeping the
// status code even when the body is not the standard envelope.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
	}

	return apiErr
}
