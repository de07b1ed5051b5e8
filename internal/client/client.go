// Package client provides a typed API client for the Userboard service,
// together with the health poller and view state used by front ends.
package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 10 * time.Second

// User mirrors the user record as served by the API.
// Name is nil when the record has no name.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Health mirrors the /health response.
type Health struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	Database      string `json:"database"`
	DatabaseState int    `json:"databaseState"`
}

// Connected reports whether the service sees its store as reachable.
func (h Health) Connected() bool {
	return h.Database == "connected"
}

// APIError carries a non-2xx response from the service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

type errorBody struct {
	Error string `json:"error"`
}

type messageBody struct {
	Message string `json:"message"`
}

type createUserBody struct {
	Email string  `json:"email"`
	Name  *string `json:"name,omitempty"`
}

// Client is a typed HTTP client for the Userboard API.
type Client struct {
	http *resty.Client
}

// New creates a Client for the service at baseURL.
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimSuffix(baseURL, "/")).
			SetTimeout(defaultTimeout).
			SetHeader("Accept", "application/json"),
	}
}

// Healthcheck fetches the current health snapshot.
func (c *Client) Healthcheck(ctx context.Context) (*Health, error) {
	var health Health
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/health")
	if err != nil {
		return nil, fmt.Errorf("health check failed: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, apiError(resp)
	}
	return &health, nil
}

// Message fetches the static API greeting.
func (c *Client) Message(ctx context.Context) (string, error) {
	var body messageBody
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&body).
		Get("/api")
	if err != nil {
		return "", fmt.Errorf("failed to fetch message: %w", err)
	}
	if !resp.IsSuccess() {
		return "", apiError(resp)
	}
	return body.Message, nil
}

// ListUsers fetches all user records.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&users).
		SetError(&errorBody{}).
		Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, apiError(resp)
	}
	return users, nil
}

// CreateUser submits a new user. Both fields are trimmed before sending and
// an empty name is omitted from the request entirely.
// Server rejections come back as *APIError with the server's message.
func (c *Client) CreateUser(ctx context.Context, email, name string) (*User, error) {
	body := createUserBody{Email: strings.TrimSpace(email)}
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		body.Name = &trimmed
	}

	var user User
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&user).
		SetError(&errorBody{}).
		Post("/api/users")
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, apiError(resp)
	}
	return &user, nil
}

// apiError builds an *APIError from a non-2xx response, falling back to a
// generic message when the body carries no error field.
func apiError(resp *resty.Response) error {
	message := ""
	if body, ok := resp.Error().(*errorBody); ok && body != nil {
		message = body.Error
	}
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", resp.StatusCode())
	}
	return &APIError{
		StatusCode: resp.StatusCode(),
		Message:    message,
	}
}
