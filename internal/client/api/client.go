// Package api is a typed client for the adboard HTTP API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// APIError is a non-2xx reply from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 reply.
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.StatusCode == fiber.StatusNotFound
}

type Client struct {
	baseURL string
	timeout time.Duration
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), timeout: timeout}
}

func (c *Client) Ping(ctx context.Context) error {
	var out struct {
		Status string `json:"status"`
	}
	return c.do(ctx, fiber.MethodGet, "/ping", nil, &out)
}

func (c *Client) CreateUser(ctx context.Context, name, password string) (*UserCreated, error) {
	var out UserCreated
	body := map[string]string{"name": name, "password": password}
	if err := c.do(ctx, fiber.MethodPost, "/user", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetUser(ctx context.Context, id int64) (*User, error) {
	var out User
	if err := c.do(ctx, fiber.MethodGet, fmt.Sprintf("/user/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int64, u UserUpdate) (*User, error) {
	var out User
	if err := c.do(ctx, fiber.MethodPatch, fmt.Sprintf("/user/%d", id), u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int64) (*Deleted, error) {
	var out Deleted
	if err := c.do(ctx, fiber.MethodDelete, fmt.Sprintf("/user/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateAd(ctx context.Context, ownerID int64, title, description string) (*AdCreated, error) {
	var out AdCreated
	body := map[string]string{"title": title, "description": description}
	if err := c.do(ctx, fiber.MethodPost, fmt.Sprintf("/user/%d/ads", ownerID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetAd(ctx context.Context, id int64) (*Ad, error) {
	var out Ad
	if err := c.do(ctx, fiber.MethodGet, fmt.Sprintf("/ads/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAd(ctx context.Context, id int64, u AdUpdate) (*AdChange, error) {
	var out AdChange
	if err := c.do(ctx, fiber.MethodPatch, fmt.Sprintf("/ads/%d", id), u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAd(ctx context.Context, id int64) (*Deleted, error) {
	var out Deleted
	if err := c.do(ctx, fiber.MethodDelete, fmt.Sprintf("/ads/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListAds(ctx context.Context, ownerID int64) ([]AdSummary, error) {
	out := make([]AdSummary, 0)
	if err := c.do(ctx, fiber.MethodGet, fmt.Sprintf("/ads/user/%d", ownerID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// do sends one request with fiber's client agent and decodes the reply into
// out. An {"error": ...} body becomes an *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a := fiber.AcquireAgent()
	req := a.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)
	if body != nil {
		a.JSON(body)
	}
	a.Timeout(c.requestTimeout(ctx))

	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return fmt.Errorf("build request: %w", err)
	}

	// Bytes releases the agent.
	code, data, errs := a.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("%s %s: %w", method, path, errors.Join(errs...))
	}

	if code >= fiber.StatusBadRequest {
		var e struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(data, &e); err != nil || e.Error == "" {
			e.Error = strings.TrimSpace(string(data))
		}
		return &APIError{StatusCode: code, Message: e.Error}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// requestTimeout is the configured timeout, shortened to the context
// deadline when that comes first.
func (c *Client) requestTimeout(ctx context.Context) time.Duration {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); timeout <= 0 || left < timeout {
			timeout = left
		}
	}
	return timeout
}
