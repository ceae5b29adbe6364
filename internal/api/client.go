// Package api is the typed REST client for the job board backend. Every
// request carries the gateway's authorization headers; every response status
// is mapped onto the client error taxonomy in exactly one place.
package api

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

	"github.com/google/uuid"

	"github.com/unijobs/unijobs/internal/auth"
	"github.com/unijobs/unijobs/internal/authz"
	uniErrors "github.com/unijobs/unijobs/internal/errors"
	"github.com/unijobs/unijobs/internal/log"
)

// maxResponseBody bounds how much of a response is read.
const maxResponseBody = 1 << 20

// Client performs authorized requests against the backend.
type Client struct {
	baseURL    string
	loginPath  string
	httpClient *http.Client
	gateway    *auth.Gateway
	logger     *log.Logger
}

// NewClient creates a client for the backend at baseURL. The gateway supplies
// authorization headers and owns the token store that a 401 clears.
func NewClient(baseURL string, timeout time.Duration, gateway *auth.Gateway, loginPath string) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if loginPath == "" {
		loginPath = "/login/"
	}
	return &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		loginPath: loginPath,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		gateway: gateway,
		logger:  log.DefaultLogger(),
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any, resource string) error {
	return c.doJSON(ctx, http.MethodGet, path, query, nil, out, resource)
}

func (c *Client) post(ctx context.Context, path string, body, out any, resource string) error {
	return c.doJSON(ctx, http.MethodPost, path, nil, body, out, resource)
}

func (c *Client) put(ctx context.Context, path string, body, out any, resource string) error {
	return c.doJSON(ctx, http.MethodPut, path, nil, body, out, resource)
}

func (c *Client) patch(ctx context.Context, path string, body, out any, resource string) error {
	return c.doJSON(ctx, http.MethodPatch, path, nil, body, out, resource)
}

func (c *Client) delete(ctx context.Context, path string, resource string) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil, resource)
}

// doJSON performs one request and maps the outcome. resource names the thing
// being fetched for contextual not-found messages.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any, resource string) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	for name, value := range c.gateway.AuthHeaders() {
		req.Header.Set(name, value)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).Debug("request failed", "method", method, "path", path)
		return uniErrors.ClassifyTransport(err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return uniErrors.NewNetworkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(resp.StatusCode, respBody, path, resource)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return uniErrors.NewBadResponseError(err)
	}
	return nil
}

// statusError maps a non-2xx response onto the error taxonomy.
//
// 401 clears the stored session before returning, so the next screen load
// starts unauthenticated; the redirect carried on the error points at login
// with the failed path as the return-to target. The redirect itself performs
// no request, so a 401 can never loop.
func (c *Client) statusError(status int, body []byte, path, resource string) error {
	switch {
	case status == http.StatusUnauthorized:
		if err := c.gateway.Store().Clear(); err != nil {
			c.logger.WithError(err).Warn("failed to clear session after 401")
		}
		return uniErrors.NewSessionExpiredError(authz.LoginRedirect(c.loginPath, path))

	case status == http.StatusForbidden:
		return uniErrors.NewForbiddenError(errorMessage(body))

	case status == http.StatusNotFound:
		if resource == "" {
			resource = "resource"
		}
		return uniErrors.NewNotFoundError(resource)

	case status >= 400 && status < 500:
		if fields := fieldErrors(body); len(fields) > 0 {
			return uniErrors.NewValidationError(fields)
		}
		msg := errorMessage(body)
		if msg == "" {
			msg = fmt.Sprintf("request rejected (%s)", http.StatusText(status))
		}
		return uniErrors.New(uniErrors.ErrCodeValidationFailed, msg)

	default:
		msg := errorMessage(body)
		if msg == "" {
			msg = http.StatusText(status)
		}
		return uniErrors.New(uniErrors.ErrCodeServerError, fmt.Sprintf("server error (%d): %s", status, msg))
	}
}

// errorMessage extracts a human-readable message from an error body,
// preferring the backend's "error" field, then "detail".
func errorMessage(body []byte) string {
	var parsed struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	if parsed.Error != "" {
		return parsed.Error
	}
	return parsed.Detail
}

// fieldErrors extracts field-keyed validation messages. The backend encodes
// them as {"field": ["msg", ...]}; scalar values are accepted too.
func fieldErrors(body []byte) map[string][]string {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}

	fields := make(map[string][]string)
	for name, value := range raw {
		if name == "error" || name == "detail" {
			continue
		}
		switch v := value.(type) {
		case []any:
			for _, item := range v {
				if s, ok := item.(string); ok {
					fields[name] = append(fields[name], s)
				}
			}
		case string:
			fields[name] = append(fields[name], v)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
