package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/unijobs/unijobs/internal/authz"
	uniErrors "github.com/unijobs/unijobs/internal/errors"
)

// Session is the result of a successful login.
type Session struct {
	Token    string
	UserID   int64
	Username string
	Role     authz.Role
}

// Gateway performs the credential exchange and owns the authorization header
// format. It is the single writer of the token store.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
	store      *TokenStore
}

// NewGateway creates a gateway for the backend at baseURL. A zero timeout
// falls back to 30 seconds; requests are never unbounded.
func NewGateway(baseURL string, timeout time.Duration, store *TokenStore) *Gateway {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Gateway{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		store: store,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`

	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// Login exchanges credentials for a token, persists the session, and returns
// it. Credentials are sent exactly once; a rejection is surfaced with the
// server's own message and nothing is retried or stored.
func (g *Gateway) Login(ctx context.Context, username, password string) (Session, error) {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return Session{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/login/", bytes.NewReader(body))
	if err != nil {
		return Session{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return Session{}, uniErrors.ClassifyTransport(err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return Session{}, uniErrors.NewNetworkError(err)
	}

	var parsed loginResponse
	if jsonErr := json.Unmarshal(respBody, &parsed); jsonErr != nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return Session{}, uniErrors.NewBadResponseError(jsonErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := parsed.Error
		if msg == "" {
			msg = parsed.Detail
		}
		return Session{}, uniErrors.NewLoginRejectedError(msg)
	}

	if parsed.Token == "" {
		return Session{}, uniErrors.New(uniErrors.ErrCodeBadResponse, "login response is missing a token")
	}

	info := UserInfo{ID: parsed.UserID, Username: parsed.Username, Role: parsed.Role}
	if err := g.store.Save(parsed.Token, info); err != nil {
		return Session{}, err
	}

	return Session{
		Token:    parsed.Token,
		UserID:   parsed.UserID,
		Username: parsed.Username,
		Role:     authz.ParseRole(parsed.Role),
	}, nil
}

// Logout clears the stored session. No server round-trip is made; the token
// simply stops being presented. Always succeeds on an already-empty store.
func (g *Gateway) Logout() error {
	return g.store.Clear()
}

// AuthHeaders returns the headers every outbound request carries. The
// authorization entry is present only when a token is stored; the map is a
// pure function of current storage state.
func (g *Gateway) AuthHeaders() map[string]string {
	headers := map[string]string{
		"Content-Type": "application/json",
	}
	if token, ok := g.store.Token(); ok {
		headers["Authorization"] = "Token " + token
	}
	return headers
}

// Store exposes the underlying token store for the API client's 401 handling.
func (g *Gateway) Store() *TokenStore {
	return g.store
}
