package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/memorybox/backend/internal/model"
)

const defaultTimeout = 30 * time.Second

// Session owns the credentials, the refresh coordinator and the HTTP client
// of one logged-in admin. Create one per login session and Close it on exit.
type Session struct {
	baseURL     string
	tokens      TokenStore
	coordinator *Coordinator
	authed      *http.Client
	plain       *http.Client
}

type sessionConfig struct {
	transport http.RoundTripper
	timeout   time.Duration
	tokens    TokenStore
	onReauth  func()
}

type SessionOption func(*sessionConfig)

func WithTransport(rt http.RoundTripper) SessionOption {
	return func(c *sessionConfig) { c.transport = rt }
}

func WithTimeout(d time.Duration) SessionOption {
	return func(c *sessionConfig) { c.timeout = d }
}

func WithTokenStore(tokens TokenStore) SessionOption {
	return func(c *sessionConfig) { c.tokens = tokens }
}

// WithReauthRequired is called when the session cannot be refreshed anymore.
func WithReauthRequired(fn func()) SessionOption {
	return func(c *sessionConfig) { c.onReauth = fn }
}

func NewSession(baseURL string, opts ...SessionOption) *Session {
	cfg := sessionConfig{
		transport: http.DefaultTransport,
		timeout:   defaultTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.tokens == nil {
		cfg.tokens = NewMemoryTokenStore()
	}

	s := &Session{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  cfg.tokens,
		plain:   &http.Client{Transport: cfg.transport, Timeout: cfg.timeout},
	}

	var coordOpts []CoordinatorOption
	if cfg.onReauth != nil {
		coordOpts = append(coordOpts, WithReauthHook(cfg.onReauth))
	}
	s.coordinator = NewCoordinator(cfg.tokens, s.refreshAccessToken, coordOpts...)
	s.authed = &http.Client{
		Transport: &Transport{Base: cfg.transport, Tokens: cfg.tokens, Coordinator: s.coordinator},
		Timeout:   cfg.timeout,
	}
	return s
}

func (s *Session) Tokens() TokenStore {
	return s.tokens
}

func (s *Session) LoggedIn() bool {
	return s.tokens.AccessToken() != ""
}

func (s *Session) Login(ctx context.Context, username, password string) (*model.AdminPublic, error) {
	var res model.LoginResponse
	err := s.do(ctx, s.plain, http.MethodPost, "/api/auth/login", model.LoginRequest{Username: username, Password: password}, &res)
	if err != nil {
		return nil, err
	}
	s.tokens.SetTokens(res.AccessToken, res.RefreshToken)
	return &res.Admin, nil
}

// Logout clears local credentials even when the server call fails.
func (s *Session) Logout(ctx context.Context) error {
	defer s.tokens.Clear()
	if !s.LoggedIn() {
		return nil
	}
	return s.do(ctx, s.authed, http.MethodPost, "/api/auth/logout", nil, nil)
}

func (s *Session) Close() {
	s.tokens.Clear()
	s.authed.CloseIdleConnections()
	s.plain.CloseIdleConnections()
}

// refreshAccessToken goes through the plain client so a 401 here never
// re-enters the coordinator.
func (s *Session) refreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	var res model.RefreshResponse
	if err := s.do(ctx, s.plain, http.MethodPost, "/api/auth/refresh", model.RefreshRequest{RefreshToken: refreshToken}, &res); err != nil {
		return "", err
	}
	if res.AccessToken == "" {
		return "", fmt.Errorf("refresh response without access token")
	}
	return res.AccessToken, nil
}

func (s *Session) do(ctx context.Context, hc *http.Client, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e model.ErrorResponse
		_ = json.Unmarshal(data, &e)
		if e.Message == "" {
			e.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: e.Message}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
