package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memorybox/backend/internal/model"
)

// fakeBackend mimics the auth endpoints: one refresh token per admin, access
// tokens invalidated on demand to simulate expiry.
type fakeBackend struct {
	mu        sync.Mutex
	refresh   string
	access    map[string]bool
	issued    int
	refreshes int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{access: map[string]bool{}}
}

func (b *fakeBackend) expireAll() {
	b.mu.Lock()
	b.access = map[string]bool{}
	b.mu.Unlock()
}

func (b *fakeBackend) refreshCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.refreshes
}

func (b *fakeBackend) mint() string {
	b.issued++
	tok := "access-" + strings.Repeat("x", b.issued)
	b.access[tok] = true
	return tok
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
	authed := func(r *http.Request) bool {
		b.mu.Lock()
		defer b.mu.Unlock()
		return b.access[strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")]
	}

	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req model.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Username != "admin" || req.Password != "changeme123" {
			writeJSON(w, http.StatusUnauthorized, model.ErrorResponse{Message: "invalid credentials"})
			return
		}
		b.mu.Lock()
		b.refresh = "refresh-" + strings.Repeat("r", b.issued+1)
		access := b.mint()
		rt := b.refresh
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, model.LoginResponse{
			AccessToken:  access,
			RefreshToken: rt,
			Admin:        model.AdminPublic{ID: "a1", Username: "admin"},
		})
	})
	mux.HandleFunc("/api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		var req model.RefreshRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		b.mu.Lock()
		defer b.mu.Unlock()
		b.refreshes++
		if b.refresh == "" || req.RefreshToken != b.refresh {
			writeJSON(w, http.StatusUnauthorized, model.ErrorResponse{Message: "refresh token mismatch"})
			return
		}
		writeJSON(w, http.StatusOK, model.RefreshResponse{AccessToken: b.mint()})
	})
	mux.HandleFunc("/api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			writeJSON(w, http.StatusUnauthorized, model.ErrorResponse{Message: "invalid or expired token"})
			return
		}
		b.mu.Lock()
		b.refresh = ""
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, model.MessageResponse{Message: "logged out"})
	})
	mux.HandleFunc("/api/auth/verify", func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			writeJSON(w, http.StatusUnauthorized, model.ErrorResponse{Message: "invalid or expired token"})
			return
		}
		writeJSON(w, http.StatusOK, model.VerifyResponse{Admin: model.AdminPublic{ID: "a1", Username: "admin"}})
	})
	mux.HandleFunc("/api/settings/toggle-upload", func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			writeJSON(w, http.StatusUnauthorized, model.ErrorResponse{Message: "invalid or expired token"})
			return
		}
		writeJSON(w, http.StatusOK, model.ToggleUploadResponse{Message: "Photo uploads disabled", UploadEnabled: false})
	})
	return mux
}

func TestSessionLoginRefreshLogout(t *testing.T) {
	backend := newFakeBackend()
	ts := httptest.NewServer(backend.handler())
	defer ts.Close()

	reauth := 0
	sess := NewSession(ts.URL, WithReauthRequired(func() { reauth++ }))
	defer sess.Close()
	api := NewAPIClient(sess)
	ctx := context.Background()

	admin, err := sess.Login(ctx, "admin", "changeme123")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)
	assert.True(t, sess.LoggedIn())

	got, err := api.Verify(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)

	// Access token expires; the next call refreshes transparently.
	backend.expireAll()
	enabled, err := api.ToggleUpload(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)
	assert.Equal(t, 1, backend.refreshCount())

	// The refresh token was not rotated and still works.
	backend.expireAll()
	_, err = api.Verify(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, backend.refreshCount())

	require.NoError(t, sess.Logout(ctx))
	assert.False(t, sess.LoggedIn())
	assert.Empty(t, sess.Tokens().RefreshToken())

	_, err = api.Verify(ctx)
	assert.ErrorIs(t, err, ErrReauthRequired)
	assert.Equal(t, 2, backend.refreshCount())
	assert.Equal(t, 1, reauth)
}

func TestSessionLoginInvalidCredentials(t *testing.T) {
	ts := httptest.NewServer(newFakeBackend().handler())
	defer ts.Close()

	sess := NewSession(ts.URL)
	_, err := sess.Login(context.Background(), "admin", "wrong")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "invalid credentials", apiErr.Message)
	assert.False(t, sess.LoggedIn())
}

func TestSessionSupersededRefreshToken(t *testing.T) {
	backend := newFakeBackend()
	ts := httptest.NewServer(backend.handler())
	defer ts.Close()
	ctx := context.Background()

	first := NewSession(ts.URL)
	_, err := first.Login(ctx, "admin", "changeme123")
	require.NoError(t, err)

	second := NewSession(ts.URL)
	_, err = second.Login(ctx, "admin", "changeme123")
	require.NoError(t, err)

	backend.expireAll()
	_, err = NewAPIClient(first).Verify(ctx)
	assert.ErrorIs(t, err, ErrReauthRequired)
	assert.False(t, first.LoggedIn())

	_, err = NewAPIClient(second).Verify(ctx)
	assert.NoError(t, err)
}
