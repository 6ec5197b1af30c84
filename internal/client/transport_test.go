package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authServer accepts only the bearer token in valid and counts requests.
type authServer struct {
	mu       sync.Mutex
	valid    string
	rejected atomic.Int32
	bodies   []string
}

func (s *authServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	s.mu.Lock()
	valid := s.valid
	s.bodies = append(s.bodies, string(body))
	s.mu.Unlock()

	if r.Header.Get("Authorization") != "Bearer "+valid {
		s.rejected.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid or expired token"}`))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"ok":true}`))
}

func newTestClient(tokens TokenStore, refresh RefreshFunc, opts ...CoordinatorOption) *http.Client {
	return &http.Client{
		Transport: &Transport{Tokens: tokens, Coordinator: NewCoordinator(tokens, refresh, opts...)},
		Timeout:   5 * time.Second,
	}
}

func TestTransportRefreshesAndRetries(t *testing.T) {
	srv := &authServer{valid: "new"}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	tokens := NewMemoryTokenStore()
	tokens.SetTokens("old", "rt")
	hc := newTestClient(tokens, func(ctx context.Context, refreshToken string) (string, error) {
		return "new", nil
	})

	req, err := http.NewRequest(http.MethodPost, ts.URL, strings.NewReader(`{"a":1}`))
	require.NoError(t, err)
	resp, err := hc.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(1), srv.rejected.Load())
	assert.Equal(t, []string{`{"a":1}`, `{"a":1}`}, srv.bodies)
}

func TestTransportConcurrentUnauthorizedSingleRefresh(t *testing.T) {
	const n = 8
	srv := &authServer{valid: "new"}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	tokens := NewMemoryTokenStore()
	tokens.SetTokens("old", "rt")

	var calls atomic.Int32
	hc := newTestClient(tokens, func(ctx context.Context, refreshToken string) (string, error) {
		calls.Add(1)
		// Hold the refresh until every original request has been rejected.
		deadline := time.Now().Add(2 * time.Second)
		for srv.rejected.Load() < n && time.Now().Before(deadline) {
			time.Sleep(time.Millisecond)
		}
		return "new", nil
	})

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := hc.Get(ts.URL)
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int32(n), srv.rejected.Load())
}

func TestTransportSecondUnauthorizedIsFinal(t *testing.T) {
	srv := &authServer{valid: "never"}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	tokens := NewMemoryTokenStore()
	tokens.SetTokens("old", "rt")
	var calls atomic.Int32
	hc := newTestClient(tokens, func(ctx context.Context, refreshToken string) (string, error) {
		calls.Add(1)
		return "new", nil
	})

	resp, err := hc.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int32(2), srv.rejected.Load())
	assert.Equal(t, int32(1), calls.Load())
}

func TestTransportRefreshFailure(t *testing.T) {
	srv := &authServer{valid: "new"}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	tokens := NewMemoryTokenStore()
	tokens.SetTokens("old", "rt")
	reauth := false
	hc := newTestClient(tokens, func(ctx context.Context, refreshToken string) (string, error) {
		return "", &APIError{StatusCode: http.StatusUnauthorized, Message: "refresh token mismatch"}
	}, WithReauthHook(func() { reauth = true }))

	_, err := hc.Get(ts.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReauthRequired)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, reauth)
	assert.Empty(t, tokens.RefreshToken())
	assert.Equal(t, int32(1), srv.rejected.Load())
}

func TestTransportPassesThroughSuccess(t *testing.T) {
	srv := &authServer{valid: "good"}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	tokens := NewMemoryTokenStore()
	tokens.SetTokens("good", "rt")
	hc := newTestClient(tokens, func(ctx context.Context, refreshToken string) (string, error) {
		t.Fatal("refresh should not be called")
		return "", nil
	})

	resp, err := hc.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, srv.rejected.Load())
}
