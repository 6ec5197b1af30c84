package client

import (
	"context"
	"fmt"
	"sync"
)

// RefreshFunc exchanges a refresh token for a new access token. It is the
// only network call the Coordinator makes.
type RefreshFunc func(ctx context.Context, refreshToken string) (string, error)

type refreshResult struct {
	token string
	err   error
}

// Coordinator makes sure that at most one refresh call is in flight per
// session. The first caller to report an expired token while idle performs the
// refresh; every caller arriving while it runs waits in the queue and receives
// the same outcome.
//
// The queue is only non-empty while refreshing is true, and it is fully
// drained before refreshing goes back to false.
type Coordinator struct {
	tokens           TokenStore
	refresh          RefreshFunc
	onReauthRequired func()

	mu         sync.Mutex
	refreshing bool
	queue      []chan refreshResult
}

type CoordinatorOption func(*Coordinator)

// WithReauthHook registers the callback run after a refresh failure, once the
// queue has been rejected and the tokens cleared.
func WithReauthHook(fn func()) CoordinatorOption {
	return func(c *Coordinator) {
		c.onReauthRequired = fn
	}
}

func NewCoordinator(tokens TokenStore, refresh RefreshFunc, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		tokens:           tokens,
		refresh:          refresh,
		onReauthRequired: func() {},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Refreshing reports whether a refresh call is currently outstanding.
func (c *Coordinator) Refreshing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshing
}

// Token returns an access token to retry with after a request sent with
// stale was rejected. If another caller already replaced stale, the stored
// token is returned without a new refresh.
func (c *Coordinator) Token(ctx context.Context, stale string) (string, error) {
	c.mu.Lock()
	if c.refreshing {
		slot := make(chan refreshResult, 1)
		c.queue = append(c.queue, slot)
		c.mu.Unlock()
		return wait(ctx, slot)
	}
	if current := c.tokens.AccessToken(); current != "" && current != stale {
		c.mu.Unlock()
		return current, nil
	}
	c.refreshing = true
	c.mu.Unlock()

	token, err := c.doRefresh(ctx)
	c.settle(token, err)
	return token, err
}

func (c *Coordinator) doRefresh(ctx context.Context) (string, error) {
	refreshToken := c.tokens.RefreshToken()
	if refreshToken == "" {
		return "", ErrReauthRequired
	}

	token, err := c.refresh(ctx, refreshToken)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReauthRequired, err)
	}
	return token, nil
}

// settle stores the outcome, returns to idle and then drains the queue.
func (c *Coordinator) settle(token string, err error) {
	c.mu.Lock()
	if err == nil {
		c.tokens.SetAccessToken(token)
	} else {
		c.tokens.Clear()
	}
	queued := c.queue
	c.queue = nil
	c.refreshing = false
	c.mu.Unlock()

	for _, slot := range queued {
		slot <- refreshResult{token: token, err: err}
	}

	if err != nil {
		c.onReauthRequired()
	}
}

func wait(ctx context.Context, slot <-chan refreshResult) (string, error) {
	select {
	case res := <-slot:
		return res.token, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
