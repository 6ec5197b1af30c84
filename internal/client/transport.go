package client

import (
	"io"
	"net/http"
)

// Transport attaches the current access token to every request and, on a
// 401, replays the request exactly once with a refreshed token. A second 401
// is returned to the caller unchanged.
type Transport struct {
	Base        http.RoundTripper
	Tokens      TokenStore
	Coordinator *Coordinator
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	sent := t.Tokens.AccessToken()
	resp, err := t.base().RoundTrip(withBearer(req, sent))
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}

	// Without GetBody the body has been consumed and cannot be sent again.
	if req.Body != nil && req.Body != http.NoBody && req.GetBody == nil {
		return resp, nil
	}

	token, err := t.Coordinator.Token(req.Context(), sent)
	if err != nil {
		drain(resp)
		return nil, err
	}

	retry, err := rewind(req)
	if err != nil {
		drain(resp)
		return nil, err
	}
	drain(resp)
	return t.base().RoundTrip(withBearer(retry, token))
}

func withBearer(req *http.Request, token string) *http.Request {
	out := req.Clone(req.Context())
	if token == "" {
		out.Header.Del("Authorization")
	} else {
		out.Header.Set("Authorization", "Bearer "+token)
	}
	return out
}

func rewind(req *http.Request) (*http.Request, error) {
	if req.GetBody == nil {
		return req, nil
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, err
	}
	out := req.Clone(req.Context())
	out.Body = body
	return out, nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
}
