package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/memorybox/backend/internal/model"
)

// APIClient wraps the admin endpoints. Every call goes through the session's
// refreshing transport.
type APIClient struct {
	s *Session
}

func NewAPIClient(s *Session) *APIClient {
	return &APIClient{s: s}
}

func (c *APIClient) call(ctx context.Context, method, path string, in, out any) error {
	return c.s.do(ctx, c.s.authed, method, path, in, out)
}

func (c *APIClient) Verify(ctx context.Context) (*model.AdminPublic, error) {
	var res model.VerifyResponse
	if err := c.call(ctx, http.MethodGet, "/api/auth/verify", nil, &res); err != nil {
		return nil, err
	}
	return &res.Admin, nil
}

func (c *APIClient) ListPhotos(ctx context.Context, sort, uploader string) ([]model.Photo, error) {
	q := url.Values{}
	if sort != "" {
		q.Set("sort", sort)
	}
	if uploader != "" {
		q.Set("uploader", uploader)
	}
	path := "/api/photos"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var res []model.Photo
	err := c.call(ctx, http.MethodGet, path, nil, &res)
	return res, err
}

func (c *APIClient) DeletePhoto(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/api/photos/"+url.PathEscape(id), nil, nil)
}

func (c *APIClient) BulkDeletePhotos(ctx context.Context, ids []string) (int64, error) {
	var res model.BulkDeleteResponse
	err := c.call(ctx, http.MethodPost, "/api/photos/bulk-delete", model.PhotoBulkDeleteRequest{PhotoIDs: ids}, &res)
	return res.DeletedCount, err
}

func (c *APIClient) PhotoStats(ctx context.Context) (*model.PhotoStats, error) {
	var res model.PhotoStats
	if err := c.call(ctx, http.MethodGet, "/api/photos/stats/overview", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *APIClient) ListMemories(ctx context.Context, sort string) ([]model.Memory, error) {
	path := "/api/memories"
	if sort != "" {
		path += "?sort=" + url.QueryEscape(sort)
	}
	var res []model.Memory
	err := c.call(ctx, http.MethodGet, path, nil, &res)
	return res, err
}

func (c *APIClient) DeleteMemory(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/api/memories/"+url.PathEscape(id), nil, nil)
}

func (c *APIClient) MemoryStats(ctx context.Context) (*model.MemoryStats, error) {
	var res model.MemoryStats
	if err := c.call(ctx, http.MethodGet, "/api/memories/stats/overview", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *APIClient) GetSettings(ctx context.Context) (*model.Settings, error) {
	var res model.Settings
	if err := c.call(ctx, http.MethodGet, "/api/settings", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *APIClient) UpdateSettings(ctx context.Context, upd model.SettingsUpdate) (*model.Settings, error) {
	var res model.SettingsUpdateResponse
	if err := c.call(ctx, http.MethodPut, "/api/settings", upd, &res); err != nil {
		return nil, err
	}
	return &res.Settings, nil
}

func (c *APIClient) ToggleUpload(ctx context.Context) (bool, error) {
	var res model.ToggleUploadResponse
	err := c.call(ctx, http.MethodPatch, "/api/settings/toggle-upload", nil, &res)
	return res.UploadEnabled, err
}

func (c *APIClient) GenerateQRCode(ctx context.Context, target string) (*model.QRCodeResponse, error) {
	var res model.QRCodeResponse
	if err := c.call(ctx, http.MethodPost, "/api/qrcode/generate", model.QRCodeRequest{URL: target}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
