package service

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/memorybox/backend/internal/db"
	"github.com/memorybox/backend/internal/model"
	"github.com/memorybox/backend/internal/storage"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	topUploaderLimit  = 5
	recentPhotoLimit  = 10
	maxPhotosPerBatch = 50
	deleteConcurrency = 8
)

var (
	ErrUploadDisabled     = errors.New("uploads disabled")
	ErrStorageUnavailable = errors.New("object storage not configured")
)

type PhotoRepo interface {
	ListPhotos(ctx context.Context, oldestFirst bool, uploader string) ([]model.Photo, error)
	RecentPhotos(ctx context.Context, limit int) ([]model.Photo, error)
	GetPhoto(ctx context.Context, id string) (*model.Photo, error)
	GetPhotosByIDs(ctx context.Context, ids []string) ([]model.Photo, error)
	InsertPhotos(ctx context.Context, photos []model.Photo) ([]model.Photo, error)
	DeletePhoto(ctx context.Context, id string) (bool, error)
	DeletePhotos(ctx context.Context, ids []string) (int64, error)
	CountPhotos(ctx context.Context) (int64, error)
	UploaderCounts(ctx context.Context, limit int) ([]model.UploaderCount, error)
}

// ImageStore holds the image bytes behind each photo row.
type ImageStore interface {
	PresignUpload(ctx context.Context, filename, contentType string) (*storage.PresignedUpload, error)
	Delete(ctx context.Context, key string) error
}

type UploadGate interface {
	UploadEnabled(ctx context.Context) (bool, error)
}

type PhotoService struct {
	repo   PhotoRepo
	images ImageStore
	gate   UploadGate
	logger *zap.Logger
}

// NewPhotoService accepts a nil images store; deletes then only touch the database.
func NewPhotoService(repo PhotoRepo, images ImageStore, gate UploadGate, logger *zap.Logger) *PhotoService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PhotoService{repo: repo, images: images, gate: gate, logger: logger}
}

func (s *PhotoService) List(ctx context.Context, sort, uploader string) ([]model.Photo, error) {
	return s.repo.ListPhotos(ctx, sort == "oldest", strings.TrimSpace(uploader))
}

func (s *PhotoService) Upload(ctx context.Context, uploaderName string, photos []model.PhotoInput) ([]model.Photo, error) {
	uploaderName = strings.TrimSpace(uploaderName)
	if uploaderName == "" {
		return nil, fmt.Errorf("%w: uploader name is required", ErrInvalidInput)
	}
	if len(photos) == 0 {
		return nil, fmt.Errorf("%w: at least one photo is required", ErrInvalidInput)
	}
	if len(photos) > maxPhotosPerBatch {
		return nil, fmt.Errorf("%w: at most %d photos per upload", ErrInvalidInput, maxPhotosPerBatch)
	}

	if err := s.requireUploads(ctx); err != nil {
		return nil, err
	}

	rows := make([]model.Photo, 0, len(photos))
	for _, p := range photos {
		if strings.TrimSpace(p.URL) == "" || strings.TrimSpace(p.PublicID) == "" {
			return nil, fmt.Errorf("%w: every photo needs url and public_id", ErrInvalidInput)
		}
		rows = append(rows, model.Photo{
			ID:           uuid.NewString(),
			URL:          p.URL,
			PublicID:     p.PublicID,
			UploaderName: uploaderName,
		})
	}

	saved, err := s.repo.InsertPhotos(ctx, rows)
	if err != nil {
		return nil, err
	}
	s.logger.Info("photos uploaded", zap.String("uploader", uploaderName), zap.Int("count", len(saved)))
	return saved, nil
}

// UploadURL hands a guest a presigned PUT target for one image.
func (s *PhotoService) UploadURL(ctx context.Context, filename string) (*storage.PresignedUpload, error) {
	if s.images == nil {
		return nil, ErrStorageUnavailable
	}
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return nil, fmt.Errorf("%w: filename is required", ErrInvalidInput)
	}
	contentType := mime.TypeByExtension(strings.ToLower(path.Ext(filename)))
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: only image files are accepted", ErrInvalidInput)
	}

	if err := s.requireUploads(ctx); err != nil {
		return nil, err
	}
	return s.images.PresignUpload(ctx, filename, contentType)
}

// Delete removes the row even when the stored object cannot be removed.
func (s *PhotoService) Delete(ctx context.Context, id string) error {
	photo, err := s.repo.GetPhoto(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return ErrNotFound
		}
		return err
	}

	s.deleteObject(ctx, photo.PublicID)

	deleted, err := s.repo.DeletePhoto(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *PhotoService) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: photo ids are required", ErrInvalidInput)
	}

	photos, err := s.repo.GetPhotosByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}
	if len(photos) == 0 {
		return 0, ErrNotFound
	}

	var g errgroup.Group
	g.SetLimit(deleteConcurrency)
	for _, p := range photos {
		key := p.PublicID
		g.Go(func() error {
			s.deleteObject(ctx, key)
			return nil
		})
	}
	_ = g.Wait()

	return s.repo.DeletePhotos(ctx, ids)
}

func (s *PhotoService) Stats(ctx context.Context) (*model.PhotoStats, error) {
	total, err := s.repo.CountPhotos(ctx)
	if err != nil {
		return nil, err
	}
	perUploader, err := s.repo.UploaderCounts(ctx, 0)
	if err != nil {
		return nil, err
	}
	recent, err := s.repo.RecentPhotos(ctx, recentPhotoLimit)
	if err != nil {
		return nil, err
	}

	if perUploader == nil {
		perUploader = []model.UploaderCount{}
	}
	top := perUploader
	if len(top) > topUploaderLimit {
		top = top[:topUploaderLimit]
	}

	return &model.PhotoStats{
		TotalPhotos:    total,
		TotalUploaders: int64(len(perUploader)),
		TopUploaders:   top,
		RecentPhotos:   recent,
		UploaderStats:  perUploader,
	}, nil
}

func (s *PhotoService) requireUploads(ctx context.Context) error {
	enabled, err := s.gate.UploadEnabled(ctx)
	if err != nil {
		return err
	}
	if !enabled {
		return ErrUploadDisabled
	}
	return nil
}

func (s *PhotoService) deleteObject(ctx context.Context, key string) {
	if s.images == nil {
		return
	}
	if err := s.images.Delete(ctx, key); err != nil {
		s.logger.Warn("failed to delete photo object, continuing", zap.String("public_id", key), zap.Error(err))
	}
}
