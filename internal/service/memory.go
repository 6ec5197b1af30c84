package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/memorybox/backend/internal/model"
)

const (
	minGuestNameLength = 2
	minMessageLength   = 10
	recentWindow       = 7 * 24 * time.Hour
)

type MemoryRepo interface {
	ListMemories(ctx context.Context, oldestFirst bool) ([]model.Memory, error)
	InsertMemory(ctx context.Context, id, guestName, message string) (*model.Memory, error)
	DeleteMemory(ctx context.Context, id string) (bool, error)
	DeleteMemories(ctx context.Context, ids []string) (int64, error)
	CountMemories(ctx context.Context, since time.Time) (int64, error)
}

type MemoryService struct {
	repo MemoryRepo
	now  func() time.Time
}

func NewMemoryService(repo MemoryRepo) *MemoryService {
	return &MemoryService{repo: repo, now: time.Now}
}

func (s *MemoryService) List(ctx context.Context, sort string) ([]model.Memory, error) {
	return s.repo.ListMemories(ctx, sort == "oldest")
}

func (s *MemoryService) Create(ctx context.Context, guestName, message string) (*model.Memory, error) {
	guestName = strings.TrimSpace(guestName)
	message = strings.TrimSpace(message)

	if guestName == "" || message == "" {
		return nil, fmt.Errorf("%w: name and memory are required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(guestName) < minGuestNameLength {
		return nil, fmt.Errorf("%w: name must be at least %d characters", ErrInvalidInput, minGuestNameLength)
	}
	if utf8.RuneCountInString(message) < minMessageLength {
		return nil, fmt.Errorf("%w: memory must be at least %d characters", ErrInvalidInput, minMessageLength)
	}

	return s.repo.InsertMemory(ctx, uuid.NewString(), guestName, message)
}

func (s *MemoryService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteMemory(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *MemoryService) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: memory ids are required", ErrInvalidInput)
	}
	return s.repo.DeleteMemories(ctx, ids)
}

func (s *MemoryService) Stats(ctx context.Context) (*model.MemoryStats, error) {
	total, err := s.repo.CountMemories(ctx, time.Time{})
	if err != nil {
		return nil, err
	}
	recent, err := s.repo.CountMemories(ctx, s.now().Add(-recentWindow))
	if err != nil {
		return nil, err
	}
	return &model.MemoryStats{Total: total, Recent: recent}, nil
}
