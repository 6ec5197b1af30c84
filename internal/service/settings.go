package service

import (
	"context"
	"time"

	"github.com/memorybox/backend/internal/model"
)

var defaultSettings = model.Settings{
	UploadEnabled: true,
	EventInfo: model.EventInfo{
		CoupleNames: "Bride & Groom",
		Description: "We would love to share our happiness with you!",
	},
}

type SettingsRepo interface {
	GetOrCreateSettings(ctx context.Context, defaults model.Settings) (*model.Settings, error)
	SaveSettings(ctx context.Context, s model.Settings) error
}

// SettingsService reads and writes the single settings document with a plain
// read-modify-write; concurrent admin edits are last-write-wins.
type SettingsService struct {
	repo SettingsRepo
	now  func() time.Time
}

func NewSettingsService(repo SettingsRepo) *SettingsService {
	return &SettingsService{repo: repo, now: time.Now}
}

func (s *SettingsService) Get(ctx context.Context) (*model.Settings, error) {
	return s.repo.GetOrCreateSettings(ctx, defaultSettings)
}

func (s *SettingsService) UploadEnabled(ctx context.Context) (bool, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return false, err
	}
	return settings.UploadEnabled, nil
}

func (s *SettingsService) Update(ctx context.Context, upd model.SettingsUpdate) (*model.Settings, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if upd.UploadEnabled != nil {
		settings.UploadEnabled = *upd.UploadEnabled
	}
	if info := upd.EventInfo; info != nil {
		if info.CoupleNames != nil {
			settings.EventInfo.CoupleNames = *info.CoupleNames
		}
		if info.Date.Set {
			settings.EventInfo.Date = info.Date.Value
		}
		if info.Location != nil {
			settings.EventInfo.Location = *info.Location
		}
		if info.Description != nil {
			settings.EventInfo.Description = *info.Description
		}
	}

	return s.save(ctx, settings)
}

func (s *SettingsService) ToggleUpload(ctx context.Context) (*model.Settings, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	settings.UploadEnabled = !settings.UploadEnabled
	return s.save(ctx, settings)
}

func (s *SettingsService) save(ctx context.Context, settings *model.Settings) (*model.Settings, error) {
	settings.UpdatedAt = s.now().UTC()
	if err := s.repo.SaveSettings(ctx, *settings); err != nil {
		return nil, err
	}
	return settings, nil
}
