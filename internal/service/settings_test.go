package service

import (
	"context"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memorybox/backend/internal/model"
)

func TestSettingsDefaults(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})

	s, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, s.UploadEnabled)
	assert.Equal(t, "Bride & Groom", s.EventInfo.CoupleNames)
	assert.Nil(t, s.EventInfo.Date)
}

func TestSettingsPartialUpdate(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)
	ctx := context.Background()

	date := time.Date(2025, 10, 4, 0, 0, 0, 0, time.UTC)
	names := "Ana & Luis"
	s, err := svc.Update(ctx, model.SettingsUpdate{EventInfo: &model.EventInfoUpdate{
		CoupleNames: &names,
		Date:        model.OptionalTime{Set: true, Value: &date},
	}})
	require.NoError(t, err)
	assert.Equal(t, "Ana & Luis", s.EventInfo.CoupleNames)
	assert.Equal(t, date, *s.EventInfo.Date)
	assert.True(t, s.UploadEnabled)
	assert.Equal(t, "We would love to share our happiness with you!", s.EventInfo.Description)
	assert.False(t, s.UpdatedAt.IsZero())

	location := "Lisbon"
	s, err = svc.Update(ctx, model.SettingsUpdate{EventInfo: &model.EventInfoUpdate{Location: &location}})
	require.NoError(t, err)
	assert.Equal(t, date, *s.EventInfo.Date)
	assert.Equal(t, "Lisbon", s.EventInfo.Location)

	s, err = svc.Update(ctx, model.SettingsUpdate{EventInfo: &model.EventInfoUpdate{Date: model.OptionalTime{Set: true}}})
	require.NoError(t, err)
	assert.Nil(t, s.EventInfo.Date)
	assert.Equal(t, "Ana & Luis", s.EventInfo.CoupleNames)
	assert.Equal(t, 3, repo.saves)
}

func TestSettingsToggleUpload(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})
	ctx := context.Background()

	s, err := svc.ToggleUpload(ctx)
	require.NoError(t, err)
	assert.False(t, s.UploadEnabled)

	enabled, err := svc.UploadEnabled(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)

	s, err = svc.ToggleUpload(ctx)
	require.NoError(t, err)
	assert.True(t, s.UploadEnabled)
}

func TestSettingsRepoError(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{err: errBoom})

	_, err := svc.UploadEnabled(context.Background())
	assert.ErrorIs(t, err, errBoom)
}

func TestQRCodeGenerate(t *testing.T) {
	svc := NewQRCodeService(NewSettingsService(&fakeSettingsRepo{}))
	ctx := context.Background()

	res, err := svc.Generate(ctx, "https://wedding.example/upload")
	require.NoError(t, err)
	assert.Equal(t, "https://wedding.example/upload", res.URL)
	assert.Equal(t, "Bride & Groom", res.EventInfo.CoupleNames)

	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(res.QRCode, prefix))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(res.QRCode, prefix))
	require.NoError(t, err)
	img, err := png.Decode(strings.NewReader(string(raw)))
	require.NoError(t, err)
	assert.Equal(t, qrWidth, img.Bounds().Dx())
	assert.Equal(t, qrWidth, img.Bounds().Dy())

	// Corner pixel sits in the quiet zone.
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r&g&b)
}

func TestQRCodeGenerateValidation(t *testing.T) {
	svc := NewQRCodeService(NewSettingsService(&fakeSettingsRepo{}))
	ctx := context.Background()

	_, err := svc.Generate(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Generate(ctx, "not a url")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
