package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"net/url"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"github.com/memorybox/backend/internal/model"
)

const (
	qrWidth       = 400
	qrQuietModule = 2
)

type QRCodeService struct {
	settings *SettingsService
}

func NewQRCodeService(settings *SettingsService) *QRCodeService {
	return &QRCodeService{settings: settings}
}

// Generate renders target as a PNG QR code data URL alongside the event info.
func (s *QRCodeService) Generate(ctx context.Context, target string) (*model.QRCodeResponse, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, fmt.Errorf("%w: url is required", ErrInvalidInput)
	}
	if u, err := url.Parse(target); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: url must be absolute", ErrInvalidInput)
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	dataURL, err := EncodeQRCode(target, qrWidth)
	if err != nil {
		return nil, err
	}

	return &model.QRCodeResponse{
		QRCode:    dataURL,
		URL:       target,
		EventInfo: settings.EventInfo,
	}, nil
}

// EncodeQRCode returns a data:image/png URL of the given width, black on
// white, error correction level H, with a two-module quiet zone.
func EncodeQRCode(content string, width int) (string, error) {
	code, err := qr.Encode(content, qr.H, qr.Auto)
	if err != nil {
		return "", fmt.Errorf("failed to encode qr code: %w", err)
	}

	modules := code.Bounds().Dx() + 2*qrQuietModule
	scale := width / modules
	if scale < 1 {
		scale = 1
	}
	inner := code.Bounds().Dx() * scale
	scaled, err := barcode.Scale(code, inner, inner)
	if err != nil {
		return "", fmt.Errorf("failed to scale qr code: %w", err)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, width))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	offset := (width - inner) / 2
	draw.Draw(canvas, image.Rect(offset, offset, offset+inner, offset+inner), scaled, scaled.Bounds().Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
