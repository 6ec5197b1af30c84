package model

import (
	"bytes"
	"encoding/json"
	"time"
)

type EventInfo struct {
	CoupleNames string     `json:"couple_names"`
	Date        *time.Time `json:"date"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
}

type Settings struct {
	UploadEnabled bool      `json:"upload_enabled"`
	EventInfo     EventInfo `json:"event_info"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// SettingsUpdate carries only the fields present in the request body.
type SettingsUpdate struct {
	UploadEnabled *bool            `json:"upload_enabled"`
	EventInfo     *EventInfoUpdate `json:"event_info"`
}

type EventInfoUpdate struct {
	CoupleNames *string      `json:"couple_names"`
	Date        OptionalTime `json:"date"`
	Location    *string      `json:"location"`
	Description *string      `json:"description"`
}

// OptionalTime distinguishes an absent key from an explicit null.
type OptionalTime struct {
	Set   bool
	Value *time.Time
}

func (o *OptionalTime) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var t time.Time
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	o.Value = &t
	return nil
}

func (o OptionalTime) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

type SettingsUpdateResponse struct {
	Message  string   `json:"message"`
	Settings Settings `json:"settings"`
}

type ToggleUploadResponse struct {
	Message       string `json:"message"`
	UploadEnabled bool   `json:"upload_enabled"`
}

type QRCodeRequest struct {
	URL string `json:"url"`
}

type QRCodeResponse struct {
	QRCode    string    `json:"qrCode"`
	URL       string    `json:"url"`
	EventInfo EventInfo `json:"eventInfo"`
}
