package model

import "time"

type Photo struct {
	ID           string    `json:"id"`
	URL          string    `json:"url"`
	PublicID     string    `json:"public_id"`
	UploaderName string    `json:"uploader_name"`
	UploadDate   time.Time `json:"upload_date"`
}

type PhotoInput struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

type PhotoUploadRequest struct {
	UploaderName string       `json:"uploader_name"`
	Photos       []PhotoInput `json:"photos"`
}

type PhotoUploadResponse struct {
	Message string  `json:"message"`
	Photos  []Photo `json:"photos"`
}

type UploadURLRequest struct {
	Filename string `json:"filename"`
}

// UploadURLResponse tells a guest where to PUT the image bytes and which
// url/public_id pair to submit afterwards.
type UploadURLResponse struct {
	UploadURL string    `json:"uploadUrl"`
	PublicID  string    `json:"public_id"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type PhotoBulkDeleteRequest struct {
	PhotoIDs []string `json:"photoIds"`
}

type UploaderCount struct {
	Name  string `json:"_id"`
	Count int64  `json:"count"`
}

type PhotoStats struct {
	TotalPhotos    int64           `json:"totalPhotos"`
	TotalUploaders int64           `json:"totalUploaders"`
	TopUploaders   []UploaderCount `json:"topUploaders"`
	RecentPhotos   []Photo         `json:"recentPhotos"`
	UploaderStats  []UploaderCount `json:"uploaderStats"`
}
