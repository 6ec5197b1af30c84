package model

import "time"

type Memory struct {
	ID        string    `json:"id"`
	GuestName string    `json:"guest_name"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type MemoryCreateRequest struct {
	GuestName string `json:"guest_name"`
	Message   string `json:"message"`
}

type MemoryCreateResponse struct {
	Message string `json:"message"`
	Memory  Memory `json:"memory"`
}

type MemoryBulkDeleteRequest struct {
	MemoryIDs []string `json:"memoryIds"`
}

type MemoryStats struct {
	Total  int64 `json:"total"`
	Recent int64 `json:"recent"`
}
