package db

import (
	"context"

	"github.com/memorybox/backend/internal/model"
)

// Settings live in a single row with id = 1.
func (db *Postgres) EnsureSettingsSchema(ctx context.Context) error {
	return db.exec(ctx, []string{
		`
		CREATE TABLE IF NOT EXISTS settings (
			id SMALLINT PRIMARY KEY CHECK (id = 1),
			upload_enabled BOOLEAN NOT NULL DEFAULT TRUE,
			couple_names TEXT NOT NULL DEFAULT '',
			event_date TIMESTAMPTZ,
			location TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
	})
}

// GetOrCreateSettings inserts defaults on first use and returns the row.
func (db *Postgres) GetOrCreateSettings(ctx context.Context, defaults model.Settings) (*model.Settings, error) {
	insert := `
		INSERT INTO settings (id, upload_enabled, couple_names, event_date, location, description, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO NOTHING
	`
	info := defaults.EventInfo
	if _, err := db.Pool.Exec(ctx, insert, defaults.UploadEnabled, info.CoupleNames, info.Date, info.Location, info.Description); err != nil {
		return nil, err
	}

	query := `
		SELECT upload_enabled, couple_names, event_date, location, description, updated_at
		FROM settings
		WHERE id = 1
	`
	var s model.Settings
	err := db.Pool.QueryRow(ctx, query).Scan(
		&s.UploadEnabled,
		&s.EventInfo.CoupleNames,
		&s.EventInfo.Date,
		&s.EventInfo.Location,
		&s.EventInfo.Description,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (db *Postgres) SaveSettings(ctx context.Context, s model.Settings) error {
	query := `
		UPDATE settings
		SET upload_enabled = $1,
			couple_names = $2,
			event_date = $3,
			location = $4,
			description = $5,
			updated_at = $6
		WHERE id = 1
	`
	info := s.EventInfo
	_, err := db.Pool.Exec(ctx, query, s.UploadEnabled, info.CoupleNames, info.Date, info.Location, info.Description, s.UpdatedAt)
	return err
}
