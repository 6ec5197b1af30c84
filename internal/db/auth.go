package db

import (
	"context"

	"github.com/memorybox/backend/internal/model"
)

func (db *Postgres) EnsureAuthSchema(ctx context.Context) error {
	return db.exec(ctx, []string{
		`
		CREATE TABLE IF NOT EXISTS admins (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			refresh_token_hash TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
	})
}

const adminColumns = `id, username, password_hash, refresh_token_hash, created_at, updated_at`

func (db *Postgres) CreateAdmin(ctx context.Context, id, username, passwordHash string) (*model.Admin, error) {
	query := `
		INSERT INTO admins (id, username, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + adminColumns
	return scanAdmin(db.Pool.QueryRow(ctx, query, id, username, passwordHash))
}

func (db *Postgres) CountAdmins(ctx context.Context) (int64, error) {
	var n int64
	err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&n)
	return n, err
}

func (db *Postgres) GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE username = $1`
	return scanAdmin(db.Pool.QueryRow(ctx, query, username))
}

func (db *Postgres) GetAdminByID(ctx context.Context, id string) (*model.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE id = $1`
	return scanAdmin(db.Pool.QueryRow(ctx, query, id))
}

// SetRefreshTokenHash overwrites the single stored refresh token; nil clears it.
func (db *Postgres) SetRefreshTokenHash(ctx context.Context, id string, hash *string) error {
	query := `
		UPDATE admins
		SET refresh_token_hash = $2, updated_at = NOW()
		WHERE id = $1
	`
	_, err := db.Pool.Exec(ctx, query, id, hash)
	return err
}

func (db *Postgres) UpdatePasswordHash(ctx context.Context, id, passwordHash string) error {
	query := `
		UPDATE admins
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1
	`
	_, err := db.Pool.Exec(ctx, query, id, passwordHash)
	return err
}

func (db *Postgres) UpdateUsername(ctx context.Context, id, username string) error {
	query := `
		UPDATE admins
		SET username = $2, updated_at = NOW()
		WHERE id = $1
	`
	_, err := db.Pool.Exec(ctx, query, id, username)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAdmin(row rowScanner) (*model.Admin, error) {
	var admin model.Admin
	err := row.Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.RefreshTokenHash,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
