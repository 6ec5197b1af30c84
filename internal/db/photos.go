package db

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/memorybox/backend/internal/model"
)

func (db *Postgres) EnsurePhotoSchema(ctx context.Context) error {
	return db.exec(ctx, []string{
		`
		CREATE TABLE IF NOT EXISTS photos (
			id TEXT PRIMARY KEY,
			url TEXT NOT NULL,
			public_id TEXT NOT NULL,
			uploader_name TEXT NOT NULL,
			upload_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE INDEX IF NOT EXISTS photos_upload_date_idx ON photos(upload_date DESC)`,
		`CREATE INDEX IF NOT EXISTS photos_uploader_name_idx ON photos(uploader_name)`,
	})
}

const photoColumns = `id, url, public_id, uploader_name, upload_date`

// ListPhotos filters by a case-insensitive uploader substring when uploader is non-empty.
func (db *Postgres) ListPhotos(ctx context.Context, oldestFirst bool, uploader string) ([]model.Photo, error) {
	order := "DESC"
	if oldestFirst {
		order = "ASC"
	}

	query := `SELECT ` + photoColumns + ` FROM photos`
	args := []any{}
	if uploader != "" {
		query += ` WHERE uploader_name ILIKE $1 ESCAPE '\'`
		args = append(args, "%"+escapeLike(uploader)+"%")
	}
	query += ` ORDER BY upload_date ` + order

	return db.queryPhotos(ctx, query, args...)
}

func (db *Postgres) RecentPhotos(ctx context.Context, limit int) ([]model.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos ORDER BY upload_date DESC LIMIT $1`
	return db.queryPhotos(ctx, query, limit)
}

func (db *Postgres) GetPhoto(ctx context.Context, id string) (*model.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos WHERE id = $1`
	var p model.Photo
	err := db.Pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.URL, &p.PublicID, &p.UploaderName, &p.UploadDate)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (db *Postgres) GetPhotosByIDs(ctx context.Context, ids []string) ([]model.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos WHERE id = ANY($1)`
	return db.queryPhotos(ctx, query, ids)
}

// InsertPhotos stores all rows in one transaction.
func (db *Postgres) InsertPhotos(ctx context.Context, photos []model.Photo) ([]model.Photo, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	query := `
		INSERT INTO photos (id, url, public_id, uploader_name, upload_date)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING ` + photoColumns

	saved := make([]model.Photo, 0, len(photos))
	for _, in := range photos {
		var p model.Photo
		if err := tx.QueryRow(ctx, query, in.ID, in.URL, in.PublicID, in.UploaderName).Scan(
			&p.ID, &p.URL, &p.PublicID, &p.UploaderName, &p.UploadDate,
		); err != nil {
			return nil, err
		}
		saved = append(saved, p)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return saved, nil
}

func (db *Postgres) DeletePhoto(ctx context.Context, id string) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (db *Postgres) DeletePhotos(ctx context.Context, ids []string) (int64, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM photos WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (db *Postgres) CountPhotos(ctx context.Context) (int64, error) {
	var n int64
	err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM photos`).Scan(&n)
	return n, err
}

// UploaderCounts groups photos by uploader, largest first. limit <= 0 returns all.
func (db *Postgres) UploaderCounts(ctx context.Context, limit int) ([]model.UploaderCount, error) {
	query := `
		SELECT uploader_name, COUNT(*) AS n
		FROM photos
		GROUP BY uploader_name
		ORDER BY n DESC, uploader_name ASC
	`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.UploaderCount, error) {
		var u model.UploaderCount
		err := row.Scan(&u.Name, &u.Count)
		return u, err
	})
}

func (db *Postgres) queryPhotos(ctx context.Context, query string, args ...any) ([]model.Photo, error) {
	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Photo{}
	for rows.Next() {
		var p model.Photo
		if err := rows.Scan(&p.ID, &p.URL, &p.PublicID, &p.UploaderName, &p.UploadDate); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
