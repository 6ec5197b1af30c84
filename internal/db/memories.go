package db

import (
	"context"
	"time"

	"github.com/memorybox/backend/internal/model"
)

func (db *Postgres) EnsureMemorySchema(ctx context.Context) error {
	return db.exec(ctx, []string{
		`
		CREATE TABLE IF NOT EXISTS memories (
			id TEXT PRIMARY KEY,
			guest_name TEXT NOT NULL,
			message TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE INDEX IF NOT EXISTS memories_created_at_idx ON memories(created_at DESC)`,
	})
}

func (db *Postgres) ListMemories(ctx context.Context, oldestFirst bool) ([]model.Memory, error) {
	order := "DESC"
	if oldestFirst {
		order = "ASC"
	}
	query := `SELECT id, guest_name, message, created_at FROM memories ORDER BY created_at ` + order

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Memory{}
	for rows.Next() {
		var m model.Memory
		if err := rows.Scan(&m.ID, &m.GuestName, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (db *Postgres) InsertMemory(ctx context.Context, id, guestName, message string) (*model.Memory, error) {
	query := `
		INSERT INTO memories (id, guest_name, message, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, guest_name, message, created_at
	`
	var m model.Memory
	if err := db.Pool.QueryRow(ctx, query, id, guestName, message).Scan(&m.ID, &m.GuestName, &m.Message, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func (db *Postgres) DeleteMemory(ctx context.Context, id string) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM memories WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (db *Postgres) DeleteMemories(ctx context.Context, ids []string) (int64, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM memories WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// CountMemories counts memories created at or after since; a zero since counts all.
func (db *Postgres) CountMemories(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM memories WHERE created_at >= $1`, since).Scan(&n)
	return n, err
}
