package handler

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/memorybox/backend/internal/model"
)

// memStore backs every repository interface with maps for router tests.
type memStore struct {
	mu       sync.Mutex
	admins   map[string]*model.Admin
	photos   []model.Photo
	memories []model.Memory
	settings *model.Settings
}

func newMemStore() *memStore {
	return &memStore{admins: map[string]*model.Admin{}}
}

func (m *memStore) CreateAdmin(ctx context.Context, id, username, passwordHash string) (*model.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := &model.Admin{ID: id, Username: username, PasswordHash: passwordHash, CreatedAt: time.Now()}
	m.admins[id] = a
	cp := *a
	return &cp, nil
}

func (m *memStore) CountAdmins(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.admins)), nil
}

func (m *memStore) GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.admins {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memStore) GetAdminByID(ctx context.Context, id string) (*model.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.admins[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, pgx.ErrNoRows
}

func (m *memStore) SetRefreshTokenHash(ctx context.Context, id string, hash *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.admins[id]; ok {
		a.RefreshTokenHash = hash
	}
	return nil
}

func (m *memStore) UpdatePasswordHash(ctx context.Context, id, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.admins[id]; ok {
		a.PasswordHash = passwordHash
	}
	return nil
}

func (m *memStore) UpdateUsername(ctx context.Context, id, username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.admins[id]; ok {
		a.Username = username
	}
	return nil
}

func (m *memStore) ListPhotos(ctx context.Context, oldestFirst bool, uploader string) ([]model.Photo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Photo{}, m.photos...), nil
}

func (m *memStore) RecentPhotos(ctx context.Context, limit int) ([]model.Photo, error) {
	return m.ListPhotos(ctx, false, "")
}

func (m *memStore) GetPhoto(ctx context.Context, id string) (*model.Photo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.photos {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memStore) GetPhotosByIDs(ctx context.Context, ids []string) ([]model.Photo, error) {
	var out []model.Photo
	for _, id := range ids {
		if p, err := m.GetPhoto(ctx, id); err == nil {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memStore) InsertPhotos(ctx context.Context, photos []model.Photo) ([]model.Photo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range photos {
		photos[i].UploadDate = time.Now()
	}
	m.photos = append(m.photos, photos...)
	return photos, nil
}

func (m *memStore) DeletePhoto(ctx context.Context, id string) (bool, error) {
	n, err := m.DeletePhotos(ctx, []string{id})
	return n > 0, err
}

func (m *memStore) DeletePhotos(ctx context.Context, ids []string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	kept := m.photos[:0]
	for _, p := range m.photos {
		if contains(ids, p.ID) {
			n++
			continue
		}
		kept = append(kept, p)
	}
	m.photos = kept
	return n, nil
}

func (m *memStore) CountPhotos(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.photos)), nil
}

func (m *memStore) UploaderCounts(ctx context.Context, limit int) ([]model.UploaderCount, error) {
	return nil, nil
}

func (m *memStore) ListMemories(ctx context.Context, oldestFirst bool) ([]model.Memory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Memory{}, m.memories...), nil
}

func (m *memStore) InsertMemory(ctx context.Context, id, guestName, message string) (*model.Memory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	mem := model.Memory{ID: id, GuestName: guestName, Message: message, CreatedAt: time.Now()}
	m.memories = append(m.memories, mem)
	return &mem, nil
}

func (m *memStore) DeleteMemory(ctx context.Context, id string) (bool, error) {
	n, err := m.DeleteMemories(ctx, []string{id})
	return n > 0, err
}

func (m *memStore) DeleteMemories(ctx context.Context, ids []string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	kept := m.memories[:0]
	for _, mem := range m.memories {
		if contains(ids, mem.ID) {
			n++
			continue
		}
		kept = append(kept, mem)
	}
	m.memories = kept
	return n, nil
}

func (m *memStore) CountMemories(ctx context.Context, since time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.memories)), nil
}

func (m *memStore) GetOrCreateSettings(ctx context.Context, defaults model.Settings) (*model.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.settings == nil {
		s := defaults
		m.settings = &s
	}
	cp := *m.settings
	return &cp, nil
}

func (m *memStore) SaveSettings(ctx context.Context, s model.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = &s
	return nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
