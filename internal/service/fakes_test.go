package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/memorybox/backend/internal/model"
	"github.com/memorybox/backend/internal/storage"
)

type fakeAdminRepo struct {
	mu     sync.Mutex
	admins map[string]*model.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[string]*model.Admin{}}
}

func (f *fakeAdminRepo) CreateAdmin(ctx context.Context, id, username, passwordHash string) (*model.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.admins {
		if a.Username == username {
			return nil, &pgconn.PgError{Code: "23505"}
		}
	}
	now := time.Now()
	a := &model.Admin{ID: id, Username: username, PasswordHash: passwordHash, CreatedAt: now, UpdatedAt: now}
	f.admins[id] = a
	cp := *a
	return &cp, nil
}

func (f *fakeAdminRepo) CountAdmins(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.admins)), nil
}

func (f *fakeAdminRepo) GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.admins {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeAdminRepo) GetAdminByID(ctx context.Context, id string) (*model.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.admins[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAdminRepo) SetRefreshTokenHash(ctx context.Context, id string, hash *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.admins[id]; ok {
		a.RefreshTokenHash = hash
	}
	return nil
}

func (f *fakeAdminRepo) UpdatePasswordHash(ctx context.Context, id, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.admins[id]
	if !ok {
		return pgx.ErrNoRows
	}
	a.PasswordHash = passwordHash
	return nil
}

func (f *fakeAdminRepo) UpdateUsername(ctx context.Context, id, username string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.admins {
		if a.Username == username && a.ID != id {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	a, ok := f.admins[id]
	if !ok {
		return pgx.ErrNoRows
	}
	a.Username = username
	return nil
}

type fakePhotoRepo struct {
	mu     sync.Mutex
	photos []model.Photo
	clock  time.Time
}

func (f *fakePhotoRepo) ListPhotos(ctx context.Context, oldestFirst bool, uploader string) ([]model.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Photo
	for _, p := range f.photos {
		if uploader != "" && !strings.Contains(strings.ToLower(p.UploaderName), strings.ToLower(uploader)) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if oldestFirst {
			return out[i].UploadDate.Before(out[j].UploadDate)
		}
		return out[i].UploadDate.After(out[j].UploadDate)
	})
	return out, nil
}

func (f *fakePhotoRepo) RecentPhotos(ctx context.Context, limit int) ([]model.Photo, error) {
	all, _ := f.ListPhotos(ctx, false, "")
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakePhotoRepo) GetPhoto(ctx context.Context, id string) (*model.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.photos {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakePhotoRepo) GetPhotosByIDs(ctx context.Context, ids []string) ([]model.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	want := map[string]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []model.Photo
	for _, p := range f.photos {
		if want[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePhotoRepo) InsertPhotos(ctx context.Context, photos []model.Photo) ([]model.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.clock.IsZero() {
		f.clock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	out := make([]model.Photo, 0, len(photos))
	for _, p := range photos {
		f.clock = f.clock.Add(time.Second)
		p.UploadDate = f.clock
		f.photos = append(f.photos, p)
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePhotoRepo) DeletePhoto(ctx context.Context, id string) (bool, error) {
	n, err := f.DeletePhotos(ctx, []string{id})
	return n == 1, err
}

func (f *fakePhotoRepo) DeletePhotos(ctx context.Context, ids []string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	want := map[string]bool{}
	for _, id := range ids {
		want[id] = true
	}
	kept := f.photos[:0]
	var n int64
	for _, p := range f.photos {
		if want[p.ID] {
			n++
			continue
		}
		kept = append(kept, p)
	}
	f.photos = kept
	return n, nil
}

func (f *fakePhotoRepo) CountPhotos(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.photos)), nil
}

func (f *fakePhotoRepo) UploaderCounts(ctx context.Context, limit int) ([]model.UploaderCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := map[string]int64{}
	for _, p := range f.photos {
		counts[p.UploaderName]++
	}
	var out []model.UploaderCount
	for name, n := range counts {
		out = append(out, model.UploaderCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeImageStore struct {
	mu        sync.Mutex
	deleted   []string
	deleteErr error
}

func (f *fakeImageStore) PresignUpload(ctx context.Context, filename, contentType string) (*storage.PresignedUpload, error) {
	return &storage.PresignedUpload{
		UploadURL: "https://s3.example/put/" + filename,
		Key:       "wedding-photos/" + filename,
		PublicURL: "https://cdn.example/wedding-photos/" + filename,
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}, nil
}

func (f *fakeImageStore) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, key)
	return f.deleteErr
}

type staticGate struct {
	enabled bool
	err     error
}

func (g staticGate) UploadEnabled(ctx context.Context) (bool, error) {
	return g.enabled, g.err
}

type fakeMemoryRepo struct {
	mu       sync.Mutex
	memories []model.Memory
}

func (f *fakeMemoryRepo) ListMemories(ctx context.Context, oldestFirst bool) ([]model.Memory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := append([]model.Memory(nil), f.memories...)
	sort.Slice(out, func(i, j int) bool {
		if oldestFirst {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeMemoryRepo) InsertMemory(ctx context.Context, id, guestName, message string) (*model.Memory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m := model.Memory{ID: id, GuestName: guestName, Message: message, CreatedAt: time.Now()}
	f.memories = append(f.memories, m)
	return &m, nil
}

func (f *fakeMemoryRepo) DeleteMemory(ctx context.Context, id string) (bool, error) {
	n, err := f.DeleteMemories(ctx, []string{id})
	return n == 1, err
}

func (f *fakeMemoryRepo) DeleteMemories(ctx context.Context, ids []string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	want := map[string]bool{}
	for _, id := range ids {
		want[id] = true
	}
	kept := f.memories[:0]
	var n int64
	for _, m := range f.memories {
		if want[m.ID] {
			n++
			continue
		}
		kept = append(kept, m)
	}
	f.memories = kept
	return n, nil
}

func (f *fakeMemoryRepo) CountMemories(ctx context.Context, since time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, m := range f.memories {
		if !m.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings *model.Settings
	saves    int
	err      error
}

func (f *fakeSettingsRepo) GetOrCreateSettings(ctx context.Context, defaults model.Settings) (*model.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if f.settings == nil {
		s := defaults
		f.settings = &s
	}
	cp := *f.settings
	return &cp, nil
}

func (f *fakeSettingsRepo) SaveSettings(ctx context.Context, s model.Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	f.settings = &s
	return nil
}

var errBoom = errors.New("boom")
