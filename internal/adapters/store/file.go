// Package store implements persistence for the single color cache entry.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/wrp/internal/core/domain"
	"go.trai.ch/wrp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ColorCacheStore = (*FileStore)(nil)

// FileStore implements ports.ColorCacheStore using a single JSON file.
// Writes replace the whole file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by the file at path.
// An empty path yields a store whose operations fail with domain.ErrCacheDirUnavailable.
func NewFileStore(path string) *FileStore {
	if path != "" {
		path = filepath.Clean(path)
	}
	return &FileStore{path: path}
}

// Path returns the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and decodes the cache file.
func (s *FileStore) Load() (*domain.ColorCacheEntry, error) {
	if s.path == "" {
		return nil, domain.ErrCacheDirUnavailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and derived from the user cache dir
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrStoreReadFailed, err), "path", s.path)
	}

	entry, err := decodeEntry(data)
	if err != nil {
		return nil, zerr.With(err, "path", s.path)
	}
	return entry, nil
}

// entryFile mirrors domain.ColorCacheEntry with every field required.
type entryFile struct {
	WallpaperPath  *string           `json:"wallpaper_path"`
	WallpaperMtime *uint64           `json:"wallpaper_mtime"`
	Colors         map[string]string `json:"colors"`
}

func decodeEntry(data []byte) (*domain.ColorCacheEntry, error) {
	var f entryFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Join(domain.ErrStoreDecodeFailed, err)
	}
	if f.WallpaperPath == nil || f.WallpaperMtime == nil || f.Colors == nil {
		return nil, zerr.Wrap(domain.ErrStoreDecodeFailed, "incomplete entry")
	}
	return &domain.ColorCacheEntry{
		WallpaperPath:  *f.WallpaperPath,
		WallpaperMtime: *f.WallpaperMtime,
		Colors:         f.Colors,
	}, nil
}

// Save encodes entry and overwrites the cache file, creating its directory on demand.
func (s *FileStore) Save(entry *domain.ColorCacheEntry) error {
	if s.path == "" {
		return domain.ErrCacheDirUnavailable
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", s.path)
	}

	//nolint:gosec // Path is cleaned and derived from the user cache dir
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", s.path)
	}
	return nil
}

// Delete removes the cache file. A missing file is not an error.
func (s *FileStore) Delete() error {
	if s.path == "" {
		return domain.ErrCacheDirUnavailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(errors.Join(domain.ErrStoreDeleteFailed, err), "path", s.path)
	}
	return nil
}
