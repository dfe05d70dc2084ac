package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rtcl/newsdesk/internal/modules/cache/domain"
	"github.com/samber/oops"
)

const storeFile = "articles.json"

// FileStorage implements cache.Repository using a single JSON document on
// the file system, the server-side analog of a session-scoped key-value
// store.
type FileStorage struct {
	basePath string
	mu       sync.RWMutex
}

// NewFileStorage creates a new file-based cache repository
func NewFileStorage(basePath string) (Repository, error) {
	cachePath := filepath.Join(basePath, "cache")
	if err := os.MkdirAll(cachePath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create cache directory").Wrap(err)
	}

	return &FileStorage{basePath: cachePath}, nil
}

func (s *FileStorage) Load() (map[string]domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := filepath.Join(s.basePath, storeFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]domain.Entry{}, nil
		}
		return nil, oops.With("path", path, "context", "failed to read cache store").Wrap(err)
	}

	var entries map[string]domain.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, oops.With("path", path, "context", "failed to unmarshal cache store").Wrap(err)
	}
	if entries == nil {
		entries = map[string]domain.Entry{}
	}

	return entries, nil
}

func (s *FileStorage) Store(entries map[string]domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return oops.With("context", "failed to marshal cache store").Wrap(err)
	}

	path := filepath.Join(s.basePath, storeFile)
	return os.WriteFile(path, data, 0644)
}

func (s *FileStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.basePath, storeFile)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return oops.With("path", path, "context", "failed to clear cache store").Wrap(err)
	}
	return nil
}
