// Package clientcache is the device-local companion to the server cache: a
// persistent TTL cache the UI process keeps next to the API data it renders,
// with its own invalidation registry and a cross-process watcher that
// propagates one process's invalidation to the others sharing the same
// cache directory.
package clientcache

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Store is the local persistence boundary. Writes are best effort: a full
// disk or permission problem degrades to cache misses, never to failures
// surfaced to the UI.
type Store interface {
	Read(key string) ([]byte, bool)
	Write(key string, data []byte)
	Remove(key string)
	Keys() []string
}

// FileStore keeps one JSON file per key inside a directory. Key names are
// escaped so every valid cache key maps to exactly one file name.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Dir() string {
	return s.dir
}

// Path returns the file backing a key. The watcher uses it to map filesystem
// events back to keys.
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.dir, url.QueryEscape(key)+".json")
}

func (s *FileStore) Read(key string) ([]byte, bool) {
	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

func (s *FileStore) Write(key string, data []byte) {
	if err := os.WriteFile(s.Path(key), data, 0o644); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("[CLIENTCACHE] write failed")
	}
}

func (s *FileStore) Remove(key string) {
	if err := os.Remove(s.Path(key)); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).WithField("key", key).Warn("[CLIENTCACHE] remove failed")
	}
}

func (s *FileStore) Keys() []string {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil
	}

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		key, err := url.QueryUnescape(strings.TrimSuffix(name, ".json"))
		if err != nil {
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

// MemoryStore is the in-process Store used by tests and short-lived tools.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

func (s *MemoryStore) Read(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.entries[key]
	return data, ok
}

func (s *MemoryStore) Write(key string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = data
}

func (s *MemoryStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

func (s *MemoryStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys
}
