// Package session persists the single opaque user identifier that
// correlates profile, quiz, and inference requests. Absence of the
// identifier means "new user".
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"hridayavayu/internal/logger"
)

type Store interface {
	Get() (string, bool)
	Set(id string) error
	Clear() error
}

type fileRecord struct {
	UserID string `json:"user_id"`
}

// FileStore keeps the identifier in a small JSON file so it survives
// process restarts on the same device.
type FileStore struct {
	path string
	mu   sync.Mutex
	log  logger.Logger
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		log:  logger.New("session").File("file_store"),
	}
}

func (s *FileStore) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Function("Get").Warn("failed to read session file", "path", s.path, "error", err)
		}
		return "", false
	}

	var record fileRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		s.log.Function("Get").Warn("failed to parse session file", "path", s.path, "error", err)
		return "", false
	}

	if record.UserID == "" {
		return "", false
	}
	return record.UserID, true
}

func (s *FileStore) Set(id string) error {
	log := s.log.Function("Set")

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return log.Err("failed to create session directory", err, "dir", dir)
		}
	}

	raw, err := json.Marshal(fileRecord{UserID: id})
	if err != nil {
		return log.Err("failed to encode session record", err)
	}

	if err := os.WriteFile(s.path, raw, 0600); err != nil {
		return log.Err("failed to write session file", err, "path", s.path)
	}

	return nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return s.log.Function("Clear").Err("failed to remove session file", err, "path", s.path)
	}
	return nil
}

// MemoryStore holds the identifier in memory only, for tests.
type MemoryStore struct {
	mu sync.Mutex
	id string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id, s.id != ""
}

func (s *MemoryStore) Set(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = id
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = ""
	return nil
}
