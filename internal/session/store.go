// Package session persists the single local user session. The store holds at
// most one serialized user record and performs no signature or expiry checks;
// anything it cannot parse is treated as no session at all.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"greenchain/internal/logger"
	"greenchain/internal/model"
)

// DefaultFileName is the session file created under the user config dir
// when no explicit path is given.
const DefaultFileName = "greenchain_session.json"

// Store reads and writes the persisted session slot.
type Store interface {
	// Load returns the saved user, or nil when no valid session exists.
	// A corrupt entry is cleared and reported as absent, never as an error.
	Load() (*model.User, error)
	Save(user *model.User) error
	// Clear removes the session; clearing an empty store is a no-op.
	Clear() error
}

// FileStore keeps the session as a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at path. The parent directory is created
// on the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath resolves the session file location under the OS config dir,
// falling back to the working directory when none is available.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(dir, DefaultFileName)
}

// Load reads the persisted session. Unreadable or malformed content is
// repaired by clearing the store before reporting the session as absent.
func (s *FileStore) Load() (*model.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		logger.Warn("discarding corrupt session", "path", s.path, "error", err)
		return nil, s.Clear()
	}
	if !validRecord(&user) {
		logger.Warn("discarding malformed session record", "path", s.path)
		return nil, s.Clear()
	}
	return &user, nil
}

// Save serializes the user record, overwriting any prior session.
func (s *FileStore) Save(user *model.User) error {
	data, err := json.Marshal(user.Sanitized())
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create session dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Clear removes the persisted session unconditionally.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to clear session file: %w", err)
	}
	return nil
}

// validRecord rejects tampered session payloads: a session must carry the
// identity fields a login would have issued.
func validRecord(u *model.User) bool {
	return u.ID != "" && u.Email != "" && model.ValidRole(u.Role)
}
