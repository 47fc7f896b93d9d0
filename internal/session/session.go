// Package session owns the durable admin-session slot. Exactly one session
// is held at a time; it survives restarts and is removed only on logout.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/trippr-app/trippr-admin/internal/config"
	"github.com/trippr-app/trippr-admin/internal/logger"
	"github.com/trippr-app/trippr-admin/models"
)

// Repository is the only contract the authentication flow depends on for
// session persistence.
type Repository interface {
	// Restore returns the persisted session, or nil when none exists.
	// Malformed persisted data is treated as absent, never as an error.
	Restore() (*models.AdminSession, error)

	// Persist durably stores the session, replacing any prior value.
	Persist(session models.AdminSession) error

	// Clear removes the persisted session. Clearing an empty slot is not
	// an error.
	Clear() error
}

type fileRepository struct {
	path   string
	logger *logger.Logger

	mu sync.Mutex
}

// NewFileRepository builds a Repository over a single JSON file.
func NewFileRepository(cfg config.ConsoleSession, log *logger.Logger) (Repository, error) {
	if cfg.FilePath == "" {
		return nil, fmt.Errorf("session file path is required")
	}
	return &fileRepository{path: cfg.FilePath, logger: log}, nil
}

func (r *fileRepository) Restore() (*models.AdminSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var session models.AdminSession
	if err = json.Unmarshal(data, &session); err != nil {
		// Corrupt state is treated as absent.
		r.logger.Warn().Err(err).Str("path", r.path).Msg("discarding malformed session file")
		return nil, nil
	}
	if session.ID == "" {
		return nil, nil
	}

	return &session, nil
}

func (r *fileRepository) Persist(session models.AdminSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dir := filepath.Dir(r.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = os.WriteFile(r.path, payload, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

func (r *fileRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
