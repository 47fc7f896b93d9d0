package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trippr-app/trippr-admin/internal/config"
	"github.com/trippr-app/trippr-admin/internal/logger"
	"github.com/trippr-app/trippr-admin/models"
)

func newTestRepository(t *testing.T) (Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	repo, err := NewFileRepository(config.ConsoleSession{FilePath: path}, logger.Nop())
	require.NoError(t, err)
	return repo, path
}

func TestFileRepository_RequiresPath(t *testing.T) {
	_, err := NewFileRepository(config.ConsoleSession{}, logger.Nop())
	require.Error(t, err)
}

func TestFileRepository_PersistRestoreRoundTrip(t *testing.T) {
	repo, path := newTestRepository(t)

	adminSession := models.AdminSession{ID: "adm-1", Email: "admin@trippr.app", Name: "Root"}
	require.NoError(t, repo.Persist(adminSession))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := repo.Restore()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, adminSession, *got)
}

func TestFileRepository_RestoreMissingFileMeansNoSession(t *testing.T) {
	repo, _ := newTestRepository(t)

	got, err := repo.Restore()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileRepository_RestoreCorruptFileMeansNoSession(t *testing.T) {
	repo, path := newTestRepository(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	got, err := repo.Restore()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileRepository_RestoreEmptyIDMeansNoSession(t *testing.T) {
	repo, path := newTestRepository(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`{"email":"admin@trippr.app"}`), 0o600))

	got, err := repo.Restore()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileRepository_PersistReplacesPriorSession(t *testing.T) {
	repo, _ := newTestRepository(t)

	require.NoError(t, repo.Persist(models.AdminSession{ID: "adm-1", Email: "first@trippr.app"}))
	require.NoError(t, repo.Persist(models.AdminSession{ID: "adm-2", Email: "second@trippr.app"}))

	got, err := repo.Restore()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "adm-2", got.ID)
}

func TestFileRepository_Clear(t *testing.T) {
	repo, _ := newTestRepository(t)

	require.NoError(t, repo.Persist(models.AdminSession{ID: "adm-1"}))
	require.NoError(t, repo.Clear())

	got, err := repo.Restore()
	require.NoError(t, err)
	assert.Nil(t, got)

	// Clearing an already-empty slot is not an error.
	require.NoError(t, repo.Clear())
}
