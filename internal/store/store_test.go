package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exercise(t *testing.T, s Store) {
	t.Helper()

	_, ok, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("a", "1"))
	require.NoError(t, s.Set("b", "2"))
	require.NoError(t, s.Set("a", "3"))

	v, ok, err := s.Get("a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "3", v)

	require.NoError(t, s.Delete("a", "b", "never-set"))
	_, ok, _ = s.Get("a")
	assert.False(t, ok)
	_, ok, _ = s.Get("b")
	assert.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	exercise(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "save.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)
	exercise(t, s)

	require.NoError(t, s.Set("slot", `{"reps":5}`))
	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	v, ok, err := reopened.Get("slot")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"reps":5}`, v)
}

func TestFileStoreRecoversFromTornFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	torn := `{"gymSimulatorSave": "{\"reps\":5`
	require.NoError(t, os.WriteFile(path, []byte(torn), 0o644))

	s, err := NewFileStore(path)
	require.NoError(t, err)
	_, ok, err := s.Get("gymSimulatorSave")
	require.NoError(t, err)
	assert.False(t, ok)

	kept, err := os.ReadFile(path + ".corrupt")
	require.NoError(t, err)
	assert.Equal(t, torn, string(kept))

	require.NoError(t, s.Set("gymSimulatorSave", `{"reps":1}`))
	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	v, ok, err := reopened.Get("gymSimulatorSave")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"reps":1}`, v)
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gym.db")
	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	exercise(t, s)

	require.NoError(t, s.Set("slot", "kept"))
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()
	v, ok, err := reopened.Get("slot")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "kept", v)
}
