package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStorage_Preferences(t *testing.T) {
	s := openTestStorage(t)

	t.Run("defaults when nothing is stored", func(t *testing.T) {
		prefs, err := s.LoadPreferences()
		require.NoError(t, err)
		assert.Equal(t, "classic", prefs.Theme)
		assert.True(t, prefs.SoundEnabled)
	})

	t.Run("round trip", func(t *testing.T) {
		prefs := DefaultPreferences()
		prefs.Theme = "forest"
		prefs.SoundEnabled = false
		require.NoError(t, s.SavePreferences(prefs))

		loaded, err := s.LoadPreferences()
		require.NoError(t, err)
		assert.Equal(t, "forest", loaded.Theme)
		assert.False(t, loaded.SoundEnabled)
		assert.False(t, loaded.LastPlayed.IsZero())
	})
}

func TestStorage_Stats(t *testing.T) {
	s := openTestStorage(t)

	stats, err := s.LoadStats()
	require.NoError(t, err)
	assert.Zero(t, stats.MovesCommitted)

	require.NoError(t, s.RecordCommit())
	require.NoError(t, s.RecordCommit())
	require.NoError(t, s.RecordReject())
	require.NoError(t, s.RecordCancel())

	stats, err = s.LoadStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.MovesCommitted)
	assert.Equal(t, 1, stats.DropsRejected)
	assert.Equal(t, 1, stats.DragsCancelled)
}

func TestGetDatabaseDir(t *testing.T) {
	t.Run("override is respected", func(t *testing.T) {
		base := t.TempDir()
		dir, err := GetDatabaseDir(base)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(base, "db"), dir)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}
