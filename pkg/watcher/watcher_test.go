package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gofloor.toml")
	other := filepath.Join(dir, "other.toml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	fw, err := NewFileWatcher(50*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	require.NoError(t, fw.Watch(path))
	fw.Start()

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("b"), 0o644))
	}

	want, err := filepath.Abs(path)
	require.NoError(t, err)

	select {
	case got := <-fw.Changes():
		assert.Equal(t, want, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change delivered")
	}
}

func TestFileWatcherClose(t *testing.T) {
	fw, err := NewFileWatcher(10*time.Millisecond, nil)
	require.NoError(t, err)
	fw.Start()

	require.NoError(t, fw.Close())
	require.NoError(t, fw.Close())

	_, ok := <-fw.Changes()
	assert.False(t, ok)
}

func TestWatchMissingDirectory(t *testing.T) {
	fw, err := NewFileWatcher(10*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	err = fw.Watch(filepath.Join(t.TempDir(), "missing", "gofloor.toml"))
	assert.Error(t, err)
}
