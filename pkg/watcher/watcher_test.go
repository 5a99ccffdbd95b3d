package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWatcher(t *testing.T) *FileWatcher {
	t.Helper()
	fw, err := NewFileWatcher(WithDebounce(20 * time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { fw.Close() })
	fw.Start()
	return fw
}

func TestWatchReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layers: []\n"), 0o644))

	fw := newWatcher(t)
	changed := make(chan string, 4)
	require.NoError(t, fw.Watch(path, func(p string) { changed <- p }))

	require.NoError(t, os.WriteFile(path, []byte("layers: []\n# edited\n"), 0o644))

	select {
	case got := <-changed:
		want, _ := filepath.Abs(path)
		assert.Equal(t, want, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatchIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	fw := newWatcher(t)
	var calls atomic.Int32
	require.NoError(t, fw.Watch(path, func(string) { calls.Add(1) }))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestUnwatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	fw := newWatcher(t)
	var calls atomic.Int32
	require.NoError(t, fw.Watch(path, func(string) { calls.Add(1) }))
	require.NoError(t, fw.Unwatch(path))
	require.NoError(t, fw.Unwatch(path))

	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestCloseTwice(t *testing.T) {
	fw, err := NewFileWatcher()
	require.NoError(t, err)
	assert.NoError(t, fw.Close())
	assert.NoError(t, fw.Close())
}
