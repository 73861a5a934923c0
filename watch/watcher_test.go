package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, files ...string) <-chan string {
	t.Helper()

	changes := make(chan string, 16)
	w, err := New(files, 20*time.Millisecond, func(file string) {
		changes <- file
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return changes
}

func waitFor(t *testing.T, changes <-chan string) string {
	t.Helper()
	select {
	case file := <-changes:
		return file
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
		return ""
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "controllers.yaml")
	require.NoError(t, os.WriteFile(target, []byte("current-controller: foo\n"), 0o600))

	changes := startWatcher(t, target)

	require.NoError(t, os.WriteFile(target, []byte("current-controller: bar\n"), 0o600))
	assert.Equal(t, target, waitFor(t, changes))
}

func TestWatcherReportsFilesCreatedLater(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "juju", "models.yaml")

	changes := startWatcher(t, target)

	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
	assert.Equal(t, target, waitFor(t, changes))
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "models.yaml")
	changes := startWatcher(t, target)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o600))
	require.NoError(t, os.WriteFile(target, []byte("controllers: {}\n"), 0o600))

	assert.Equal(t, target, waitFor(t, changes))
	select {
	case file := <-changes:
		t.Fatalf("unexpected notification for %s", file)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcherFollowsDirectoriesCreatedLater(t *testing.T) {
	home := t.TempDir()
	dataDir := filepath.Join(home, ".local", "share", "juju")
	target := filepath.Join(dataDir, "controllers.yaml")

	changes := startWatcher(t, target)

	require.NoError(t, os.MkdirAll(dataDir, 0o755))
	require.NoError(t, os.WriteFile(target, []byte("current-controller: foo\n"), 0o600))
	assert.Equal(t, target, waitFor(t, changes))

	require.NoError(t, os.WriteFile(target, []byte("current-controller: bar\n"), 0o600))
	assert.Equal(t, target, waitFor(t, changes))
}

func TestWatcherFollowsSymlinkSwap(t *testing.T) {
	snapDir := filepath.Join(t.TempDir(), "snap", "juju")
	for _, rev := range []string{"1", "2"} {
		require.NoError(t, os.MkdirAll(filepath.Join(snapDir, rev, "meta"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(snapDir, rev, "meta", "snap.yaml"), []byte("version: "+rev+"\n"), 0o600))
	}
	current := filepath.Join(snapDir, "current")
	require.NoError(t, os.Symlink("1", current))
	target := filepath.Join(current, "meta", "snap.yaml")

	changes := startWatcher(t, target)

	// Refresh replaces the symlink atomically.
	tmp := filepath.Join(snapDir, "current.tmp")
	require.NoError(t, os.Symlink("2", tmp))
	require.NoError(t, os.Rename(tmp, current))
	assert.Equal(t, target, waitFor(t, changes))

	// The new revision is watched from now on.
	require.NoError(t, os.WriteFile(filepath.Join(snapDir, "2", "meta", "snap.yaml"), []byte("version: 2.1\n"), 0o600))
	assert.Equal(t, target, waitFor(t, changes))
}

func TestAffects(t *testing.T) {
	w := &Watcher{
		targets:  []string{"/snap/juju/current/meta/snap.yaml"},
		resolved: map[string]string{"/snap/juju/current/meta/snap.yaml": "/snap/juju/24/meta/snap.yaml"},
		links:    map[string]string{"/snap/juju/current": "/snap/juju/current/meta/snap.yaml"},
	}

	for _, name := range []string{
		"/snap/juju/current",
		"/snap/juju/24/meta/snap.yaml",
		"/snap/juju/24/meta",
		"/snap/juju/current/meta/snap.yaml",
	} {
		target, ok := w.affects(name)
		require.True(t, ok, name)
		assert.Equal(t, "/snap/juju/current/meta/snap.yaml", target)
	}

	for _, name := range []string{"/snap/juju/currently", "/snap/lxd", "/snap/juju/25/meta/snap.yaml"} {
		_, ok := w.affects(name)
		assert.False(t, ok, name)
	}
}

func TestSymlinksOn(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "7", "meta"), 0o755))
	require.NoError(t, os.Symlink("7", filepath.Join(dir, "current")))

	assert.Equal(t, []string{filepath.Join(dir, "current")}, symlinksOn(filepath.Join(dir, "current", "meta", "snap.yaml")))
	assert.Empty(t, symlinksOn(filepath.Join(dir, "7", "meta", "snap.yaml")))
	assert.Equal(t, filepath.Join(dir, "7", "meta", "snap.yaml"), resolve(filepath.Join(dir, "current", "meta", "snap.yaml")))
	assert.Equal(t, filepath.Join(dir, "7", "missing", "x.yaml"), resolve(filepath.Join(dir, "current", "missing", "x.yaml")))
}

func TestExistingAncestor(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, dir, existingAncestor(filepath.Join(dir, "a", "b", "c")))
	assert.Equal(t, dir, existingAncestor(dir))
}
