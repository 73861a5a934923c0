// Package testutil builds on-disk fixtures for tests: snap metadata, Juju
// client state under a fake HOME, and prompt configuration files.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile writes content to dir/name, creating parent directories.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "failed to create directory for %s", name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "failed to write %s", name)
	return path
}

// WriteSnapMetadata writes a snap.yaml with the given content into a fresh
// temporary directory and returns its path.
func WriteSnapMetadata(t *testing.T, content string) string {
	t.Helper()
	return WriteFile(t, t.TempDir(), filepath.Join("meta", "snap.yaml"), content)
}

// JujuFiles describes the client state files to create. An empty field
// leaves that file out.
type JujuFiles struct {
	Controllers string
	Models      string
}

// WriteJujuData creates a fake HOME containing .local/share/juju with the
// given files. It returns the HOME directory.
func WriteJujuData(t *testing.T, files JujuFiles) string {
	t.Helper()

	home := t.TempDir()
	dataDir := filepath.Join(home, ".local", "share", "juju")
	require.NoError(t, os.MkdirAll(dataDir, 0o755), "failed to create juju data dir")

	if files.Controllers != "" {
		WriteFile(t, dataDir, "controllers.yaml", files.Controllers)
	}
	if files.Models != "" {
		WriteFile(t, dataDir, "models.yaml", files.Models)
	}
	return home
}

// Env returns a LookupEnv function backed by vars.
func Env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}
