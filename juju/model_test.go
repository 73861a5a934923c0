package juju

import (
	"path/filepath"
	"testing"

	"github.com/grovetools/juju-prompt/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	controllersYAML = "current-controller: foo\ncontrollers:\n  foo:\n    uuid: 1234\n"
	modelsYAML      = "controllers:\n  foo:\n    current-model: bar\n    models:\n      bar:\n        uuid: 5678\n"
)

func TestBaseDir(t *testing.T) {
	dir, ok := BaseDir(testutil.Env(map[string]string{"HOME": "/home/ubuntu"}))
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/home/ubuntu", ".local", "share", "juju"), dir)

	_, ok = BaseDir(testutil.Env(nil))
	assert.False(t, ok)

	_, ok = BaseDir(testutil.Env(map[string]string{"HOME": ""}))
	assert.False(t, ok)
}

func TestActiveModelSuffix(t *testing.T) {
	assert.Equal(t, " (foo:bar)", ActiveModel{Controller: "foo", Model: "bar"}.Suffix())
}

func TestResolveActiveModel(t *testing.T) {
	tests := []struct {
		name  string
		files testutil.JujuFiles
		want  ActiveModel
		ok    bool
	}{
		{
			name:  "both files valid",
			files: testutil.JujuFiles{Controllers: controllersYAML, Models: modelsYAML},
			want:  ActiveModel{Controller: "foo", Model: "bar"},
			ok:    true,
		},
		{
			name:  "no files",
			files: testutil.JujuFiles{},
		},
		{
			name:  "models missing",
			files: testutil.JujuFiles{Controllers: controllersYAML},
		},
		{
			name:  "controllers missing",
			files: testutil.JujuFiles{Models: modelsYAML},
		},
		{
			name:  "no current controller",
			files: testutil.JujuFiles{Controllers: "controllers: {}\n", Models: modelsYAML},
		},
		{
			name:  "current controller not a string",
			files: testutil.JujuFiles{Controllers: "current-controller: [foo]\n", Models: modelsYAML},
		},
		{
			name:  "current controller unknown to models",
			files: testutil.JujuFiles{Controllers: "current-controller: other\n", Models: modelsYAML},
		},
		{
			name:  "controller without current model",
			files: testutil.JujuFiles{Controllers: controllersYAML, Models: "controllers:\n  foo:\n    models: {}\n"},
		},
		{
			name:  "current model wrong type",
			files: testutil.JujuFiles{Controllers: controllersYAML, Models: "controllers:\n  foo:\n    current-model: 42\n"},
		},
		{
			name:  "quoted numeric controller name",
			files: testutil.JujuFiles{Controllers: "current-controller: \"123\"\n", Models: "controllers:\n  \"123\":\n    current-model: bar\n"},
			want:  ActiveModel{Controller: "123", Model: "bar"},
			ok:    true,
		},
		{
			name:  "integer controller key does not match its string name",
			files: testutil.JujuFiles{Controllers: "current-controller: \"123\"\n", Models: "controllers:\n  123:\n    current-model: bar\n"},
		},
		{
			name:  "malformed controllers",
			files: testutil.JujuFiles{Controllers: "current-controller: [foo\n", Models: modelsYAML},
		},
		{
			name:  "malformed models",
			files: testutil.JujuFiles{Controllers: controllersYAML, Models: "controllers: [\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := testutil.WriteJujuData(t, tt.files)
			got, ok := ResolveActiveModel(filepath.Join(home, DataSubdir))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChainSteps(t *testing.T) {
	home := testutil.WriteJujuData(t, testutil.JujuFiles{Controllers: controllersYAML, Models: modelsYAML})
	base := filepath.Join(home, DataSubdir)

	t.Run("currentController fills the controller", func(t *testing.T) {
		c, ok := currentController(chain{baseDir: base})
		require.True(t, ok)
		assert.Equal(t, "foo", c.controller)
		assert.Empty(t, c.model)
	})

	t.Run("currentModel uses the controller from the previous step", func(t *testing.T) {
		c, ok := currentModel(chain{baseDir: base, controller: "foo"})
		require.True(t, ok)
		assert.Equal(t, "bar", c.model)

		_, ok = currentModel(chain{baseDir: base, controller: "nope"})
		assert.False(t, ok)
	})

	t.Run("runChain stops at the first failing step", func(t *testing.T) {
		calls := 0
		count := func(c chain) (chain, bool) {
			calls++
			return c, true
		}
		fail := func(chain) (chain, bool) { return chain{}, false }

		c, ok := runChain(chain{baseDir: base, controller: "partial"}, count, fail, count)
		assert.False(t, ok)
		assert.Equal(t, chain{}, c, "partial results are discarded")
		assert.Equal(t, 1, calls)
	})
}
