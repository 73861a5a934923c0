package juju

import (
	"path/filepath"
	"testing"

	"github.com/grovetools/juju-prompt/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inventoryYAML = `current-controller: prod
controllers:
  prod:
    uuid: 1234
    api-endpoints: ["10.0.0.1:17070", "10.0.0.2:17070"]
  lxd:
    uuid: 5678
    api-endpoints: []
  broken:
    api-endpoints: 10.0.0.3:17070
`

func TestControllers(t *testing.T) {
	home := testutil.WriteJujuData(t, testutil.JujuFiles{Controllers: inventoryYAML})
	base := filepath.Join(home, DataSubdir)

	assert.Equal(t, []string{"prod", "lxd", "broken"}, Controllers(base))

	empty := testutil.WriteJujuData(t, testutil.JujuFiles{})
	assert.Nil(t, Controllers(filepath.Join(empty, DataSubdir)))

	malformed := testutil.WriteJujuData(t, testutil.JujuFiles{Controllers: "controllers: [\n"})
	assert.Nil(t, Controllers(filepath.Join(malformed, DataSubdir)))
}

func TestAPIEndpoint(t *testing.T) {
	home := testutil.WriteJujuData(t, testutil.JujuFiles{Controllers: inventoryYAML})
	base := filepath.Join(home, DataSubdir)

	endpoint, ok := APIEndpoint(base, "prod")
	require.True(t, ok)
	assert.Equal(t, "10.0.0.1:17070", endpoint)

	for _, controller := range []string{"lxd", "broken", "missing"} {
		_, ok := APIEndpoint(base, controller)
		assert.False(t, ok, controller)
	}
}
