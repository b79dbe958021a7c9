package yamldef

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/unitgridgo/internal/config"
)

func writeDefs(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "units.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("units and relations", func(t *testing.T) {
		path := writeDefs(t, `
units:
  - id: meV
    name: milli-electron-volt
  - id: eV
    name: electron-volt
relations:
  - {from: meV, factor: 0.001, to: eV}
  - {from: eV, factor: 2.0, to: meV, invert: true}
`)
		model, err := NewLoader().Load(ctx, path)
		require.NoError(t, err)

		require.Len(t, model.Units, 2)
		assert.Equal(t, "meV", model.Units[0].ID)
		assert.Equal(t, "milli-electron-volt", model.Units[0].LongName)

		require.Len(t, model.Relations, 2)
		assert.Equal(t, 0.001, model.Relations[0].Factor)
		assert.False(t, model.Relations[0].Invert)
		assert.True(t, model.Relations[1].Invert)
	})

	t.Run("unit without id", func(t *testing.T) {
		path := writeDefs(t, "units:\n  - name: nameless\n")
		_, err := NewLoader().Load(ctx, path)
		var defErr *config.DefinitionError
		require.ErrorAs(t, err, &defErr)
		assert.ErrorContains(t, err, "missing an id")
	})

	t.Run("relation without endpoints", func(t *testing.T) {
		path := writeDefs(t, "relations:\n  - {factor: 2.0}\n")
		_, err := NewLoader().Load(ctx, path)
		var defErr *config.DefinitionError
		require.ErrorAs(t, err, &defErr)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeDefs(t, "units: [\n")
		_, err := NewLoader().Load(ctx, path)
		assert.ErrorContains(t, err, "failed to decode YAML")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLoader().Load(ctx, filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorContains(t, err, "cannot open definition file")
	})
}
