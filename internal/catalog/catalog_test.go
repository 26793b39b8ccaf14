package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Contents(t *testing.T) {
	cat := Default()

	require.Len(t, cat.Patterns, 4)
	require.Len(t, cat.Sounds, 5)
	assert.Equal(t, "basic", cat.Patterns[0].ID)
	assert.Equal(t, "silence", cat.Sounds[4].ID)

	box := cat.Patterns[1]
	assert.Equal(t, "box", box.ID)
	assert.Equal(t, 4, box.Inhale)
	assert.Equal(t, 4, box.Hold)
	assert.Equal(t, 4, box.Exhale)
	assert.Equal(t, 4, box.HoldAfter)
}

func TestLoad_EmptyPathYieldsDefaults(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cat)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cat, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cat)
}

func TestLoad_UserFileOverridesSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
patterns:
  - id: coherent
    name: Coherent
    description: 5-5 resonance breathing
    inhale: 5
    exhale: 5
    icon: "🌀"
`), 0644))

	cat, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cat.Patterns, 1)
	assert.Equal(t, "coherent", cat.Patterns[0].ID)
	assert.Equal(t, 5, cat.Patterns[0].Inhale)
	// Sounds were not overridden and keep the built-ins.
	assert.Equal(t, Default().Sounds, cat.Sounds)
}

func TestLoad_MalformedFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("patterns: {not: [valid"), 0644))

	cat, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), cat, "caller can keep using the returned defaults")
}
