package osm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModelFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.osm")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func versionedModel(version string) string {
	return `OS:Version,
  {11111111-1111-1111-1111-111111111111}, !- Handle
  ` + version + `;                        !- Version Identifier

OS:Building,
  {22222222-2222-2222-2222-222222222222}, !- Handle
  Main Office,                            !- Name
  Commercial,                             !- Building Sector Type
  0;                                      !- North Axis

OS:Material:AirWall,
  {44444444-4444-4444-4444-444444444444}, !- Handle
  Air Wall;                               !- Name
`
}

func TestLoad_CurrentVersion(t *testing.T) {
	path := writeModelFile(t, versionedModel(CurrentVersion))

	model, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, model.Version())

	building, ok := model.Building()
	require.True(t, ok)
	assert.Equal(t, "Main Office", building.Name())
}

func TestLoad_RejectsOlderVersion(t *testing.T) {
	path := writeModelFile(t, versionedModel("3.7.0"))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version translator")
}

func TestLoad_MissingVersionObject(t *testing.T) {
	path := writeModelFile(t, "OS:Space,\n  Space 1;\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no OS:Version object")
}

func TestVersionTranslator_UpgradesOldModel(t *testing.T) {
	path := writeModelFile(t, versionedModel("3.7.0"))

	model, err := NewVersionTranslator().LoadModel(path)
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, model.Version())

	// 3.7.0 -> 3.8.0 renamed air walls
	var types []string
	for _, o := range model.Objects() {
		types = append(types, o.IddObjectType())
	}
	assert.Contains(t, types, "OS:Construction:AirBoundary")
	assert.NotContains(t, types, "OS:Material:AirWall")

	// 3.8.0 -> 3.9.0 widened OS:Building
	building, ok := model.Building()
	require.True(t, ok)
	assert.Equal(t, "Main Office", building.Name())
	assert.Equal(t, buildingNumFields, building.ToModelObject().NumFields())
}

func TestVersionTranslator_CurrentVersionPassesThrough(t *testing.T) {
	path := writeModelFile(t, versionedModel(CurrentVersion))

	translated, err := NewVersionTranslator().LoadModel(path)
	require.NoError(t, err)

	direct, err := Load(path)
	require.NoError(t, err)

	// Both load paths expose the same building
	tb, ok := translated.Building()
	require.True(t, ok)
	db, ok := direct.Building()
	require.True(t, ok)
	assert.Equal(t, db.Name(), tb.Name())
}

func TestVersionTranslator_RejectsNewerVersion(t *testing.T) {
	path := writeModelFile(t, versionedModel("4.1.0"))

	_, err := NewVersionTranslator().LoadModel(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer than supported")
}

func TestVersionTranslator_NoTranslationPath(t *testing.T) {
	path := writeModelFile(t, versionedModel("2.0.0"))

	_, err := NewVersionTranslator().LoadModel(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no translation path")
}

func TestCompareVersions(t *testing.T) {
	assert.Equal(t, -1, compareVersions("3.7.0", "3.9.0"))
	assert.Equal(t, 0, compareVersions("3.9.0", "3.9.0"))
	assert.Equal(t, 1, compareVersions("3.10.0", "3.9.0"))
	assert.Equal(t, -1, compareVersions("3.9", "3.9.1"))
}
