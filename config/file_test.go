package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fs/billy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, fsys *billy.MemoryFS, name, content string) {
	t.Helper()
	require.NoError(t, fsys.WriteFile(name, []byte(content), 0o644))
}

func TestLoadFile_YAML(t *testing.T) {
	fsys := billy.NewMemory()
	writeFile(t, fsys, "starflow.yaml", `
shell:
  SPAWN_DISPLAY_OUTPUT: false
  SPAWN_DEPTH_LIMIT: 3
other:
  key: value
`)

	values, err := LoadFile(context.Background(), fsys, "starflow.yaml")
	require.NoError(t, err)
	assert.Equal(t, "false", values[KeyDisplayOutput])
	assert.Equal(t, "3", values[KeyDepthLimit])
	assert.Equal(t, "value", values["other.key"])

	s, err := Load(values)
	require.NoError(t, err)
	assert.Equal(t, Settings{DisplayOutput: false, DepthLimit: 3}, s)
}

func TestLoadFile_YAMLFlatKeys(t *testing.T) {
	fsys := billy.NewMemory()
	writeFile(t, fsys, "flat.yml", `
shell.SPAWN_DISPLAY_OUTPUT: "yes"
shell.SPAWN_DEPTH_LIMIT: 2
`)

	s, err := loadSettings(t, fsys, "flat.yml")
	require.NoError(t, err)
	assert.Equal(t, Settings{DisplayOutput: true, DepthLimit: 2}, s)
}

func TestLoadFile_JSON(t *testing.T) {
	fsys := billy.NewMemory()
	writeFile(t, fsys, "starflow.json", `{"shell": {"SPAWN_DISPLAY_OUTPUT": "on", "SPAWN_DEPTH_LIMIT": 0}}`)

	s, err := loadSettings(t, fsys, "starflow.json")
	require.NoError(t, err)
	assert.Equal(t, Settings{DisplayOutput: true, DepthLimit: 0}, s)
}

func TestLoadFile_CUE(t *testing.T) {
	fsys := billy.NewMemory()
	writeFile(t, fsys, "starflow.cue", `
shell: {
	SPAWN_DISPLAY_OUTPUT: "1"
	SPAWN_DEPTH_LIMIT:    2 + 2
}
`)

	values, err := LoadFile(context.Background(), fsys, "starflow.cue")
	require.NoError(t, err)
	assert.Equal(t, "1", values[KeyDisplayOutput])
	assert.Equal(t, "4", values[KeyDepthLimit])

	s, err := Load(values)
	require.NoError(t, err)
	assert.Equal(t, Settings{DisplayOutput: true, DepthLimit: 4}, s)
}

func TestLoadFile_CUEBool(t *testing.T) {
	fsys := billy.NewMemory()
	writeFile(t, fsys, "starflow.cue", `shell: SPAWN_DISPLAY_OUTPUT: false`)

	values, err := LoadFile(context.Background(), fsys, "starflow.cue")
	require.NoError(t, err)
	assert.Equal(t, "false", values[KeyDisplayOutput])
}

func TestLoadFile_CUEBuildError(t *testing.T) {
	fsys := billy.NewMemory()
	writeFile(t, fsys, "broken.cue", `shell: {`)

	_, err := LoadFile(context.Background(), fsys, "broken.cue")
	require.Error(t, err)
	assert.Equal(t, errors.CodeCUEBuildFailed, errors.GetCode(err))
}

func TestLoadFile_CUENotConcrete(t *testing.T) {
	fsys := billy.NewMemory()
	writeFile(t, fsys, "open.cue", `shell: SPAWN_DEPTH_LIMIT: int`)

	_, err := LoadFile(context.Background(), fsys, "open.cue")
	require.Error(t, err)
	assert.Equal(t, errors.CodeCUEValidationFailed, errors.GetCode(err))
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	fsys := billy.NewMemory()
	writeFile(t, fsys, "bad.yaml", "shell: [unclosed")

	_, err := LoadFile(context.Background(), fsys, "bad.yaml")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(context.Background(), billy.NewMemory(), "missing.yaml")
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	fsys := billy.NewMemory()
	writeFile(t, fsys, "starflow.toml", "x = 1")

	_, err := LoadFile(context.Background(), fsys, "starflow.toml")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))

	var platformErr errors.PlatformError
	require.True(t, errors.As(err, &platformErr))
	assert.Equal(t, "starflow.toml", platformErr.Context()["file_path"])
}

func TestLoadFile_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadFile(ctx, billy.NewMemory(), "starflow.yaml")
	require.Error(t, err)
}

func TestLoadFile_LocalFilesystem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "starflow.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shell:\n  SPAWN_DEPTH_LIMIT: 6\n"), 0o644))

	values, err := LoadFile(context.Background(), nil, path)
	require.NoError(t, err)
	assert.Equal(t, "6", values[KeyDepthLimit])
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	fsys := billy.NewMemory()
	writeFile(t, fsys, "starflow.yaml", "shell:\n  SPAWN_DEPTH_LIMIT: 3\n  SPAWN_DISPLAY_OUTPUT: 'no'\n")
	t.Setenv("starflow_shell__SPAWN_DEPTH_LIMIT", "9")

	file, err := LoadFile(context.Background(), fsys, "starflow.yaml")
	require.NoError(t, err)

	s, err := Load(Env(), file)
	require.NoError(t, err)
	assert.Equal(t, Settings{DisplayOutput: false, DepthLimit: 9}, s)
}

func loadSettings(t *testing.T, fsys *billy.MemoryFS, name string) (Settings, error) {
	t.Helper()
	values, err := LoadFile(context.Background(), fsys, name)
	if err != nil {
		return Settings{}, err
	}
	return Load(values)
}
