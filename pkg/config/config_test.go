package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGetAllMergesEnvironmentOverDefault(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.yml", `
default:
  host: localhost
  port: 8080
production:
  host: example.com
`)

	merged, err := GetAll(Options{Dir: dir, Environment: "production"})
	require.NoError(t, err)
	assert.Equal(t, "example.com", merged["host"])
	assert.Equal(t, 8080, merged["port"])

	merged, err = GetAll(Options{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, "localhost", merged["host"])
}

func TestGetAllUsesActiveEnvironmentVariable(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.yml", `
default:
  name: base
staging:
  name: staged
`)
	t.Setenv(EnvironmentVariable, "staging")

	merged, err := GetAll(Options{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, "staged", merged["name"])
}

func TestGetSingleValue(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.yml", `
default:
  marker: .release-version
`)

	got, err := Get("marker", Options{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, ".release-version", got)

	got, err = Get("absent", Options{Dir: dir})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetAllMissingDefault(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.yml", `
production:
  host: example.com
`)

	_, err := GetAll(Options{Dir: dir})
	assert.ErrorIs(t, err, ErrMissingDefault)
}

func TestGetAllReplacesEnvVars(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.yml", `
default:
  token: $RELEASE_TOKEN
  missing: $DEFINITELY_UNSET_VARIABLE
  nested:
    inner: $RELEASE_TOKEN
  listed:
    - $RELEASE_TOKEN
    - plain
`)
	t.Setenv("RELEASE_TOKEN", "hunter2")

	merged, err := GetAll(Options{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, "hunter2", merged["token"])
	assert.Equal(t, "$DEFINITELY_UNSET_VARIABLE", merged["missing"])
	assert.Equal(t, "hunter2", merged["nested"].(map[string]any)["inner"])
	assert.Equal(t, []any{"hunter2", "plain"}, merged["listed"])
}

func TestFindFileSearchesParents(t *testing.T) {
	root := t.TempDir()
	child := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(child, 0o755))
	want := writeConfig(t, root, "config.yml", "default:\n  k: v\n")

	got, err := FindFile(child, "config.yml", true)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = FindFile(child, "config.yml", false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAllNotFound(t *testing.T) {
	_, err := GetAll(Options{Dir: t.TempDir(), File: "nope.yml", NoParent: true})
	assert.ErrorIs(t, err, ErrNotFound)
}
