package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config-dir", dir}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func setupPress(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("URNPUBID_CONFIG", filepath.Join(dir, "missing.yaml"))
	t.Setenv("URNPUBID_STORE_FILE", "")
	t.Setenv("LOG_LEVEL", "ERROR")

	_, err := run(t, dir, "press", "add", "--id", "1", "--path", "ABC", "--name", "")
	require.NoError(t, err)
	_, err = run(t, dir, "settings", "set", "--press", "1", "--prefix", "urn:nbn:de:101-")
	require.NoError(t, err)
	return dir
}

func TestGenerate_RequiresEnabledPress(t *testing.T) {
	dir := setupPress(t)

	_, err := run(t, dir, "disable", "--press", "1")
	require.NoError(t, err)

	_, err = run(t, dir, "generate", "monograph", "--press", "1", "--id", "42", "--preview=false", "--output", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disabled")
}

func TestGenerate_DefaultStrategy(t *testing.T) {
	dir := setupPress(t)

	_, err := run(t, dir, "enable", "--press", "1")
	require.NoError(t, err)

	out, err := run(t, dir, "generate", "format", "--press", "1", "--id", "7", "--monograph", "42", "--preview=false", "--output", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "urn:nbn:de:101-abc.42.7")

	data, err := os.ReadFile(filepath.Join(dir, "objects.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "publication_format/7")

	// A settings change does not affect the stored URN.
	_, err = run(t, dir, "settings", "set", "--press", "1", "--prefix", "urn:nbn:de:999-")
	require.NoError(t, err)
	out, err = run(t, dir, "generate", "format", "--press", "1", "--id", "7", "--monograph", "42", "--preview=false", "--output", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "urn:nbn:de:101-abc.42.7")
}

func TestGenerate_PreviewDoesNotStore(t *testing.T) {
	dir := setupPress(t)

	_, err := run(t, dir, "enable", "--press", "1")
	require.NoError(t, err)

	out, err := run(t, dir, "generate", "monograph", "--press", "1", "--id", "42", "--preview", "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"urn:nbn:de:101-abc.42"`)

	_, err = os.Stat(filepath.Join(dir, "objects.yaml"))
	assert.True(t, os.IsNotExist(err), "preview must not create the object store")
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("URNPUBID_CONFIG", filepath.Join(dir, "missing.yaml"))

	_, err := run(t, dir, "validate", "--quiet=false", "urn:nbn:de:101-abc.42")
	assert.NoError(t, err)

	out, err := run(t, dir, "validate", "--quiet=false", "urn:nbn:de:101-abc.42", "nbn:de:101", "urn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3")
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestResolveCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("URNPUBID_CONFIG", filepath.Join(dir, "missing.yaml"))

	out, err := run(t, dir, "resolve", "urn:nbn:de:101-abc.42")
	require.NoError(t, err)
	assert.Equal(t, "https://nbn-resolving.org/urn%3Anbn%3Ade%3A101-abc.42\n", out)
}

func TestPressList(t *testing.T) {
	dir := setupPress(t)

	out, err := run(t, dir, "press", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ABC")
	assert.Contains(t, out, "urn:nbn:de:101-")
}
