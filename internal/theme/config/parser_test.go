package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	glosskiterrors "github.com/alexisbeaulieu97/glosskit/pkg/errors"
)

func writeThemeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValidTheme(t *testing.T) {
	path := writeThemeFile(t, `
name: ocean
palette:
  primary:
    base: {light: "#0ea5e9", dark: "#38bdf8"}
    on_base: {light: "#f0f9ff", dark: "#082f49"}
  danger:
    base: {light: "#e11d48", dark: "#fb7185"}
`)

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ocean", loaded.Name)
	assert.Equal(t, "#0ea5e9", loaded.Palette.Primary.Base.Light)
	assert.Equal(t, "#38bdf8", loaded.Palette.Primary.Base.Dark)
	assert.Equal(t, "#e11d48", loaded.Palette.Danger.Base.Light)

	// Unspecified members inherit the defaults.
	assert.Equal(t, "#2563eb", loaded.Palette.Primary.Muted.Light)
	assert.Equal(t, "#a855f7", loaded.Palette.Secondary.Base.Light)
}

func TestLoadAcceptsTranslucentHex(t *testing.T) {
	path := writeThemeFile(t, `
name: misty
palette:
  surface:
    muted: {light: "#3b82f633", dark: "#60a5fa33"}
`)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "#3b82f633", loaded.Palette.Surface.Muted.Light)
}

func TestLoadRejectsBadHex(t *testing.T) {
	path := writeThemeFile(t, `
name: broken
palette:
  primary:
    base: {light: "blue", dark: "#38bdf8"}
`)

	_, err := Load(path)
	require.Error(t, err)

	var validationErr *glosskiterrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Field, "Light")
	assert.Contains(t, err.Error(), "#RRGGBB")
}

func TestLoadRejectsMissingName(t *testing.T) {
	path := writeThemeFile(t, `
palette:
  primary:
    base: {light: "#0ea5e9", dark: "#38bdf8"}
`)

	_, err := Load(path)
	require.Error(t, err)

	var validationErr *glosskiterrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestLoadRejectsBadName(t *testing.T) {
	path := writeThemeFile(t, "name: \"Not A Slug\"\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lowercase")
}

func TestLoadReportsParseErrors(t *testing.T) {
	path := writeThemeFile(t, "name: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)

	var parseErr *glosskiterrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, path, parseErr.Path)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	var parseErr *glosskiterrors.ParseError
	require.True(t, errors.As(err, &parseErr))
}

func TestValidateNilFile(t *testing.T) {
	err := Validate(nil)
	require.Error(t, err)
}
