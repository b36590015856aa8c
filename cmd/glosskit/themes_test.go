package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/glosskit/internal/style"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestThemesListsBuiltinsAndPresets(t *testing.T) {
	out, err := runCommand(t, "themes")
	require.NoError(t, err)

	require.Contains(t, out, "default")
	require.Contains(t, out, "dark")
	for _, p := range style.Presets() {
		require.Contains(t, out, p.String())
	}
}

func TestThemesCheckValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`name: ocean
palette:
  primary:
    base:
      light: "#0ea5e9"
      dark: "#38bdf8"
`), 0o644))

	out, err := runCommand(t, "themes", "--check", path)
	require.NoError(t, err)
	require.Contains(t, out, `theme "ocean" is valid`)
	require.Contains(t, out, "#0ea5e9")
}

func TestThemesCheckRejectsBadHex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`name: broken
palette:
  primary:
    base:
      light: "blue"
      dark: "#38bdf8"
`), 0o644))

	_, err := runCommand(t, "themes", "--check", path)
	require.Error(t, err)
}
