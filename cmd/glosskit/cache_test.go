package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCacheStatsCountsImages(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "aa.img"), make([]byte, 100), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "aa.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bb.img"), make([]byte, 50), 0o644))

	out, err := runCommand(t, "cache", "stats", "--dir", dir)
	require.NoError(t, err)
	require.Contains(t, out, "2 images, 150 bytes")
}

func TestCacheClearEmptiesDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "aa.img"), make([]byte, 10), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "aa.json"), []byte("{}"), 0o644))

	_, err := runCommand(t, "cache", "clear", "--dir", dir)
	require.NoError(t, err)

	count, bytes, err := diskUsage(dir)
	require.NoError(t, err)
	require.Zero(t, count)
	require.Zero(t, bytes)
}

func TestCacheStatsRequiresDir(t *testing.T) {
	_, err := runCommand(t, "cache", "stats")
	require.Error(t, err)
}
