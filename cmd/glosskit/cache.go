package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/glosskit/internal/imagecache"
)

func newCacheCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the persistent image cache",
	}

	cmd.AddCommand(newCacheStatsCmd())
	cmd.AddCommand(newCacheClearCmd(root))

	return cmd
}

func newCacheStatsCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the on-disk cache tier",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, bytes, err := diskUsage(dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d images, %d bytes\n", dir, count, bytes)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Cache directory")
	_ = cmd.MarkFlagRequired("dir")

	return cmd
}

func newCacheClearCmd(root *rootFlags) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every image from the on-disk cache tier",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := root.newLogger()
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}

			cache, err := imagecache.New(
				imagecache.WithDiskStore(dir),
				imagecache.WithLogger(log),
			)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}

			cache.Clear()
			fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Cache directory")
	_ = cmd.MarkFlagRequired("dir")

	return cmd
}

// diskUsage counts stored images and their payload bytes, ignoring the
// sidecar metadata files.
func diskUsage(dir string) (int, int64, error) {
	var count int
	var bytes int64

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".img") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		count++
		bytes += info.Size()
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return count, bytes, nil
}
