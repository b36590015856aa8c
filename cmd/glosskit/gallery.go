package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/glosskit/internal/imagecache"
	"github.com/alexisbeaulieu97/glosskit/internal/theme"
	themeconfig "github.com/alexisbeaulieu97/glosskit/internal/theme/config"
	"github.com/alexisbeaulieu97/glosskit/internal/tui"
)

type galleryFlags struct {
	themePath string
	imageURL  string
	cacheDir  string
	budget    int64
}

func newGalleryCmd(root *rootFlags) *cobra.Command {
	flags := galleryFlags{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Launch the interactive component gallery",
		Long:  `Launch the interactive TUI gallery to preview presets, themes, effects, and the image cache under a live style context.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, root, flags)
		},
	}

	cmd.Flags().StringVar(&flags.themePath, "theme", "", "Path to a theme YAML file to preview")
	cmd.Flags().StringVar(&flags.imageURL, "image", "", "Image URL to exercise the cache with")
	cmd.Flags().StringVar(&flags.cacheDir, "cache-dir", "", "Directory for the persistent image cache tier")
	cmd.Flags().Int64Var(&flags.budget, "budget", 0, "In-memory cache budget in bytes (0 uses the default)")

	return cmd
}

func runGallery(cmd *cobra.Command, root *rootFlags, flags galleryFlags) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the gallery needs an interactive terminal; use 'glosskit themes' for plain output")
	}

	log, err := root.newLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	themes := []theme.Theme{theme.Default(), theme.Dark()}
	if flags.themePath != "" {
		loaded, err := themeconfig.Load(flags.themePath)
		if err != nil {
			return err
		}
		themes = append([]theme.Theme{loaded}, themes...)
	}

	opts := []imagecache.Option{imagecache.WithLogger(log)}
	if flags.budget > 0 {
		opts = append(opts, imagecache.WithBudget(flags.budget))
	}
	if flags.cacheDir != "" {
		opts = append(opts, imagecache.WithDiskStore(flags.cacheDir))
	}

	cache, err := imagecache.New(opts...)
	if err != nil {
		return fmt.Errorf("create image cache: %w", err)
	}

	model := tui.NewModel(tui.Options{
		Themes:   themes,
		Cache:    cache,
		ImageURL: flags.imageURL,
		Logger:   log,
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
	_, err = program.Run()
	return err
}
