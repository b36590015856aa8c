package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/glosskit/internal/logger"
)

type rootFlags struct {
	verbose bool
}

func (f *rootFlags) newLogger() (*logger.Logger, error) {
	level := "info"
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, Pretty: true})
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "glosskit",
		Short:         "glosskit renders themed terminal components and caches remote images",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand launches the gallery.
			if len(args) == 0 {
				return runGallery(cmd, flags, galleryFlags{})
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newCacheCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
