package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/glosskit/internal/style"
	"github.com/alexisbeaulieu97/glosskit/internal/theme"
	themeconfig "github.com/alexisbeaulieu97/glosskit/internal/theme/config"
)

func newThemesCmd() *cobra.Command {
	var checkPath string

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List built-in themes and style presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			if checkPath != "" {
				return checkTheme(cmd, checkPath)
			}

			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Themes:")
			for _, t := range []theme.Theme{theme.Default(), theme.Dark()} {
				fmt.Fprintf(out, "  %-10s primary=%s/%s surface=%s/%s\n",
					t.Name,
					t.Palette.Primary.Base.Light, t.Palette.Primary.Base.Dark,
					t.Palette.Surface.Base.Light, t.Palette.Surface.Base.Dark,
				)
			}

			fmt.Fprintln(out, "Presets:")
			ctx := style.DefaultContext()
			for _, p := range style.Presets() {
				resolved := style.Resolve(style.Request{Preset: p}, ctx)
				fmt.Fprintf(out, "  %-8s bg=%-9s fg=%-9s border=%s radius=%d\n",
					p, resolved.Background, resolved.Foreground, resolved.Border, resolved.CornerRadius)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&checkPath, "check", "", "Validate a theme YAML file and print its resolved palette")

	return cmd
}

func checkTheme(cmd *cobra.Command, path string) error {
	t, err := themeconfig.Load(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "theme %q is valid\n", t.Name)
	fmt.Fprintf(out, "  primary  %s / %s\n", t.Palette.Primary.Base.Light, t.Palette.Primary.Base.Dark)
	fmt.Fprintf(out, "  surface  %s / %s\n", t.Palette.Surface.Base.Light, t.Palette.Surface.Base.Dark)
	fmt.Fprintf(out, "  success  %s / %s\n", t.Palette.Success.Base.Light, t.Palette.Success.Base.Dark)
	fmt.Fprintf(out, "  warning  %s / %s\n", t.Palette.Warning.Base.Light, t.Palette.Warning.Base.Dark)
	fmt.Fprintf(out, "  danger   %s / %s\n", t.Palette.Danger.Base.Light, t.Palette.Danger.Base.Dark)
	return nil
}
