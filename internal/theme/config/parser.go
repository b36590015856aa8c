package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/glosskit/internal/theme"
	glosskiterrors "github.com/alexisbeaulieu97/glosskit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a theme file from disk, validates it, and merges it over the
// built-in default theme.
func Load(path string) (theme.Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return theme.Theme{}, glosskiterrors.NewParseError(path, 0, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return theme.Theme{}, glosskiterrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&file); err != nil {
		return theme.Theme{}, err
	}

	return Build(&file), nil
}

// Build merges a validated theme file over the default theme. Missing slots
// and members inherit the defaults.
func Build(file *File) theme.Theme {
	t := theme.Default()
	t.Name = file.Name

	applySlot(&t.Palette.Primary, file.Palette.Primary)
	applySlot(&t.Palette.Secondary, file.Palette.Secondary)
	applySlot(&t.Palette.Surface, file.Palette.Surface)
	applySlot(&t.Palette.Success, file.Palette.Success)
	applySlot(&t.Palette.Warning, file.Palette.Warning)
	applySlot(&t.Palette.Danger, file.Palette.Danger)
	applySlot(&t.Palette.Info, file.Palette.Info)
	applySlot(&t.Palette.Neutral, file.Palette.Neutral)

	return t.Normalize()
}

func applySlot(dst *theme.ColourSet, src *SlotConfig) {
	if src == nil {
		return
	}
	applyPair(&dst.Base, src.Base)
	applyPair(&dst.OnBase, src.OnBase)
	applyPair(&dst.Muted, src.Muted)
	applyPair(&dst.Contrast, src.Contrast)
}

func applyPair(dst *lipgloss.AdaptiveColor, src *PairConfig) {
	if src == nil {
		return
	}
	dst.Light = src.Light
	dst.Dark = src.Dark
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
