// Package theme holds the immutable color, border, spacing, and typography
// tables that components draw from. Themes are value types: create once,
// pass explicitly, never mutate.
package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// ColourSet represents a semantic color slot with colors that work together:
//
//   - Base: the primary background or brand color
//   - OnBase: text color that contrasts well with Base
//   - Muted: a desaturated variant of Base for subtle accents
//   - Contrast: an accent color that pops against Base
//
// All colors are adaptive, providing both light and dark scheme variants.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// SpacingSize enumerates the spacing scale tokens used for component margins.
type SpacingSize int

const (
	SpacingNone SpacingSize = iota
	SpacingExtraSmall
	SpacingSmall
	SpacingMedium
	SpacingLarge
	SpacingExtraLarge
)

const spacingSizeCount = int(SpacingExtraLarge) + 1

type spacingTable [spacingSizeCount]int

// TypographyScale contains the semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
}

// Theme is an immutable styling theme. All modification happens by copying;
// Normalize fills gaps in partially-specified themes.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Margin     spacingTable
	Typography TypographyScale
}

// Normalize returns a copy of the theme with zero-valued sections replaced
// by defaults, so partially-specified themes stay usable.
func (t Theme) Normalize() Theme {
	if t.Name == "" {
		t.Name = "custom"
	}
	if spacingIsZero(t.Margin) {
		t.Margin = defaultMargins()
	}
	if t.Borders == (BorderSet{}) {
		t.Borders = defaultBorders()
	}
	// Typography always derives from the palette so a palette swap can never
	// leave stale text colors behind.
	t.Typography = typographyFor(t.Palette)
	return t
}

// MarginValue returns the margin width for the given size token. Out-of-range
// tokens clamp to the medium step.
func (t Theme) MarginValue(size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(t.Margin) {
		index = int(SpacingMedium)
	}
	return t.Margin[index]
}

func spacingIsZero(table spacingTable) bool {
	for _, v := range table {
		if v != 0 {
			return false
		}
	}
	return true
}

func defaultMargins() spacingTable {
	return spacingTable{
		SpacingNone:       0,
		SpacingExtraSmall: 1,
		SpacingSmall:      2,
		SpacingMedium:     3,
		SpacingLarge:      4,
		SpacingExtraLarge: 6,
	}
}

func defaultBorders() BorderSet {
	return BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}
}

// Default returns the built-in light-first theme.
func Default() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1d4ed8"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Secondary: ColourSet{
			Base:     ac("#a855f7", "#c084fc"),
			OnBase:   ac("#f8fafc", "#1f2937"),
			Muted:    ac("#7c3aed", "#6b21a8"),
			Contrast: ac("#f472b6", "#f472b6"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Success: ColourSet{
			Base:     ac("#22c55e", "#4ade80"),
			OnBase:   ac("#052e16", "#022c22"),
			Muted:    ac("#16a34a", "#15803d"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Warning: ColourSet{
			Base:     ac("#eab308", "#facc15"),
			OnBase:   ac("#422006", "#422006"),
			Muted:    ac("#ca8a04", "#a16207"),
			Contrast: ac("#111827", "#111827"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#7f1d1d", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Info: ColourSet{
			Base:     ac("#06b6d4", "#22d3ee"),
			OnBase:   ac("#083344", "#04121a"),
			Muted:    ac("#0891b2", "#0e7490"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#475569", "#334155"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}

	theme := Theme{
		Name:       "default",
		Palette:    palette,
		Borders:    defaultBorders(),
		Margin:     defaultMargins(),
		Typography: typographyFor(palette),
	}

	return theme.Normalize()
}

// Dark returns a variant tuned for dark terminal backgrounds.
func Dark() Theme {
	theme := Default()
	theme.Name = "dark"

	theme.Palette.Surface = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#111827", Dark: "#0b1120"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:    lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
		Contrast: lipgloss.AdaptiveColor{Light: "#3b82f6", Dark: "#60a5fa"},
	}
	theme.Palette.Neutral = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#475569", Dark: "#334155"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#cbd5f5"},
		Muted:    lipgloss.AdaptiveColor{Light: "#374151", Dark: "#1f2937"},
		Contrast: lipgloss.AdaptiveColor{Light: "#f8fafc", Dark: "#f8fafc"},
	}

	theme.Typography = typographyFor(theme.Palette)
	return theme.Normalize()
}

func typographyFor(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Foreground(p.Secondary.Muted).Faint(true),
		Body:     base,
		Code:     base.Foreground(p.Secondary.Base).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: base.Bold(true),
	}
}
