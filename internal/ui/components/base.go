package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/glosskit/internal/style"
	"github.com/alexisbeaulieu97/glosskit/internal/theme"
)

// RenderContext carries everything a component needs to draw itself: the
// theme tables, the ambient style context, and optional layout width. It is
// passed explicitly on every render; there is no global theme state, which
// keeps rendering deterministic and tests parallel-safe.
type RenderContext struct {
	Theme theme.Theme
	Style style.Context
	Width int
}

// DefaultContext returns a render context with the default theme and a
// light, medium-size style context.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme: theme.Default(),
		Style: style.DefaultContext(),
	}
}

// WithTheme returns a copy of the context using the given theme.
func (r RenderContext) WithTheme(t theme.Theme) RenderContext {
	r.Theme = t
	return r
}

// WithStyle returns a copy of the context using the given style context.
func (r RenderContext) WithStyle(sc style.Context) RenderContext {
	r.Style = sc
	return r
}

// WithWidth returns a copy of the context constrained to the given width.
func (r RenderContext) WithWidth(width int) RenderContext {
	r.Width = width
	return r
}

// BaseComponent carries the style request shared by every component: a
// preset tag plus explicit overrides. Embed it to get the standard
// preset/override plumbing.
type BaseComponent struct {
	preset    style.Preset
	overrides style.Overrides
}

// NewBaseComponent creates a base component on the default preset.
func NewBaseComponent(preset style.Preset) BaseComponent {
	return BaseComponent{preset: preset}
}

// Preset returns the component's preset tag.
func (b *BaseComponent) Preset() style.Preset {
	return b.preset
}

// SetPreset replaces the preset tag.
func (b *BaseComponent) SetPreset(p style.Preset) {
	b.preset = p
}

// SetOverrides replaces the explicit overrides.
func (b *BaseComponent) SetOverrides(o style.Overrides) {
	b.overrides = o
}

// Overrides returns the component's explicit overrides.
func (b *BaseComponent) Overrides() style.Overrides {
	return b.overrides
}

// Resolve runs style resolution for this component under the given context.
func (b *BaseComponent) Resolve(ctx RenderContext) style.Resolved {
	return style.Resolve(style.Request{Preset: b.preset, Overrides: b.overrides}, ctx.Style)
}

// ComputeStyle resolves and converts to a lipgloss style ready to render.
func (b *BaseComponent) ComputeStyle(ctx RenderContext) lipgloss.Style {
	s := b.Resolve(ctx).LipglossStyle(ctx.Style.Scheme)
	if ctx.Width > 0 {
		s = s.Width(ctx.Width)
	}
	return s
}

// adaptive picks the scheme variant of an adaptive theme color so palette
// slots can feed style overrides.
func adaptive(c lipgloss.AdaptiveColor, scheme style.Scheme) *lipgloss.Color {
	if scheme == style.SchemeDark {
		return style.Color(lipgloss.Color(c.Dark))
	}
	return style.Color(lipgloss.Color(c.Light))
}
