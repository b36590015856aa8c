package components

import (
	"github.com/alexisbeaulieu97/glosskit/internal/style"
	"github.com/alexisbeaulieu97/glosskit/internal/theme"
)

// Badge is a small status indicator.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// BadgeVariant selects the semantic palette slot a badge colors itself with.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantSuccess
	BadgeVariantWarning
	BadgeVariantError
	BadgeVariantInfo
)

// NewBadge creates a badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(style.PresetFilled),
		text:          text,
	}
}

// View renders the badge with the default context.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge under the given context. Semantic
// variants pull their colors from the theme palette and feed them through
// resolution as overrides, so explicit caller overrides still win.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	overrides := b.Overrides()
	if slot, ok := b.paletteSlot(ctx.Theme); ok {
		if overrides.Background == nil {
			overrides.Background = adaptive(slot.Base, ctx.Style.Scheme)
		}
		if overrides.Foreground == nil {
			overrides.Foreground = adaptive(slot.OnBase, ctx.Style.Scheme)
		}
	}

	resolved := style.Resolve(style.Request{Preset: b.Preset(), Overrides: overrides}, ctx.Style)
	return resolved.LipglossStyle(ctx.Style.Scheme).Render(b.text)
}

// paletteSlot maps the semantic variant to a theme colour set. The default
// variant resolves purely through the preset table.
func (b *Badge) paletteSlot(t theme.Theme) (theme.ColourSet, bool) {
	switch b.variant {
	case BadgeVariantSuccess:
		return t.Palette.Success, true
	case BadgeVariantWarning:
		return t.Palette.Warning, true
	case BadgeVariantError:
		return t.Palette.Danger, true
	case BadgeVariantInfo:
		return t.Palette.Info, true
	default:
		return theme.ColourSet{}, false
	}
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// WithOverrides sets explicit style overrides.
func (b *Badge) WithOverrides(o style.Overrides) *Badge {
	b.SetOverrides(o)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// Convenience constructors for semantic badges.

// SuccessBadge creates a success badge.
func SuccessBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantSuccess)
}

// WarningBadge creates a warning badge.
func WarningBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantWarning)
}

// ErrorBadge creates an error badge.
func ErrorBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantError)
}

// InfoBadge creates an info badge.
func InfoBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantInfo)
}
