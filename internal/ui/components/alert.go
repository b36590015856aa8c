package components

import (
	"github.com/alexisbeaulieu97/glosskit/internal/style"
	"github.com/alexisbeaulieu97/glosskit/internal/theme"
)

// Alert is a themed notification message with an icon prefix.
type Alert struct {
	BaseComponent
	message string
	variant AlertVariant
}

// AlertVariant selects the semantic tone of an alert.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantWarning
	AlertVariantError
)

func (v AlertVariant) icon() string {
	switch v {
	case AlertVariantSuccess:
		return "✓"
	case AlertVariantWarning:
		return "⚠"
	case AlertVariantError:
		return "✗"
	default:
		return "ℹ"
	}
}

// NewAlert creates an info alert with the given message.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(style.PresetSubtle),
		message:       message,
	}
}

// View renders the alert with the default context.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert under the given context.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	overrides := a.Overrides()
	slot := a.paletteSlot(ctx.Theme)
	if overrides.Foreground == nil {
		overrides.Foreground = adaptive(slot.Muted, ctx.Style.Scheme)
	}

	resolved := style.Resolve(style.Request{Preset: a.Preset(), Overrides: overrides}, ctx.Style)
	return resolved.LipglossStyle(ctx.Style.Scheme).Render(a.variant.icon() + " " + a.message)
}

func (a *Alert) paletteSlot(t theme.Theme) theme.ColourSet {
	switch a.variant {
	case AlertVariantSuccess:
		return t.Palette.Success
	case AlertVariantWarning:
		return t.Palette.Warning
	case AlertVariantError:
		return t.Palette.Danger
	default:
		return t.Palette.Info
	}
}

// WithVariant sets the alert variant.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	return a
}

// WithOverrides sets explicit style overrides.
func (a *Alert) WithOverrides(o style.Overrides) *Alert {
	a.SetOverrides(o)
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

// SuccessAlert creates a success alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantSuccess)
}

// WarningAlert creates a warning alert.
func WarningAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantWarning)
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantError)
}
