package components

import "github.com/alexisbeaulieu97/glosskit/internal/style"

// Button represents an interactive button (visual only; event handling
// belongs to the host program).
type Button struct {
	BaseComponent
	label    string
	disabled bool
	active   bool
}

// NewButton creates a button with the given label on the default preset.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(style.PresetDefault),
		label:         label,
	}
}

// View renders the button with the default context.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button under the given context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	s := b.ComputeStyle(ctx)

	if b.disabled {
		s = s.Faint(true)
	}
	if b.active {
		s = s.Bold(true).Underline(true)
	}

	return s.Render(b.label)
}

// WithPreset sets the style preset.
func (b *Button) WithPreset(p style.Preset) *Button {
	b.SetPreset(p)
	return b
}

// WithOverrides sets explicit style overrides.
func (b *Button) WithOverrides(o style.Overrides) *Button {
	b.SetOverrides(o)
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithActive sets the active/selected state.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// IsDisabled returns true if the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// Convenience constructors for the preset catalog.

// OutlineButton creates a button on the outline preset.
func OutlineButton(label string) *Button {
	return NewButton(label).WithPreset(style.PresetOutline)
}

// GhostButton creates a button on the ghost preset.
func GhostButton(label string) *Button {
	return NewButton(label).WithPreset(style.PresetGhost)
}

// SubtleButton creates a button on the subtle preset.
func SubtleButton(label string) *Button {
	return NewButton(label).WithPreset(style.PresetSubtle)
}

// TintedButton creates a button on the tinted preset.
func TintedButton(label string) *Button {
	return NewButton(label).WithPreset(style.PresetTinted)
}

// FilledButton creates a button on the filled preset.
func FilledButton(label string) *Button {
	return NewButton(label).WithPreset(style.PresetFilled)
}
