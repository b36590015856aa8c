package components

import "github.com/alexisbeaulieu97/glosskit/internal/style"

// Text is a primitive component for rendering styled text content.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a text component on the ghost preset, which renders on
// the surface without a border.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(style.PresetGhost),
		content:       content,
	}
}

// View renders the text with the default context.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text under the given context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	return t.ComputeStyle(ctx).Render(t.content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// SetContent updates the text content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithPreset sets the style preset.
func (t *Text) WithPreset(p style.Preset) *Text {
	t.SetPreset(p)
	return t
}

// WithOverrides sets explicit style overrides.
func (t *Text) WithOverrides(o style.Overrides) *Text {
	t.SetOverrides(o)
	return t
}

// WithFont overrides only the font token.
func (t *Text) WithFont(f style.FontToken) *Text {
	o := t.Overrides()
	o.Font = style.Font(f)
	t.SetOverrides(o)
	return t
}

// TitleText creates title-weight text.
func TitleText(content string) *Text {
	return NewText(content).WithFont(style.FontTitle)
}

// CaptionText creates faint caption text.
func CaptionText(content string) *Text {
	return NewText(content).WithFont(style.FontCaption)
}

// EmphasisText creates emphasized text.
func EmphasisText(content string) *Text {
	return NewText(content).WithFont(style.FontEmphasis)
}
