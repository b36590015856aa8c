package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/glosskit/internal/style"
	"github.com/alexisbeaulieu97/glosskit/internal/ui"
)

// Card is a bordered container grouping related content, built on the
// outline preset.
type Card struct {
	BaseComponent
	title    string
	children []ui.Renderable
}

// NewCard creates a card holding the given children.
func NewCard(children ...ui.Renderable) *Card {
	return &Card{
		BaseComponent: NewBaseComponent(style.PresetOutline),
		children:      children,
	}
}

// View renders the card with the default context.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card under the given context. Children that
// understand contexts receive the card's; plain Renderables draw themselves.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	parts := make([]string, 0, len(c.children)+1)

	if c.title != "" {
		parts = append(parts, TitleText(c.title).ViewWithContext(ctx))
	}

	for _, child := range c.children {
		if contextual, ok := child.(interface{ ViewWithContext(RenderContext) string }); ok {
			parts = append(parts, contextual.ViewWithContext(ctx))
			continue
		}
		parts = append(parts, child.View())
	}

	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return c.ComputeStyle(ctx).Render(body)
}

// WithTitle sets the card title.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithPreset sets the style preset.
func (c *Card) WithPreset(p style.Preset) *Card {
	c.SetPreset(p)
	return c
}

// WithOverrides sets explicit style overrides.
func (c *Card) WithOverrides(o style.Overrides) *Card {
	c.SetOverrides(o)
	return c
}

// Add appends children to the card.
func (c *Card) Add(children ...ui.Renderable) *Card {
	c.children = append(c.children, children...)
	return c
}

// Children returns the card's children.
func (c *Card) Children() []ui.Renderable {
	return c.children
}
