package components

import (
	"strings"

	"github.com/alexisbeaulieu97/glosskit/internal/style"
)

const defaultDividerWidth = 40

// Divider renders a horizontal separator line.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a divider with the default line character.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(style.PresetGhost),
		char:          "─",
	}
}

// View renders the divider with the default context.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider under the given context, taking its
// width from the context when none is set explicitly.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.Width
	}
	if width <= 0 {
		width = defaultDividerWidth
	}

	resolved := d.Resolve(ctx)
	line := strings.Repeat(d.char, width)
	return resolved.LipglossStyle(ctx.Style.Scheme).UnsetPadding().Render(line)
}

// WithChar sets the character used for the divider.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit width.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// Width returns the explicit divider width.
func (d *Divider) Width() int {
	return d.width
}

// ThickDivider creates a heavy-line divider.
func ThickDivider() *Divider {
	return NewDivider().WithChar("━")
}

// DottedDivider creates a dotted divider.
func DottedDivider() *Divider {
	return NewDivider().WithChar("·")
}
