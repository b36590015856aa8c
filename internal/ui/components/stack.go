package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/glosskit/internal/ui"
)

// Direction selects a stack's main axis.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children along one axis with an optional gap.
type Stack struct {
	children  []ui.Renderable
	direction Direction
	gap       int
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return &Stack{children: children, direction: DirectionVertical}
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return &Stack{children: children, direction: DirectionHorizontal}
}

// View renders the stack with the default context.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack under the given context.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	parts := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if contextual, ok := child.(interface{ ViewWithContext(RenderContext) string }); ok {
			parts = append(parts, contextual.ViewWithContext(ctx))
			continue
		}
		parts = append(parts, child.View())
	}

	if s.direction == DirectionHorizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, s.withGap(parts)...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, s.withGap(parts)...)
}

func (s *Stack) withGap(parts []string) []string {
	if s.gap <= 0 || len(parts) < 2 {
		return parts
	}

	// JoinVertical already separates parts with a newline, so a spacer of
	// gap-1 newlines yields exactly gap blank rows.
	spacer := strings.Repeat(" ", s.gap)
	if s.direction == DirectionVertical {
		spacer = strings.Repeat("\n", s.gap-1)
	}

	spaced := make([]string, 0, len(parts)*2-1)
	for i, part := range parts {
		if i > 0 {
			spaced = append(spaced, spacer)
		}
		spaced = append(spaced, part)
	}
	return spaced
}

// WithGap sets the gap between children, in cells or rows.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Len returns the number of children.
func (s *Stack) Len() int {
	return len(s.children)
}
