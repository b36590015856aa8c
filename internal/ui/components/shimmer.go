package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/glosskit/internal/fx"
	"github.com/alexisbeaulieu97/glosskit/internal/style"
)

const defaultShimmerPeriod = 2 * time.Second

// ShimmerText renders text with a highlight band sweeping across it. The
// caller owns the clock: call Advance (or SetElapsed) from a tick loop and
// re-render. Under ReduceMotion the band freezes mid-sweep.
type ShimmerText struct {
	BaseComponent
	text      string
	highlight lipgloss.Color
	period    time.Duration
	elapsed   time.Duration
}

// NewShimmerText creates shimmer text with a white highlight and the default
// sweep period.
func NewShimmerText(text string) *ShimmerText {
	return &ShimmerText{
		BaseComponent: NewBaseComponent(style.PresetGhost),
		text:          text,
		highlight:     lipgloss.Color("#ffffff"),
		period:        defaultShimmerPeriod,
	}
}

// View renders the shimmer text with the default context.
func (s *ShimmerText) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders each rune with the shimmer color for its position
// at the current phase.
func (s *ShimmerText) ViewWithContext(ctx RenderContext) string {
	resolved := s.Resolve(ctx)
	base := style.Flatten(resolved.Foreground, ctx.Style.Scheme)
	phase := fx.Phase(ctx.Style, s.elapsed, s.period)

	runes := []rune(s.text)
	if len(runes) == 0 {
		return ""
	}

	var out strings.Builder
	for i, r := range runes {
		pos := float64(i) / float64(len(runes))
		color := fx.ShimmerColor(base, s.highlight, phase, pos)
		out.WriteString(lipgloss.NewStyle().Foreground(color).Render(string(r)))
	}
	return out.String()
}

// Advance moves the clock forward by d.
func (s *ShimmerText) Advance(d time.Duration) *ShimmerText {
	s.elapsed += d
	return s
}

// SetElapsed pins the clock to an absolute elapsed time.
func (s *ShimmerText) SetElapsed(elapsed time.Duration) *ShimmerText {
	s.elapsed = elapsed
	return s
}

// WithHighlight sets the highlight color of the sweep band.
func (s *ShimmerText) WithHighlight(c lipgloss.Color) *ShimmerText {
	s.highlight = c
	return s
}

// WithPeriod sets the sweep period.
func (s *ShimmerText) WithPeriod(period time.Duration) *ShimmerText {
	s.period = period
	return s
}

// WithOverrides sets explicit style overrides.
func (s *ShimmerText) WithOverrides(o style.Overrides) *ShimmerText {
	s.SetOverrides(o)
	return s
}
