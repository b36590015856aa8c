package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/glosskit/internal/style"
	"github.com/alexisbeaulieu97/glosskit/internal/ui"
	"github.com/alexisbeaulieu97/glosskit/internal/ui/components"
	glosskiterrors "github.com/alexisbeaulieu97/glosskit/pkg/errors"
)

// View renders the gallery.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := m.renderContext()
	var sections []string

	sections = append(sections, titleStyle.Render(fmt.Sprintf("glosskit gallery • %s", m.Theme().Name)))
	sections = append(sections, helpStyle.Render(m.contextLine()))

	sections = append(sections, sectionStyle.Render("Presets"))
	sections = append(sections, m.presetRow(ctx))

	sections = append(sections, sectionStyle.Render("Badges"))
	sections = append(sections, components.HStack(
		components.SuccessBadge("PASS"),
		components.WarningBadge("WARN"),
		components.ErrorBadge("FAIL"),
		components.InfoBadge("INFO"),
	).WithGap(1).ViewWithContext(ctx))

	sections = append(sections, sectionStyle.Render("Alerts"))
	sections = append(sections, components.VStack(
		components.SuccessAlert("configuration saved"),
		components.WarningAlert("budget nearly exhausted"),
		components.ErrorAlert("fetch failed"),
	).ViewWithContext(ctx))

	sections = append(sections, sectionStyle.Render("Card"))
	sections = append(sections, m.demoCard(ctx))

	sections = append(sections, sectionStyle.Render("Effects"))
	shimmer := components.NewShimmerText("✦ shimmering highlight ✦").SetElapsed(m.elapsed)
	sections = append(sections, shimmer.ViewWithContext(ctx))

	if m.cache != nil && m.imageURL != "" {
		sections = append(sections, sectionStyle.Render("Image cache"))
		sections = append(sections, m.imagePanel())
	}

	sections = append(sections, "")
	sections = append(sections, helpStyle.Render("d scheme • t theme • +/- size • m motion • r transparency • f fetch • q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) contextLine() string {
	motion := "on"
	if m.styleCtx.ReduceMotion {
		motion = "reduced"
	}
	return fmt.Sprintf("scheme=%s size=%d motion=%s entries=%d", m.schemeName(), m.styleCtx.SizeCategory, motion, m.cacheLen())
}

func (m Model) schemeName() string {
	if m.styleCtx.Scheme == style.SchemeDark {
		return "dark"
	}
	return "light"
}

func (m Model) cacheLen() int {
	if m.cache == nil {
		return 0
	}
	return m.cache.Len()
}

func (m Model) presetRow(ctx components.RenderContext) string {
	buttons := make([]ui.Renderable, 0, len(style.Presets()))
	for _, p := range style.Presets() {
		buttons = append(buttons, components.NewButton(p.String()).WithPreset(p))
	}
	return components.HStack(buttons...).WithGap(1).ViewWithContext(ctx)
}

func (m Model) demoCard(ctx components.RenderContext) string {
	return components.NewCard(
		components.NewText("Body copy scales with the ambient size category."),
		components.CaptionText("captions stay small"),
		components.NewDivider(),
		components.HStack(
			components.FilledButton("Confirm"),
			components.GhostButton("Cancel"),
		).WithGap(2),
	).WithTitle("Preview").ViewWithContext(ctx)
}

func (m Model) imagePanel() string {
	switch m.imgState {
	case fetchInFlight:
		return m.spinner.View() + " fetching " + m.imageURL
	case fetchDone:
		return okStyle.Render(fmt.Sprintf("✓ cached %s (%d bytes)", m.imageURL, m.imgSize))
	case fetchFailed:
		return errorStyle.Render("✗ " + fetchFailureLine(m.imgErr))
	default:
		return helpStyle.Render("press f to fetch " + m.imageURL)
	}
}

func fetchFailureLine(err error) string {
	var fetchErr *glosskiterrors.FetchError
	if errors.As(err, &fetchErr) {
		return fmt.Sprintf("%s failure fetching %s: %v", fetchErr.Kind, fetchErr.Locator, fetchErr.Err)
	}
	if err == nil {
		return "fetch failed"
	}
	return strings.TrimSpace(err.Error())
}
