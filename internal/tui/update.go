package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/glosskit/internal/style"
)

// Update handles Bubbletea messages and advances the gallery state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.elapsed += tickInterval
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case imageFetchedMsg:
		if msg.err != nil {
			m.imgState = fetchFailed
			m.imgErr = msg.err
			m.log.Error(msg.err, "image fetch failed")
			return m, nil
		}
		m.imgState = fetchDone
		m.imgSize = msg.size
		m.imgErr = nil
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "d":
		if m.styleCtx.Scheme == style.SchemeDark {
			m.styleCtx.Scheme = style.SchemeLight
		} else {
			m.styleCtx.Scheme = style.SchemeDark
		}
		return m, nil

	case "t":
		m.themeIdx = (m.themeIdx + 1) % len(m.themes)
		return m, nil

	case "m":
		m.styleCtx.ReduceMotion = !m.styleCtx.ReduceMotion
		return m, nil

	case "r":
		m.styleCtx.ReduceTransparency = !m.styleCtx.ReduceTransparency
		return m, nil

	case "+", "=":
		if m.styleCtx.SizeCategory < style.SizeTripleExtraLarge {
			m.styleCtx.SizeCategory++
		}
		return m, nil

	case "-":
		if m.styleCtx.SizeCategory > style.SizeExtraSmall {
			m.styleCtx.SizeCategory--
		}
		return m, nil

	case "f":
		if m.cache == nil || m.imageURL == "" || m.imgState == fetchInFlight {
			return m, nil
		}
		m.imgState = fetchInFlight
		return m, m.fetchImage()
	}

	return m, nil
}
