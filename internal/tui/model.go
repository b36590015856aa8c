// Package tui hosts the interactive gallery: a Bubbletea program that
// renders the component catalog under a live style context, so preset,
// scheme, size, and motion changes can be eyeballed instantly.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/glosskit/internal/imagecache"
	"github.com/alexisbeaulieu97/glosskit/internal/logger"
	"github.com/alexisbeaulieu97/glosskit/internal/style"
	"github.com/alexisbeaulieu97/glosskit/internal/theme"
	"github.com/alexisbeaulieu97/glosskit/internal/ui/components"
)

const tickInterval = 80 * time.Millisecond

type tickMsg time.Time

// imageFetchedMsg reports the outcome of an async image fetch.
type imageFetchedMsg struct {
	url  string
	size int
	err  error
}

type fetchState int

const (
	fetchIdle fetchState = iota
	fetchInFlight
	fetchDone
	fetchFailed
)

// Model is the Bubbletea state for the gallery.
type Model struct {
	themes   []theme.Theme
	themeIdx int
	styleCtx style.Context

	cache    *imagecache.Cache
	imageURL string
	imgState fetchState
	imgSize  int
	imgErr   error

	spinner spinner.Model
	elapsed time.Duration
	width   int
	height  int
	log     *logger.Logger

	quitting bool
}

// Options configures the gallery model.
type Options struct {
	Themes   []theme.Theme
	Cache    *imagecache.Cache
	ImageURL string
	Logger   *logger.Logger
}

// NewModel constructs a gallery model. The initial scheme follows the
// terminal background.
func NewModel(opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	themes := opts.Themes
	if len(themes) == 0 {
		themes = []theme.Theme{theme.Default(), theme.Dark()}
	}

	ctx := style.DefaultContext()
	if termenv.HasDarkBackground() {
		ctx.Scheme = style.SchemeDark
	}

	return Model{
		themes:   themes,
		styleCtx: ctx,
		cache:    opts.Cache,
		imageURL: opts.ImageURL,
		spinner:  s,
		width:    80,
		height:   24,
		log:      opts.Logger,
	}
}

// Init starts the animation clock and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tick())
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Theme returns the currently selected theme.
func (m Model) Theme() theme.Theme {
	return m.themes[m.themeIdx]
}

// StyleContext returns the current ambient style context.
func (m Model) StyleContext() style.Context {
	return m.styleCtx
}

// renderContext assembles the render context components draw under.
func (m Model) renderContext() components.RenderContext {
	return components.RenderContext{
		Theme: m.Theme(),
		Style: m.styleCtx,
		Width: 0,
	}
}

// fetchImage kicks off an async fetch through the cache. The command runs on
// its own context so quitting the program does not abort a shared fetch
// other subscribers may be waiting on.
func (m Model) fetchImage() tea.Cmd {
	cache, url := m.cache, m.imageURL
	return func() tea.Msg {
		data, err := cache.Fetch(context.Background(), url)
		return imageFetchedMsg{url: url, size: len(data), err: err}
	}
}
