// Package tui is the interactive algorithm picker: choose a variant, paint
// it, reroll or step the seed, and save the ones worth keeping.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoart/internal/algorithm"
	"github.com/san-kum/algoart/internal/export"
	"github.com/san-kum/algoart/internal/painting"
	"github.com/san-kum/algoart/internal/palette"
	"github.com/san-kum/algoart/internal/storage"
	"github.com/san-kum/algoart/internal/viz"
)

type state int

const (
	stateMenu state = iota
	stateView
)

// Options configures the picker. Zero sizes fall back to the canvas defaults.
type Options struct {
	Height      int
	Width       int
	Format      export.Format
	Store       *storage.Store
	MaxAttempts int
}

type model struct {
	state  state
	cursor int
	algos  []algorithm.Info
	opts   Options

	palettes   []string
	paletteIdx int
	theme      viz.Theme

	seed     *int64
	painting bool
	result   *painting.Result
	status   string
	err      error

	width  int
	height int
}

type paintedMsg struct {
	result *painting.Result
	err    error
}

type savedMsg struct {
	meta *storage.Metadata
	err  error
}

func newModel(opts Options) model {
	if opts.Format == "" {
		opts.Format = export.PNG
	}
	names := palette.Names()
	idx := 0
	for i, n := range names {
		if n == palette.DefaultName {
			idx = i
		}
	}
	return model{
		state:      stateMenu,
		algos:      algorithm.NewRegistry().List(),
		opts:       opts,
		palettes:   names,
		paletteIdx: idx,
		theme:      viz.CurrentTheme,
		width:      80,
		height:     24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case paintedMsg:
		m.painting = false
		m.result, m.err = msg.result, msg.err
		m.status = ""
		if msg.result != nil {
			s := msg.result.Seed
			m.seed = &s
			m.status = fmt.Sprintf("painted in %s", msg.result.Elapsed.Round(time.Millisecond))
		}
		return m, nil
	case savedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.status = "saved " + msg.meta.File
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateView:
		return m.viewKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.algos)-1 {
			m.cursor++
		}
	case "t":
		m.theme = viz.NextTheme(m.theme.Name)
	case "enter", " ":
		m.state = stateView
		m.seed = nil
		return m.paint()
	}
	return m, nil
}

func (m model) viewKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.painting {
		return m, nil
	}
	switch msg.String() {
	case "q", "esc":
		m.state = stateMenu
		m.result, m.err, m.status = nil, nil, ""
	case "r":
		m.seed = nil
		return m.paint()
	case "right", "l", "n":
		return m.stepSeed(1)
	case "left", "h", "p":
		return m.stepSeed(-1)
	case "c":
		m.paletteIdx = (m.paletteIdx + 1) % len(m.palettes)
		return m.paint()
	case "t":
		m.theme = viz.NextTheme(m.theme.Name)
	case "s":
		if m.result == nil || m.opts.Store == nil {
			return m, nil
		}
		m.status = "saving..."
		return m, save(m.opts.Store, m.result, m.opts.Format)
	}
	return m, nil
}

func (m model) stepSeed(delta int64) (model, tea.Cmd) {
	if m.seed == nil {
		return m, nil
	}
	next := max(*m.seed+delta, 0)
	m.seed = &next
	return m.paint()
}

func (m model) selected() algorithm.Info {
	return m.algos[m.cursor]
}

func (m model) config() painting.Config {
	cfg := painting.DefaultConfig(m.selected().Name)
	if m.opts.Height > 0 {
		cfg.Height = m.opts.Height
	}
	if m.opts.Width > 0 {
		cfg.Width = m.opts.Width
	}
	cfg.Seed = m.seed
	p, _ := palette.Get(m.palettes[m.paletteIdx])
	cfg.Params = algorithm.Params{Palette: p, MaxAttempts: m.opts.MaxAttempts}
	return cfg
}

func (m model) paint() (model, tea.Cmd) {
	m.painting = true
	m.status = "painting..."
	cfg := m.config()
	return m, func() tea.Msg {
		res, err := painting.Paint(context.Background(), cfg)
		return paintedMsg{result: res, err: err}
	}
}

func save(st *storage.Store, res *painting.Result, f export.Format) tea.Cmd {
	return func() tea.Msg {
		meta, err := st.Save(res, f)
		return savedMsg{meta: meta, err: err}
	}
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateView:
		return m.viewPainting()
	}
	return ""
}

func (m model) styles() (accent, text, dim lipgloss.Style) {
	accent = lipgloss.NewStyle().Foreground(m.theme.Primary)
	text = lipgloss.NewStyle().Foreground(m.theme.Text)
	dim = lipgloss.NewStyle().Foreground(m.theme.Muted)
	return
}

func (m model) viewMenu() string {
	accent, text, dim := m.styles()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + viz.GradientText("a l g o a r t", m.theme.Primary, m.theme.Accent) + "\n")
	b.WriteString(dim.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	for i, info := range m.algos {
		desc := info.Description
		if info.Legacy {
			desc += " (legacy)"
		}
		if i == m.cursor {
			b.WriteString("      " + accent.Render("▸ ") + text.Render(fmt.Sprintf("%-22s", info.Name)) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-22s", info.Name)) + dim.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter paint   t theme   q quit") + "\n")
	return b.String()
}

func (m model) viewPainting() string {
	accent, text, dim := m.styles()
	var b strings.Builder

	header := accent.Render(m.selected().Name)
	if m.seed != nil {
		header += "  " + dim.Render("seed ") + text.Render(fmt.Sprint(*m.seed))
	}
	header += "  " + dim.Render("palette ") + text.Render(m.palettes[m.paletteIdx])
	b.WriteString("\n  " + header + "\n\n")

	switch {
	case m.err != nil:
		b.WriteString("  " + viz.ErrorText.Render(m.err.Error()) + "\n")
	case m.result != nil:
		for _, line := range strings.Split(strings.TrimSuffix(viz.Preview(m.result.Canvas, m.previewColumns()), "\n"), "\n") {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n  " + viz.Separator(40) + "\n")
	b.WriteString("  " + dim.Render(m.status) + "\n")
	b.WriteString(dim.Render("  r reroll  ←→ seed  c palette  s save  t theme  esc back") + "\n")
	return b.String()
}

// previewColumns fits the painting into the window, two pixel rows per line.
func (m model) previewColumns() int {
	c := m.result.Canvas
	cols := max(m.width-4, 1)
	rows := max(m.height-8, 1)
	if byHeight := 2 * rows * c.Columns() / c.Rows(); byHeight < cols {
		cols = max(byHeight, 1)
	}
	return cols
}

func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
