package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/moodcalc/moodcalc/pkg/calc"
	"github.com/moodcalc/moodcalc/pkg/keymap"
)

// appModel is the root bubbletea model. It owns the calculator engine;
// every key event dispatches at most one engine operation and the full
// state record is re-read for rendering, so the view can never observe a
// half-applied transition.
type appModel struct {
	engine   *calc.Engine
	cfg      Config
	keys     appKeys
	width    int
	height   int
	showHelp bool
}

func newAppModel(cfg Config) appModel {
	return appModel{
		engine: calc.NewEngineWith(cfg.StartState()),
		cfg:    cfg,
		keys:   newAppKeys(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		initMarkdownRenderer(min(m.width-4, 60))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key dismisses the help overlay.
		m.showHelp = false
		return m, nil
	}

	if key.Matches(msg, m.keys.Help) {
		m.showHelp = true
		return m, nil
	}

	if op, ok := keymap.Resolve(msg.String(), m.engine.State().Mode); ok {
		m.engine.Apply(op)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showHelp {
		return renderHelp()
	}

	s := m.engine.State()

	return lipgloss.JoinVertical(lipgloss.Left,
		renderDisplay(s, m.cfg),
		renderGrid(s, m.cfg.Accent),
		renderStatus(s),
	)
}
