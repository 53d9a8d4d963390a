// Package tui is the interactive range browser.
package tui

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/preflopcharts/internal/app"
	"github.com/lox/preflopcharts/internal/chart"
	"github.com/lox/preflopcharts/internal/render"
)

// Model is the bubbletea model for the browser
type Model struct {
	chart    *chart.Chart
	renderer *render.Renderer
	logger   *log.Logger

	keys keyMap
	help help.Model

	state app.State
	view  app.View
	err   error

	width    int
	height   int
	quitting bool
}

// NewModel creates a browser showing the chart's default selection
func NewModel(c *chart.Chart, r *render.Renderer, logger *log.Logger) *Model {
	m := &Model{
		chart:    c,
		renderer: r,
		logger:   logger.WithPrefix("tui"),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	m.setState(app.NewState(c))
	return m
}

// Run starts the browser on the terminal and blocks until it exits
func Run(ctx context.Context, c *chart.Chart, logger *log.Logger, noColor bool) error {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	m := NewModel(c, render.NewRenderer(os.Stdout, noColor), logger)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}

// State returns the current selection
func (m *Model) State() app.State {
	return m.state
}

// Current returns the view for the current selection
func (m *Model) Current() app.View {
	return m.view
}

// Err returns the error from the last recompute, if any
func (m *Model) Err() error {
	return m.err
}

func (m *Model) setState(s app.State) {
	m.state = s
	v, err := app.Compute(m.chart, s)
	if err != nil {
		m.err = err
		m.logger.Error("Failed to build range", "players", s.Players, "position", s.Position, "error", err)
		return
	}
	m.view = v
	m.err = nil
	m.logger.Debug("Selection changed",
		"players", s.Players,
		"position", s.Position,
		"compact", s.Compact,
		"hands", v.Stats().TokenHandCount)
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Preflop Charts")
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Players):
			n, err := strconv.Atoi(msg.String())
			if err == nil {
				m.setState(m.state.WithPlayers(m.chart, n))
			}
		case key.Matches(msg, m.keys.NextPlayers):
			m.setState(m.state.NextPlayers(m.chart))
		case key.Matches(msg, m.keys.PrevPlayers):
			m.setState(m.state.PrevPlayers(m.chart))
		case key.Matches(msg, m.keys.NextSeat):
			m.setState(m.state.NextPosition(m.chart))
		case key.Matches(msg, m.keys.PrevSeat):
			m.setState(m.state.PrevPosition(m.chart))
		case key.Matches(msg, m.keys.Compact):
			m.setState(m.state.ToggleCompact())
		case key.Matches(msg, m.keys.Percentage):
			m.setState(m.state.TogglePercentage())
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.err != nil {
		body = ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	} else {
		body = m.renderer.Page(m.view)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		HeaderStyle.Render("Preflop Charts")+" "+InfoStyle.Render(m.chart.Source()),
		"",
		m.playersBar(),
		m.positionsBar(),
		"",
		body,
		"",
		m.help.View(m.keys),
	)
}

func (m *Model) playersBar() string {
	parts := []string{LabelStyle.Render("Players  ")}
	for _, n := range m.chart.PlayerCounts() {
		parts = append(parts, option(strconv.Itoa(n), n == m.state.Players))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) positionsBar() string {
	parts := []string{LabelStyle.Render("Position ")}
	for _, pos := range m.chart.Positions(m.state.Players) {
		parts = append(parts, option(pos, pos == m.state.Position))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func option(label string, selected bool) string {
	if selected {
		return SelectedStyle.Render(label)
	}
	return OptionStyle.Render(label)
}
