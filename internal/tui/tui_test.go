package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/preflopcharts/internal/chart"
	"github.com/lox/preflopcharts/internal/handrange"
	"github.com/lox/preflopcharts/internal/render"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}) // Quiet logger for tests

	c, err := chart.Default()
	require.NoError(t, err)
	return NewModel(c, render.NewRenderer(io.Discard, true), logger)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestInitialSelection(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, 6, m.State().Players)
	assert.Equal(t, "UTG", m.State().Position)
	assert.NoError(t, m.Err())
	assert.Equal(t, 18, m.Current().Stats().TokenHandCount)
}

func TestPlayerKeys(t *testing.T) {
	m := newTestModel(t)

	press(m, runes("9"))
	assert.Equal(t, 9, m.State().Players)
	assert.Equal(t, "UTG", m.State().Position)

	press(m, runes("2"))
	assert.Equal(t, 2, m.State().Players)
	assert.Equal(t, "SB", m.State().Position)

	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 9, m.State().Players, "wraps below the smallest table")

	press(m, runes("l"), runes("l"))
	assert.Equal(t, 3, m.State().Players)
}

func TestPositionKeys(t *testing.T) {
	m := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "MP", m.State().Position)

	press(m, runes("j"), tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "BTN", m.State().Position)

	press(m, runes("k"))
	assert.Equal(t, "CO", m.State().Position)

	press(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "BB", m.State().Position)
	assert.Empty(t, m.Current().Tokens)
	assert.Empty(t, m.Current().Matrix.Hands())
}

func TestSelectionRecomputesView(t *testing.T) {
	m := newTestModel(t)

	press(m, runes("j"), runes("j"), runes("j"))
	require.Equal(t, "BTN", m.State().Position)

	want, err := handrange.Build(m.chart.Tokens("BTN", 6))
	require.NoError(t, err)
	assert.Equal(t, want.Rows(), m.Current().Matrix.Rows())
	assert.Equal(t, m.State(), m.Current().State)
}

func TestToggleKeys(t *testing.T) {
	m := newTestModel(t)

	press(m, runes("c"))
	assert.True(t, m.State().Compact)
	assert.True(t, m.Current().State.Compact)

	press(m, runes("p"))
	assert.False(t, m.State().ShowPercentage)

	press(m, runes("c"), runes("p"))
	assert.False(t, m.State().Compact)
	assert.True(t, m.State().ShowPercentage)

	press(m, runes("?"))
	assert.True(t, m.help.ShowAll)
}

func TestQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m := newTestModel(t)

		cmd := press(m, msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, m.View())
	}
}

func TestUnknownKeysAreIgnored(t *testing.T) {
	m := newTestModel(t)
	before := m.State()

	cmd := press(m, runes("z"), runes("1"), tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Nil(t, cmd)
	assert.Equal(t, before, m.State())
	assert.Equal(t, 120, m.width)
}

func TestView(t *testing.T) {
	m := newTestModel(t)

	out := m.View()
	assert.Contains(t, out, "Preflop Charts")
	assert.Contains(t, out, "Players")
	assert.Contains(t, out, "UTG vs 6 players")
	assert.Contains(t, out, "[AKs]")
	assert.Contains(t, out, "quit")
}

func TestViewShowsBuildError(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})

	c, err := chart.Parse([]byte(`
table "6" { positions = ["UTG", "BTN"] }
range "BTN" "6" { hands = ["AXs"] }
`), "broken.hcl")
	require.NoError(t, err)

	m := NewModel(c, render.NewRenderer(io.Discard, true), logger)
	require.NoError(t, m.Err())

	press(m, runes("j"))
	assert.Equal(t, "BTN", m.State().Position)
	require.ErrorIs(t, m.Err(), handrange.ErrMalformedToken)
	assert.Contains(t, m.View(), "Error:")
}
