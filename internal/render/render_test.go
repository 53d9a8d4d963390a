package render

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/preflopcharts/internal/app"
	"github.com/lox/preflopcharts/internal/chart"
)

func view(t *testing.T, mutate func(c *chart.Chart, s app.State) app.State) app.View {
	t.Helper()
	c, err := chart.Default()
	require.NoError(t, err)

	s := app.NewState(c)
	if mutate != nil {
		s = mutate(c, s)
	}
	v, err := app.Compute(c, s)
	require.NoError(t, err)
	return v
}

func TestGridPlain(t *testing.T) {
	r := NewRenderer(io.Discard, true)
	require.False(t, r.Color())

	out := r.Grid(view(t, nil))
	assert.NotContains(t, out, "\x1b[")

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 14)
	assert.Equal(t, "A", strings.TrimSpace(lines[1][:expandedCellWidth]))
	assert.Equal(t, "2", strings.TrimSpace(lines[13][:expandedCellWidth]))

	assert.Contains(t, lines[0], "A     K     Q")
	assert.Contains(t, lines[1], "[AA]")
	assert.Contains(t, lines[1], "[AKs]")
	assert.Contains(t, lines[1], " A8s ")
	assert.Contains(t, lines[2], "[AKo]")
	assert.Contains(t, lines[13], " 22 ")
	assert.NotContains(t, lines[13], "[")
}

func TestGridCompactPlain(t *testing.T) {
	r := NewRenderer(io.Discard, true)

	out := r.Grid(view(t, func(c *chart.Chart, s app.State) app.State {
		return s.ToggleCompact()
	}))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 14)

	// Row A: AA..A9s raise, A8s..A2s fold
	assert.Equal(t, []string{"A", "x", "x", "x", "x", "x", "x", ".", ".", ".", ".", ".", ".", "."}, strings.Fields(lines[1]))
	for _, line := range lines {
		assert.Equal(t, 14*compactCellWidth, lipgloss.Width(line))
	}
}

func TestGridColor(t *testing.T) {
	r := NewRendererWithProfile(io.Discard, termenv.TrueColor)
	require.True(t, r.Color())

	out := r.Grid(view(t, nil))
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "AKs")
	assert.NotContains(t, out, "[AKs]")
}

func TestSummary(t *testing.T) {
	r := NewRenderer(io.Discard, true)

	out := r.Summary(view(t, nil))
	assert.Contains(t, out, "UTG vs 6 players")
	assert.Contains(t, out, "10.7%")
	assert.Contains(t, out, "18 / 169 combinations")
	assert.Contains(t, out, "18 unique hands, 114/1326 combos (8.6%)")
	assert.Contains(t, out, "Standard")
	assert.Contains(t, out, "66+, A9s+, KQs, AQo+, KQo")
}

func TestSummaryHiddenPercentage(t *testing.T) {
	r := NewRenderer(io.Discard, true)

	out := r.Summary(view(t, func(c *chart.Chart, s app.State) app.State {
		return s.TogglePercentage()
	}))
	assert.NotContains(t, out, "10.7%")
	assert.Contains(t, out, "18 / 169 combinations")
}

func TestSummaryEmptyRange(t *testing.T) {
	r := NewRenderer(io.Discard, true)

	out := r.Summary(view(t, func(c *chart.Chart, s app.State) app.State {
		return s.WithPosition(c, "BB")
	}))
	assert.Contains(t, out, "BB vs 6 players")
	assert.Contains(t, out, "0.0%")
	assert.Contains(t, out, "No range defined")
}

func TestPage(t *testing.T) {
	r := NewRenderer(io.Discard, true)

	out := r.Page(view(t, nil))
	assert.Contains(t, out, "UTG vs 6 players")
	assert.Contains(t, out, "[AKs]")
	assert.Contains(t, out, "RAISE")
	assert.Contains(t, out, "FOLD")
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "10.7%", FormatPercent(18.0/169*100))
	assert.Equal(t, "0.0%", FormatPercent(0))
	assert.Equal(t, "100.0%", FormatPercent(100))
}
