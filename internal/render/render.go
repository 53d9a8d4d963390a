// Package render draws hand grids and range summaries for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/preflopcharts/internal/app"
	"github.com/lox/preflopcharts/internal/deck"
	"github.com/lox/preflopcharts/internal/handrange"
)

const (
	expandedCellWidth = 5
	compactCellWidth  = 2
	summaryWidth      = 34
)

// Styles contains all styling for the grid and summary
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Raise   lipgloss.Style
	Fold    lipgloss.Style
	Percent lipgloss.Style
	Muted   lipgloss.Style
	Panel   lipgloss.Style
}

// Renderer renders views for one output
type Renderer struct {
	lg     *lipgloss.Renderer
	color  bool
	styles Styles
}

// NewRenderer creates a renderer for w. When noColor is set all colour is
// stripped and played cells are marked with brackets instead.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	lg := lipgloss.NewRenderer(w)
	if noColor {
		lg.SetColorProfile(termenv.Ascii)
	}
	return newRenderer(lg)
}

// NewRendererWithProfile creates a renderer with a fixed colour profile
func NewRendererWithProfile(w io.Writer, profile termenv.Profile) *Renderer {
	lg := lipgloss.NewRenderer(w)
	lg.SetColorProfile(profile)
	return newRenderer(lg)
}

func newRenderer(lg *lipgloss.Renderer) *Renderer {
	return &Renderer{
		lg:     lg,
		color:  lg.ColorProfile() != termenv.Ascii,
		styles: defaultStyles(lg),
	}
}

func defaultStyles(lg *lipgloss.Renderer) Styles {
	return Styles{
		Title: lg.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575")),
		Header: lg.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Align(lipgloss.Center),
		Raise: lg.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#22C55E")).
			Align(lipgloss.Center),
		Fold: lg.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#EF4444")).
			Align(lipgloss.Center),
		Percent: lg.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ADE80")),
		Muted: lg.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF")),
		Panel: lg.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#424242")).
			Padding(0, 1),
	}
}

// Color reports whether output carries colour
func (r *Renderer) Color() bool {
	return r.color
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() Styles {
	return r.styles
}

// Grid renders the 13x13 hand grid with rank headers
func (r *Renderer) Grid(v app.View) string {
	width := expandedCellWidth
	gap := " "
	if v.State.Compact {
		width = compactCellWidth
		gap = ""
	}
	header := r.styles.Header.Width(width)

	var lines []string

	cols := []string{header.Render("")}
	for _, rank := range deck.Ranks {
		cols = append(cols, header.Render(rank.String()))
	}
	lines = append(lines, strings.Join(cols, gap))

	for i, row := range v.Matrix.Rows() {
		cols = cols[:0]
		cols = append(cols, header.Render(deck.RankAt(i).String()))
		for _, cell := range row {
			cols = append(cols, r.cell(cell, width, v.State.Compact))
		}
		lines = append(lines, strings.Join(cols, gap))
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) cell(c handrange.Cell, width int, compact bool) string {
	style := r.styles.Fold
	if c.Play {
		style = r.styles.Raise
	}
	style = style.Width(width)

	var text string
	switch {
	case r.color && compact:
		text = ""
	case r.color:
		text = c.Label
	case compact && c.Play:
		text = "x"
	case compact:
		text = "."
	case c.Play:
		text = "[" + c.Label + "]"
	default:
		text = c.Label
	}
	return style.Render(text)
}

// Legend explains the cell colours
func (r *Renderer) Legend() string {
	if !r.color {
		return "[AKs] RAISE    AKs FOLD"
	}
	swatch := func(s lipgloss.Style) string { return s.Width(2).Render("") }
	return fmt.Sprintf("%s RAISE    %s FOLD", swatch(r.styles.Raise), swatch(r.styles.Fold))
}

// Summary renders the selection panel: seat, percentage and tokens
func (r *Renderer) Summary(v app.View) string {
	s := v.Stats()
	lines := []string{
		r.styles.Title.Render(v.State.Position) + fmt.Sprintf(" vs %d players", v.State.Players),
	}
	if v.State.ShowPercentage {
		lines = append(lines, r.styles.Percent.Render(FormatPercent(s.Percent())))
	}
	lines = append(lines,
		fmt.Sprintf("%d / %d combinations", s.TokenHandCount, handrange.TotalHands),
		r.styles.Muted.Render(fmt.Sprintf("%d unique hands, %d/%d combos (%s)",
			s.UniqueHands, s.Combos, handrange.TotalCombos, FormatPercent(s.ComboPercent()))),
	)
	if v.Note != "" {
		lines = append(lines, r.styles.Muted.Render(v.Note))
	}

	tokens := "No range defined"
	if len(v.Tokens) > 0 {
		tokens = strings.Join(v.Tokens, ", ")
	}
	lines = append(lines, "", r.styles.Muted.Width(summaryWidth).Render(tokens))

	return r.styles.Panel.Render(strings.Join(lines, "\n"))
}

// Page renders the summary beside the grid and legend
func (r *Renderer) Page(v app.View) string {
	right := lipgloss.JoinVertical(lipgloss.Left, r.Grid(v), "", r.Legend())
	return lipgloss.JoinHorizontal(lipgloss.Top, r.Summary(v), "  ", right)
}

// FormatPercent formats a percentage with one decimal place
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
