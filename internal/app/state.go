// Package app holds the browser's selection state and turns it into a view.
// State values are immutable: every transition returns a new State.
package app

import (
	"fmt"
	"slices"

	"github.com/lox/preflopcharts/internal/chart"
	"github.com/lox/preflopcharts/internal/handrange"
)

// DefaultPlayers is the table size shown on start-up
const DefaultPlayers = 6

// State is the current selection
type State struct {
	Players        int
	Position       string
	Compact        bool
	ShowPercentage bool
}

// NewState returns the start-up selection: six players, the first seat,
// expanded cells and the percentage visible.
func NewState(c *chart.Chart) State {
	s := State{ShowPercentage: true}
	return s.WithPlayers(c, DefaultPlayers)
}

// Select returns the state showing one seat, reporting table sizes and seats
// the chart does not have. An empty position selects the first seat.
func Select(c *chart.Chart, players int, position string) (State, error) {
	if !c.HasPlayers(players) {
		return State{}, fmt.Errorf("%w: %d", chart.ErrUnsupportedPlayers, players)
	}
	s := State{ShowPercentage: true}.WithPlayers(c, players)
	if position == "" {
		return s, nil
	}
	if !c.HasPosition(position, players) {
		return State{}, fmt.Errorf("%w: %q at %d players", chart.ErrUnknownPosition, position, players)
	}
	return s.WithPosition(c, position), nil
}

// WithPlayers selects a table size and moves to its first seat. Sizes the
// chart does not know leave the state unchanged.
func (s State) WithPlayers(c *chart.Chart, players int) State {
	positions := c.Positions(players)
	if len(positions) == 0 {
		return s
	}
	s.Players = players
	s.Position = positions[0]
	return s
}

// NextPlayers moves to the next larger table size, wrapping around
func (s State) NextPlayers(c *chart.Chart) State {
	return s.stepPlayers(c, 1)
}

// PrevPlayers moves to the next smaller table size, wrapping around
func (s State) PrevPlayers(c *chart.Chart) State {
	return s.stepPlayers(c, -1)
}

func (s State) stepPlayers(c *chart.Chart, delta int) State {
	counts := c.PlayerCounts()
	if len(counts) == 0 {
		return s
	}
	i := slices.Index(counts, s.Players)
	if i < 0 {
		return s.WithPlayers(c, counts[0])
	}
	i = (i + delta + len(counts)) % len(counts)
	return s.WithPlayers(c, counts[i])
}

// WithPosition selects a seat at the current table size. Unknown seats leave
// the state unchanged.
func (s State) WithPosition(c *chart.Chart, position string) State {
	if !c.HasPosition(position, s.Players) {
		return s
	}
	s.Position = position
	return s
}

// NextPosition moves one seat later, wrapping around
func (s State) NextPosition(c *chart.Chart) State {
	return s.stepPosition(c, 1)
}

// PrevPosition moves one seat earlier, wrapping around
func (s State) PrevPosition(c *chart.Chart) State {
	return s.stepPosition(c, -1)
}

func (s State) stepPosition(c *chart.Chart, delta int) State {
	positions := c.Positions(s.Players)
	if len(positions) == 0 {
		return s
	}
	i := slices.Index(positions, s.Position)
	if i < 0 {
		i = 0
	} else {
		i = (i + delta + len(positions)) % len(positions)
	}
	s.Position = positions[i]
	return s
}

// ToggleCompact flips between compact and expanded cells
func (s State) ToggleCompact() State {
	s.Compact = !s.Compact
	return s
}

// TogglePercentage flips percentage visibility
func (s State) TogglePercentage() State {
	s.ShowPercentage = !s.ShowPercentage
	return s
}

// View is everything needed to draw one selection
type View struct {
	State  State
	Tokens []string
	Note   string
	Matrix *handrange.Matrix
}

// Stats is shorthand for the matrix statistics
func (v View) Stats() handrange.Stats {
	return v.Matrix.Stats()
}

// Compute builds the view for a state. Seats without a range yield an
// all-fold grid.
func Compute(c *chart.Chart, s State) (View, error) {
	r := c.Range(s.Position, s.Players)
	m, err := handrange.Build(r.Tokens)
	if err != nil {
		return View{}, err
	}
	return View{
		State:  s,
		Tokens: r.Tokens,
		Note:   r.Note,
		Matrix: m,
	}, nil
}
