package handrange

import (
	"github.com/lox/preflopcharts/internal/deck"
)

// Cell is one square of the hand grid
type Cell struct {
	Hand  Hand
	Label string
	Play  bool
}

// Stats summarises a built range.
//
// TokenHandCount sums the size of every token's expansion, so overlapping
// tokens are counted more than once. UniqueHands counts distinct hands.
type Stats struct {
	TokenHandCount int
	UniqueHands    int
	Combos         int
}

// Percent is TokenHandCount as a share of the 169 starting hands
func (s Stats) Percent() float64 {
	return float64(s.TokenHandCount) / TotalHands * 100
}

// UniquePercent is UniqueHands as a share of the 169 starting hands
func (s Stats) UniquePercent() float64 {
	return float64(s.UniqueHands) / TotalHands * 100
}

// ComboPercent is Combos as a share of the 1326 possible holdings
func (s Stats) ComboPercent() float64 {
	return float64(s.Combos) / TotalCombos * 100
}

// Overlap reports whether some tokens expand to the same hands
func (s Stats) Overlap() bool {
	return s.TokenHandCount != s.UniqueHands
}

// Matrix is the 13x13 hand grid for one range
type Matrix struct {
	cells [deck.NumRanks][deck.NumRanks]Cell
	set   HandSet
	stats Stats
}

// Build expands every token and projects the resulting hands onto the grid.
// A malformed token fails the whole build. An empty token list yields a grid
// where every cell folds.
func Build(tokens []string) (*Matrix, error) {
	set := make(HandSet)
	var stats Stats

	for _, token := range tokens {
		hands, err := Expand(token)
		if err != nil {
			return nil, err
		}
		stats.TokenHandCount += hands.Len()
		set.Union(hands)
	}
	stats.UniqueHands = set.Len()
	stats.Combos = set.Combos()

	m := &Matrix{set: set, stats: stats}
	for row := range deck.NumRanks {
		for col := range deck.NumRanks {
			h := HandAt(row, col)
			m.cells[row][col] = Cell{
				Hand:  h,
				Label: h.String(),
				Play:  set.Contains(h),
			}
		}
	}
	return m, nil
}

// Cell returns the cell at (row, col)
func (m *Matrix) Cell(row, col int) Cell {
	return m.cells[row][col]
}

// Rows returns a copy of the grid rows
func (m *Matrix) Rows() [][]Cell {
	rows := make([][]Cell, deck.NumRanks)
	for i := range m.cells {
		rows[i] = append([]Cell(nil), m.cells[i][:]...)
	}
	return rows
}

// Contains reports whether h is played
func (m *Matrix) Contains(h Hand) bool {
	return m.set.Contains(h)
}

// Hands returns the played hands in grid order
func (m *Matrix) Hands() []Hand {
	return m.set.Hands()
}

// Stats returns the range statistics
func (m *Matrix) Stats() Stats {
	return m.stats
}
