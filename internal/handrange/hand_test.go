package handrange

import (
	"testing"

	"github.com/lox/preflopcharts/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllHands(t *testing.T) {
	t.Parallel()

	hands := AllHands()
	require.Len(t, hands, TotalHands)

	seen := make(map[string]bool)
	var pairs, suited, offsuit int
	for i, h := range hands {
		assert.True(t, h.Valid(), "%v", h)
		assert.Equal(t, i, h.Index())
		assert.False(t, seen[h.String()], "duplicate %s", h)
		seen[h.String()] = true

		switch h.Kind {
		case Pair:
			pairs++
		case Suited:
			suited++
		case Offsuit:
			offsuit++
		}
	}
	assert.Equal(t, 13, pairs)
	assert.Equal(t, 78, suited)
	assert.Equal(t, 78, offsuit)
}

func TestHandCell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label    string
		row, col int
	}{
		{"AA", 0, 0},
		{"AKs", 0, 1},
		{"AKo", 1, 0},
		{"22", 12, 12},
		{"72o", 12, 7},
		{"72s", 7, 12},
	}
	for _, tt := range tests {
		h := MustParseHand(tt.label)
		row, col := h.Cell()
		assert.Equal(t, tt.row, row, tt.label)
		assert.Equal(t, tt.col, col, tt.label)
		assert.Equal(t, h, HandAt(tt.row, tt.col))
	}
}

func TestParseHand(t *testing.T) {
	t.Parallel()

	h, err := ParseHand("T9s")
	require.NoError(t, err)
	assert.Equal(t, Hand{High: deck.Ten, Low: deck.Nine, Kind: Suited}, h)
	assert.Equal(t, "T9s", h.String())

	for _, bad := range []string{"", "T", "9Ts", "TT o", "TTs", "T9", "T9x", "t9s"} {
		_, err := ParseHand(bad)
		assert.ErrorIs(t, err, ErrMalformedToken, bad)
	}
}

func TestFromCards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cards string
		want  string
	}{
		{"AhKd", "AKo"},
		{"KdAh", "AKo"},
		{"7c2c", "72s"},
		{"2c7c", "72s"},
		{"QsQh", "QQ"},
	}
	for _, tt := range tests {
		cards := deck.MustParseCards(tt.cards)
		h, err := FromCards(cards[0], cards[1])
		require.NoError(t, err)
		assert.Equal(t, tt.want, h.String(), tt.cards)
	}

	c := deck.NewCard(deck.Spades, deck.Ace)
	_, err := FromCards(c, c)
	assert.Error(t, err)
}

func TestCombos(t *testing.T) {
	t.Parallel()

	total := 0
	for _, h := range AllHands() {
		combos := h.Combos()
		require.Len(t, combos, h.ComboCount(), h.String())
		for _, c := range combos {
			back, err := FromCards(c[0], c[1])
			require.NoError(t, err)
			assert.Equal(t, h, back)
		}
		total += len(combos)
	}
	assert.Equal(t, TotalCombos, total)

	assert.Equal(t, "AsKs", MustParseHand("AKs").Combos()[0].String())
}
