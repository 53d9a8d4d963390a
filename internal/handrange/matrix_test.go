package handrange

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/lox/preflopcharts/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playFlags(m *Matrix) [deck.NumRanks][deck.NumRanks]bool {
	var flags [deck.NumRanks][deck.NumRanks]bool
	for row := range deck.NumRanks {
		for col := range deck.NumRanks {
			flags[row][col] = m.Cell(row, col).Play
		}
	}
	return flags
}

func TestBuildEmpty(t *testing.T) {
	t.Parallel()

	m, err := Build(nil)
	require.NoError(t, err)

	cells := 0
	for _, row := range m.Rows() {
		for _, cell := range row {
			cells++
			assert.False(t, cell.Play, cell.Label)
		}
	}
	assert.Equal(t, TotalHands, cells)
	assert.Empty(t, m.Hands())
	assert.Equal(t, Stats{}, m.Stats())
	assert.InDelta(t, 0.0, m.Stats().Percent(), 1e-9)
}

func TestBuildGridLabels(t *testing.T) {
	t.Parallel()

	m, err := Build([]string{"22+"})
	require.NoError(t, err)

	for i := range deck.NumRanks {
		for j := range deck.NumRanks {
			label := m.Cell(i, j).Label
			switch {
			case i == j:
				r := deck.RankAt(i).String()
				assert.Equal(t, r+r, label)
			case i < j:
				assert.True(t, strings.HasSuffix(label, "s"), label)
				assert.Equal(t, deck.RankAt(i).String()+deck.RankAt(j).String()+"s", label)
			default:
				assert.True(t, strings.HasSuffix(label, "o"), label)
				assert.Equal(t, deck.RankAt(j).String()+deck.RankAt(i).String()+"o", label)
			}
			assert.Equal(t, i == j, m.Cell(i, j).Play, label)
		}
	}
}

func TestBuildUTGSixMax(t *testing.T) {
	t.Parallel()

	m, err := Build([]string{"66+", "A9s+", "KQs", "AQo+", "KQo"})
	require.NoError(t, err)

	want := []string{
		"66", "77", "88", "99", "TT", "JJ", "QQ", "KK", "AA",
		"A9s", "ATs", "AJs", "AQs", "AKs",
		"KQs",
		"AQo", "AKo",
		"KQo",
	}
	var got []string
	for _, h := range m.Hands() {
		got = append(got, h.String())
	}
	assert.ElementsMatch(t, want, got)

	for _, label := range want {
		assert.True(t, m.Contains(MustParseHand(label)), label)
	}
	assert.False(t, m.Contains(MustParseHand("55")))
	assert.False(t, m.Contains(MustParseHand("KJs")))

	stats := m.Stats()
	assert.Equal(t, 18, stats.TokenHandCount)
	assert.Equal(t, 18, stats.UniqueHands)
	assert.Equal(t, 9*6+5*4+4+2*12+12, stats.Combos)
	assert.False(t, stats.Overlap())
	assert.InDelta(t, 18.0/169*100, stats.Percent(), 1e-9)
	assert.InDelta(t, 114.0/1326*100, stats.ComboPercent(), 1e-9)
}

func TestBuildOverlapDoubleCounts(t *testing.T) {
	t.Parallel()

	m, err := Build([]string{"TT+", "JJ+", "AKs", "AK"})
	require.NoError(t, err)

	stats := m.Stats()
	assert.Equal(t, 5+4+1+2, stats.TokenHandCount)
	assert.Equal(t, 7, stats.UniqueHands)
	assert.True(t, stats.Overlap())
	assert.Greater(t, stats.Percent(), stats.UniquePercent())
}

func TestBuildIsOrderIndependent(t *testing.T) {
	t.Parallel()

	tokens := []string{"22+", "A2s+", "K5s+", "Q8s+", "J8s+", "T8s+", "97s+", "A8o+", "KTo+", "QJo"}
	base, err := Build(tokens)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for range 20 {
		shuffled := append([]string(nil), tokens...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		m, err := Build(shuffled)
		require.NoError(t, err)
		assert.Equal(t, playFlags(base), playFlags(m))
		assert.Equal(t, base.Stats(), m.Stats())
	}
}

func TestBuildMalformedFailsFast(t *testing.T) {
	t.Parallel()

	_, err := Build([]string{"88+", "AXs"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedToken)
	assert.Contains(t, err.Error(), "AXs")
}

func TestRowsReturnsCopy(t *testing.T) {
	t.Parallel()

	m, err := Build([]string{"AA"})
	require.NoError(t, err)

	rows := m.Rows()
	rows[0][0].Play = false
	assert.True(t, m.Cell(0, 0).Play)
}
