// Package handrange expands preflop range notation into the 169 canonical
// starting hands and projects them onto the 13x13 hand grid.
package handrange

import (
	"fmt"

	"github.com/lox/preflopcharts/internal/deck"
)

// TotalHands is the number of distinct starting-hand categories
const TotalHands = deck.NumRanks * deck.NumRanks

// TotalCombos is the number of distinct two-card holdings in a 52-card deck
const TotalCombos = 52 * 51 / 2

// Kind classifies a starting hand
type Kind uint8

const (
	Pair Kind = iota
	Suited
	Offsuit
)

// String returns the label suffix of the kind ("" for pairs)
func (k Kind) String() string {
	switch k {
	case Suited:
		return "s"
	case Offsuit:
		return "o"
	default:
		return ""
	}
}

// Hand is one of the 169 canonical starting hands. High is always the
// higher (or equal, for pairs) rank.
type Hand struct {
	High deck.Rank
	Low  deck.Rank
	Kind Kind
}

// NewPair returns the pocket pair of rank r
func NewPair(r deck.Rank) Hand {
	return Hand{High: r, Low: r, Kind: Pair}
}

// NewSuited returns the suited hand of two distinct ranks, in either order
func NewSuited(a, b deck.Rank) Hand {
	hi, lo := order(a, b)
	return Hand{High: hi, Low: lo, Kind: Suited}
}

// NewOffsuit returns the offsuit hand of two distinct ranks, in either order
func NewOffsuit(a, b deck.Rank) Hand {
	hi, lo := order(a, b)
	return Hand{High: hi, Low: lo, Kind: Offsuit}
}

func order(a, b deck.Rank) (deck.Rank, deck.Rank) {
	if b > a {
		return b, a
	}
	return a, b
}

// Valid reports whether h is one of the 169 canonical hands
func (h Hand) Valid() bool {
	if !h.High.Valid() || !h.Low.Valid() {
		return false
	}
	switch h.Kind {
	case Pair:
		return h.High == h.Low
	case Suited, Offsuit:
		return h.High > h.Low
	default:
		return false
	}
}

// String returns the hand label, e.g. "AA", "AKs" or "72o"
func (h Hand) String() string {
	return h.High.String() + h.Low.String() + h.Kind.String()
}

// Cell returns the grid coordinates of h. Pairs sit on the diagonal, suited
// hands above it and offsuit hands below it.
func (h Hand) Cell() (row, col int) {
	hi, lo := h.High.Index(), h.Low.Index()
	if h.Kind == Offsuit {
		return lo, hi
	}
	return hi, lo
}

// Index returns the row-major grid index of h (0..168)
func (h Hand) Index() int {
	row, col := h.Cell()
	return row*deck.NumRanks + col
}

// HandAt returns the hand occupying grid cell (row, col)
func HandAt(row, col int) Hand {
	r1, r2 := deck.RankAt(row), deck.RankAt(col)
	switch {
	case row < col:
		return NewSuited(r1, r2)
	case row > col:
		return NewOffsuit(r1, r2)
	default:
		return NewPair(r1)
	}
}

// AllHands returns all 169 hands in grid order
func AllHands() []Hand {
	hands := make([]Hand, 0, TotalHands)
	for row := range deck.NumRanks {
		for col := range deck.NumRanks {
			hands = append(hands, HandAt(row, col))
		}
	}
	return hands
}

// ParseHand parses a canonical hand label. Ranks are not reordered, so
// "KAs" is rejected.
func ParseHand(label string) (Hand, error) {
	if len(label) < 2 || len(label) > 3 {
		return Hand{}, fmt.Errorf("%w: %q", ErrMalformedToken, label)
	}
	hi, err := parseTokenRank(label[0])
	if err != nil {
		return Hand{}, fmt.Errorf("%w: %q: %v", ErrMalformedToken, label, err)
	}
	lo, err := parseTokenRank(label[1])
	if err != nil {
		return Hand{}, fmt.Errorf("%w: %q: %v", ErrMalformedToken, label, err)
	}

	var h Hand
	switch {
	case hi == lo && len(label) == 2:
		h = NewPair(hi)
	case hi > lo && len(label) == 3 && label[2] == 's':
		h = Hand{High: hi, Low: lo, Kind: Suited}
	case hi > lo && len(label) == 3 && label[2] == 'o':
		h = Hand{High: hi, Low: lo, Kind: Offsuit}
	default:
		return Hand{}, fmt.Errorf("%w: %q is not a canonical hand", ErrMalformedToken, label)
	}
	return h, nil
}

// MustParseHand parses a hand label and panics on error (for tests)
func MustParseHand(label string) Hand {
	h, err := ParseHand(label)
	if err != nil {
		panic(err)
	}
	return h
}

// FromCards returns the hand category of two hole cards
func FromCards(c1, c2 deck.Card) (Hand, error) {
	if c1 == c2 {
		return Hand{}, fmt.Errorf("duplicate card %s", c1)
	}
	if !c1.Rank.Valid() || !c2.Rank.Valid() {
		return Hand{}, fmt.Errorf("invalid cards %s %s", c1, c2)
	}
	switch {
	case c1.Rank == c2.Rank:
		return NewPair(c1.Rank), nil
	case c1.Suit == c2.Suit:
		return NewSuited(c1.Rank, c2.Rank), nil
	default:
		return NewOffsuit(c1.Rank, c2.Rank), nil
	}
}

// Combo is one concrete pair of hole cards
type Combo [2]deck.Card

// String returns the combo as four characters, e.g. "AsKs"
func (c Combo) String() string {
	return c[0].String() + c[1].String()
}

// ComboCount returns the number of concrete holdings in h: 6 for a pair,
// 4 for a suited hand and 12 for an offsuit hand.
func (h Hand) ComboCount() int {
	switch h.Kind {
	case Pair:
		return 6
	case Suited:
		return 4
	default:
		return 12
	}
}

// Combos enumerates the concrete holdings of h, high card first
func (h Hand) Combos() []Combo {
	combos := make([]Combo, 0, h.ComboCount())
	for i, s1 := range deck.Suits {
		for j, s2 := range deck.Suits {
			switch h.Kind {
			case Pair:
				if j <= i {
					continue
				}
			case Suited:
				if s1 != s2 {
					continue
				}
			case Offsuit:
				if s1 == s2 {
					continue
				}
			}
			combos = append(combos, Combo{deck.NewCard(s1, h.High), deck.NewCard(s2, h.Low)})
		}
	}
	return combos
}
