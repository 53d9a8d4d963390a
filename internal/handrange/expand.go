package handrange

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/preflopcharts/internal/deck"
)

// ErrMalformedToken is returned for range notation that matches none of the
// supported forms.
var ErrMalformedToken = errors.New("malformed range token")

// suffix of a token base: pair, suited, offsuit or both
type suffix uint8

const (
	suffixPair suffix = iota
	suffixSuited
	suffixOffsuit
	suffixAny
)

// base is a parsed token without its "+" or dash
type base struct {
	high, low deck.Rank
	suffix    suffix
}

// Expand parses a single range token and returns the hands it denotes.
//
// Supported forms:
//
//	"88", "AKs", "AKo", "AK"        one hand (both variants for "AK")
//	"88+"                           88 and every higher pair
//	"ATs+", "ATo+", "AT+"           A fixed, kicker from T up to K
//	"22-66", "A5s-A2s"              inclusive spans
//
// Anything else yields an error wrapping ErrMalformedToken.
func Expand(token string) (HandSet, error) {
	set := make(HandSet)
	if err := expandInto(set, token); err != nil {
		return nil, err
	}
	return set, nil
}

// MustExpand expands a token and panics on error (for tests and static data)
func MustExpand(token string) HandSet {
	set, err := Expand(token)
	if err != nil {
		panic(err)
	}
	return set
}

// ParseRange splits comma separated notation such as "88+, AJs+, KQs" into
// tokens, checking that each one expands.
func ParseRange(notation string) ([]string, error) {
	var tokens []string
	for part := range strings.SplitSeq(notation, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, err := Expand(part); err != nil {
			return nil, err
		}
		tokens = append(tokens, part)
	}
	return tokens, nil
}

func expandInto(set HandSet, token string) error {
	switch {
	case token == "":
		return fmt.Errorf("%w: empty token", ErrMalformedToken)
	case strings.Count(token, "-") == 1:
		return expandDash(set, token)
	case strings.HasSuffix(token, "+"):
		b, err := parseBase(token, strings.TrimSuffix(token, "+"))
		if err != nil {
			return err
		}
		expandPlus(set, b)
		return nil
	default:
		b, err := parseBase(token, token)
		if err != nil {
			return err
		}
		addBase(set, b, b.low)
		return nil
	}
}

// expandPlus adds the base hand and everything above it. Pairs climb to
// aces; unpaired hands keep the high card fixed and raise the kicker up to,
// but never onto, the high card.
func expandPlus(set HandSet, b base) {
	if b.suffix == suffixPair {
		for i := b.high.Index(); i >= 0; i-- {
			set.Add(NewPair(deck.RankAt(i)))
		}
		return
	}
	for i := b.low.Index(); i > b.high.Index(); i-- {
		addBase(set, b, deck.RankAt(i))
	}
}

func expandDash(set HandSet, token string) error {
	left, right, _ := strings.Cut(token, "-")
	start, err := parseBase(token, left)
	if err != nil {
		return err
	}
	end, err := parseBase(token, right)
	if err != nil {
		return err
	}
	if start.suffix != end.suffix {
		return fmt.Errorf("%w: %q mixes hand types", ErrMalformedToken, token)
	}

	if start.suffix == suffixPair {
		lo, hi := span(start.high, end.high)
		for i := lo; i >= hi; i-- {
			set.Add(NewPair(deck.RankAt(i)))
		}
		return nil
	}

	if start.high != end.high {
		return fmt.Errorf("%w: %q must keep the same high card", ErrMalformedToken, token)
	}
	lo, hi := span(start.low, end.low)
	for i := lo; i >= hi; i-- {
		addBase(set, start, deck.RankAt(i))
	}
	return nil
}

// span returns the grid indices of two ranks, lowest rank first
func span(a, b deck.Rank) (int, int) {
	ia, ib := a.Index(), b.Index()
	if ia < ib {
		return ib, ia
	}
	return ia, ib
}

func addBase(set HandSet, b base, kicker deck.Rank) {
	switch b.suffix {
	case suffixPair:
		set.Add(NewPair(b.high))
	case suffixSuited:
		set.Add(Hand{High: b.high, Low: kicker, Kind: Suited})
	case suffixOffsuit:
		set.Add(Hand{High: b.high, Low: kicker, Kind: Offsuit})
	case suffixAny:
		set.Add(Hand{High: b.high, Low: kicker, Kind: Suited})
		set.Add(Hand{High: b.high, Low: kicker, Kind: Offsuit})
	}
}

// parseBase parses "RR", "R1R2", "R1R2s" or "R1R2o". token is the full
// input and is only used in error messages.
func parseBase(token, s string) (base, error) {
	if len(s) < 2 || len(s) > 3 {
		return base{}, fmt.Errorf("%w: %q", ErrMalformedToken, token)
	}
	r1, err := parseTokenRank(s[0])
	if err != nil {
		return base{}, fmt.Errorf("%w: %q: %v", ErrMalformedToken, token, err)
	}
	r2, err := parseTokenRank(s[1])
	if err != nil {
		return base{}, fmt.Errorf("%w: %q: %v", ErrMalformedToken, token, err)
	}

	if r1 == r2 {
		if len(s) == 3 {
			return base{}, fmt.Errorf("%w: %q: pocket pairs cannot have a suited/offsuit modifier", ErrMalformedToken, token)
		}
		return base{high: r1, low: r2, suffix: suffixPair}, nil
	}
	if r1 < r2 {
		return base{}, fmt.Errorf("%w: %q: higher rank must come first", ErrMalformedToken, token)
	}

	b := base{high: r1, low: r2, suffix: suffixAny}
	if len(s) == 3 {
		switch s[2] {
		case 's':
			b.suffix = suffixSuited
		case 'o':
			b.suffix = suffixOffsuit
		default:
			return base{}, fmt.Errorf("%w: %q: invalid modifier %q", ErrMalformedToken, token, s[2])
		}
	}
	return b, nil
}

// parseTokenRank accepts only the upper-case rank characters used in range
// notation.
func parseTokenRank(c byte) (deck.Rank, error) {
	if c >= 'a' && c <= 'z' {
		return 0, fmt.Errorf("rank %q must be upper case", c)
	}
	return deck.ParseRank(c)
}
