package handrange

import (
	"slices"
)

// HandSet is an unordered set of starting hands
type HandSet map[Hand]struct{}

// NewHandSet creates a set holding the given hands
func NewHandSet(hands ...Hand) HandSet {
	s := make(HandSet, len(hands))
	for _, h := range hands {
		s.Add(h)
	}
	return s
}

// Add inserts h; adding a hand twice is a no-op
func (s HandSet) Add(h Hand) {
	s[h] = struct{}{}
}

// Contains reports whether h is in the set
func (s HandSet) Contains(h Hand) bool {
	_, ok := s[h]
	return ok
}

// Len returns the number of hands in the set
func (s HandSet) Len() int {
	return len(s)
}

// Union adds every hand of other to s
func (s HandSet) Union(other HandSet) {
	for h := range other {
		s[h] = struct{}{}
	}
}

// Combos returns the number of concrete holdings covered by the set
func (s HandSet) Combos() int {
	n := 0
	for h := range s {
		n += h.ComboCount()
	}
	return n
}

// Hands returns the members in grid order
func (s HandSet) Hands() []Hand {
	hands := make([]Hand, 0, len(s))
	for h := range s {
		hands = append(hands, h)
	}
	slices.SortFunc(hands, func(a, b Hand) int {
		return a.Index() - b.Index()
	})
	return hands
}

// Labels returns the hand labels in grid order
func (s HandSet) Labels() []string {
	hands := s.Hands()
	labels := make([]string, len(hands))
	for i, h := range hands {
		labels[i] = h.String()
	}
	return labels
}
