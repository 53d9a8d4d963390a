// Package chart holds the static opening-range tables: which seats exist at
// each table size, and which hands each seat opens with.
package chart

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/preflopcharts/internal/handrange"
)

// Supported table sizes
const (
	MinPlayers = 2
	MaxPlayers = 9
)

var (
	// ErrUnsupportedPlayers is returned for a player count without a table
	ErrUnsupportedPlayers = errors.New("unsupported player count")

	// ErrUnknownPosition is returned for a seat that does not exist at a table size
	ErrUnknownPosition = errors.New("unknown position")
)

//go:embed charts/default.hcl
var defaultChart []byte

// DefaultFilename is the name reported for the embedded chart in diagnostics
const DefaultFilename = "default.hcl"

type fileConfig struct {
	Tables []tableBlock `hcl:"table,block"`
	Ranges []rangeBlock `hcl:"range,block"`
}

type tableBlock struct {
	Players   string   `hcl:"players,label"`
	Positions []string `hcl:"positions"`
}

type rangeBlock struct {
	Position string   `hcl:"position,label"`
	Players  string   `hcl:"players,label"`
	Hands    []string `hcl:"hands"`
	Note     string   `hcl:"note,optional"`
}

// Range is the opening range of one seat at one table size
type Range struct {
	Position string
	Players  int
	Tokens   []string
	Note     string
}

type rangeKey struct {
	position string
	players  int
}

// Chart is a read-only set of opening ranges
type Chart struct {
	source    string
	positions map[int][]string
	ranges    map[rangeKey]Range
	order     []rangeKey
}

// Default returns the embedded chart
func Default() (*Chart, error) {
	c, err := Parse(defaultChart, DefaultFilename)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads a chart from an HCL file. A missing file falls back to the
// embedded chart.
func Load(filename string) (*Chart, error) {
	if filename == "" {
		return Default()
	}
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read chart: %w", err)
	}

	c, err := Parse(src, filename)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Parse decodes chart HCL without validating range notation
func Parse(src []byte, filename string) (*Chart, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	c := &Chart{
		source:    filename,
		positions: make(map[int][]string),
		ranges:    make(map[rangeKey]Range),
	}

	for _, t := range cfg.Tables {
		players, err := parsePlayers(t.Players)
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", t.Players, err)
		}
		if _, dup := c.positions[players]; dup {
			return nil, fmt.Errorf("table %q defined twice", t.Players)
		}
		c.positions[players] = t.Positions
	}

	for _, r := range cfg.Ranges {
		players, err := parsePlayers(r.Players)
		if err != nil {
			return nil, fmt.Errorf("range %q %q: %w", r.Position, r.Players, err)
		}
		key := rangeKey{position: r.Position, players: players}
		if _, dup := c.ranges[key]; dup {
			return nil, fmt.Errorf("range %q %q defined twice", r.Position, r.Players)
		}
		c.ranges[key] = Range{
			Position: r.Position,
			Players:  players,
			Tokens:   r.Hands,
			Note:     r.Note,
		}
		c.order = append(c.order, key)
	}

	return c, nil
}

func parsePlayers(label string) (int, error) {
	n, err := strconv.Atoi(label)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedPlayers, label)
	}
	if n < MinPlayers || n > MaxPlayers {
		return 0, fmt.Errorf("%w: %d (must be between %d and %d)", ErrUnsupportedPlayers, n, MinPlayers, MaxPlayers)
	}
	return n, nil
}

// Validate checks table coverage and that every range token expands. All
// problems are reported together.
func (c *Chart) Validate() error {
	var errs []error

	for n := MinPlayers; n <= MaxPlayers; n++ {
		positions, ok := c.positions[n]
		if !ok || len(positions) == 0 {
			errs = append(errs, fmt.Errorf("%w: no positions for %d players", ErrUnsupportedPlayers, n))
			continue
		}
		seen := make(map[string]bool, len(positions))
		for _, p := range positions {
			if seen[p] {
				errs = append(errs, fmt.Errorf("table %d: position %q listed twice", n, p))
			}
			seen[p] = true
		}
	}

	for _, key := range c.order {
		r := c.ranges[key]
		if !slices.Contains(c.positions[r.Players], r.Position) {
			errs = append(errs, fmt.Errorf("range %s/%d: %w", r.Position, r.Players, ErrUnknownPosition))
		}
		for _, token := range r.Tokens {
			if _, err := handrange.Expand(token); err != nil {
				errs = append(errs, fmt.Errorf("range %s/%d: %w", r.Position, r.Players, err))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s: %w", c.source, errors.Join(errs...))
	}
	return nil
}

// Ranges returns every configured range in file order
func (c *Chart) Ranges() []Range {
	ranges := make([]Range, 0, len(c.order))
	for _, key := range c.order {
		ranges = append(ranges, c.Range(key.position, key.players))
	}
	return ranges
}

// Source returns the file the chart was read from
func (c *Chart) Source() string {
	return c.source
}

// PlayerCounts returns the configured table sizes in ascending order
func (c *Chart) PlayerCounts() []int {
	counts := make([]int, 0, len(c.positions))
	for n := range c.positions {
		counts = append(counts, n)
	}
	slices.Sort(counts)
	return counts
}

// Positions returns the seats at a table of the given size, earliest to act
// first. Unknown sizes return nil.
func (c *Chart) Positions(players int) []string {
	return slices.Clone(c.positions[players])
}

// HasPlayers reports whether the chart has a table of the given size
func (c *Chart) HasPlayers(players int) bool {
	return len(c.positions[players]) > 0
}

// HasPosition reports whether position exists at the given table size
func (c *Chart) HasPosition(position string, players int) bool {
	return slices.Contains(c.positions[players], position)
}

// Range returns the configured range of a seat. A seat without a range is
// returned with no tokens, meaning it never opens.
func (c *Chart) Range(position string, players int) Range {
	r, ok := c.ranges[rangeKey{position: position, players: players}]
	if !ok {
		return Range{Position: position, Players: players}
	}
	r.Tokens = slices.Clone(r.Tokens)
	return r
}

// Tokens returns the range tokens of a seat; missing ranges are empty
func (c *Chart) Tokens(position string, players int) []string {
	return c.Range(position, players).Tokens
}

// Note returns the free-text note attached to a range
func (c *Chart) Note(position string, players int) string {
	return c.Range(position, players).Note
}

// Lookup is like Range but reports an error when the seat does not exist at
// the table size.
func (c *Chart) Lookup(position string, players int) (Range, error) {
	if _, ok := c.positions[players]; !ok {
		return Range{}, fmt.Errorf("%w: %d", ErrUnsupportedPlayers, players)
	}
	if !c.HasPosition(position, players) {
		return Range{}, fmt.Errorf("%w: %q at %d players", ErrUnknownPosition, position, players)
	}
	return c.Range(position, players), nil
}
