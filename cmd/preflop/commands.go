package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lox/preflopcharts/internal/app"
	"github.com/lox/preflopcharts/internal/chart"
	"github.com/lox/preflopcharts/internal/deck"
	"github.com/lox/preflopcharts/internal/handrange"
	"github.com/lox/preflopcharts/internal/server"
)

// ShowCmd prints one seat's grid and summary
type ShowCmd struct {
	Players        int    `short:"n" default:"6" help:"Number of players at the table"`
	Position       string `short:"p" help:"Seat to show (defaults to the first to act)"`
	Compact        bool   `short:"c" help:"Use compact cells"`
	HidePercentage bool   `help:"Hide the range percentage"`
	JSON           bool   `name:"json" help:"Print the view as JSON"`
}

func (c *ShowCmd) Run(g *Globals) error {
	logger := g.Logger(g.Err)
	ch, err := g.LoadChart(logger)
	if err != nil {
		return err
	}

	state, err := app.Select(ch, c.Players, c.Position)
	if err != nil {
		return err
	}
	state.Compact = c.Compact
	state.ShowPercentage = !c.HidePercentage

	view, err := app.Compute(ch, state)
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(g.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(server.ViewDataFrom(view))
	}

	_, err = fmt.Fprintln(g.Out, g.Renderer().Page(view))
	return err
}

// ExpandCmd prints the hands denoted by range tokens
type ExpandCmd struct {
	Tokens []string `arg:"" help:"Range tokens such as 88+, AJs+ or A5s-A2s (comma lists allowed)"`
	Combos bool     `help:"List the concrete card combinations of each hand"`
}

func (c *ExpandCmd) Run(g *Globals) error {
	for _, arg := range c.Tokens {
		tokens, err := handrange.ParseRange(arg)
		if err != nil {
			return err
		}
		if len(tokens) == 0 {
			return fmt.Errorf("%w: %q", handrange.ErrMalformedToken, arg)
		}
		for _, token := range tokens {
			set := handrange.MustExpand(token)
			fmt.Fprintf(g.Out, "%s: %s (%d hands, %d combos)\n",
				token, strings.Join(set.Labels(), " "), set.Len(), set.Combos())

			if !c.Combos {
				continue
			}
			for _, h := range set.Hands() {
				combos := make([]string, 0, h.ComboCount())
				for _, combo := range h.Combos() {
					combos = append(combos, combo.String())
				}
				fmt.Fprintf(g.Out, "  %-4s %s\n", h, strings.Join(combos, " "))
			}
		}
	}
	return nil
}

// CheckCmd reports whether two hole cards open from a seat
type CheckCmd struct {
	Players  int    `short:"n" default:"6" help:"Number of players at the table"`
	Position string `short:"p" required:"" help:"Seat to check"`
	Cards    string `arg:"" help:"Two hole cards, e.g. AhKd"`
}

func (c *CheckCmd) Run(g *Globals) error {
	cards, err := deck.ParseCards(c.Cards)
	if err != nil {
		return err
	}
	if len(cards) != 2 {
		return fmt.Errorf("expected two hole cards, got %d in %q", len(cards), c.Cards)
	}
	hand, err := handrange.FromCards(cards[0], cards[1])
	if err != nil {
		return err
	}

	logger := g.Logger(g.Err)
	ch, err := g.LoadChart(logger)
	if err != nil {
		return err
	}
	state, err := app.Select(ch, c.Players, c.Position)
	if err != nil {
		return err
	}
	view, err := app.Compute(ch, state)
	if err != nil {
		return err
	}

	action := "FOLD"
	if view.Matrix.Contains(hand) {
		action = "RAISE"
	}
	logger.Debug("Checked hand", "cards", c.Cards, "hand", hand, "players", state.Players, "position", state.Position)
	_, err = fmt.Fprintf(g.Out, "%s %s\n", hand, action)
	return err
}

// PositionsCmd lists the seats at each table size
type PositionsCmd struct {
	Players int `short:"n" help:"Only list this table size"`
}

func (c *PositionsCmd) Run(g *Globals) error {
	ch, err := g.LoadChart(g.Logger(g.Err))
	if err != nil {
		return err
	}

	counts := ch.PlayerCounts()
	if c.Players != 0 {
		if !ch.HasPlayers(c.Players) {
			return fmt.Errorf("%w: %d", chart.ErrUnsupportedPlayers, c.Players)
		}
		counts = []int{c.Players}
	}
	for _, n := range counts {
		fmt.Fprintf(g.Out, "%d: %s\n", n, strings.Join(ch.Positions(n), " "))
	}
	return nil
}

// ValidateCmd checks a chart file and reports every problem
type ValidateCmd struct {
	File string `arg:"" optional:"" type:"path" help:"Chart file to validate (defaults to --charts)"`
}

func (c *ValidateCmd) Run(g *Globals) error {
	logger := g.Logger(g.Err)

	if c.File != "" {
		if _, err := os.Stat(c.File); err != nil {
			return fmt.Errorf("failed to read chart: %w", err)
		}
		g.Charts = c.File
	}

	ch, err := g.LoadChart(logger)
	if err != nil {
		var joined interface{ Unwrap() []error }
		if errors.As(err, &joined) {
			for _, e := range joined.Unwrap() {
				logger.Error("Invalid chart", "error", e)
			}
		}
		return err
	}

	_, err = fmt.Fprintf(g.Out, "%s: %d tables, %d ranges OK\n", ch.Source(), len(ch.PlayerCounts()), len(ch.Ranges()))
	return err
}
