package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/lox/preflopcharts/internal/tui"
)

// TuiCmd runs the interactive browser
type TuiCmd struct {
	LogFile string `help:"Write logs to this file (the terminal belongs to the browser)" type:"path"`
}

func (c *TuiCmd) Run(g *Globals) error {
	var w io.Writer = io.Discard
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	logger := g.Logger(w).WithPrefix("MAIN")
	ch, err := g.LoadChart(logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	logger.Info("Starting browser", "chart", ch.Source())
	return tui.Run(ctx, ch, logger, g.NoColor)
}
