package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/preflopcharts/internal/server"
)

// ServeCmd serves the chart over HTTP and websockets
type ServeCmd struct {
	Addr            string        `default:":8080" env:"PREFLOP_ADDR" help:"Server address"`
	ShutdownTimeout time.Duration `default:"5s" help:"Time allowed for open requests to finish on shutdown"`
}

func (c *ServeCmd) Run(g *Globals) error {
	logger := g.Logger(g.Err)
	ch, err := g.LoadChart(logger)
	if err != nil {
		return err
	}

	s := server.NewServer(c.Addr, ch, logger, quartz.NewReal())

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(s.Start)
	eg.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), c.ShutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})
	return eg.Wait()
}
