package main

import (
	"fmt"

	"github.com/lox/preflopcharts/internal/fileutil"
)

// ExportCmd writes the active chart as HCL, ready to edit and load with --charts
type ExportCmd struct {
	File string `arg:"" optional:"" type:"path" help:"Write to this file instead of stdout"`
}

func (c *ExportCmd) Run(g *Globals) error {
	logger := g.Logger(g.Err)
	ch, err := g.LoadChart(logger)
	if err != nil {
		return err
	}

	if c.File == "" {
		return ch.WriteHCL(g.Out)
	}
	if err := fileutil.WriteAtomic(c.File, 0o644, ch.WriteHCL); err != nil {
		return fmt.Errorf("failed to export chart: %w", err)
	}
	logger.Info("Exported chart", "source", ch.Source(), "file", c.File)
	return nil
}
