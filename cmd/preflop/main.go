package main

import (
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/lox/preflopcharts/internal/chart"
	"github.com/lox/preflopcharts/internal/render"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Debug   bool   `help:"Enable debug logging"`
	Charts  string `help:"Path to an HCL chart file (defaults to the built-in chart)" env:"PREFLOP_CHARTS" type:"path"`
	NoColor bool   `help:"Disable colour output"`

	Out io.Writer `kong:"-"`
	Err io.Writer `kong:"-"`
}

type CLI struct {
	Globals

	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Tui       TuiCmd           `cmd:"" default:"1" help:"Browse opening ranges interactively"`
	Show      ShowCmd          `cmd:"" help:"Print the range grid for one seat"`
	Expand    ExpandCmd        `cmd:"" help:"Expand range notation into hands"`
	Check     CheckCmd         `cmd:"" help:"Check whether hole cards open from a seat"`
	Positions PositionsCmd     `cmd:"" help:"List the seats at each table size"`
	Validate  ValidateCmd      `cmd:"" help:"Validate a chart file"`
	Export    ExportCmd        `cmd:"" help:"Write the chart as editable HCL"`
	Serve     ServeCmd         `cmd:"" help:"Serve the chart over HTTP and websockets"`
}

func main() {
	// A missing .env is fine
	_ = godotenv.Load()

	cli := CLI{Globals: Globals{Out: os.Stdout, Err: os.Stderr}}
	ctx := kong.Parse(&cli,
		kong.Name("preflop"),
		kong.Description("Preflop opening-range charts for Texas Hold'em"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// Logger returns a logger writing to w at the configured level
func (g *Globals) Logger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if g.Debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
}

// LoadChart loads the configured chart, or the built-in one
func (g *Globals) LoadChart(logger *log.Logger) (*chart.Chart, error) {
	c, err := chart.Load(g.Charts)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded chart", "source", c.Source(), "tables", len(c.PlayerCounts()), "ranges", len(c.Ranges()))
	return c, nil
}

// Renderer returns a renderer for command output
func (g *Globals) Renderer() *render.Renderer {
	return render.NewRenderer(g.Out, g.NoColor)
}
