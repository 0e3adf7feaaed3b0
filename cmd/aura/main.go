package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	config "github.com/mutablelogic/go-aura/pkg/config"
	metrics "github.com/mutablelogic/go-aura/pkg/metrics"
	collectors "github.com/prometheus/client_golang/prometheus/collectors"
	zerolog "github.com/rs/zerolog"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	Config config.Config `embed:""`

	// Context
	ctx     context.Context
	log     zerolog.Logger
	metrics *metrics.Metrics
}

type CLI struct {
	Globals

	// Commands
	Run     RunCmd     `cmd:"" help:"Serve the weather page and API"`
	Ask     AskCmd     `cmd:"" help:"Ask the weather agent about a city"`
	Weather WeatherCmd `cmd:"" help:"Look up the current weather without the agent"`
	Version VersionCmd `cmd:"" help:"Print the version"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Read .env before the environment is bound to flags
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Weather agent command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Create a logger
	level := zerolog.InfoLevel
	if cli.Config.Debug {
		level = zerolog.DebugLevel
	}
	cli.Globals.log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().
		Logger()
	cli.Globals.ctx = cli.Globals.log.WithContext(ctx)
	cli.Globals.metrics = metrics.New()
	cli.Globals.metrics.Registry().MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
