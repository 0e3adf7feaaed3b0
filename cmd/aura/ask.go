package main

import (
	"fmt"
	"strings"

	// Packages
	banner "github.com/mutablelogic/go-aura/pkg/banner"
	httpclient "github.com/mutablelogic/go-aura/pkg/httpclient"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type AskCmd struct {
	City   []string `arg:"" optional:"" help:"City name"`
	Remote string   `name:"remote" env:"AURA_REMOTE" help:"Ask a running server instead, e.g. http://localhost:8080/api" optional:""`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *AskCmd) Run(globals *Globals) error {
	if cmd.Remote != "" {
		return cmd.remote(globals)
	}

	assistant, err := globals.assistant()
	if err != nil {
		return err
	}

	// An empty city is a warning, and the agent is not run
	city, err := banner.ValidateCity(strings.Join(cmd.City, " "))
	if err != nil {
		fmt.Println(show(globals, banner.Warning(banner.InvalidCity)).Render())
		return nil
	}

	// Ask the agent
	answer, err := assistant.Ask(globals.ctx, city)
	if err != nil {
		return err
	}
	fmt.Println(show(globals, banner.New(answer)).RenderMarkdown())
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// remote asks a server, which holds the credentials
func (cmd *AskCmd) remote(globals *Globals) error {
	client, err := httpclient.New(cmd.Remote, globals.Config.ClientOpts()...)
	if err != nil {
		return err
	}

	city, err := banner.ValidateCity(strings.Join(cmd.City, " "))
	if err != nil {
		fmt.Println(show(globals, banner.Warning(banner.InvalidCity)).Render())
		return nil
	}

	// Check the server is up before running the agent
	health, err := client.Health(globals.ctx)
	if err != nil {
		return err
	}
	globals.log.Debug().Str("status", health.Status).Str("version", health.Version).Msg("remote")

	response, err := client.Weather(globals.ctx, city)
	if err != nil {
		return err
	}

	// The server's style is recomputed from the text
	fmt.Println(show(globals, banner.New(response.Text)).RenderMarkdown())
	return nil
}

func show(globals *Globals, b banner.Banner) banner.Banner {
	globals.metrics.RecordBanner(b.Style)
	return b
}
