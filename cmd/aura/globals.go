package main

import (
	// Packages
	agent "github.com/mutablelogic/go-aura/pkg/agent"
	assistant "github.com/mutablelogic/go-aura/pkg/assistant"
	tool "github.com/mutablelogic/go-aura/pkg/tool"
	weatherapi "github.com/mutablelogic/go-aura/pkg/weatherapi"
)

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// weather validates the configuration and returns the weather client
func (g *Globals) weather() (*weatherapi.Client, error) {
	if err := g.Config.Validate(); err != nil {
		return nil, err
	}
	return g.Config.Weather()
}

// assistant validates the configuration and wires the weather tool, the
// inference client and the agent together
func (g *Globals) assistant() (*assistant.Assistant, error) {
	weather, err := g.weather()
	if err != nil {
		return nil, err
	}

	// Make a toolkit with the weather tool
	toolkit, err := tool.NewToolkit(weatherapi.NewTool(weather, weatherapi.WithObserver(g.observe)))
	if err != nil {
		return nil, err
	}

	// Create the inference client and the runner
	generator, err := g.Config.Generator()
	if err != nil {
		return nil, err
	}
	runner, err := agent.NewRunner(generator, toolkit, g.Config.Opts())
	if err != nil {
		return nil, err
	}

	// Read the agent definition, or use the default
	definition, err := assistant.LoadAgent(g.Config.Agent, g.Config.Model)
	if err != nil {
		return nil, err
	}
	g.log.Debug().Str("agent", definition.Name).Str("model", definition.Model).Str("tools", toolkit.String()).Msg("assistant")

	// Return the assistant
	return assistant.New(runner, definition)
}

// observe records and logs a weather lookup
func (g *Globals) observe(result weatherapi.Result) {
	g.metrics.RecordLookup(result)
	if result.Failed() {
		g.log.Warn().Err(result.Err).Str("outcome", result.Outcome.String()).Msg("weather lookup")
	} else {
		g.log.Debug().Str("outcome", result.Outcome.String()).Str("city", result.Reading.City).Msg("weather lookup")
	}
}
