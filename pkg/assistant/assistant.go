package assistant

import (
	"context"
	"fmt"
	"strings"

	// Packages
	aura "github.com/mutablelogic/go-aura"
	agent "github.com/mutablelogic/go-aura/pkg/agent"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Runner runs an agent to completion
type Runner interface {
	Run(ctx context.Context, agent agent.Agent, input string) (*agent.Result, error)
}

// Assistant answers weather questions for a city
type Assistant struct {
	runner Runner
	agent  agent.Agent
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultName         = "WeatherAgentsBot"
	DefaultInstructions = "You are a helpful weather bot that provides weather information 🌦️"
	DefaultModel        = "gemini-2.0-flash"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// DefaultAgent returns the weather agent with the given model, or the
// default model if empty
func DefaultAgent(model string) agent.Agent {
	if model = strings.TrimSpace(model); model == "" {
		model = DefaultModel
	}
	return agent.Agent{
		Name:         DefaultName,
		Description:  "Answers questions about the current weather in a city",
		Instructions: DefaultInstructions,
		Model:        model,
	}
}

// LoadAgent reads the agent definition from a YAML file, or returns the
// default agent when path is empty. A non-empty model replaces the model
// in the file.
func LoadAgent(path, model string) (agent.Agent, error) {
	if path == "" {
		return DefaultAgent(model), nil
	}
	a, err := agent.ReadFile(path)
	if err != nil {
		return agent.Agent{}, err
	}
	if model = strings.TrimSpace(model); model != "" {
		a.Model = model
	}
	return *a, nil
}

// New returns an assistant which runs the agent with the runner
func New(runner Runner, agent agent.Agent) (*Assistant, error) {
	if runner == nil {
		return nil, aura.ErrBadParameter.With("runner is required")
	}
	if err := agent.Validate(); err != nil {
		return nil, err
	}
	return &Assistant{runner: runner, agent: agent}, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Agent returns the agent which answers questions
func (a *Assistant) Agent() agent.Agent {
	return a.agent
}

// Ask for the weather in a city and return the agent's final answer.
// Errors from the agent are returned unchanged.
func (a *Assistant) Ask(ctx context.Context, city string) (string, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return "", aura.ErrBadParameter.With("city is required")
	}
	result, err := a.runner.Run(ctx, a.agent, Prompt(city))
	if err != nil {
		return "", err
	}
	return result.Text, nil
}

// Prompt returns the question sent to the agent for a city
func Prompt(city string) string {
	return fmt.Sprintf("What is the weather in %s?", city)
}
