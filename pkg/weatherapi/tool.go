package weatherapi

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	client "github.com/mutablelogic/go-client"
	aura "github.com/mutablelogic/go-aura"
	tool "github.com/mutablelogic/go-aura/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type getWeather struct {
	client   *Client
	observer func(Result)
}

// ToolOpt configures the get_weather tool
type ToolOpt func(*getWeather)

var _ tool.Tool = (*getWeather)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ToolName = "get_weather"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the weather tools for use with agents
func NewTools(apikey string, opts ...client.ClientOpt) ([]tool.Tool, error) {
	// Create a client
	client, err := New(apikey, opts...)
	if err != nil {
		return nil, err
	}

	return []tool.Tool{
		NewTool(client),
	}, nil
}

// NewTool returns the get_weather tool backed by an existing client
func NewTool(client *Client, opts ...ToolOpt) tool.Tool {
	t := &getWeather{client: client}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// WithObserver sets a function which is called with every lookup result
func WithObserver(fn func(Result)) ToolOpt {
	return func(t *getWeather) {
		t.observer = fn
	}
}

///////////////////////////////////////////////////////////////////////////////
// GET WEATHER

func (*getWeather) Name() string {
	return ToolName
}

func (*getWeather) Description() string {
	return "Get the current weather for a city, including the temperature in Celsius and a short description of the conditions."
}

// Return the JSON schema for the tool input
func (*getWeather) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[GetWeatherRequest](nil)
}

// Run the tool with the given input. Lookup failures are returned as
// text rather than as an error, so the model can always report them.
func (g *getWeather) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req GetWeatherRequest

	// Unmarshal JSON input if provided
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, aura.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	result := g.client.Lookup(ctx, req.City)
	if g.observer != nil {
		g.observer(result)
	}
	return result.String(), nil
}
