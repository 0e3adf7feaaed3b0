package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// WeatherRequest is the body of a weather question sent to the HTTP API
type WeatherRequest struct {
	City string `json:"city" help:"City name"`
}

// WeatherResponse is the agent's final answer together with the banner
// style selected for it
type WeatherResponse struct {
	City  string `json:"city"`
	Text  string `json:"text"`
	Style string `json:"style"`
}

// HealthResponse reports that the service is running
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r WeatherRequest) String() string {
	return types.Stringify(r)
}

func (r WeatherResponse) String() string {
	return types.Stringify(r)
}

func (r HealthResponse) String() string {
	return types.Stringify(r)
}
