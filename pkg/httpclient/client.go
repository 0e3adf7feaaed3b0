package httpclient

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	aura "github.com/mutablelogic/go-aura"
	schema "github.com/mutablelogic/go-aura/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client calls the weather API of a running server
type Client struct {
	*client.Client
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client with the given base URL and options.
// The url parameter should point to the API endpoint, e.g.
// "http://localhost:8080/api".
func New(url string, opts ...client.ClientOpt) (*Client, error) {
	c := new(Client)
	if client, err := client.New(append(opts, client.OptEndpoint(url))...); err != nil {
		return nil, err
	} else {
		c.Client = client
	}
	return c, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Weather asks the server's agent about the weather in a city
func (c *Client) Weather(ctx context.Context, city string) (*schema.WeatherResponse, error) {
	if city == "" {
		return nil, aura.ErrBadParameter.With("city is required")
	}
	payload, err := client.NewJSONRequest(schema.WeatherRequest{City: city})
	if err != nil {
		return nil, err
	}

	var response schema.WeatherResponse
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("weather")); err != nil {
		return nil, err
	}
	return &response, nil
}

// Health returns the status and version of the server
func (c *Client) Health(ctx context.Context) (*schema.HealthResponse, error) {
	var response schema.HealthResponse
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("health")); err != nil {
		return nil, err
	}
	return &response, nil
}
