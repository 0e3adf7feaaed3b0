/*
weatherapi implements an API client for WeatherAPI
https://www.weatherapi.com/docs/
*/
package weatherapi

import (
	"context"
	"errors"

	// Packages
	client "github.com/mutablelogic/go-client"
	aura "github.com/mutablelogic/go-aura"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	key string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint = "https://api.weatherapi.com/v1"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client. An endpoint set in opts replaces the default one.
func New(ApiKey string, opts ...client.ClientOpt) (*Client, error) {
	// Check for missing API key
	if ApiKey == "" {
		return nil, aura.ErrBadParameter.With("missing API key")
	}

	// Create client
	opts = append([]client.ClientOpt{client.OptEndpoint(endPoint)}, opts...)
	client, err := client.New(opts...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{
		Client: client,
		key:    ApiKey,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Current weather. Returns ErrUnexpectedResponse when the body cannot be
// decoded or lacks the temperature or condition.
func (c *Client) Current(ctx context.Context, req *CurrentWeatherRequest) (*Weather, error) {
	var response Weather

	// Set defaults
	response.Query = req.Query

	// Request -> Response
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("current.json"), client.OptQuery(req.Values(c.key))); err != nil {
		return nil, err
	}

	// Check the response shape
	if err := response.validate(); err != nil {
		return nil, err
	}

	return &response, nil
}

// Lookup returns the current reading for a city. It never fails: transport
// and data errors are carried in the result.
func (c *Client) Lookup(ctx context.Context, city string) Result {
	weather, err := c.Current(ctx, &CurrentWeatherRequest{Query: city})
	if err != nil {
		return Result{Outcome: classify(err), Err: err}
	}
	return Result{
		Outcome: OutcomeSuccess,
		Reading: &Reading{
			City:      city,
			TempC:     *weather.Current.TempC,
			Condition: *weather.Current.Condition.Text,
		},
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// classify separates errors about the response body from errors in the
// exchange itself (dial, timeout, error status)
func classify(err error) Outcome {
	if errors.Is(err, aura.ErrUnexpectedResponse) {
		return OutcomeDataFailure
	}
	return OutcomeNetworkFailure
}
