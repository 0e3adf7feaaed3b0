/*
openai implements a generator for OpenAI-compatible chat completion APIs.
The default endpoint is the OpenAI-compatible interface of Google Gemini.
https://ai.google.dev/gemini-api/docs/openai
*/
package openai

import (
	// Packages
	client "github.com/mutablelogic/go-client"
	aura "github.com/mutablelogic/go-aura"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
}

var _ aura.Generator = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint = "https://generativelanguage.googleapis.com/v1beta/openai"
	name     = "openai"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client with the given API key. An endpoint set in opts
// replaces the default one.
func New(apiKey string, opts ...client.ClientOpt) (*Client, error) {
	if apiKey == "" {
		return nil, aura.ErrBadParameter.With("missing API key")
	}
	opts = append([]client.ClientOpt{client.OptEndpoint(endPoint)}, opts...)
	opts = append(opts, client.OptReqToken(client.Token{Scheme: client.Bearer, Value: apiKey}))
	if c, err := client.New(opts...); err != nil {
		return nil, err
	} else {
		return &Client{c}, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the provider name
func (*Client) Name() string {
	return name
}
