package aura

import (
	"context"

	// Packages
	opt "github.com/mutablelogic/go-aura/pkg/opt"
	schema "github.com/mutablelogic/go-aura/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Generator is implemented by inference providers which can answer a
// message, optionally calling tools from a toolkit set in the options
type Generator interface {
	// Return the provider name
	Name() string

	// WithoutSession sends a single message and returns the response (stateless)
	WithoutSession(ctx context.Context, model string, message *schema.Message, opts ...opt.Opt) (*schema.Message, *schema.Usage, error)

	// WithSession appends the message to the conversation, sends it and appends
	// the response to the conversation (stateful)
	WithSession(ctx context.Context, model string, session *schema.Conversation, message *schema.Message, opts ...opt.Opt) (*schema.Message, *schema.Usage, error)
}
