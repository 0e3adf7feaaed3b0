package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Conversation is an ordered list of messages exchanged with a model
type Conversation []*Message

// Usage reports token counts for one or more generate calls
type Usage struct {
	InputTokens  uint `json:"input_tokens"`
	OutputTokens uint `json:"output_tokens"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Append a message to the conversation
func (c *Conversation) Append(message Message) {
	*c = append(*c, &message)
}

// AppendWithOutput appends a model response, recording the output tokens
// on the message
func (c *Conversation) AppendWithOutput(message Message, output uint) {
	message.Tokens = output
	c.Append(message)
}

// Last returns the last message in the conversation, or nil
func (c Conversation) Last() *Message {
	if len(c) == 0 {
		return nil
	}
	return c[len(c)-1]
}

// Add returns the sum of two usage reports, either of which may be nil
func (u *Usage) Add(other *Usage) *Usage {
	switch {
	case u == nil && other == nil:
		return nil
	case u == nil:
		return types.Ptr(*other)
	case other == nil:
		return types.Ptr(*u)
	}
	return &Usage{
		InputTokens:  u.InputTokens + other.InputTokens,
		OutputTokens: u.OutputTokens + other.OutputTokens,
	}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c Conversation) String() string {
	return types.Stringify(c)
}

func (u Usage) String() string {
	return types.Stringify(u)
}
