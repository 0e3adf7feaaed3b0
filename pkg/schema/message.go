package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Message represents a message in a conversation with a model.
// It uses a universal content block representation that can be marshaled
// to any provider's format.
type Message struct {
	Role    string         `json:"role"`             // "user", "assistant", "system", "tool"
	Content []ContentBlock `json:"content"`          // Array of content blocks
	Tokens  uint           `json:"tokens,omitempty"` // Number of tokens
	Result  ResultType     `json:"result,omitempty"` // Result type
}

// ContentBlock represents a single piece of content within a message.
// Exactly one of the fields should be non-nil.
type ContentBlock struct {
	Text       *string     `json:"text,omitempty"`        // Text content
	ToolCall   *ToolCall   `json:"tool_call,omitempty"`   // Tool invocation (assistant → runner)
	ToolResult *ToolResult `json:"tool_result,omitempty"` // Tool response (runner → assistant)
}

// ToolCall represents a tool invocation requested by the model
type ToolCall struct {
	ID    string          `json:"id,omitempty"`    // Provider-assigned call ID
	Name  string          `json:"name"`            // Tool function name
	Input json.RawMessage `json:"input,omitempty"` // JSON-encoded arguments
}

// ToolResult represents the result of running a tool
type ToolResult struct {
	ID      string `json:"id,omitempty"`      // Matches the ToolCall ID
	Name    string `json:"name,omitempty"`    // Tool function name
	Content string `json:"content,omitempty"` // Text or JSON-encoded result
	IsError bool   `json:"is_error,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// CONSTANTS

// Message role constants
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
	RoleTool      = "tool"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewMessage creates a message with the given role and text content
func NewMessage(role string, text string) (*Message, error) {
	switch role {
	case RoleUser, RoleAssistant, RoleSystem:
		// OK
	default:
		return nil, fmt.Errorf("invalid role %q for a text message", role)
	}
	return types.Ptr(Message{
		Role:    role,
		Content: []ContentBlock{{Text: types.Ptr(text)}},
	}), nil
}

// NewToolResult creates a content block containing a successful tool result.
// Strings are kept as-is so the model sees plain text rather than a JSON
// encoded string.
func NewToolResult(id, name string, v any) ContentBlock {
	var data []byte
	if s, ok := v.(string); ok {
		data = []byte(s)
	} else if raw, err := json.Marshal(v); err != nil {
		return NewToolError(id, name, err)
	} else {
		data = raw
	}
	return ContentBlock{
		ToolResult: &ToolResult{
			ID:      id,
			Name:    name,
			Content: string(data),
		},
	}
}

// NewToolError creates a content block containing a tool error result
func NewToolError(id, name string, err error) ContentBlock {
	return ContentBlock{
		ToolResult: &ToolResult{
			ID:      id,
			Name:    name,
			Content: err.Error(),
			IsError: true,
		},
	}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Text returns the concatenated text content from all text blocks in the message
func (m Message) Text() string {
	var result []string
	for _, block := range m.Content {
		if block.Text != nil {
			result = append(result, *block.Text)
		}
	}
	return strings.Join(result, "\n")
}

// ToolCalls returns all tool call blocks in the message
func (m Message) ToolCalls() []ToolCall {
	var result []ToolCall
	for _, block := range m.Content {
		if block.ToolCall != nil {
			result = append(result, *block.ToolCall)
		}
	}
	return result
}

// ToolResults returns all tool result blocks in the message
func (m Message) ToolResults() []ToolResult {
	var result []ToolResult
	for _, block := range m.Content {
		if block.ToolResult != nil {
			result = append(result, *block.ToolResult)
		}
	}
	return result
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Message) String() string {
	return types.Stringify(m)
}
