package tool

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	aura "github.com/mutablelogic/go-aura"
	schema "github.com/mutablelogic/go-aura/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Tool is an interface for a tool with a name, description and JSON schema
type Tool interface {
	// Return the name of the tool
	Name() string

	// Return the description of the tool
	Description() string

	// Return the JSON schema for the tool input
	Schema() (*jsonschema.Schema, error)

	// Run the tool with the given input as JSON (may be nil)
	Run(ctx context.Context, input json.RawMessage) (any, error)
}

// Toolkit is a collection of tools with unique names. It is safe to call
// Run from several goroutines once registration is complete.
type Toolkit struct {
	sync.RWMutex
	tools map[string]Tool
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewToolkit creates a new toolkit with the given tools.
// Returns an error if any tool has an invalid or duplicate name.
func NewToolkit(tools ...Tool) (*Toolkit, error) {
	tk := &Toolkit{
		tools: make(map[string]Tool),
	}
	if err := tk.Register(tools...); err != nil {
		return nil, err
	}
	return tk, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Tools returns all tools in the toolkit, sorted by name
func (tk *Toolkit) Tools() []Tool {
	tk.RLock()
	defer tk.RUnlock()
	result := make([]Tool, 0, len(tk.tools))
	for _, t := range tk.tools {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}

// Register adds one or more tools to the toolkit.
// Returns an error if any tool has an invalid or duplicate name.
func (tk *Toolkit) Register(tools ...Tool) error {
	tk.Lock()
	defer tk.Unlock()
	for _, t := range tools {
		if t == nil {
			return aura.ErrBadParameter.With("nil tool")
		}
		name := t.Name()
		if !types.IsIdentifier(name) {
			return aura.ErrBadParameter.Withf("invalid tool name: %q", name)
		}
		if _, exists := tk.tools[name]; exists {
			return aura.ErrBadParameter.Withf("duplicate tool name: %q", name)
		}
		tk.tools[name] = t
	}
	return nil
}

// Lookup returns a tool by name, or nil if not found
func (tk *Toolkit) Lookup(name string) Tool {
	tk.RLock()
	defer tk.RUnlock()
	return tk.tools[name]
}

// Definitions returns provider-agnostic definitions for every tool
func (tk *Toolkit) Definitions() ([]schema.ToolDefinition, error) {
	tools := tk.Tools()
	result := make([]schema.ToolDefinition, 0, len(tools))
	for _, t := range tools {
		s, err := t.Schema()
		if err != nil {
			return nil, aura.ErrBadParameter.Withf("%s: schema generation failed: %v", t.Name(), err)
		}
		result = append(result, schema.ToolDefinition{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: s,
		})
	}
	return result, nil
}

// Run executes a tool by name with the given input.
// Returns an error if the tool is not found, the input does not match the schema,
// or the tool execution fails.
func (tk *Toolkit) Run(ctx context.Context, name string, input json.RawMessage) (any, error) {
	// Lookup the tool
	tool := tk.Lookup(name)
	if tool == nil {
		return nil, aura.ErrNotFound.Withf("tool not found: %q", name)
	}

	// Validate input against schema if provided
	if len(input) > 0 {
		schema, err := tool.Schema()
		if err != nil {
			return nil, aura.ErrBadParameter.Withf("schema generation failed: %v", err)
		}
		if schema != nil {
			// Unmarshal into a map for validation
			var mapInput map[string]any
			if err := json.Unmarshal(input, &mapInput); err != nil {
				return nil, aura.ErrBadParameter.Withf("failed to unmarshal JSON input: %v", err)
			}

			// Validate against schema
			resolved, err := schema.Resolve(nil)
			if err != nil {
				return nil, aura.ErrBadParameter.Withf("schema resolution failed: %v", err)
			}
			if err := resolved.Validate(mapInput); err != nil {
				return nil, aura.ErrBadParameter.Withf("input validation failed: %v", err)
			}
		}
	}

	// Run the tool with raw JSON
	return tool.Run(ctx, input)
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (tk *Toolkit) String() string {
	names := make([]string, 0, len(tk.tools))
	for _, t := range tk.Tools() {
		names = append(names, t.Name())
	}
	return types.Stringify(names)
}
