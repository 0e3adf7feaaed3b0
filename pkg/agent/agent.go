package agent

import (
	"io"
	"os"
	"strings"

	// Packages
	aura "github.com/mutablelogic/go-aura"
	types "github.com/mutablelogic/go-server/pkg/types"
	yaml "gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Agent describes the persona which answers a run: its name, the
// instructions sent as a system prompt and the model used
type Agent struct {
	Name         string `json:"name" yaml:"name" help:"Agent name"`
	Description  string `json:"description,omitempty" yaml:"description" help:"Agent description" optional:""`
	Instructions string `json:"instructions,omitempty" yaml:"instructions" help:"System prompt" optional:""`
	Model        string `json:"model" yaml:"model" help:"Model name"`
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Read an agent definition in YAML format
func Read(r io.Reader) (*Agent, error) {
	var agent Agent
	if err := yaml.NewDecoder(r).Decode(&agent); err != nil {
		return nil, aura.ErrBadParameter.Withf("agent definition: %v", err)
	}
	if err := agent.Validate(); err != nil {
		return nil, err
	}
	return &agent, nil
}

// ReadFile reads an agent definition from a YAML file
func ReadFile(path string) (*Agent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Validate returns an error if the agent has no name or model
func (a Agent) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return aura.ErrBadParameter.With("agent name is required")
	}
	if strings.TrimSpace(a.Model) == "" {
		return aura.ErrBadParameter.Withf("agent %q: model is required", a.Name)
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (a Agent) String() string {
	return types.Stringify(a)
}
