package opt

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// A generic option type, which can set options on a request, agent or run
type Opt func(*Options) error

// Options is a set of applied options. Scalar values are kept as strings,
// other values (toolkits, loggers) are kept by key.
type Options struct {
	url.Values
	any map[string]any
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	SystemPromptKey = "system"
	TemperatureKey  = "temperature"
	MaxTokensKey    = "max-tokens"
	ToolChoiceKey   = "tool-choice"
	ToolkitKey      = "toolkit"
	MaxTurnsKey     = "max-turns"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Apply returns a structure of applied options
func Apply(o ...Opt) (*Options, error) {
	opts := &Options{Values: make(url.Values), any: make(map[string]any)}
	for _, opt := range o {
		if opt == nil {
			continue
		}
		if err := opt(opts); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// GetString returns the trimmed value for key, or empty string if not set
func (o *Options) GetString(key string) string {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		return strings.TrimSpace(values[0])
	}
	return ""
}

// GetFloat64 returns the float64 value for key, or 0 if not set or invalid
func (o *Options) GetFloat64(key string) float64 {
	if v, err := strconv.ParseFloat(o.GetString(key), 64); err == nil {
		return v
	}
	return 0
}

// GetUint returns the uint value for key, or 0 if not set or invalid
func (o *Options) GetUint(key string) uint {
	if v, err := strconv.ParseUint(o.GetString(key), 10, 64); err == nil {
		return uint(v)
	}
	return 0
}

// Get returns an arbitrary value set with SetAny, or nil
func (o *Options) Get(key string) any {
	return o.any[key]
}

// Has returns true if the key exists
func (o *Options) Has(key string) bool {
	if _, ok := o.Values[key]; ok {
		return true
	}
	_, ok := o.any[key]
	return ok
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// Error returns an option that always returns an error
func Error(err error) Opt {
	return func(*Options) error {
		return err
	}
}

// WithOpts combines multiple options into a single option
func WithOpts(options ...Opt) Opt {
	return func(o *Options) error {
		for _, opt := range options {
			if opt == nil {
				continue
			}
			if err := opt(o); err != nil {
				return err
			}
		}
		return nil
	}
}

// SetString replaces the value for key
func SetString(key, value string) Opt {
	return func(o *Options) error {
		o.Values.Set(key, value)
		return nil
	}
}

// SetUint replaces the value for key
func SetUint(key string, value uint) Opt {
	return func(o *Options) error {
		o.Values.Set(key, fmt.Sprint(value))
		return nil
	}
}

// SetFloat64 replaces the value for key
func SetFloat64(key string, value float64) Opt {
	return func(o *Options) error {
		o.Values.Set(key, strconv.FormatFloat(value, 'f', -1, 64))
		return nil
	}
}

// SetAny stores an arbitrary value for key
func SetAny(key string, value any) Opt {
	return func(o *Options) error {
		o.any[key] = value
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// GENERATION OPTIONS

// WithSystemPrompt sets the system prompt (agent instructions)
func WithSystemPrompt(v string) Opt {
	return SetString(SystemPromptKey, v)
}

// WithTemperature sets the sampling temperature, between 0 and 2
func WithTemperature(v float64) Opt {
	if v < 0 || v > 2 {
		return Error(fmt.Errorf("temperature must be between 0 and 2"))
	}
	return SetFloat64(TemperatureKey, v)
}

// WithMaxTokens sets the maximum number of tokens to generate
func WithMaxTokens(v uint) Opt {
	return SetUint(MaxTokensKey, v)
}

// WithToolChoice sets the tool choice: auto, none or required
func WithToolChoice(v string) Opt {
	switch v {
	case "auto", "none", "required":
		return SetString(ToolChoiceKey, v)
	default:
		return Error(fmt.Errorf("unsupported tool choice %q", v))
	}
}

// WithMaxTurns sets the maximum number of model round trips in an agent run
func WithMaxTurns(v uint) Opt {
	if v == 0 {
		return Error(fmt.Errorf("max turns must be greater than zero"))
	}
	return SetUint(MaxTurnsKey, v)
}
