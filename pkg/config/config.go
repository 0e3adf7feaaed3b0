// Package config holds the settings read once at process start and builds
// the clients which depend on them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	// Packages
	godotenv "github.com/joho/godotenv"
	client "github.com/mutablelogic/go-client"
	aura "github.com/mutablelogic/go-aura"
	opt "github.com/mutablelogic/go-aura/pkg/opt"
	openai "github.com/mutablelogic/go-aura/pkg/provider/openai"
	weatherapi "github.com/mutablelogic/go-aura/pkg/weatherapi"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Config is filled from flags and environment variables
type Config struct {
	GeminiKey  string        `name:"gemini-key" env:"GEMINI_API_KEY" help:"API key for the inference endpoint"`
	WeatherKey string        `name:"weather-key" env:"WEATHER_API_KEY" help:"WeatherAPI.com API key"`
	Model      string        `name:"model" env:"AURA_MODEL" help:"Model name, which replaces the model in the agent file (defaults to gemini-2.0-flash)" optional:""`
	Endpoint   string        `name:"endpoint" env:"AURA_ENDPOINT" help:"OpenAI-compatible endpoint (defaults to Gemini)" optional:""`
	Timeout    time.Duration `name:"timeout" env:"AURA_TIMEOUT" help:"Timeout for outbound requests (defaults to the HTTP client's own)" optional:""`
	Agent      string        `name:"agent" env:"AURA_AGENT" type:"existingfile" help:"Agent definition file (YAML)" optional:""`

	// Generation
	Temperature *float64 `name:"temperature" env:"AURA_TEMPERATURE" help:"Sampling temperature, between 0 and 2" optional:""`
	MaxTokens   uint     `name:"max-tokens" env:"AURA_MAX_TOKENS" help:"Maximum number of tokens in each answer" optional:""`
	ToolChoice  string   `name:"tool-choice" env:"AURA_TOOL_CHOICE" enum:"auto,none,required" default:"auto" help:"Whether the model may call the weather tool (${enum})"`
	MaxTurns    uint     `name:"max-turns" env:"AURA_MAX_TURNS" default:"10" help:"Maximum number of model round trips in a run"`

	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`
}

// MissingEnvError is returned when a required environment variable is empty
type MissingEnvError string

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	GeminiKeyEnv  = "GEMINI_API_KEY"
	WeatherKeyEnv = "WEATHER_API_KEY"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// LoadEnv sets environment variables from .env files which exist, without
// replacing variables already set. With no arguments .env is read.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Validate returns an error when a credential is missing. The inference
// credential is checked first.
func (c Config) Validate() error {
	if strings.TrimSpace(c.GeminiKey) == "" {
		return MissingEnvError(GeminiKeyEnv)
	}
	if strings.TrimSpace(c.WeatherKey) == "" {
		return MissingEnvError(WeatherKeyEnv)
	}
	if c.Timeout < 0 {
		return aura.ErrBadParameter.With("timeout must not be negative")
	}
	if _, err := opt.Apply(c.Opts()); err != nil {
		return aura.ErrBadParameter.With(err)
	}
	return nil
}

// Opts returns the options passed to every agent run. Values which are
// not set are left to the model's defaults.
func (c Config) Opts() opt.Opt {
	var opts []opt.Opt
	if c.Temperature != nil {
		opts = append(opts, opt.WithTemperature(*c.Temperature))
	}
	if c.MaxTokens > 0 {
		opts = append(opts, opt.WithMaxTokens(c.MaxTokens))
	}
	if c.ToolChoice != "" {
		opts = append(opts, opt.WithToolChoice(c.ToolChoice))
	}
	if c.MaxTurns > 0 {
		opts = append(opts, opt.WithMaxTurns(c.MaxTurns))
	}
	return opt.WithOpts(opts...)
}

// ClientOpts returns the options for outbound HTTP clients
func (c Config) ClientOpts() []client.ClientOpt {
	result := []client.ClientOpt{}
	if c.Timeout > 0 {
		result = append(result, client.OptTimeout(c.Timeout))
	}
	if c.Debug || c.Verbose {
		result = append(result, client.OptTrace(os.Stderr, c.Verbose))
	}
	return result
}

// Generator returns the inference client
func (c Config) Generator() (*openai.Client, error) {
	opts := c.ClientOpts()
	if c.Endpoint != "" {
		opts = append(opts, client.OptEndpoint(c.Endpoint))
	}
	return openai.New(strings.TrimSpace(c.GeminiKey), opts...)
}

// Weather returns the weather provider client
func (c Config) Weather() (*weatherapi.Client, error) {
	return weatherapi.New(strings.TrimSpace(c.WeatherKey), c.ClientOpts()...)
}

////////////////////////////////////////////////////////////////////////////////
// ERRORS

func (e MissingEnvError) Error() string {
	return fmt.Sprintf("🔑 %s environment variable is not set ❗", string(e))
}

// Is reports a missing variable as a bad parameter
func (e MissingEnvError) Is(target error) bool {
	return target == aura.ErrBadParameter
}
