package agent_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	// Packages
	aura "github.com/mutablelogic/go-aura"
	agent "github.com/mutablelogic/go-aura/pkg/agent"
	assert "github.com/stretchr/testify/assert"
)

func Test_agent_001(t *testing.T) {
	assert := assert.New(t)
	a, err := agent.Read(strings.NewReader(`
name: WeatherAgentsBot
description: Answers weather questions
instructions: You are a helpful weather bot that provides weather information 🌦️
model: gemini-2.0-flash
`))
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("WeatherAgentsBot", a.Name)
	assert.Equal("gemini-2.0-flash", a.Model)
	assert.Equal("You are a helpful weather bot that provides weather information 🌦️", a.Instructions)
}

func Test_agent_002(t *testing.T) {
	assert := assert.New(t)
	_, err := agent.Read(strings.NewReader("name: bot\n"))
	assert.ErrorIs(err, aura.ErrBadParameter)

	_, err = agent.Read(strings.NewReader("model: gemini-2.0-flash\n"))
	assert.ErrorIs(err, aura.ErrBadParameter)

	_, err = agent.Read(strings.NewReader("name: [unterminated"))
	assert.ErrorIs(err, aura.ErrBadParameter)
}

func Test_agent_003(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "agent.yaml")
	if err := os.WriteFile(path, []byte("name: bot\nmodel: gemini-2.0-flash\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	a, err := agent.ReadFile(path)
	if assert.NoError(err) {
		assert.Equal("bot", a.Name)
	}

	_, err = agent.ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(err)
}
