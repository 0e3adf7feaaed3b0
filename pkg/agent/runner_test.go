package agent_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	aura "github.com/mutablelogic/go-aura"
	agent "github.com/mutablelogic/go-aura/pkg/agent"
	opt "github.com/mutablelogic/go-aura/pkg/opt"
	schema "github.com/mutablelogic/go-aura/pkg/schema"
	tool "github.com/mutablelogic/go-aura/pkg/tool"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// FAKES

// fakeGenerator returns scripted responses, one per call, and records what
// it was sent
type fakeGenerator struct {
	sync.Mutex
	responses []*schema.Message
	err       error
	calls     int
	system    string
	sent      []*schema.Message
}

func (*fakeGenerator) Name() string { return "fake" }

func (g *fakeGenerator) WithoutSession(ctx context.Context, model string, message *schema.Message, opts ...opt.Opt) (*schema.Message, *schema.Usage, error) {
	session := schema.Conversation{}
	return g.WithSession(ctx, model, &session, message, opts...)
}

func (g *fakeGenerator) WithSession(_ context.Context, _ string, session *schema.Conversation, message *schema.Message, opts ...opt.Opt) (*schema.Message, *schema.Usage, error) {
	g.Lock()
	defer g.Unlock()
	options, err := opt.Apply(opts...)
	if err != nil {
		return nil, nil, err
	}
	g.system = options.GetString(opt.SystemPromptKey)
	g.sent = append(g.sent, message)
	session.Append(*message)
	if g.err != nil {
		return nil, nil, g.err
	}
	if g.calls >= len(g.responses) {
		return nil, nil, errors.New("no more responses")
	}
	response := g.responses[g.calls]
	g.calls++
	session.Append(*response)
	return response, &schema.Usage{InputTokens: 10, OutputTokens: 5}, nil
}

func text(s string) *schema.Message {
	return &schema.Message{Role: schema.RoleAssistant, Content: []schema.ContentBlock{{Text: &s}}, Result: schema.ResultStop}
}

func toolCalls(cities ...string) *schema.Message {
	msg := &schema.Message{Role: schema.RoleAssistant, Result: schema.ResultToolCall}
	for i, city := range cities {
		input, _ := json.Marshal(map[string]string{"city": city})
		msg.Content = append(msg.Content, schema.ContentBlock{ToolCall: &schema.ToolCall{
			ID:    string(rune('a' + i)),
			Name:  "get_weather",
			Input: input,
		}})
	}
	return msg
}

type weatherInput struct {
	City string `json:"city"`
}

// weatherTool answers after a delay which is longer for earlier calls, so
// results complete out of order
type weatherTool struct{}

func (weatherTool) Name() string        { return "get_weather" }
func (weatherTool) Description() string { return "weather" }
func (weatherTool) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[weatherInput](nil)
}
func (weatherTool) Run(_ context.Context, input json.RawMessage) (any, error) {
	var req weatherInput
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, err
	}
	if req.City == "Nowhere" {
		return nil, errors.New("no such city")
	}
	time.Sleep(time.Duration(10-len(req.City)) * time.Millisecond)
	return "📍 Weather in " + req.City, nil
}

var bot = agent.Agent{Name: "WeatherAgentsBot", Instructions: "You are a helpful weather bot", Model: "gemini-2.0-flash"}

func newRunner(t *testing.T, g *fakeGenerator, opts ...opt.Opt) *agent.Runner {
	t.Helper()
	tk, err := tool.NewToolkit(weatherTool{})
	if err != nil {
		t.Fatal(err)
	}
	runner, err := agent.NewRunner(g, tk, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return runner
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_runner_001(t *testing.T) {
	assert := assert.New(t)
	_, err := agent.NewRunner(nil, nil)
	assert.ErrorIs(err, aura.ErrBadParameter)

	_, err = agent.NewRunner(&fakeGenerator{}, nil, opt.WithMaxTurns(0))
	assert.Error(err)
}

func Test_runner_002(t *testing.T) {
	// A direct answer takes one turn
	assert := assert.New(t)
	g := &fakeGenerator{responses: []*schema.Message{text("Hello")}}
	result, err := newRunner(t, g).Run(t.Context(), bot, "Hi")
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("Hello", result.Text)
	assert.Equal(uint(1), result.Turns)
	assert.Equal(uint(0), result.ToolCalls)
	assert.NotEmpty(result.ID)
	assert.Equal("WeatherAgentsBot", result.Agent)
	assert.Equal("You are a helpful weather bot", g.system)
	assert.Len(result.Session, 2)
}

func Test_runner_003(t *testing.T) {
	// Tool calls run and their results are fed back in call order
	assert := assert.New(t)
	g := &fakeGenerator{responses: []*schema.Message{
		toolCalls("Rome", "Paris", "Oslo"),
		text("It is sunny"),
	}}
	result, err := newRunner(t, g).Run(t.Context(), bot, "Weather in Rome, Paris and Oslo?")
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("It is sunny", result.Text)
	assert.Equal(uint(2), result.Turns)
	assert.Equal(uint(3), result.ToolCalls)
	assert.Equal(uint(20), result.Usage.InputTokens)
	assert.Equal(uint(10), result.Usage.OutputTokens)

	if !assert.Len(g.sent, 2) {
		t.FailNow()
	}
	toolResults := g.sent[1].ToolResults()
	if assert.Len(toolResults, 3) {
		assert.Equal("a", toolResults[0].ID)
		assert.Equal("📍 Weather in Rome", toolResults[0].Content)
		assert.Equal("b", toolResults[1].ID)
		assert.Equal("📍 Weather in Paris", toolResults[1].Content)
		assert.Equal("c", toolResults[2].ID)
		assert.Equal("📍 Weather in Oslo", toolResults[2].Content)
	}
}

func Test_runner_004(t *testing.T) {
	// Tool errors become error results and the run continues
	assert := assert.New(t)
	g := &fakeGenerator{responses: []*schema.Message{
		toolCalls("Nowhere"),
		text("I could not find that city"),
	}}
	result, err := newRunner(t, g).Run(t.Context(), bot, "Weather in Nowhere?")
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("I could not find that city", result.Text)
	toolResults := g.sent[1].ToolResults()
	if assert.Len(toolResults, 1) {
		assert.True(toolResults[0].IsError)
		assert.Equal("no such city", toolResults[0].Content)
	}
}

func Test_runner_005(t *testing.T) {
	// Unknown tools become error results
	assert := assert.New(t)
	call := &schema.Message{Role: schema.RoleAssistant, Result: schema.ResultToolCall, Content: []schema.ContentBlock{
		{ToolCall: &schema.ToolCall{ID: "x", Name: "get_news"}},
	}}
	g := &fakeGenerator{responses: []*schema.Message{call, text("done")}}
	runner, err := agent.NewRunner(g, nil)
	if !assert.NoError(err) {
		t.FailNow()
	}
	result, err := runner.Run(t.Context(), bot, "news?")
	assert.NoError(err)
	assert.Equal("done", result.Text)
	toolResults := g.sent[1].ToolResults()
	if assert.Len(toolResults, 1) {
		assert.True(toolResults[0].IsError)
		assert.True(strings.Contains(toolResults[0].Content, "not found"))
	}
}

func Test_runner_006(t *testing.T) {
	// The run stops after the maximum number of turns
	assert := assert.New(t)
	g := &fakeGenerator{responses: []*schema.Message{
		toolCalls("Rome"), toolCalls("Rome"), toolCalls("Rome"),
	}}
	_, err := newRunner(t, g, opt.WithMaxTurns(2)).Run(t.Context(), bot, "loop")
	assert.ErrorIs(err, aura.ErrMaxTurns)
	assert.Equal(2, g.calls)
}

func Test_runner_007(t *testing.T) {
	// Generator errors are returned unchanged
	assert := assert.New(t)
	failure := errors.New("model unavailable")
	g := &fakeGenerator{err: failure}
	_, err := newRunner(t, g).Run(t.Context(), bot, "Hi")
	assert.ErrorIs(err, failure)
}

func Test_runner_008(t *testing.T) {
	// Input and agent are validated before any call
	assert := assert.New(t)
	g := &fakeGenerator{}
	runner := newRunner(t, g)

	_, err := runner.Run(t.Context(), bot, "   ")
	assert.ErrorIs(err, aura.ErrBadParameter)

	_, err = runner.Run(t.Context(), agent.Agent{Name: "x"}, "Hi")
	assert.ErrorIs(err, aura.ErrBadParameter)
	assert.Empty(g.sent)
}
