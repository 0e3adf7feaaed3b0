package tool_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	aura "github.com/mutablelogic/go-aura"
	opt "github.com/mutablelogic/go-aura/pkg/opt"
	tool "github.com/mutablelogic/go-aura/pkg/tool"
	assert "github.com/stretchr/testify/assert"
)

type stubTool struct {
	name string
	err  error
}

type stubInput struct {
	City string `json:"city" jsonschema:"City name"`
}

func (s *stubTool) Name() string        { return s.name }
func (s *stubTool) Description() string { return "stub" }
func (s *stubTool) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[stubInput](nil)
}
func (s *stubTool) Run(_ context.Context, input json.RawMessage) (any, error) {
	if s.err != nil {
		return nil, s.err
	}
	var req stubInput
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, err
	}
	return "city=" + req.City, nil
}

func TestRegister_NormalToolOK(t *testing.T) {
	tk, err := tool.NewToolkit()
	if err != nil {
		t.Fatal(err)
	}
	if err := tk.Register(&stubTool{name: "my_tool"}); err != nil {
		t.Fatal("normal tool should register:", err)
	}
	assert.NotNil(t, tk.Lookup("my_tool"))
	assert.Nil(t, tk.Lookup("other"))
}

func TestRegister_InvalidName(t *testing.T) {
	tk, err := tool.NewToolkit()
	if err != nil {
		t.Fatal(err)
	}
	err = tk.Register(&stubTool{name: "not a name"})
	assert.ErrorIs(t, err, aura.ErrBadParameter)
}

func TestRegister_Duplicate(t *testing.T) {
	_, err := tool.NewToolkit(&stubTool{name: "a"}, &stubTool{name: "a"})
	assert.ErrorIs(t, err, aura.ErrBadParameter)
}

func TestTools_Sorted(t *testing.T) {
	assert := assert.New(t)
	tk, err := tool.NewToolkit(&stubTool{name: "b"}, &stubTool{name: "a"})
	if !assert.NoError(err) {
		t.FailNow()
	}
	tools := tk.Tools()
	if assert.Len(tools, 2) {
		assert.Equal("a", tools[0].Name())
		assert.Equal("b", tools[1].Name())
	}

	defs, err := tk.Definitions()
	if assert.NoError(err) && assert.Len(defs, 2) {
		assert.Equal("a", defs[0].Name)
		assert.Equal("stub", defs[0].Description)
		assert.NotNil(defs[0].InputSchema)
	}
}

func TestRun_OK(t *testing.T) {
	assert := assert.New(t)
	tk, _ := tool.NewToolkit(&stubTool{name: "get_weather"})
	result, err := tk.Run(context.Background(), "get_weather", json.RawMessage(`{"city":"Paris"}`))
	assert.NoError(err)
	assert.Equal("city=Paris", result)
}

func TestRun_NotFound(t *testing.T) {
	tk, _ := tool.NewToolkit()
	_, err := tk.Run(context.Background(), "missing", nil)
	assert.ErrorIs(t, err, aura.ErrNotFound)
}

func TestRun_InvalidInput(t *testing.T) {
	assert := assert.New(t)
	tk, _ := tool.NewToolkit(&stubTool{name: "get_weather"})
	_, err := tk.Run(context.Background(), "get_weather", json.RawMessage(`not json`))
	assert.ErrorIs(err, aura.ErrBadParameter)
	_, err = tk.Run(context.Background(), "get_weather", json.RawMessage(`{"city":42}`))
	assert.ErrorIs(err, aura.ErrBadParameter)
}

func TestRun_ToolError(t *testing.T) {
	tk, _ := tool.NewToolkit(&stubTool{name: "broken", err: errors.New("boom")})
	_, err := tk.Run(context.Background(), "broken", json.RawMessage(`{"city":"x"}`))
	assert.EqualError(t, err, "boom")
}

func TestWithToolkit(t *testing.T) {
	assert := assert.New(t)
	tk, _ := tool.NewToolkit(&stubTool{name: "get_weather"})
	opts, err := opt.Apply(tool.WithToolkit(tk))
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Same(tk, tool.ToolkitFrom(opts))

	opts, err = opt.Apply(tool.WithToolkit(nil))
	assert.NoError(err)
	assert.Nil(tool.ToolkitFrom(opts))
}
