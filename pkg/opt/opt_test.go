package opt_test

import (
	"errors"
	"testing"

	// Packages
	opt "github.com/mutablelogic/go-aura/pkg/opt"
	assert "github.com/stretchr/testify/assert"
)

func TestApplyEmpty(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply()
	assert.NoError(err)
	assert.NotNil(opts)
	assert.False(opts.Has("missing"))
	assert.Equal("", opts.GetString("missing"))
	assert.Equal(uint(0), opts.GetUint("missing"))
}

func TestGenerationOptions(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(
		opt.WithSystemPrompt("  be helpful "),
		opt.WithTemperature(0.5),
		opt.WithMaxTokens(256),
		opt.WithToolChoice("auto"),
		opt.WithMaxTurns(3),
	)
	assert.NoError(err)
	assert.Equal("be helpful", opts.GetString(opt.SystemPromptKey))
	assert.InDelta(0.5, opts.GetFloat64(opt.TemperatureKey), 1e-9)
	assert.Equal(uint(256), opts.GetUint(opt.MaxTokensKey))
	assert.Equal("auto", opts.GetString(opt.ToolChoiceKey))
	assert.Equal(uint(3), opts.GetUint(opt.MaxTurnsKey))
}

func TestInvalidOptions(t *testing.T) {
	assert := assert.New(t)
	_, err := opt.Apply(opt.WithTemperature(3))
	assert.Error(err)
	_, err = opt.Apply(opt.WithToolChoice("any"))
	assert.Error(err)
	_, err = opt.Apply(opt.WithMaxTurns(0))
	assert.Error(err)

	sentinel := errors.New("sentinel")
	_, err = opt.Apply(opt.WithOpts(opt.SetString("a", "b"), opt.Error(sentinel)))
	assert.ErrorIs(err, sentinel)
}

func TestAnyValues(t *testing.T) {
	assert := assert.New(t)
	tk := struct{ Name string }{"toolkit"}
	opts, err := opt.Apply(opt.SetAny(opt.ToolkitKey, tk), nil)
	assert.NoError(err)
	assert.True(opts.Has(opt.ToolkitKey))
	assert.Equal(tk, opts.Get(opt.ToolkitKey))
}
