package openai

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	aura "github.com/mutablelogic/go-aura"
	opt "github.com/mutablelogic/go-aura/pkg/opt"
	schema "github.com/mutablelogic/go-aura/pkg/schema"
	tool "github.com/mutablelogic/go-aura/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// WithoutSession sends a single message and returns the response (stateless)
func (c *Client) WithoutSession(ctx context.Context, model string, message *schema.Message, opts ...opt.Opt) (*schema.Message, *schema.Usage, error) {
	if message == nil {
		return nil, nil, aura.ErrBadParameter.With("message is required")
	}
	session := schema.Conversation{message}
	return c.generate(ctx, model, &session, opts...)
}

// WithSession sends a message within a session and returns the response (stateful)
func (c *Client) WithSession(ctx context.Context, model string, session *schema.Conversation, message *schema.Message, opts ...opt.Opt) (*schema.Message, *schema.Usage, error) {
	if session == nil {
		return nil, nil, aura.ErrBadParameter.With("session is required")
	}
	if message == nil {
		return nil, nil, aura.ErrBadParameter.With("message is required")
	}
	session.Append(*message)
	return c.generate(ctx, model, session, opts...)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// generate builds a request from options, sends it and appends the
// response to the session
func (c *Client) generate(ctx context.Context, model string, session *schema.Conversation, opts ...opt.Opt) (*schema.Message, *schema.Usage, error) {
	if model == "" {
		return nil, nil, aura.ErrBadParameter.With("model is required")
	}

	// Apply options
	options, err := opt.Apply(opts...)
	if err != nil {
		return nil, nil, err
	}

	// Build request
	request, err := generateRequestFromOpts(model, session, options)
	if err != nil {
		return nil, nil, err
	}

	// Create JSON payload
	payload, err := client.NewJSONRequest(request)
	if err != nil {
		return nil, nil, err
	}

	// Send the request
	var response chatCompletionResponse
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("chat", "completions")); err != nil {
		return nil, nil, err
	}

	// Convert response to schema message
	message, err := messageFromResponse(&response)
	if err != nil {
		return nil, nil, err
	}
	usage := &schema.Usage{
		InputTokens:  uint(response.Usage.PromptTokens),
		OutputTokens: uint(response.Usage.CompletionTokens),
	}
	session.AppendWithOutput(*message, usage.OutputTokens)
	message = session.Last()

	// Return error for finish reasons that need caller attention
	switch message.Result {
	case schema.ResultMaxTokens:
		return message, usage, aura.ErrMaxTokens
	case schema.ResultBlocked:
		return message, usage, aura.ErrUnexpectedResponse.With("response blocked by content filter")
	}

	return message, usage, nil
}

///////////////////////////////////////////////////////////////////////////////
// REQUEST BUILDING

// generateRequestFromOpts builds a chatCompletionRequest from the session and applied options
func generateRequestFromOpts(model string, session *schema.Conversation, options *opt.Options) (*chatCompletionRequest, error) {
	messages, err := messagesFromSession(session)
	if err != nil {
		return nil, err
	}

	request := &chatCompletionRequest{
		Model:    model,
		Messages: messages,
	}

	// System prompt, prepended as a system role message
	if systemPrompt := options.GetString(opt.SystemPromptKey); systemPrompt != "" {
		request.Messages = append([]chatMessage{{Role: roleSystem, Content: &systemPrompt}}, request.Messages...)
	}

	// Temperature
	if options.Has(opt.TemperatureKey) {
		v := options.GetFloat64(opt.TemperatureKey)
		request.Temperature = &v
	}

	// Max tokens
	if options.Has(opt.MaxTokensKey) {
		v := int(options.GetUint(opt.MaxTokensKey))
		request.MaxTokens = &v
	}

	// Tools from toolkit
	if tk := tool.ToolkitFrom(options); tk != nil {
		tools, err := toolsFromToolkit(tk)
		if err != nil {
			return nil, err
		}
		if len(tools) > 0 {
			request.Tools = tools
			request.ToolChoice = options.GetString(opt.ToolChoiceKey)
		}
	}

	return request, nil
}
