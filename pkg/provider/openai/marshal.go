package openai

import (
	"encoding/json"
	"fmt"
	"strings"

	// Packages
	aura "github.com/mutablelogic/go-aura"
	schema "github.com/mutablelogic/go-aura/pkg/schema"
	tool "github.com/mutablelogic/go-aura/pkg/tool"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// SESSION → CHAT MESSAGES

// messagesFromSession converts a schema.Conversation to the wire format.
// Tool result messages are split so each carries exactly one tool_call_id.
func messagesFromSession(session *schema.Conversation) ([]chatMessage, error) {
	if session == nil {
		return nil, nil
	}
	messages := make([]chatMessage, 0, len(*session))
	for _, msg := range *session {
		if msg == nil {
			continue
		}
		if results := msg.ToolResults(); len(results) > 0 {
			for _, tr := range results {
				messages = append(messages, toolResultMessage(tr))
			}
			continue
		}
		mm, err := messageFromSchema(msg)
		if err != nil {
			return nil, err
		}
		messages = append(messages, mm)
	}
	return messages, nil
}

// messageFromSchema converts a text or tool call message
func messageFromSchema(msg *schema.Message) (chatMessage, error) {
	switch msg.Role {
	case schema.RoleUser, schema.RoleSystem, schema.RoleAssistant:
		// OK
	default:
		return chatMessage{}, aura.ErrBadParameter.Withf("unsupported role %q", msg.Role)
	}

	mm := chatMessage{Role: msg.Role}
	for _, call := range msg.ToolCalls() {
		tc := toolCall{
			Id:   call.ID,
			Type: typeFunction,
			Function: functionCall{
				Name:      call.Name,
				Arguments: "{}",
			},
		}
		if len(call.Input) > 0 {
			tc.Function.Arguments = string(call.Input)
		}
		mm.ToolCalls = append(mm.ToolCalls, tc)
	}

	// Assistant messages which only call tools carry no content
	if text := msg.Text(); text != "" || len(mm.ToolCalls) == 0 {
		mm.Content = types.Ptr(text)
	}

	return mm, nil
}

// toolResultMessage creates a "tool" role message from a ToolResult
func toolResultMessage(tr schema.ToolResult) chatMessage {
	content := tr.Content
	if tr.IsError {
		content = "error: " + content
	}
	return chatMessage{
		Role:       roleTool,
		Name:       tr.Name,
		Content:    types.Ptr(content),
		ToolCallID: tr.ID,
	}
}

///////////////////////////////////////////////////////////////////////////////
// RESPONSE → SCHEMA MESSAGE

// messageFromResponse converts a chat completion response to a schema.Message
func messageFromResponse(resp *chatCompletionResponse) (*schema.Message, error) {
	if resp == nil || len(resp.Choices) == 0 {
		return nil, aura.ErrUnexpectedResponse.With("no choices in response")
	}
	choice := resp.Choices[0]
	msg := &choice.Message

	var blocks []schema.ContentBlock
	if msg.Content != nil && *msg.Content != "" {
		blocks = append(blocks, schema.ContentBlock{Text: types.Ptr(*msg.Content)})
	}

	// Some compatible endpoints omit the call id, so one is assigned which
	// the tool result will echo back
	for i, tc := range msg.ToolCalls {
		id := tc.Id
		if id == "" {
			id = fmt.Sprintf("call_%d", i)
		}
		input := strings.TrimSpace(tc.Function.Arguments)
		if input == "" {
			input = "{}"
		}
		if !json.Valid([]byte(input)) {
			return nil, aura.ErrUnexpectedResponse.Withf("invalid arguments for tool %q", tc.Function.Name)
		}
		blocks = append(blocks, schema.ContentBlock{
			ToolCall: &schema.ToolCall{
				ID:    id,
				Name:  tc.Function.Name,
				Input: json.RawMessage(input),
			},
		})
	}

	result := resultFromFinishReason(choice.FinishReason)
	if len(msg.ToolCalls) > 0 {
		result = schema.ResultToolCall
	}

	return &schema.Message{
		Role:    schema.RoleAssistant,
		Content: blocks,
		Result:  result,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// TOOL CONVERSION

// toolsFromToolkit converts a tool.Toolkit to function tool definitions
func toolsFromToolkit(tk *tool.Toolkit) ([]toolDefinition, error) {
	defs, err := tk.Definitions()
	if err != nil {
		return nil, err
	}
	result := make([]toolDefinition, 0, len(defs))
	for _, def := range defs {
		fn := toolFunctionDef{
			Name:        def.Name,
			Description: def.Description,
		}
		if def.InputSchema != nil {
			data, err := json.Marshal(def.InputSchema)
			if err != nil {
				return nil, err
			}
			fn.Parameters = data
		}
		result = append(result, toolDefinition{Type: typeFunction, Function: fn})
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// FINISH REASON → RESULT TYPE

// resultFromFinishReason maps finish reasons to schema.ResultType
func resultFromFinishReason(reason string) schema.ResultType {
	switch reason {
	case finishReasonStop:
		return schema.ResultStop
	case finishReasonLength:
		return schema.ResultMaxTokens
	case finishReasonToolCalls:
		return schema.ResultToolCall
	case finishReasonContentFilter:
		return schema.ResultBlocked
	default:
		return schema.ResultOther
	}
}
