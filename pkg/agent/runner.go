package agent

import (
	"context"
	"strings"
	"time"

	// Packages
	uuid "github.com/google/uuid"
	aura "github.com/mutablelogic/go-aura"
	opt "github.com/mutablelogic/go-aura/pkg/opt"
	schema "github.com/mutablelogic/go-aura/pkg/schema"
	tool "github.com/mutablelogic/go-aura/pkg/tool"
	types "github.com/mutablelogic/go-server/pkg/types"
	zerolog "github.com/rs/zerolog"
	otel "go.opentelemetry.io/otel"
	attribute "go.opentelemetry.io/otel/attribute"
	codes "go.opentelemetry.io/otel/codes"
	trace "go.opentelemetry.io/otel/trace"
	errgroup "golang.org/x/sync/errgroup"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Runner executes one-shot agent runs: it sends the input to the model,
// runs any tools the model asks for and returns the final answer
type Runner struct {
	generator aura.Generator
	toolkit   *tool.Toolkit
	opts      []opt.Opt
	maxTurns  uint
	tracer    trace.Tracer
}

// Result is the outcome of a completed run
type Result struct {
	ID        string              `json:"id"`
	Agent     string              `json:"agent"`
	Text      string              `json:"text"`
	Turns     uint                `json:"turns"`
	ToolCalls uint                `json:"tool_calls,omitempty"`
	Usage     *schema.Usage       `json:"usage,omitempty"`
	Duration  time.Duration       `json:"duration"`
	Session   schema.Conversation `json:"-"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultMaxTurns = 10
	tracerName      = "github.com/mutablelogic/go-aura/pkg/agent"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewRunner returns a runner which uses the generator to answer and the
// toolkit (which may be nil) to run tool calls. Options are passed on to
// every generate call; opt.WithMaxTurns bounds the number of round trips.
func NewRunner(generator aura.Generator, toolkit *tool.Toolkit, opts ...opt.Opt) (*Runner, error) {
	if generator == nil {
		return nil, aura.ErrBadParameter.With("generator is required")
	}

	// Check the options apply
	options, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		generator: generator,
		toolkit:   toolkit,
		opts:      opts,
		maxTurns:  DefaultMaxTurns,
		tracer:    otel.Tracer(tracerName),
	}
	if options.Has(opt.MaxTurnsKey) {
		r.maxTurns = options.GetUint(opt.MaxTurnsKey)
	}
	return r, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Run the agent with the given input. Generator errors end the run and are
// returned unchanged; tool errors are reported to the model as error results.
func (r *Runner) Run(ctx context.Context, agent Agent, input string) (result *Result, err error) {
	if err := agent.Validate(); err != nil {
		return nil, err
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, aura.ErrBadParameter.With("input is required")
	}

	// Identify the run
	id := uuid.NewString()
	start := time.Now()
	ctx, span := r.tracer.Start(ctx, "Run", trace.WithAttributes(
		attribute.String("run.id", id),
		attribute.String("agent.name", agent.Name),
		attribute.String("agent.model", agent.Model),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	log := zerolog.Ctx(ctx).With().Str("run", id).Str("agent", agent.Name).Logger()
	log.Debug().Str("model", agent.Model).Str("input", input).Msg("run started")

	// Options for every turn
	opts := append([]opt.Opt{}, r.opts...)
	if agent.Instructions != "" {
		opts = append(opts, opt.WithSystemPrompt(agent.Instructions))
	}
	opts = append(opts, tool.WithToolkit(r.toolkit))

	// First message
	message, err := schema.NewMessage(schema.RoleUser, input)
	if err != nil {
		return nil, err
	}

	result = &Result{ID: id, Agent: agent.Name}
	for result.Turns < r.maxTurns {
		result.Turns++
		response, usage, err := r.generator.WithSession(ctx, agent.Model, &result.Session, message, opts...)
		if err != nil {
			log.Debug().Err(err).Uint("turn", result.Turns).Msg("generate failed")
			return nil, err
		}
		result.Usage = result.Usage.Add(usage)

		// A response without tool calls is the final answer
		calls := response.ToolCalls()
		if response.Result != schema.ResultToolCall || len(calls) == 0 {
			result.Text = response.Text()
			result.Duration = time.Since(start)
			span.SetAttributes(attribute.Int("run.turns", int(result.Turns)))
			log.Debug().Uint("turns", result.Turns).Uint("tool_calls", result.ToolCalls).Dur("duration", result.Duration).Msg("run completed")
			return result, nil
		}

		// Run the tools and send the results back
		result.ToolCalls += uint(len(calls))
		message = &schema.Message{
			Role:    schema.RoleTool,
			Content: r.runTools(ctx, log, calls),
		}
	}

	log.Debug().Uint("turns", result.Turns).Msg("run exceeded the maximum number of turns")
	return nil, aura.ErrMaxTurns.Withf("%d turns", r.maxTurns)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// runTools runs the tool calls concurrently. The results are in the same
// order as the calls.
func (r *Runner) runTools(ctx context.Context, log zerolog.Logger, calls []schema.ToolCall) []schema.ContentBlock {
	results := make([]schema.ContentBlock, len(calls))

	var g errgroup.Group
	for i, call := range calls {
		g.Go(func() error {
			ctx, span := r.tracer.Start(ctx, "Tool", trace.WithAttributes(
				attribute.String("tool.name", call.Name),
				attribute.String("tool.id", call.ID),
			))
			defer span.End()

			value, err := r.runTool(ctx, call)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				log.Debug().Err(err).Str("tool", call.Name).Msg("tool failed")
				results[i] = schema.NewToolError(call.ID, call.Name, err)
			} else {
				log.Debug().Str("tool", call.Name).Str("result", types.Stringify(value)).Msg("tool completed")
				results[i] = schema.NewToolResult(call.ID, call.Name, value)
			}
			return nil
		})
	}
	g.Wait()

	return results
}

func (r *Runner) runTool(ctx context.Context, call schema.ToolCall) (any, error) {
	if r.toolkit == nil {
		return nil, aura.ErrNotFound.Withf("tool not found: %q", call.Name)
	}
	return r.toolkit.Run(ctx, call.Name, call.Input)
}
