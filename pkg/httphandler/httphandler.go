package httphandler

import (
	"context"
	"errors"
	"net/http"
	"time"

	// Packages
	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	aura "github.com/mutablelogic/go-aura"
	banner "github.com/mutablelogic/go-aura/pkg/banner"
	metrics "github.com/mutablelogic/go-aura/pkg/metrics"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	zerolog "github.com/rs/zerolog"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Asker answers a weather question for a city
type Asker interface {
	Ask(ctx context.Context, city string) (string, error)
}

// Router registers a handler for a path. chi.Router implements it.
type Router interface {
	HandleFunc(pattern string, handler http.HandlerFunc)
}

// Paths describes the registered handlers
type Paths map[string]*openapi.PathItem

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// NewRouter returns a router with request ID, logging and recovery middleware
// and all handlers registered. The metrics may be nil.
func NewRouter(logger zerolog.Logger, asker Asker, metrics *metrics.Metrics) (http.Handler, error) {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(Logger(logger))
	router.Use(middleware.Recoverer)
	if _, err := RegisterHandlers(router, asker, metrics); err != nil {
		return nil, err
	}
	return router, nil
}

// RegisterHandlers registers the page, the weather API, health and metrics
// handlers and returns a description of them
func RegisterHandlers(router Router, asker Asker, metrics *metrics.Metrics) (Paths, error) {
	if router == nil {
		return nil, aura.ErrBadParameter.With("router is required")
	}
	if asker == nil {
		return nil, aura.ErrBadParameter.With("asker is required")
	}

	paths := make(Paths)
	register := func(path string, handler http.HandlerFunc, spec *openapi.PathItem) {
		router.HandleFunc(path, handler)
		paths[path] = spec
	}

	// Register handlers
	register(PageHandler(asker, metrics))
	register(WeatherHandler(asker, metrics))
	register(HealthHandler())
	register(PathsHandler(paths))
	if metrics != nil {
		register(MetricsHandler(metrics))
	}

	// Return success
	return paths, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// ask runs the agent for a city and records the run
func ask(ctx context.Context, asker Asker, metrics *metrics.Metrics, city string) (string, error) {
	start := time.Now()
	answer, err := asker.Ask(ctx, city)
	if metrics != nil {
		metrics.RecordRun(time.Since(start), err)
	}
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("city", city).Msg("agent run failed")
	} else {
		zerolog.Ctx(ctx).Debug().Str("city", city).Str("answer", answer).Msg("agent run")
	}
	return answer, err
}

// display records a banner which is about to be shown
func display(metrics *metrics.Metrics, b banner.Banner) banner.Banner {
	if metrics != nil {
		metrics.RecordBanner(b.Style)
	}
	return b
}

// agentErr converts an error from an agent run to an httpresponse.Err,
// preserving the original error message. A request which ran out of time
// maps to 504, and anything else is the upstream failing, 502.
func agentErr(err error) error {
	switch {
	case errors.Is(err, aura.ErrBadParameter):
		return httpresponse.ErrBadRequest.With(err)
	case errors.Is(err, context.DeadlineExceeded):
		return httpresponse.Err(http.StatusGatewayTimeout).With(err)
	default:
		return httpresponse.Err(http.StatusBadGateway).With(err)
	}
}
