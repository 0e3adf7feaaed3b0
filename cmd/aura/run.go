package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	// Packages
	httphandler "github.com/mutablelogic/go-aura/pkg/httphandler"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type RunCmd struct {
	Addr string `name:"addr" env:"AURA_ADDR" default:":8080" help:"Address to listen on"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	shutdownTimeout = 10 * time.Second
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *RunCmd) Run(globals *Globals) error {
	assistant, err := globals.assistant()
	if err != nil {
		return err
	}
	router, err := httphandler.NewRouter(globals.log, assistant, globals.metrics)
	if err != nil {
		return err
	}

	// Create the server
	server := &http.Server{
		Addr:              cmd.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return globals.ctx
		},
	}

	// Serve until the context is cancelled
	errs := make(chan error, 1)
	go func() {
		errs <- server.ListenAndServe()
	}()
	globals.log.Info().Str("addr", cmd.Addr).Str("agent", assistant.Agent().Name).Msg("serving")

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-globals.ctx.Done():
		globals.log.Info().Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(ctx)
}
