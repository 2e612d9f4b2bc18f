package app

import (
	"context"

	"github.com/vk/langtour/internal/server"
	"github.com/vk/langtour/internal/tui"
)

// Serve starts the HTTP server on the configured address and blocks until
// ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	ctx = a.context(ctx)
	srv := server.New(a.registry, a.newRunner(1), a.promRegistry, a.logger)
	return srv.ListenAndServe(ctx, a.cfg.Listen)
}

// Browse opens the interactive lesson browser.
func (a *App) Browse(ctx context.Context) error {
	ctx = a.context(ctx)
	return tui.Run(ctx, a.registry, a.newRunner(1))
}
