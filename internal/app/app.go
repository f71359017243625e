package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const metricsShutdownTimeout = 2 * time.Second

// App is one CLI session built from a Wire.
type App struct {
	*Wire
}

func New(w *Wire) *App {
	return &App{Wire: w}
}

// Onboard runs the interactive flow from start. When a metrics address is
// configured, /metrics is served for as long as the flow runs.
func (a *App) Onboard(ctx context.Context, start string) error {
	if a.Config.MetricsAddr == "" {
		return a.Runner().Run(ctx, start)
	}

	ln, err := net.Listen("tcp", a.Config.MetricsAddr)
	if err != nil {
		return fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", a.MetricsHandler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	a.Log.InfoContext(ctx, "serving metrics", "addr", ln.Addr().String())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, stop := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer stop()
		return srv.Shutdown(sctx)
	})

	var runErr error
	g.Go(func() error {
		defer cancel()
		runErr = a.Runner().Run(gctx, start)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return runErr
}
