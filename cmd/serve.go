package main

import (
	"context"
	"errors"
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/okian/mvp/internal/adapters/http/api"
	"github.com/okian/mvp/internal/adapters/http/site"
	"github.com/okian/mvp/internal/adapters/http/swagger"
	service "github.com/okian/mvp/internal/app"
	"github.com/okian/mvp/pkg/logger"
	"github.com/okian/mvp/pkg/metrics"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

// HTTP server timeout constants.
const (
	readTimeout           = 10 * time.Second
	writeTimeout          = 10 * time.Second
	idleTimeout           = 60 * time.Second
	readHeaderTimeout     = 5 * time.Second
	shutdownTimeout       = 30 * time.Second
	systemMetricsInterval = 10 * time.Second
)

const flagAddr = "addr"

func serveCmd(a *app) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Score the roster and serve the ranking over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagAddr,
				Usage: "HTTP listen address (default from config, :9080)",
			},
		},
		Action: a.serve,
	}
}

func (a *app) serve(ctx context.Context, cmd *cli.Command) error {
	addr := a.cfg.Addr
	if cmd.IsSet(flagAddr) {
		addr = cmd.String(flagAddr)
	}

	svc, err := a.pipeline(ctx)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(ctx, svc, a.cfg.MaxLeaderboardLimit, a.log),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Info(gctx, "starting HTTP server", logger.String("addr", addr), logger.String("run_id", svc.RunID()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.log.Info(gctx, "shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		startSystemMetricsUpdater(gctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		a.log.Error(ctx, "server stopped with error", logger.Error(err))
		return err
	}
	a.log.Info(ctx, "server stopped")
	return nil
}

// newRouter mounts the page, the docs and the API on one chi router.
func newRouter(ctx context.Context, svc *service.Service, maxLimit int, log logger.Logger) chi.Router {
	apiServer := api.NewServer(svc, svc,
		api.WithMaxLimit(maxLimit),
		api.WithLogger(log.Named("api")),
	)
	r := apiServer.Router(ctx)
	swagger.Register(ctx, r)
	site.Register(ctx, r, svc)
	return r
}

// startSystemMetricsUpdater refreshes system gauges until ctx is done.
func startSystemMetricsUpdater(ctx context.Context) {
	updateSystemMetrics()
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

// updateSystemMetrics updates system-level metrics.
func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())
}
