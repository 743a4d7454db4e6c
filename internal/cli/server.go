package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/aretw0/notequiz/internal/config"
	httpAdapter "github.com/aretw0/notequiz/pkg/adapters/http"
	"github.com/aretw0/notequiz/pkg/generator"
)

// ServeOptions contains the configuration for the serve command.
type ServeOptions struct {
	Config *config.Config
	Debug  bool
	Out    io.Writer
}

// NewHandler assembles the reference backend HTTP handler.
func NewHandler(ctx context.Context, opts ServeOptions) (http.Handler, io.Closer, error) {
	cfg := opts.Config
	logger, err := createLogger(cfg.Log.Level, opts.Debug)
	if err != nil {
		return nil, nil, err
	}

	spec, err := httpAdapter.LoadSpec(ctx)
	if err != nil {
		return nil, nil, err
	}

	metrics := httpAdapter.NewMetrics()
	service, closer, err := createService(ctx, cfg, logger, generator.WithCacheObserver(metrics.ObserveCache))
	if err != nil {
		return nil, nil, err
	}

	srv := httpAdapter.NewServer(service, spec,
		httpAdapter.WithServerLogger(logger),
		httpAdapter.WithMetrics(metrics),
	)
	return srv.Handler(), closer, nil
}

// RunServer serves the reference backend until SIGINT or SIGTERM.
func RunServer(opts ServeOptions) error {
	cfg := opts.Config
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	handler, closer, err := NewHandler(sigCtx, opts)
	if err != nil {
		return err
	}
	defer closer.Close()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		printSystemMessage(opts.Out, "Starting notequiz backend on %s", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-sigCtx.Done():
		printSystemMessage(opts.Out, "Start shutdown... Signal: %v", sigCtx.Signal())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("graceful shutdown did not complete: %w", err)
		}
		printSystemMessage(opts.Out, "notequiz backend stopped gracefully")
		return nil
	}
}
