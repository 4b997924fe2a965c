package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aretw0/devfolio"
	"github.com/aretw0/devfolio/internal/config"
	httpadapter "github.com/aretw0/devfolio/pkg/adapters/http"
	"github.com/aretw0/devfolio/pkg/domain"
	"github.com/aretw0/devfolio/pkg/observability"
	"github.com/aretw0/devfolio/pkg/portfolio"
	"github.com/aretw0/devfolio/pkg/schema"
)

// NewValidator builds a validator from the validation section of the
// configuration. strict forces schema.Reject whatever the configuration says.
func NewValidator(cfg config.ValidationConfig, strict bool, source string, logger *slog.Logger, hooks ...domain.LifecycleHooks) (*devfolio.Validator, error) {
	policy, err := schema.ParseUnknownKeys(cfg.UnknownKeys)
	if err != nil {
		return nil, err
	}
	if strict {
		policy = schema.Reject
	}

	opts := []devfolio.Option{
		devfolio.WithLogger(logger),
		devfolio.WithUnknownKeys(policy),
		devfolio.WithSource(source),
	}
	for _, h := range hooks {
		opts = append(opts, devfolio.WithLifecycleHooks(h))
	}
	return devfolio.New(opts...), nil
}

// BuildHandler wires the HTTP API over b: metrics, event streams and
// logging hooks are attached to both the validator and the manager.
func BuildHandler(cfg config.Config, strict bool, b *Backend, logger *slog.Logger) (http.Handler, error) {
	metrics := observability.NewMetrics()
	streams := httpadapter.NewStreamManager(logger)
	hooks := metrics.Hooks().
		Merge(observability.LoggingHooks(logger)).
		Merge(streams.Hooks())

	v, err := NewValidator(cfg.Validation, strict, "http", logger, hooks)
	if err != nil {
		return nil, err
	}

	mgrOpts := []portfolio.Option{
		portfolio.WithValidator(v),
		portfolio.WithLogger(logger),
		portfolio.WithLifecycleHooks(hooks),
		portfolio.WithSource("http"),
	}
	if b.Locker != nil {
		mgrOpts = append(mgrOpts, portfolio.WithLocker(b.Locker))
	}
	mgr := portfolio.NewManager(b.Store, mgrOpts...)

	return httpadapter.NewHandler(mgr,
		httpadapter.WithLogger(logger),
		httpadapter.WithMetrics(metrics),
		httpadapter.WithStreams(streams),
		httpadapter.WithMaxBodyBytes(cfg.Server.MaxBodyBytes),
	)
}

// Serve runs the HTTP API until ctx is done, then shuts down gracefully
// within cfg.Server.ShutdownTimeout.
func Serve(ctx context.Context, cfg config.Config, strict bool, logger *slog.Logger) error {
	b, err := OpenBackend(ctx, cfg.Store, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := b.Close(); err != nil {
			logger.Warn("Failed to close store", "err", err)
		}
	}()

	handler, err := BuildHandler(cfg, strict, b, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Starting DevFolio Server", "addr", srv.Addr, "store", cfg.Store.Driver)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("Start shutdown")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown did not complete", "timeout", cfg.Server.ShutdownTimeout, "err", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("could not stop server: %w", err)
			}
		}
		logger.Info("DevFolio Server stopped gracefully")
		return nil
	}
}
