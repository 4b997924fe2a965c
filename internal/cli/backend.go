package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/devfolio/internal/adapters/file"
	"github.com/aretw0/devfolio/internal/adapters/memory"
	"github.com/aretw0/devfolio/internal/adapters/postgres"
	"github.com/aretw0/devfolio/internal/adapters/redis"
	"github.com/aretw0/devfolio/internal/config"
	"github.com/aretw0/devfolio/pkg/persistence/middleware"
	"github.com/aretw0/devfolio/pkg/ports"
)

// lockPrefix namespaces distributed lock keys in Redis (devfolio:lock:<id>).
const lockPrefix = "devfolio:"

// Backend is an opened document store with its optional distributed locker.
type Backend struct {
	Store  ports.DocumentStore
	Locker ports.DistributedLocker

	closers []func() error
}

// Close releases the connections held by the backend.
func (b *Backend) Close() error {
	var errs []error
	for _, c := range b.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// OpenBackend creates the store selected by cfg.Driver and wraps it with the
// configured persistence middleware: redaction first, then encryption.
func OpenBackend(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (*Backend, error) {
	b := &Backend{}

	switch cfg.Driver {
	case config.DriverMemory, "":
		b.Store = memory.New()
	case config.DriverFile:
		b.Store = file.New(cfg.Dir)
	case config.DriverRedis:
		client := backend.NewClient(&backend.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		var opts []redis.Option
		if cfg.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Redis.Prefix))
		}
		if cfg.Redis.TTL > 0 {
			opts = append(opts, redis.WithTTL(cfg.Redis.TTL))
		}
		b.Store = redis.NewFromClient(client, opts...)
		b.Locker = redis.NewLocker(client, lockPrefix)
		b.closers = append(b.closers, client.Close)
	case config.DriverPostgres:
		opts := []postgres.Option{postgres.WithLogger(logger)}
		if cfg.Postgres.Table != "" {
			opts = append(opts, postgres.WithTable(cfg.Postgres.Table))
		}
		store, err := postgres.Connect(ctx, cfg.Postgres.DSN, opts...)
		if err != nil {
			return nil, err
		}
		b.Store = store
		b.closers = append(b.closers, store.Close)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}

	var mws []middleware.Middleware
	if cfg.Redact {
		mws = append(mws, middleware.NewPIIMiddleware(middleware.DefaultPIIPatterns))
	}
	key, err := cfg.Key()
	if err != nil {
		_ = b.Close()
		return nil, err
	}
	if key != nil {
		mws = append(mws, middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key}))
	}
	b.Store = middleware.Chain(b.Store, mws...)

	logger.Info("Store opened", "driver", cfg.Driver, "redact", cfg.Redact, "encrypted", key != nil)
	return b, nil
}
