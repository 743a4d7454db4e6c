package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/notequiz/internal/config"
	fileAdapter "github.com/aretw0/notequiz/pkg/adapters/file"
	httpAdapter "github.com/aretw0/notequiz/pkg/adapters/http"
	loamAdapter "github.com/aretw0/notequiz/pkg/adapters/loam"
	"github.com/aretw0/notequiz/pkg/adapters/memory"
	redisAdapter "github.com/aretw0/notequiz/pkg/adapters/redis"
	"github.com/aretw0/notequiz/pkg/generator"
	"github.com/aretw0/notequiz/pkg/persistence/middleware"
	"github.com/aretw0/notequiz/pkg/ports"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// createCache builds the summary cache selected by cfg, encrypted when a key
// is configured. The returned closer is never nil.
func createCache(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (ports.SummaryCache, io.Closer, error) {
	var (
		cache  ports.SummaryCache
		closer io.Closer = nopCloser{}
	)
	switch cfg.Driver {
	case config.CacheNone:
		return nil, closer, nil
	case config.CacheRedis:
		store := redisAdapter.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB,
			redisAdapter.WithTTL(cfg.TTL),
			redisAdapter.WithPrefix(cfg.Prefix),
		)
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, nil, err
		}
		cache, closer = store, store
	case config.CacheFile:
		cache = fileAdapter.New(cfg.Dir, fileAdapter.WithTTL(cfg.TTL))
	default:
		cache = memory.NewStore()
	}

	active, fallback, err := cfg.Keys()
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}
	if active != nil {
		encrypt, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
			ActiveKey:    active,
			FallbackKeys: fallback,
		})
		if err != nil {
			_ = closer.Close()
			return nil, nil, err
		}
		cache = encrypt(cache)
	}

	logger.Info("Summary cache ready", "driver", cfg.Driver, "encrypted", active != nil)
	return cache, closer, nil
}

// createService builds the reference backend logic.
func createService(ctx context.Context, cfg *config.Config, logger *slog.Logger, extra ...generator.Option) (*generator.Service, io.Closer, error) {
	cache, closer, err := createCache(ctx, cfg.Cache, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create cache: %w", err)
	}

	opts := []generator.Option{
		generator.WithLogger(logger),
		generator.WithQuestionLimit(cfg.Quiz.MaxQuestions),
	}
	if cache != nil {
		opts = append(opts, generator.WithCache(cache))
	}
	if cfg.Quiz.Seed != 0 {
		opts = append(opts, generator.WithSeed(cfg.Quiz.Seed))
	}
	opts = append(opts, extra...)
	return generator.NewService(opts...), closer, nil
}

// createBackend returns the backend the client talks to: a remote server in
// http mode or the in-process service in local mode.
func createBackend(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.Backend, io.Closer, error) {
	if cfg.Backend.Mode == config.ModeLocal {
		return createService(ctx, cfg, logger)
	}

	opts := []httpAdapter.ClientOption{httpAdapter.WithClientLogger(logger)}
	if cfg.Backend.Timeout > 0 {
		opts = append(opts, httpAdapter.WithTimeout(cfg.Backend.Timeout))
	}
	return httpAdapter.NewClient(cfg.Backend.URL, opts...), nopCloser{}, nil
}

// createNoteSource opens the notes directory, or returns nil when dir is empty.
func createNoteSource(dir string) (ports.NoteSource, error) {
	if dir == "" {
		return nil, nil
	}
	src, err := loamAdapter.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open notes: %w", err)
	}
	return src, nil
}
