package cli

import (
	"context"
	"testing"

	"github.com/aretw0/notequiz/internal/config"
	"github.com/aretw0/notequiz/internal/logging"
	httpAdapter "github.com/aretw0/notequiz/pkg/adapters/http"
	"github.com/aretw0/notequiz/pkg/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCache_Drivers(t *testing.T) {
	ctx := context.Background()
	logger := logging.NewNop()

	cache, closer, err := createCache(ctx, config.CacheConfig{Driver: config.CacheNone}, logger)
	require.NoError(t, err)
	assert.Nil(t, cache)
	assert.NoError(t, closer.Close())

	cache, closer, err = createCache(ctx, config.CacheConfig{Driver: config.CacheMemory}, logger)
	require.NoError(t, err)
	require.NotNil(t, cache)
	assert.NoError(t, closer.Close())

	dir := t.TempDir()
	cache, _, err = createCache(ctx, config.CacheConfig{Driver: config.CacheFile, Dir: dir}, logger)
	require.NoError(t, err)
	require.NoError(t, cache.Set(ctx, "k", "summary"))

	reopened, _, err := createCache(ctx, config.CacheConfig{Driver: config.CacheFile, Dir: dir}, logger)
	require.NoError(t, err)
	got, err := reopened.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "summary", got)
}

func TestCreateCache_InvalidKey(t *testing.T) {
	_, _, err := createCache(context.Background(), config.CacheConfig{Driver: config.CacheMemory, EncryptionKey: "bad"}, logging.NewNop())
	assert.Error(t, err)
}

func TestCreateBackend(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()

	backend, _, err := createBackend(ctx, &cfg, logging.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &httpAdapter.Client{}, backend)

	cfg.Backend.Mode = config.ModeLocal
	backend, _, err = createBackend(ctx, &cfg, logging.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &generator.Service{}, backend)
}

func TestCreateNoteSource(t *testing.T) {
	src, err := createNoteSource("")
	require.NoError(t, err)
	assert.Nil(t, src)

	src, err = createNoteSource(t.TempDir())
	require.NoError(t, err)
	assert.NotNil(t, src)
}
