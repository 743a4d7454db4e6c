package generator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/notequiz/pkg/adapters/memory"
	"github.com/aretw0/notequiz/pkg/domain"
	"github.com/aretw0/notequiz/pkg/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) (string, error) { return "", errors.New("down") }
func (brokenCache) Set(context.Context, string, string) error   { return errors.New("down") }
func (brokenCache) Delete(context.Context, string) error        { return nil }

func TestService_Summarize_Empty(t *testing.T) {
	svc := generator.NewService()

	for _, in := range []string{"", "   \n"} {
		_, err := svc.Summarize(context.Background(), in)
		var svcErr *domain.ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, generator.MsgNoText, svcErr.Message)
	}
}

func TestService_Summarize_Cache(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewStore()
	var lookups []bool
	svc := generator.NewService(
		generator.WithCache(cache),
		generator.WithCacheObserver(func(hit bool) { lookups = append(lookups, hit) }),
	)

	text := "A. B. C. D. E."
	first, err := svc.Summarize(ctx, text)
	require.NoError(t, err)
	assert.Equal(t, "A. C. E.", first)

	second, err := svc.Summarize(ctx, text)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, []bool{false, true}, lookups)

	cached, err := cache.Get(ctx, generator.CacheKey(text))
	require.NoError(t, err)
	assert.Equal(t, first, cached)
}

func TestService_Summarize_PrefersCachedValue(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewStore()
	require.NoError(t, cache.Set(ctx, generator.CacheKey("notes"), "from cache"))

	svc := generator.NewService(generator.WithCache(cache))
	got, err := svc.Summarize(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, "from cache", got)
}

func TestService_Summarize_CacheFailureIgnored(t *testing.T) {
	svc := generator.NewService(generator.WithCache(brokenCache{}))

	got, err := svc.Summarize(context.Background(), "Only one sentence.")
	require.NoError(t, err)
	assert.Equal(t, "Only one sentence.", got)
}

func TestService_Quiz(t *testing.T) {
	svc := generator.NewService(generator.WithSeed(1), generator.WithQuestionLimit(2))

	_, err := svc.Quiz(context.Background(), "", 0)
	var svcErr *domain.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, generator.MsgNoSummary, svcErr.Message)

	quiz, err := svc.GenerateQuiz(context.Background(), longSummary(10))
	require.NoError(t, err)
	assert.Len(t, quiz, 2)

	quiz, err = svc.Quiz(context.Background(), longSummary(10), 4)
	require.NoError(t, err)
	assert.Len(t, quiz, 4)
}

func TestService_Canceled(t *testing.T) {
	svc := generator.NewService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Summarize(ctx, "notes")
	assert.ErrorIs(t, err, domain.ErrTransport)

	_, err = svc.GenerateQuiz(ctx, "summary")
	assert.ErrorIs(t, err, domain.ErrTransport)
}
