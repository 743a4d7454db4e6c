package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aretw0/notequiz/internal/logging"
	"github.com/aretw0/notequiz/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSessionHooks_DrawsOnLoading(t *testing.T) {
	calls := 0
	hooks := createSessionHooks(logging.NewNop(), func() { calls++ })

	hooks.OnViewChange(&domain.ViewEvent{From: domain.ViewHome, To: domain.ViewLoading})
	hooks.OnViewChange(&domain.ViewEvent{From: domain.ViewLoading, To: domain.ViewSummary})
	assert.Equal(t, 1, calls)
}

func TestCreateSessionHooks_LogsStaleResponses(t *testing.T) {
	var buf bytes.Buffer
	hooks := createSessionHooks(logging.NewWithWriter(&buf, slog.LevelInfo), nil)

	hooks.OnRequestDone(context.Background(), &domain.RequestEvent{Endpoint: domain.EndpointQuiz, Err: domain.ErrStaleResponse, Stale: true})
	hooks.OnRequestDone(context.Background(), &domain.RequestEvent{Endpoint: domain.EndpointQuiz})
	assert.Contains(t, buf.String(), "Response discarded")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestCreateLogger(t *testing.T) {
	logger, err := createLogger("warn", false)
	require.NoError(t, err)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))

	logger, err = createLogger("warn", true)
	require.NoError(t, err)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))

	_, err = createLogger("loud", false)
	assert.Error(t, err)
}

func TestPrintSystemMessage(t *testing.T) {
	var buf bytes.Buffer
	printSystemMessage(&buf, "Loaded %q.", "go")
	assert.Equal(t, ">>> Loaded \"go\".\n", buf.String())
}

func TestHandleExecutionError(t *testing.T) {
	assert.NoError(t, handleExecutionError(nil))
	assert.NoError(t, handleExecutionError(io.EOF))
	assert.NoError(t, handleExecutionError(context.Canceled))

	boom := errors.New("boom")
	assert.ErrorIs(t, handleExecutionError(boom), boom)
}
