package controller

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aretw0/notequiz/pkg/domain"
	"github.com/aretw0/notequiz/pkg/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockBackend records calls and delegates to optional funcs.
type MockBackend struct {
	SummarizeFunc func(ctx context.Context, text string) (string, error)
	QuizFunc      func(ctx context.Context, summary string) ([]domain.QuizQuestion, error)

	SummarizeCalls []string
	QuizCalls      []string
}

func (m *MockBackend) Summarize(ctx context.Context, text string) (string, error) {
	m.SummarizeCalls = append(m.SummarizeCalls, text)
	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, text)
	}
	return "summary of " + text, nil
}

func (m *MockBackend) GenerateQuiz(ctx context.Context, summary string) ([]domain.QuizQuestion, error) {
	m.QuizCalls = append(m.QuizCalls, summary)
	if m.QuizFunc != nil {
		return m.QuizFunc(ctx, summary)
	}
	return []domain.QuizQuestion{
		{Question: "Q1", Options: []string{"A", "B", "C"}, Answer: "B"},
	}, nil
}

func summarized(t *testing.T, backend *MockBackend, opts ...Option) *Controller {
	t.Helper()
	c := New(backend, opts...)
	require.NoError(t, c.RequestSummary(context.Background(), "some notes"))
	return c
}

func TestController_InitialPage(t *testing.T) {
	c := New(&MockBackend{})
	p := c.Page()

	assert.Equal(t, domain.ViewHome, p.ActiveView())
	assert.Equal(t, "Dashboard", p.Status)
	assert.False(t, p.Error.Visible)
	assert.Empty(t, c.State().Summary())
}

func TestSwitchView(t *testing.T) {
	c := New(&MockBackend{})
	c.Scroll(12)

	c.SwitchView(domain.ViewSummary)
	p := c.Page()
	assert.Equal(t, domain.ViewSummary, p.ActiveView())
	assert.Equal(t, "Summary", p.Status)
	assert.Zero(t, p.ScrollOffset)

	c.SwitchView(domain.ViewLoading)
	p = c.Page()
	assert.Equal(t, domain.ViewLoading, p.ActiveView())
	assert.Equal(t, "Summary", p.Status, "loading keeps the previous label")

	c.SwitchView(domain.ViewQuiz)
	assert.Equal(t, "Practice Quiz", c.Page().Status)
}

func TestShowLoadingAndShowError(t *testing.T) {
	c := New(&MockBackend{})

	c.ShowLoading("working")
	p := c.Page()
	assert.Equal(t, "working", p.LoaderText)
	assert.Equal(t, domain.ViewLoading, p.ActiveView())

	c.ShowError("boom")
	p = c.Page()
	assert.Equal(t, domain.ViewHome, p.ActiveView())
	assert.Equal(t, view.Banner{Text: "boom", Visible: true}, p.Error)
}

func TestRequestSummary_Success(t *testing.T) {
	for _, notes := range []string{"a", "  padded notes  ", "multi\nline\nnotes"} {
		t.Run(fmt.Sprintf("%q", notes), func(t *testing.T) {
			backend := &MockBackend{}
			c := New(backend)
			c.ShowError("previous failure")

			err := c.RequestSummary(context.Background(), notes)
			require.NoError(t, err)

			require.Len(t, backend.SummarizeCalls, 1)
			want := "summary of " + backend.SummarizeCalls[0]
			assert.Equal(t, want, c.State().Summary())

			p := c.Page()
			assert.Equal(t, domain.ViewSummary, p.ActiveView())
			assert.Equal(t, want, p.SummaryText)
			assert.False(t, p.NavDisabled(domain.ViewSummary))
			assert.True(t, p.NavDisabled(domain.ViewQuiz))
			assert.False(t, p.Error.Visible)
		})
	}
}

func TestRequestSummary_SendsTrimmedText(t *testing.T) {
	backend := &MockBackend{}
	c := New(backend)

	require.NoError(t, c.RequestSummary(context.Background(), "\n  notes \t"))
	assert.Equal(t, []string{"notes"}, backend.SummarizeCalls)
}

func TestRequestSummary_EmptyNotes(t *testing.T) {
	for _, notes := range []string{"", "   ", "\n\t\n"} {
		backend := &MockBackend{}
		c := New(backend)

		err := c.RequestSummary(context.Background(), notes)
		assert.ErrorIs(t, err, domain.ErrEmptyNotes)
		assert.Empty(t, backend.SummarizeCalls, "no network call for empty notes")

		p := c.Page()
		assert.Equal(t, domain.ViewHome, p.ActiveView())
		assert.Equal(t, view.Banner{Text: MsgEmptyNotes, Visible: true}, p.Error)
	}
}

func TestRequestSummary_ServiceError(t *testing.T) {
	backend := &MockBackend{}
	c := summarized(t, backend)
	before := c.State().Summary()

	backend.SummarizeFunc = func(ctx context.Context, text string) (string, error) {
		return "", domain.NewServiceError("No text provided")
	}
	err := c.RequestSummary(context.Background(), "more notes")

	var svcErr *domain.ServiceError
	require.ErrorAs(t, err, &svcErr)
	p := c.Page()
	assert.Equal(t, domain.ViewHome, p.ActiveView())
	assert.Equal(t, view.Banner{Text: "No text provided", Visible: true}, p.Error)
	assert.Equal(t, before, c.State().Summary(), "summary unchanged on service error")
}

func TestRequestSummary_TransportError(t *testing.T) {
	backend := &MockBackend{
		SummarizeFunc: func(ctx context.Context, text string) (string, error) {
			return "", fmt.Errorf("%w: connection refused", domain.ErrTransport)
		},
	}
	c := New(backend)

	err := c.RequestSummary(context.Background(), "notes")
	assert.ErrorIs(t, err, domain.ErrTransport)
	p := c.Page()
	assert.Equal(t, domain.ViewHome, p.ActiveView())
	assert.Equal(t, MsgSummarizeFailed, p.Error.Text)
	assert.True(t, p.Error.Visible)
	assert.Empty(t, c.State().Summary())
}

func TestRequestSummary_EmptySummaryKeepsNavDisabled(t *testing.T) {
	backend := &MockBackend{
		SummarizeFunc: func(ctx context.Context, text string) (string, error) { return "", nil },
	}
	c := New(backend)

	require.NoError(t, c.RequestSummary(context.Background(), "notes"))
	p := c.Page()
	assert.Equal(t, domain.ViewSummary, p.ActiveView())
	assert.True(t, p.NavDisabled(domain.ViewSummary))
}

func TestRequestSummary_EmptySummaryDisablesNavAgain(t *testing.T) {
	backend := &MockBackend{}
	c := summarized(t, backend)
	require.False(t, c.Page().NavDisabled(domain.ViewSummary))

	backend.SummarizeFunc = func(ctx context.Context, text string) (string, error) { return "", nil }
	require.NoError(t, c.RequestSummary(context.Background(), "other notes"))

	assert.Empty(t, c.State().Summary())
	assert.False(t, c.State().SummaryNavEnabled())
	assert.True(t, c.Page().NavDisabled(domain.ViewSummary))

	c.GoHome()
	assert.False(t, c.NavigateSummary())
	assert.Equal(t, domain.ViewHome, c.Page().ActiveView())
}

func TestRequestSummary_ShowsLoadingDuringCall(t *testing.T) {
	var seen []domain.View
	c := New(&MockBackend{}, WithLifecycleHooks(domain.LifecycleHooks{
		OnViewChange: func(ev *domain.ViewEvent) { seen = append(seen, ev.To) },
	}))
	var during view.Page
	c.backend = &MockBackend{
		SummarizeFunc: func(ctx context.Context, text string) (string, error) {
			during = c.Page()
			return "s", nil
		},
	}

	require.NoError(t, c.RequestSummary(context.Background(), "notes"))
	assert.Equal(t, domain.ViewLoading, during.ActiveView())
	assert.Equal(t, MsgSummarizing, during.LoaderText)
	assert.Equal(t, []domain.View{domain.ViewLoading, domain.ViewSummary}, seen)
}

func TestSubmitNotes_UsesNoteInput(t *testing.T) {
	backend := &MockBackend{}
	c := New(backend)
	c.AppendNoteInput("line one")
	c.AppendNoteInput("line two")

	require.NoError(t, c.SubmitNotes(context.Background()))
	assert.Equal(t, []string{"line one\nline two"}, backend.SummarizeCalls)
}

func TestRequestQuiz_WithoutSummary(t *testing.T) {
	backend := &MockBackend{}
	c := New(backend)
	c.SwitchView(domain.ViewSummary)

	err := c.RequestQuiz(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSummary)
	assert.Empty(t, backend.QuizCalls)

	p := c.Page()
	assert.Equal(t, domain.ViewHome, p.ActiveView())
	assert.False(t, p.Error.Visible, "no banner for the guard")
}

func TestRequestQuiz_Success(t *testing.T) {
	backend := &MockBackend{}
	c := summarized(t, backend)

	require.NoError(t, c.RequestQuiz(context.Background()))
	assert.Equal(t, []string{"summary of some notes"}, backend.QuizCalls)

	p := c.Page()
	assert.Equal(t, domain.ViewQuiz, p.ActiveView())
	assert.False(t, p.NavDisabled(domain.ViewQuiz))
	require.Len(t, p.Quiz, 1)
	assert.Equal(t, "1. Q1", p.Quiz[0].Heading)
	assert.True(t, c.State().QuizNavEnabled())
}

func TestRequestQuiz_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"service", domain.NewServiceError("No summary provided"), "No summary provided"},
		{"transport", fmt.Errorf("%w: eof", domain.ErrTransport), MsgQuizFailed},
		{"cancelled", fmt.Errorf("%w: %w", domain.ErrTransport, context.Canceled), MsgQuizFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &MockBackend{}
			c := summarized(t, backend)
			backend.QuizFunc = func(ctx context.Context, summary string) ([]domain.QuizQuestion, error) {
				return nil, tt.err
			}

			err := c.RequestQuiz(context.Background())
			assert.Error(t, err)
			p := c.Page()
			assert.Equal(t, domain.ViewHome, p.ActiveView())
			assert.Equal(t, view.Banner{Text: tt.wantMsg, Visible: true}, p.Error)
			assert.True(t, p.NavDisabled(domain.ViewQuiz))
		})
	}
}

func TestFailureMessagesDifferPerEndpoint(t *testing.T) {
	transport := fmt.Errorf("%w: offline", domain.ErrTransport)
	backend := &MockBackend{}
	c := summarized(t, backend)

	backend.QuizFunc = func(ctx context.Context, summary string) ([]domain.QuizQuestion, error) { return nil, transport }
	_ = c.RequestQuiz(context.Background())
	quizMsg := c.Page().Error.Text

	backend.SummarizeFunc = func(ctx context.Context, text string) (string, error) { return "", transport }
	_ = c.RequestSummary(context.Background(), "notes")
	summaryMsg := c.Page().Error.Text

	assert.Equal(t, MsgQuizFailed, quizMsg)
	assert.Equal(t, MsgSummarizeFailed, summaryMsg)
	assert.NotEqual(t, quizMsg, summaryMsg)
}

func TestRenderQuiz_Empty(t *testing.T) {
	c := New(&MockBackend{})
	c.RenderQuiz([]domain.QuizQuestion{{Question: "old", Options: []string{"a", "b"}, Answer: "a"}})

	c.RenderQuiz(nil)
	p := c.Page()
	require.Len(t, p.Quiz, 1)
	assert.Equal(t, view.CardInfo, p.Quiz[0].Kind)
	assert.Equal(t, view.FallbackQuizText, p.Quiz[0].Text)
	assert.Zero(t, p.QuestionCount())
}

func TestRenderQuiz_Questions(t *testing.T) {
	c := New(&MockBackend{})
	c.RenderQuiz([]domain.QuizQuestion{
		{Question: "First?", Options: []string{"x", "y"}, Answer: "y"},
		{Question: "Second?", Options: []string{"p", "q", "r"}, Answer: "p"},
		{Question: "Malformed", Options: []string{"only"}, Answer: "missing"},
	})

	p := c.Page()
	require.Len(t, p.Quiz, 3)
	assert.Equal(t, "1. First?", p.Quiz[0].Heading)
	assert.Equal(t, "2. Second?", p.Quiz[1].Heading)
	assert.Equal(t, "3. Malformed", p.Quiz[2].Heading)
	texts := []string{}
	for _, o := range p.Quiz[1].Options {
		texts = append(texts, o.Text)
	}
	assert.Equal(t, []string{"p", "q", "r"}, texts)
}

func TestSelectOption(t *testing.T) {
	t.Run("correct first", func(t *testing.T) {
		c := summarized(t, &MockBackend{})
		require.NoError(t, c.RequestQuiz(context.Background()))

		out, err := c.SelectOption(0, 1)
		require.NoError(t, err)
		assert.True(t, out.Correct)

		opts := c.Page().Quiz[0].Options
		assert.Equal(t, view.MarkCorrect, opts[1].Mark)
		assert.Equal(t, view.IndicatorCorrect, opts[1].Indicator)
		for _, o := range opts {
			assert.False(t, o.Interactive)
		}
	})

	t.Run("wrong first", func(t *testing.T) {
		c := summarized(t, &MockBackend{})
		require.NoError(t, c.RequestQuiz(context.Background()))

		out, err := c.SelectOption(0, 0)
		require.NoError(t, err)
		assert.False(t, out.Correct)

		opts := c.Page().Quiz[0].Options
		assert.Equal(t, view.MarkWrong, opts[0].Mark)
		assert.Equal(t, view.MarkCorrect, opts[1].Mark)
		assert.Equal(t, view.MarkNone, opts[2].Mark)
		for _, o := range opts {
			assert.False(t, o.Interactive)
		}

		_, err = c.SelectOption(0, 2)
		assert.ErrorIs(t, err, view.ErrOptionLocked)
		assert.Equal(t, view.MarkNone, c.Page().Quiz[0].Options[2].Mark)
	})

	t.Run("questions are independent", func(t *testing.T) {
		backend := &MockBackend{
			QuizFunc: func(ctx context.Context, summary string) ([]domain.QuizQuestion, error) {
				return []domain.QuizQuestion{
					{Question: "one", Options: []string{"a", "b"}, Answer: "a"},
					{Question: "two", Options: []string{"c", "d"}, Answer: "d"},
				}, nil
			},
		}
		c := summarized(t, backend)
		require.NoError(t, c.RequestQuiz(context.Background()))

		_, err := c.SelectOption(0, 1)
		require.NoError(t, err)
		assert.True(t, c.Page().Quiz[1].Options[0].Interactive)

		out, err := c.SelectOption(1, 1)
		require.NoError(t, err)
		assert.True(t, out.Correct)
	})

	t.Run("hidden quiz", func(t *testing.T) {
		c := summarized(t, &MockBackend{})
		require.NoError(t, c.RequestQuiz(context.Background()))
		c.GoHome()

		_, err := c.SelectOption(0, 0)
		assert.ErrorIs(t, err, ErrQuizHidden)
	})

	t.Run("out of range", func(t *testing.T) {
		c := summarized(t, &MockBackend{})
		require.NoError(t, c.RequestQuiz(context.Background()))

		_, err := c.SelectOption(5, 0)
		assert.ErrorIs(t, err, view.ErrQuestionOutOfRange)
		_, err = c.SelectOption(0, 9)
		assert.ErrorIs(t, err, view.ErrOptionOutOfRange)
	})
}

func TestNavigationGuards(t *testing.T) {
	c := New(&MockBackend{})

	assert.False(t, c.NavigateSummary())
	assert.False(t, c.NavigateQuiz())
	assert.Equal(t, domain.ViewHome, c.Page().ActiveView())

	require.NoError(t, c.RequestSummary(context.Background(), "notes"))
	c.GoHome()
	assert.True(t, c.NavigateSummary())
	assert.Equal(t, domain.ViewSummary, c.Page().ActiveView())
	assert.False(t, c.NavigateQuiz())

	require.NoError(t, c.RequestQuiz(context.Background()))
	c.BackToSummary()
	assert.Equal(t, domain.ViewSummary, c.Page().ActiveView())
	assert.True(t, c.NavigateQuiz())
	assert.Equal(t, domain.ViewQuiz, c.Page().ActiveView())
}

func TestRestart(t *testing.T) {
	c := New(&MockBackend{})
	c.SetNoteInput("my notes")
	require.NoError(t, c.SubmitNotes(context.Background()))
	require.NoError(t, c.RequestQuiz(context.Background()))

	c.Restart()

	state := c.State()
	assert.Empty(t, state.Summary())
	assert.False(t, state.SummaryNavEnabled())
	assert.False(t, state.QuizNavEnabled())

	p := c.Page()
	assert.Equal(t, domain.ViewHome, p.ActiveView())
	assert.Empty(t, p.NoteInput)
	assert.True(t, p.NavDisabled(domain.ViewSummary))
	assert.True(t, p.NavDisabled(domain.ViewQuiz))
	assert.Len(t, p.Quiz, 1, "quiz cards stay until the next render")

	assert.False(t, c.NavigateQuiz())
	assert.ErrorIs(t, c.RequestQuiz(context.Background()), domain.ErrNoSummary)
}

func TestStaleResponses(t *testing.T) {
	restartDuringCall := func(c **Controller) *MockBackend {
		return &MockBackend{
			SummarizeFunc: func(ctx context.Context, text string) (string, error) {
				(*c).Restart()
				return "late summary", nil
			},
		}
	}

	t.Run("last response wins by default", func(t *testing.T) {
		var c *Controller
		c = New(restartDuringCall(&c))

		require.NoError(t, c.RequestSummary(context.Background(), "notes"))
		assert.Equal(t, "late summary", c.State().Summary())
		assert.Equal(t, domain.ViewSummary, c.Page().ActiveView())
	})

	t.Run("guard drops superseded response", func(t *testing.T) {
		var done []*domain.RequestEvent
		var c *Controller
		c = New(restartDuringCall(&c),
			WithStaleResponseGuard(),
			WithLifecycleHooks(domain.LifecycleHooks{
				OnRequestDone: func(ctx context.Context, ev *domain.RequestEvent) { done = append(done, ev) },
			}),
		)

		err := c.RequestSummary(context.Background(), "notes")
		assert.ErrorIs(t, err, domain.ErrStaleResponse)
		assert.Empty(t, c.State().Summary())
		assert.Equal(t, domain.ViewHome, c.Page().ActiveView())
		require.Len(t, done, 1)
		assert.True(t, done[0].Stale)
		assert.Equal(t, domain.EndpointSummarize, done[0].Endpoint)
	})
}

func TestRequestHooks(t *testing.T) {
	var started, finished []domain.Endpoint
	var lastErr error
	c := New(&MockBackend{
		QuizFunc: func(ctx context.Context, summary string) ([]domain.QuizQuestion, error) {
			return nil, errors.New("unexpected")
		},
	}, WithLifecycleHooks(domain.LifecycleHooks{
		OnRequestStart: func(ctx context.Context, ev *domain.RequestEvent) { started = append(started, ev.Endpoint) },
		OnRequestDone: func(ctx context.Context, ev *domain.RequestEvent) {
			finished = append(finished, ev.Endpoint)
			lastErr = ev.Err
		},
	}))

	require.NoError(t, c.RequestSummary(context.Background(), "notes"))
	assert.Error(t, c.RequestQuiz(context.Background()))

	assert.Equal(t, []domain.Endpoint{domain.EndpointSummarize, domain.EndpointQuiz}, started)
	assert.Equal(t, started, finished)
	assert.EqualError(t, lastErr, "unexpected")
	assert.Equal(t, MsgQuizFailed, c.Page().Error.Text)
}

func TestScroll(t *testing.T) {
	c := New(&MockBackend{})
	c.Scroll(5)
	assert.Equal(t, 5, c.Page().ScrollOffset)
	c.Scroll(-20)
	assert.Zero(t, c.Page().ScrollOffset)
}
