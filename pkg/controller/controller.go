package controller

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/notequiz/pkg/domain"
	"github.com/aretw0/notequiz/pkg/ports"
	"github.com/aretw0/notequiz/pkg/view"
)

// User-facing messages.
const (
	MsgEmptyNotes      = "Please paste some notes first!"
	MsgSummarizing     = "AI is reading your notes..."
	MsgSummarizeFailed = "Server connection failed. Is the backend running?"
	MsgGeneratingQuiz  = "Creating your practice test..."
	MsgQuizFailed      = "Failed to generate quiz. Try again later."
)

// ErrQuizHidden is returned when an option is selected while the quiz view is not shown.
var ErrQuizHidden = errors.New("quiz view is not active")

// Controller drives the page through the four views.
type Controller struct {
	backend    ports.Backend
	logger     *slog.Logger
	hooks      domain.LifecycleHooks
	guardStale bool

	mu    sync.Mutex
	state *domain.AppState
	page  *view.Page
	token uint64
}

// New creates a Controller showing the Home view.
func New(backend ports.Backend, opts ...Option) *Controller {
	c := &Controller{
		backend: backend,
		state:   domain.NewAppState(),
		page:    view.NewPage(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// Page returns a copy of the page model.
func (c *Controller) Page() view.Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page.Clone()
}

// State returns a copy of the application state.
func (c *Controller) State() *domain.AppState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Snapshot()
}

// SwitchView shows target and hides the other regions.
func (c *Controller) SwitchView(target domain.View) {
	c.mutate(func() []*domain.ViewEvent {
		return []*domain.ViewEvent{c.switchViewLocked(target)}
	})
}

// ShowLoading sets the loader text and shows the Loading view.
func (c *Controller) ShowLoading(message string) {
	c.mutate(func() []*domain.ViewEvent {
		return []*domain.ViewEvent{c.showLoadingLocked(message)}
	})
}

// ShowError returns to Home and shows message in the error banner.
func (c *Controller) ShowError(message string) {
	c.mutate(func() []*domain.ViewEvent {
		return []*domain.ViewEvent{c.showErrorLocked(message)}
	})
}

// SubmitNotes requests a summary of the current note input.
func (c *Controller) SubmitNotes(ctx context.Context) error {
	c.mu.Lock()
	text := c.page.NoteInput
	c.mu.Unlock()
	return c.RequestSummary(ctx, text)
}

// RequestSummary sends noteText to the backend and shows the summary.
func (c *Controller) RequestSummary(ctx context.Context, noteText string) error {
	text := strings.TrimSpace(noteText)
	if text == "" {
		c.ShowError(MsgEmptyNotes)
		return domain.ErrEmptyNotes
	}

	var token uint64
	c.mutate(func() []*domain.ViewEvent {
		ev := c.showLoadingLocked(MsgSummarizing)
		c.page.Error.Visible = false
		token = c.nextTokenLocked()
		return []*domain.ViewEvent{ev}
	})

	start := c.requestStarted(ctx, domain.EndpointSummarize, token)
	summary, err := c.backend.Summarize(ctx, text)

	var result error
	c.mutate(func() []*domain.ViewEvent {
		if c.staleLocked(token) {
			result = domain.ErrStaleResponse
			return nil
		}
		var svcErr *domain.ServiceError
		switch {
		case errors.As(err, &svcErr):
			result = err
			return []*domain.ViewEvent{c.showErrorLocked(svcErr.Message)}
		case err != nil:
			result = err
			return []*domain.ViewEvent{c.showErrorLocked(MsgSummarizeFailed)}
		}
		c.state.SetSummary(summary)
		c.page.SummaryText = summary
		c.page.SetNavDisabled(domain.ViewSummary, !c.state.EnableSummaryNav())
		return []*domain.ViewEvent{c.switchViewLocked(domain.ViewSummary)}
	})
	c.requestDone(ctx, domain.EndpointSummarize, token, start, result)
	return result
}

// RequestQuiz asks the backend for a quiz built from the stored summary.
// Without a summary it silently returns to Home.
func (c *Controller) RequestQuiz(ctx context.Context) error {
	var (
		summary string
		token   uint64
	)
	c.mutate(func() []*domain.ViewEvent {
		summary = c.state.Summary()
		if summary == "" {
			return []*domain.ViewEvent{c.switchViewLocked(domain.ViewHome)}
		}
		token = c.nextTokenLocked()
		return []*domain.ViewEvent{c.showLoadingLocked(MsgGeneratingQuiz)}
	})
	if summary == "" {
		return domain.ErrNoSummary
	}

	start := c.requestStarted(ctx, domain.EndpointQuiz, token)
	questions, err := c.backend.GenerateQuiz(ctx, summary)

	var result error
	c.mutate(func() []*domain.ViewEvent {
		if c.staleLocked(token) {
			result = domain.ErrStaleResponse
			return nil
		}
		var svcErr *domain.ServiceError
		switch {
		case errors.As(err, &svcErr):
			result = err
			return []*domain.ViewEvent{c.showErrorLocked(svcErr.Message)}
		case err != nil:
			result = err
			return []*domain.ViewEvent{c.showErrorLocked(MsgQuizFailed)}
		}
		c.renderQuizLocked(questions)
		if c.state.EnableQuizNav() {
			c.page.SetNavDisabled(domain.ViewQuiz, false)
		}
		return []*domain.ViewEvent{c.switchViewLocked(domain.ViewQuiz)}
	})
	c.requestDone(ctx, domain.EndpointQuiz, token, start, result)
	return result
}

// RenderQuiz replaces the quiz content with cards for questions.
func (c *Controller) RenderQuiz(questions []domain.QuizQuestion) {
	c.mutate(func() []*domain.ViewEvent {
		c.renderQuizLocked(questions)
		return nil
	})
}

// SelectOption clicks option of the question at index question (both zero-based).
func (c *Controller) SelectOption(question, option int) (view.Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.page.ActiveView() != domain.ViewQuiz {
		return view.Outcome{}, ErrQuizHidden
	}
	card, err := c.page.QuestionCard(question)
	if err != nil {
		return view.Outcome{}, err
	}
	out, err := card.Select(option)
	if err != nil {
		return view.Outcome{}, err
	}
	c.logger.Debug("Option Selected", "question", question+1, "option", option+1, "correct", out.Correct)
	return out, nil
}

// GoHome shows the Home view (logo, "new notes" card, back button).
func (c *Controller) GoHome() {
	c.SwitchView(domain.ViewHome)
}

// BackToSummary shows the Summary view from the quiz screen.
func (c *Controller) BackToSummary() {
	c.SwitchView(domain.ViewSummary)
}

// NavigateSummary follows the dashboard summary card unless it is disabled.
func (c *Controller) NavigateSummary() bool {
	return c.navigateGuarded(domain.ViewSummary)
}

// NavigateQuiz follows the dashboard quiz card unless it is disabled.
func (c *Controller) NavigateQuiz() bool {
	return c.navigateGuarded(domain.ViewQuiz)
}

func (c *Controller) navigateGuarded(target domain.View) bool {
	moved := false
	c.mutate(func() []*domain.ViewEvent {
		if c.page.NavDisabled(target) {
			return nil
		}
		moved = true
		return []*domain.ViewEvent{c.switchViewLocked(target)}
	})
	return moved
}

// Restart clears the notes and the summary, disables both dashboard
// shortcuts and returns to Home. Rendered quiz cards stay until the next quiz.
func (c *Controller) Restart() {
	c.mutate(func() []*domain.ViewEvent {
		c.page.NoteInput = ""
		c.state.Reset()
		c.page.SetNavDisabled(domain.ViewSummary, true)
		c.page.SetNavDisabled(domain.ViewQuiz, true)
		c.token++
		return []*domain.ViewEvent{c.switchViewLocked(domain.ViewHome)}
	})
}

// SetNoteInput replaces the note input text.
func (c *Controller) SetNoteInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page.NoteInput = text
}

// AppendNoteInput adds a line to the note input.
func (c *Controller) AppendNoteInput(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.page.NoteInput == "" {
		c.page.NoteInput = line
		return
	}
	c.page.NoteInput += "\n" + line
}

// Scroll moves the scroll offset by delta lines, never above the top.
func (c *Controller) Scroll(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page.ScrollOffset = max(0, c.page.ScrollOffset+delta)
}

func (c *Controller) switchViewLocked(target domain.View) *domain.ViewEvent {
	from := c.state.View()
	c.page.Activate(target)
	if label, ok := target.StatusLabel(); ok {
		c.page.Status = label
	}
	c.page.ScrollOffset = 0
	c.state.SetView(target)
	return &domain.ViewEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventViewChange},
		From:      from,
		To:        target,
	}
}

func (c *Controller) showLoadingLocked(message string) *domain.ViewEvent {
	c.page.LoaderText = message
	return c.switchViewLocked(domain.ViewLoading)
}

func (c *Controller) showErrorLocked(message string) *domain.ViewEvent {
	ev := c.switchViewLocked(domain.ViewHome)
	c.page.Error = view.Banner{Text: message, Visible: true}
	return ev
}

func (c *Controller) renderQuizLocked(questions []domain.QuizQuestion) {
	c.page.ClearQuiz()
	c.state.MarkQuizRendered()
	if len(questions) == 0 {
		c.page.AppendCard(view.NewInfoCard(view.FallbackQuizText))
		return
	}
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			c.logger.Debug("Rendering Malformed Question", "index", i+1, "err", err)
		}
		c.page.AppendCard(view.NewQuestionCard(i, q))
	}
}

func (c *Controller) nextTokenLocked() uint64 {
	c.token++
	return c.token
}

func (c *Controller) staleLocked(token uint64) bool {
	if !c.guardStale || token == c.token {
		return false
	}
	c.logger.Debug("Dropping Stale Response", "token", token, "current", c.token)
	return true
}

// mutate runs fn under the lock and fires view hooks once it is released.
func (c *Controller) mutate(fn func() []*domain.ViewEvent) {
	c.mu.Lock()
	events := fn()
	c.mu.Unlock()

	for _, ev := range events {
		c.logger.Debug("View Changed", "from", ev.From, "to", ev.To)
		if c.hooks.OnViewChange != nil {
			c.hooks.OnViewChange(ev)
		}
	}
}

func (c *Controller) requestStarted(ctx context.Context, endpoint domain.Endpoint, token uint64) time.Time {
	start := time.Now()
	if c.hooks.OnRequestStart != nil {
		c.hooks.OnRequestStart(ctx, &domain.RequestEvent{
			EventBase: domain.EventBase{Timestamp: start, Type: domain.EventRequestStart},
			Endpoint:  endpoint,
			Token:     token,
		})
	}
	return start
}

func (c *Controller) requestDone(ctx context.Context, endpoint domain.Endpoint, token uint64, start time.Time, err error) {
	elapsed := time.Since(start)
	if err != nil {
		c.logger.Debug("Request Failed", "endpoint", endpoint, "duration", elapsed, "err", err)
	} else {
		c.logger.Debug("Request Succeeded", "endpoint", endpoint, "duration", elapsed)
	}
	if c.hooks.OnRequestDone != nil {
		c.hooks.OnRequestDone(ctx, &domain.RequestEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventRequestDone},
			Endpoint:  endpoint,
			Token:     token,
			Duration:  elapsed,
			Err:       err,
			Stale:     errors.Is(err, domain.ErrStaleResponse),
		})
	}
}
