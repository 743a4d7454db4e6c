package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/notequiz/internal/input"
	"github.com/aretw0/notequiz/internal/logging"
	"github.com/aretw0/notequiz/internal/presentation/graph"
	"github.com/aretw0/notequiz/internal/presentation/tui"
	"github.com/aretw0/notequiz/pkg/controller"
	"github.com/aretw0/notequiz/pkg/domain"
	"github.com/aretw0/notequiz/pkg/ports"
	"github.com/aretw0/notequiz/pkg/view"
)

// scrollStep is the number of lines moved by :up and :down.
const scrollStep = 5

// Session connects a controller to a terminal.
type Session struct {
	ctrl      *controller.Controller
	presenter *tui.Presenter
	notes     ports.NoteSource
	out       io.Writer
	logger    *slog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithNotes enables :load.
func WithNotes(notes ports.NoteSource) SessionOption {
	return func(s *Session) {
		s.notes = notes
	}
}

// WithSessionLogger configures the structured logger.
func WithSessionLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession creates a session drawing with presenter and writing messages to out.
func NewSession(ctrl *controller.Controller, presenter *tui.Presenter, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		ctrl:      ctrl,
		presenter: presenter,
		out:       out,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run draws the page and handles lines until :quit, end of input or ctx is done.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	reader := input.NewLineReader(in)
	defer reader.Close()
	if err := s.presenter.Draw(s.ctrl.Page()); err != nil {
		return err
	}

	for {
		fmt.Fprint(s.out, "> ")
		line, err := reader.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, input.ErrInputTooLarge) || errors.Is(err, input.ErrInvalidUTF8) {
				fmt.Fprintf(s.out, "Error: %v. Please try again.\n", err)
				continue
			}
			return err
		}

		quit, notice := s.Handle(ctx, line)
		if quit {
			return nil
		}
		if err := s.presenter.Draw(s.ctrl.Page()); err != nil {
			return err
		}
		if notice != "" {
			printSystemMessage(s.out, "%s", notice)
		}
	}
}

// Handle applies one input line. It reports whether the session should end
// and an optional message for the user.
func (s *Session) Handle(ctx context.Context, line string) (quit bool, notice string) {
	cmd := ParseCommand(line)
	switch cmd.Kind {
	case CmdQuit:
		return true, ""
	case CmdSummarize:
		s.logResult("summarize", s.ctrl.SubmitNotes(ctx))
	case CmdQuiz:
		s.logResult("quiz", s.ctrl.RequestQuiz(ctx))
	case CmdHome:
		s.ctrl.GoHome()
	case CmdSummary:
		if !s.ctrl.NavigateSummary() {
			return false, "No summary yet. Type your notes and :summarize first."
		}
	case CmdPractice:
		if !s.ctrl.NavigateQuiz() {
			return false, "No quiz yet. Generate one from the summary with :quiz."
		}
	case CmdBack:
		s.ctrl.BackToSummary()
	case CmdRestart:
		s.ctrl.Restart()
	case CmdClear:
		s.ctrl.SetNoteInput("")
	case CmdLoad:
		return false, s.load(ctx, cmd.Arg)
	case CmdUp:
		s.ctrl.Scroll(-scrollStep)
	case CmdDown:
		s.ctrl.Scroll(scrollStep)
	case CmdGraph:
		state := s.ctrl.State()
		return false, "\n" + graph.GenerateMermaid(domain.Transitions(), &graph.GraphOverlay{
			VisitedViews: state.Visited(),
			CurrentView:  state.View(),
		})
	case CmdHelp:
		return false, helpText
	case CmdUnknown:
		return false, fmt.Sprintf("Unknown command :%s. Type :help.", cmd.Arg)
	case CmdText:
		return false, s.text(cmd.Arg)
	}
	return false, ""
}

func (s *Session) text(line string) string {
	switch s.ctrl.Page().ActiveView() {
	case domain.ViewHome:
		s.ctrl.AppendNoteInput(line)
		return ""
	case domain.ViewQuiz:
		q, o, ok := ParseAnswer(line)
		if !ok {
			return `Answer with "<question> <option>", e.g. "1 b".`
		}
		out, err := s.ctrl.SelectOption(q, o)
		switch {
		case errors.Is(err, view.ErrOptionLocked):
			return fmt.Sprintf("Question %d is already answered.", q+1)
		case err != nil:
			return err.Error()
		case out.Correct:
			return "Correct!"
		default:
			return "Not quite."
		}
	default:
		return "Type :home to edit notes or :help for commands."
	}
}

func (s *Session) load(ctx context.Context, id string) string {
	if s.notes == nil {
		return "No notes directory configured. Use --notes-dir."
	}
	if id == "" {
		return "Usage: :load ID"
	}
	note, err := s.notes.Load(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			return fmt.Sprintf("Note %q not found.", id)
		}
		s.logger.Error("Failed to load note", "id", id, "err", err)
		return fmt.Sprintf("Failed to load note %q.", id)
	}
	s.ctrl.SetNoteInput(note.Body)
	s.ctrl.GoHome()
	return fmt.Sprintf("Loaded %q.", note.Title)
}

func (s *Session) logResult(op string, err error) {
	if err != nil {
		s.logger.Debug("Command failed", "op", op, "err", err)
	}
}
