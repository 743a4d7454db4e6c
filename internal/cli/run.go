package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/notequiz/internal/config"
	"github.com/aretw0/notequiz/internal/presentation/tui"
	"github.com/aretw0/notequiz/pkg/controller"
	"github.com/muesli/termenv"
)

// RunOptions contains the configuration for the run command.
type RunOptions struct {
	Config *config.Config
	Debug  bool
	// Note is an optional note ID loaded into the input at start.
	Note string
	In   io.Reader
	Out  io.Writer
}

// RunSession executes an interactive session until the user quits or a
// signal arrives.
func RunSession(opts RunOptions) error {
	cfg := opts.Config
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	logger, err := createLogger(cfg.Log.Level, opts.Debug)
	if err != nil {
		return err
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	backend, closer, err := createBackend(sigCtx, cfg, logger)
	if err != nil {
		return err
	}
	defer closer.Close()

	notes, err := createNoteSource(cfg.Notes.Dir)
	if err != nil {
		return err
	}

	presenter := createPresenter(opts.Out, cfg.UI.Plain)

	var ctrl *controller.Controller
	hooks := createSessionHooks(logger, func() {
		if err := presenter.Draw(ctrl.Page()); err != nil {
			logger.Debug("Draw failed", "err", err)
		}
	})
	ctrl = controller.New(backend,
		controller.WithLogger(logger),
		controller.WithLifecycleHooks(hooks),
		controller.WithStaleResponseGuard(),
	)

	sessionOpts := []SessionOption{WithSessionLogger(logger)}
	if notes != nil {
		sessionOpts = append(sessionOpts, WithNotes(notes))
	}
	session := NewSession(ctrl, presenter, opts.Out, sessionOpts...)

	if !cfg.UI.Plain {
		tui.PrintBanner(opts.Out)
	}
	if opts.Note != "" {
		printSystemMessage(opts.Out, "%s", session.load(sigCtx, opts.Note))
	}
	logger.Info("Session started", "mode", cfg.Backend.Mode, "backend", cfg.Backend.URL)

	runErr := session.Run(sigCtx, opts.In)
	if sig := sigCtx.Signal(); sig != nil {
		fmt.Fprintln(opts.Out)
		printSystemMessage(opts.Out, "Interrupted (%v).", sig)
	}
	return handleExecutionError(runErr)
}

func createPresenter(out io.Writer, plain bool) *tui.Presenter {
	if plain {
		return tui.NewPresenter(out, tui.WithProfile(termenv.Ascii))
	}
	width := 80
	if f, ok := out.(*os.File); ok && tui.IsTerminal(f) {
		width = tui.TerminalWidth(f, width)
	}
	return tui.NewPresenter(out, tui.WithMarkdown(tui.NewRenderer(width-4)))
}
