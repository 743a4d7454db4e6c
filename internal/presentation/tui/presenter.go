package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/notequiz/pkg/domain"
	"github.com/aretw0/notequiz/pkg/view"
	"github.com/muesli/termenv"
)

const (
	colorStatus  = "#818cf8"
	colorError   = "#ef4444"
	colorCorrect = "#22c55e"
	colorWrong   = "#ef4444"
	colorLoader  = "#facc15"
)

// Presenter draws a view.Page on a terminal.
type Presenter struct {
	w        io.Writer
	out      *termenv.Output
	markdown MarkdownRenderer
}

// PresenterOption configures a Presenter.
type PresenterOption func(*Presenter)

// WithProfile forces a colour profile. termenv.Ascii disables styling.
func WithProfile(p termenv.Profile) PresenterOption {
	return func(pr *Presenter) {
		pr.out = termenv.NewOutput(pr.w, termenv.WithProfile(p))
	}
}

// WithMarkdown renders the summary through r.
func WithMarkdown(r MarkdownRenderer) PresenterOption {
	return func(pr *Presenter) {
		pr.markdown = r
	}
}

// NewPresenter creates a presenter writing to w. The summary is shown as
// plain text unless WithMarkdown is given.
func NewPresenter(w io.Writer, opts ...PresenterOption) *Presenter {
	p := &Presenter{
		w:        w,
		out:      termenv.NewOutput(w),
		markdown: PlainRenderer,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Draw writes the rendered page.
func (p *Presenter) Draw(page view.Page) error {
	_, err := io.WriteString(p.w, p.Render(page))
	return err
}

// Render returns the page as text: status line, shortcuts, error banner and
// the active region scrolled by page.ScrollOffset lines.
func (p *Presenter) Render(page view.Page) string {
	var sb strings.Builder

	sb.WriteString(p.out.String("== " + page.Status + " ==").Bold().Foreground(p.out.Color(colorStatus)).String())
	sb.WriteString("\n")
	sb.WriteString(p.nav(page))
	sb.WriteString("\n")

	if page.Error.Visible {
		sb.WriteString(p.out.String("! " + page.Error.Text).Foreground(p.out.Color(colorError)).String())
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	lines := p.body(page)
	offset := min(page.ScrollOffset, max(len(lines)-1, 0))
	for _, l := range lines[offset:] {
		sb.WriteString(l)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (p *Presenter) nav(page view.Page) string {
	parts := make([]string, 0, len(page.Nav))
	for _, n := range page.Nav {
		if n.Disabled {
			parts = append(parts, p.out.String(n.Label+" (locked)").Faint().String())
			continue
		}
		parts = append(parts, "["+n.Label+"]")
	}
	return strings.Join(parts, "  ")
}

func (p *Presenter) body(page view.Page) []string {
	switch page.ActiveView() {
	case domain.ViewLoading:
		return []string{p.out.String("... " + page.LoaderText).Foreground(p.out.Color(colorLoader)).String()}
	case domain.ViewSummary:
		return p.summary(page)
	case domain.ViewQuiz:
		return p.quiz(page)
	default:
		return p.home(page)
	}
}

func (p *Presenter) home(page view.Page) []string {
	lines := []string{"Paste your notes, then type :summarize."}
	if strings.TrimSpace(page.NoteInput) == "" {
		return append(lines, p.out.String("(no notes yet)").Faint().String())
	}
	return append(lines, strings.Split(page.NoteInput, "\n")...)
}

func (p *Presenter) summary(page view.Page) []string {
	text, err := p.markdown(page.SummaryText)
	if err != nil {
		text = page.SummaryText
	}
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	return append(lines, "", "Type :quiz to practice or :home to go back.")
}

func (p *Presenter) quiz(page view.Page) []string {
	var lines []string
	for _, c := range page.Quiz {
		if c.Kind == view.CardInfo {
			lines = append(lines, c.Text, "")
			continue
		}
		lines = append(lines, p.out.String(c.Heading).Bold().String())
		for i, o := range c.Options {
			lines = append(lines, "   "+p.option(i, o))
		}
		lines = append(lines, "")
	}
	return append(lines, "Answer with <question> <letter>, e.g. 1 b. :back returns to the summary.")
}

func (p *Presenter) option(i int, o view.Option) string {
	label := fmt.Sprintf("%c) %s", 'a'+rune(i), o.Label())
	style := p.out.String(label)
	switch o.Mark {
	case view.MarkCorrect:
		style = style.Foreground(p.out.Color(colorCorrect))
	case view.MarkWrong:
		style = style.Foreground(p.out.Color(colorWrong))
	default:
		if !o.Interactive {
			style = style.Faint()
		}
	}
	return style.String()
}
