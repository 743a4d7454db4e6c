package domain

// AppState is the mutable application state owned by the view controller.
//
// The navigation flags can only be raised through EnableSummaryNav and
// EnableQuizNav, which refuse to do so unless their precondition holds.
// Summary navigation needs a non-empty summary and is dropped again when
// the summary is emptied. Quiz navigation needs a rendered quiz.
type AppState struct {
	view       View
	summary    string
	quizShown  bool
	summaryNav bool
	quizNav    bool
	visited    map[View]bool
}

// NewAppState returns the initial state: Home, no summary, navigation disabled.
func NewAppState() *AppState {
	return &AppState{
		view:    ViewHome,
		visited: map[View]bool{ViewHome: true},
	}
}

// View returns the active view.
func (s *AppState) View() View { return s.view }

// Summary returns the last generated summary text.
func (s *AppState) Summary() string { return s.summary }

// SummaryNavEnabled reports whether the dashboard may jump to the summary view.
func (s *AppState) SummaryNavEnabled() bool { return s.summaryNav }

// QuizNavEnabled reports whether the dashboard may jump to the quiz view.
func (s *AppState) QuizNavEnabled() bool { return s.quizNav }

// QuizRendered reports whether a quiz has been rendered since the last reset.
func (s *AppState) QuizRendered() bool { return s.quizShown }

// Visited returns the views entered at least once, in page order.
func (s *AppState) Visited() []View {
	var out []View
	for _, v := range Views {
		if s.visited[v] {
			out = append(out, v)
		}
	}
	return out
}

// SetView records v as the active view.
func (s *AppState) SetView(v View) {
	s.view = v
	s.visited[v] = true
}

// SetSummary stores the summary text returned by the backend.
// An empty text also disables summary navigation.
func (s *AppState) SetSummary(text string) {
	s.summary = text
	if text == "" {
		s.summaryNav = false
	}
}

// MarkQuizRendered records that quiz cards were rendered.
func (s *AppState) MarkQuizRendered() { s.quizShown = true }

// EnableSummaryNav enables summary navigation if a summary exists.
// It returns the resulting flag.
func (s *AppState) EnableSummaryNav() bool {
	if s.summary != "" {
		s.summaryNav = true
	}
	return s.summaryNav
}

// EnableQuizNav enables quiz navigation if a quiz has been rendered.
// It returns the resulting flag.
func (s *AppState) EnableQuizNav() bool {
	if s.quizShown {
		s.quizNav = true
	}
	return s.quizNav
}

// Reset clears the summary and disables both navigation flags.
// The active view is left to the caller.
func (s *AppState) Reset() {
	s.summary = ""
	s.quizShown = false
	s.summaryNav = false
	s.quizNav = false
}

// Snapshot returns an independent copy of the state.
func (s *AppState) Snapshot() *AppState {
	cp := *s
	cp.visited = make(map[View]bool, len(s.visited))
	for v := range s.visited {
		cp.visited[v] = true
	}
	return &cp
}
