package domain

import "fmt"

// View identifies one of the four full-screen regions of the page.
type View string

const (
	ViewHome    View = "home"
	ViewLoading View = "loading"
	ViewSummary View = "summary"
	ViewQuiz    View = "quiz"
)

// Views lists every view in page order.
var Views = []View{ViewHome, ViewLoading, ViewSummary, ViewQuiz}

// StatusLabel returns the header label shown while the view is active.
// The second result is false for Loading, which leaves the label untouched.
func (v View) StatusLabel() (string, bool) {
	switch v {
	case ViewHome:
		return "Dashboard", true
	case ViewSummary:
		return "Summary", true
	case ViewQuiz:
		return "Practice Quiz", true
	}
	return "", false
}

// Valid reports whether v is one of the enumerated views.
func (v View) Valid() bool {
	for _, known := range Views {
		if v == known {
			return true
		}
	}
	return false
}

// ParseView converts a view name into a View.
func ParseView(s string) (View, error) {
	v := View(s)
	if !v.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
	}
	return v, nil
}
