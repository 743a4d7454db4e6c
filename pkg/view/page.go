package view

import (
	"fmt"

	"github.com/aretw0/notequiz/pkg/domain"
)

// Region is one of the four screen regions.
type Region struct {
	View   domain.View
	Active bool
}

// Banner is the error message shown on the home screen.
type Banner struct {
	Text    string
	Visible bool
}

// NavCard is a dashboard shortcut. Disabled cards refuse navigation.
type NavCard struct {
	Target   domain.View
	Label    string
	Disabled bool
}

// Page is the full page model.
type Page struct {
	Regions      []Region
	Status       string
	LoaderText   string
	Error        Banner
	NoteInput    string
	SummaryText  string
	Nav          []NavCard
	Quiz         []Card
	ScrollOffset int
}

// NewPage returns the page as first shown: Home active, shortcuts to the
// summary and the quiz disabled.
func NewPage() *Page {
	p := &Page{
		Nav: []NavCard{
			{Target: domain.ViewHome, Label: "New Notes"},
			{Target: domain.ViewSummary, Label: "Summary", Disabled: true},
			{Target: domain.ViewQuiz, Label: "Practice Quiz", Disabled: true},
		},
	}
	for _, v := range domain.Views {
		p.Regions = append(p.Regions, Region{View: v})
	}
	p.Activate(domain.ViewHome)
	if label, ok := domain.ViewHome.StatusLabel(); ok {
		p.Status = label
	}
	return p
}

// Activate deactivates every region and activates the one showing v.
func (p *Page) Activate(v domain.View) {
	for i := range p.Regions {
		p.Regions[i].Active = p.Regions[i].View == v
	}
}

// ActiveView returns the view of the active region.
func (p Page) ActiveView() domain.View {
	for _, r := range p.Regions {
		if r.Active {
			return r.View
		}
	}
	return ""
}

// NavDisabled reports whether the shortcut to v carries the disabled marker.
// Unknown targets count as disabled.
func (p Page) NavDisabled(v domain.View) bool {
	for _, n := range p.Nav {
		if n.Target == v {
			return n.Disabled
		}
	}
	return true
}

// SetNavDisabled sets the disabled marker of the shortcut to v.
func (p *Page) SetNavDisabled(v domain.View, disabled bool) {
	for i := range p.Nav {
		if p.Nav[i].Target == v {
			p.Nav[i].Disabled = disabled
		}
	}
}

// ClearQuiz removes every quiz card.
func (p *Page) ClearQuiz() {
	p.Quiz = nil
}

// AppendCard adds a card to the quiz content.
func (p *Page) AppendCard(c Card) {
	p.Quiz = append(p.Quiz, c)
}

// QuestionCard returns the question card at zero-based index n, counting
// question cards only.
func (p *Page) QuestionCard(n int) (*Card, error) {
	seen := 0
	for i := range p.Quiz {
		if p.Quiz[i].Kind != CardQuestion {
			continue
		}
		if seen == n {
			return &p.Quiz[i], nil
		}
		seen++
	}
	return nil, fmt.Errorf("%w: question %d of %d", ErrQuestionOutOfRange, n+1, seen)
}

// QuestionCount returns the number of question cards.
func (p Page) QuestionCount() int {
	n := 0
	for _, c := range p.Quiz {
		if c.Kind == CardQuestion {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the page.
func (p *Page) Clone() Page {
	cp := *p
	cp.Regions = append([]Region(nil), p.Regions...)
	cp.Nav = append([]NavCard(nil), p.Nav...)
	if p.Quiz != nil {
		cp.Quiz = make([]Card, len(p.Quiz))
		for i, c := range p.Quiz {
			cp.Quiz[i] = c.clone()
		}
	}
	return cp
}
