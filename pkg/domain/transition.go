package domain

// Transition documents an edge between two views and the user action or
// response that causes it.
type Transition struct {
	From    View   `json:"from"`
	To      View   `json:"to"`
	Trigger string `json:"trigger"`
	Guarded bool   `json:"guarded,omitempty"`
}

// Transitions returns the navigation table of the controller.
func Transitions() []Transition {
	return []Transition{
		{From: ViewHome, To: ViewLoading, Trigger: "summarize"},
		{From: ViewHome, To: ViewHome, Trigger: "summarize (empty notes)"},
		{From: ViewLoading, To: ViewSummary, Trigger: "summary received"},
		{From: ViewLoading, To: ViewHome, Trigger: "error"},
		{From: ViewSummary, To: ViewLoading, Trigger: "generate quiz"},
		{From: ViewSummary, To: ViewHome, Trigger: "back to home"},
		{From: ViewLoading, To: ViewQuiz, Trigger: "quiz received"},
		{From: ViewQuiz, To: ViewSummary, Trigger: "back to summary"},
		{From: ViewQuiz, To: ViewHome, Trigger: "restart"},
		{From: ViewHome, To: ViewSummary, Trigger: "summary card", Guarded: true},
		{From: ViewHome, To: ViewQuiz, Trigger: "quiz card", Guarded: true},
	}
}
