package http

import "github.com/aretw0/notequiz/pkg/domain"

// SummarizeRequest is the body of POST /summarize.
type SummarizeRequest struct {
	Text string `json:"text"`
}

// SummarizeResponse carries either a summary or an error message.
type SummarizeResponse struct {
	Summary string `json:"summary,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// QuizRequest is the body of POST /quiz.
type QuizRequest struct {
	Summary string `json:"summary"`
}

// QuizResponse carries either the questions or an error message.
// Quiz is a pointer so that a missing field can be told apart from an empty list.
type QuizResponse struct {
	Quiz  *[]domain.QuizQuestion `json:"quiz,omitempty"`
	Error string                 `json:"error,omitempty"`
}
