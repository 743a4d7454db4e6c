package ports

import (
	"context"

	"github.com/aretw0/notequiz/pkg/domain"
)

// Backend is the external service consumed by the view controller.
//
// Implementations return *domain.ServiceError when the service reported a
// logical error, and an error wrapping domain.ErrTransport for every other
// failure.
type Backend interface {
	// Summarize condenses the note text.
	Summarize(ctx context.Context, text string) (string, error)

	// GenerateQuiz builds multiple-choice questions from a summary.
	GenerateQuiz(ctx context.Context, summary string) ([]domain.QuizQuestion, error)
}
