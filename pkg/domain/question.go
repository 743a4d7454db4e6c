package domain

import (
	"errors"
	"fmt"
	"slices"
)

// QuizQuestion is a multiple-choice question as returned by the quiz endpoint.
type QuizQuestion struct {
	Question string   `json:"question" mapstructure:"question"`
	Options  []string `json:"options" mapstructure:"options"`
	Answer   string   `json:"answer" mapstructure:"answer"`
}

// Validate reports every way the question deviates from the expected shape:
// at least two unique options, one of which equals the answer.
func (q QuizQuestion) Validate() error {
	var errs []error
	if len(q.Options) < 2 {
		errs = append(errs, fmt.Errorf("expected at least 2 options, got %d", len(q.Options)))
	}
	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if seen[opt] {
			errs = append(errs, fmt.Errorf("duplicate option %q", opt))
		}
		seen[opt] = true
	}
	if !slices.Contains(q.Options, q.Answer) {
		errs = append(errs, fmt.Errorf("answer %q is not among the options", q.Answer))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidQuestion, errors.Join(errs...))
}
