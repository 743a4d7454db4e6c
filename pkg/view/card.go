package view

import (
	"errors"
	"fmt"

	"github.com/aretw0/notequiz/pkg/domain"
)

// Indicators appended to an option once it has been marked.
const (
	IndicatorCorrect = "✅"
	IndicatorWrong   = "❌"
)

// FallbackQuizText is shown instead of question cards for an empty quiz.
const FallbackQuizText = "Could not generate a quiz from this text. Try a longer technical subject!"

var (
	ErrNotQuestion        = errors.New("card is not a question")
	ErrOptionOutOfRange   = errors.New("option out of range")
	ErrQuestionOutOfRange = errors.New("question out of range")
	ErrOptionLocked       = errors.New("question already answered")
)

// Mark is the visual verdict attached to an option.
type Mark string

const (
	MarkNone    Mark = ""
	MarkCorrect Mark = "correct"
	MarkWrong   Mark = "wrong"
)

// Option is one clickable choice of a question card.
type Option struct {
	Text        string
	Mark        Mark
	Indicator   string
	Interactive bool
}

// Label returns the option text followed by its indicator, if any.
func (o Option) Label() string {
	if o.Indicator == "" {
		return o.Text
	}
	return o.Text + " " + o.Indicator
}

// CardKind distinguishes informational cards from question cards.
type CardKind int

const (
	CardInfo CardKind = iota
	CardQuestion
)

// Card is one block of the quiz content region.
type Card struct {
	Kind    CardKind
	Text    string
	Heading string
	Options []Option

	answer   string
	answered bool
}

// Outcome describes the effect of selecting an option.
type Outcome struct {
	Correct bool
	// Revealed is the index of the option marked correct on a wrong answer, or -1.
	Revealed int
}

// NewInfoCard builds a card that only carries text.
func NewInfoCard(text string) Card {
	return Card{Kind: CardInfo, Text: text}
}

// NewQuestionCard builds the card for the question at zero-based index.
func NewQuestionCard(index int, q domain.QuizQuestion) Card {
	opts := make([]Option, len(q.Options))
	for i, text := range q.Options {
		opts[i] = Option{Text: text, Interactive: true}
	}
	return Card{
		Kind:    CardQuestion,
		Heading: fmt.Sprintf("%d. %s", index+1, q.Question),
		Options: opts,
		answer:  q.Answer,
	}
}

// Answered reports whether an option of the card has been selected.
func (c *Card) Answered() bool { return c.answered }

// Select applies a click on option i.
//
// The first click locks the card: a correct pick is marked correct, a wrong
// pick is marked wrong and the option equal to the answer is revealed as
// correct. Every option then stops being interactive.
func (c *Card) Select(i int) (Outcome, error) {
	if c.Kind != CardQuestion {
		return Outcome{}, ErrNotQuestion
	}
	if i < 0 || i >= len(c.Options) {
		return Outcome{}, fmt.Errorf("%w: %d of %d", ErrOptionOutOfRange, i+1, len(c.Options))
	}
	if !c.Options[i].Interactive {
		return Outcome{}, ErrOptionLocked
	}

	out := Outcome{Revealed: -1}
	picked := &c.Options[i]
	if picked.Text == c.answer {
		picked.Mark = MarkCorrect
		picked.Indicator = IndicatorCorrect
		out.Correct = true
	} else {
		picked.Mark = MarkWrong
		picked.Indicator = IndicatorWrong
		for j := range c.Options {
			if j != i && c.Options[j].Text == c.answer {
				c.Options[j].Mark = MarkCorrect
				c.Options[j].Indicator = IndicatorCorrect
				if out.Revealed < 0 {
					out.Revealed = j
				}
			}
		}
	}

	for j := range c.Options {
		c.Options[j].Interactive = false
	}
	c.answered = true
	return out, nil
}

func (c Card) clone() Card {
	cp := c
	cp.Options = append([]Option(nil), c.Options...)
	return cp
}
