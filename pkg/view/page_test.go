package view

import (
	"testing"

	"github.com/aretw0/notequiz/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	p := NewPage()

	assert.Equal(t, domain.ViewHome, p.ActiveView())
	assert.Equal(t, "Dashboard", p.Status)
	assert.False(t, p.NavDisabled(domain.ViewHome))
	assert.True(t, p.NavDisabled(domain.ViewSummary))
	assert.True(t, p.NavDisabled(domain.ViewQuiz))
	assert.True(t, p.NavDisabled(domain.ViewLoading), "no shortcut to loading")
}

func TestPage_ActivateKeepsSingleRegion(t *testing.T) {
	p := NewPage()
	for _, v := range domain.Views {
		p.Activate(v)
		active := 0
		for _, r := range p.Regions {
			if r.Active {
				active++
			}
		}
		assert.Equal(t, 1, active)
		assert.Equal(t, v, p.ActiveView())
	}
}

func TestPage_QuestionCardSkipsInfoCards(t *testing.T) {
	p := NewPage()
	p.AppendCard(NewInfoCard("intro"))
	p.AppendCard(NewQuestionCard(0, domain.QuizQuestion{Question: "first", Options: []string{"x", "y"}, Answer: "x"}))

	c, err := p.QuestionCard(0)
	require.NoError(t, err)
	assert.Equal(t, "1. first", c.Heading)
	assert.Equal(t, 1, p.QuestionCount())

	_, err = p.QuestionCard(1)
	assert.ErrorIs(t, err, ErrQuestionOutOfRange)
}

func TestPage_CloneIsDeep(t *testing.T) {
	p := NewPage()
	p.AppendCard(NewQuestionCard(0, domain.QuizQuestion{Question: "q", Options: []string{"a", "b"}, Answer: "a"}))

	cp := p.Clone()
	_, err := p.Quiz[0].Select(0)
	require.NoError(t, err)
	p.SetNavDisabled(domain.ViewQuiz, false)

	assert.True(t, cp.Quiz[0].Options[0].Interactive)
	assert.True(t, cp.NavDisabled(domain.ViewQuiz))
}
