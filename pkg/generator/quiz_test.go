package generator_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/aretw0/notequiz/pkg/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func longSummary(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("The Component%d handles many important runtime tasks.", i)
	}
	return strings.Join(parts, " ")
}

func TestQuiz_TooShort(t *testing.T) {
	g := generator.NewQuizGenerator(1)

	quiz := g.Generate("  Hi ", 0)
	require.NotNil(t, quiz)
	assert.Empty(t, quiz)
}

func TestQuiz_NoCandidates(t *testing.T) {
	g := generator.NewQuizGenerator(1)

	assert.Empty(t, g.Generate("the cat sat on a mat.", 0))
}

func TestQuiz_SingleSentence(t *testing.T) {
	g := generator.NewQuizGenerator(7)

	quiz := g.Generate("The Kubernetes cluster schedules workloads.", 0)
	require.Len(t, quiz, 1)
	q := quiz[0]
	assert.Equal(t, "Kubernetes", q.Answer)
	assert.Equal(t, "The _______ cluster schedules workloads.", q.Question)
	assert.ElementsMatch(t, []string{"Kubernetes", "cluster", "schedules", "workloads"}, q.Options)
	assert.NoError(t, q.Validate())
}

func TestQuiz_LowercaseFallbackCandidates(t *testing.T) {
	g := generator.NewQuizGenerator(3)

	quiz := g.Generate("we studied polymorphism today.", 0)
	require.Len(t, quiz, 1)
	assert.Contains(t, []string{"studied", "polymorphism"}, quiz[0].Answer)
}

func TestQuiz_TopsUpFromFallbackDistractors(t *testing.T) {
	g := generator.NewQuizGenerator(11)

	quiz := g.Generate("Golang rocks.", 0)
	require.Len(t, quiz, 1)
	q := quiz[0]
	assert.Equal(t, "Golang", q.Answer)
	require.Len(t, q.Options, 4)
	assert.Contains(t, q.Options, "rocks")

	fromFallback := 0
	for _, opt := range q.Options {
		for _, f := range generator.FallbackDistractors {
			if opt == f {
				fromFallback++
			}
		}
	}
	assert.Equal(t, 2, fromFallback)
	assert.NoError(t, q.Validate())
}

func TestQuiz_Limit(t *testing.T) {
	g := generator.NewQuizGenerator(5)

	assert.Len(t, g.Generate(longSummary(10), 0), generator.DefaultQuestionLimit)
	assert.Len(t, g.Generate(longSummary(10), 3), 3)
	assert.Len(t, g.Generate(longSummary(2), 6), 2)
}

func TestQuiz_WellFormed(t *testing.T) {
	g := generator.NewQuizGenerator(42)

	for _, q := range g.Generate(longSummary(8), 0) {
		assert.NoError(t, q.Validate())
		assert.Len(t, q.Options, 4)
		assert.Contains(t, q.Question, generator.Blank)
		assert.NotContains(t, q.Question, q.Answer)
	}
}

func TestQuiz_DeterministicWithSeed(t *testing.T) {
	summary := longSummary(9)

	a := generator.NewQuizGenerator(99).Generate(summary, 0)
	b := generator.NewQuizGenerator(99).Generate(summary, 0)
	assert.Equal(t, a, b)
}
