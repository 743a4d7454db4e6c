package generator

import (
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/notequiz/pkg/domain"
)

// DefaultQuestionLimit caps the quiz when no limit is given.
const DefaultQuestionLimit = 6

// Blank replaces the answer in the question text.
const Blank = "_______"

// FallbackDistractors top up the options when the summary has too few words.
var FallbackDistractors = []string{
	"Inheritance", "Variable", "Algorithm", "Framework",
	"Database", "Cloud", "API", "Protocol",
}

const distractorCount = 3

// QuizGenerator builds fill-in-the-blank questions. Safe for concurrent use.
type QuizGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewQuizGenerator creates a generator whose choices are fully determined by seed.
func NewQuizGenerator(seed uint64) *QuizGenerator {
	return &QuizGenerator{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Generate returns at most limit questions (DefaultQuestionLimit when limit < 1).
// Short or sentence-less summaries yield an empty, non-nil slice.
func (g *QuizGenerator) Generate(summary string, limit int) []domain.QuizQuestion {
	if limit < 1 {
		limit = DefaultQuestionLimit
	}
	questions := []domain.QuizQuestion{}
	if len(strings.TrimSpace(summary)) < 5 {
		return questions
	}

	var sentences []string
	for _, s := range SplitSentences(summary) {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) == 0 {
		return questions
	}

	var pool []string
	for _, s := range sentences {
		if len(strings.Fields(s)) > 5 {
			pool = append(pool, s)
		}
	}
	if len(pool) < 5 {
		pool = sentences
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	for _, sentence := range pool[:min(len(pool), limit)] {
		candidates := answerCandidates(sentence)
		if len(candidates) == 0 {
			continue
		}
		answer := candidates[g.rng.IntN(len(candidates))]

		options := append(g.distractors(summary, answer), answer)
		g.rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

		questions = append(questions, domain.QuizQuestion{
			Question: strings.ReplaceAll(sentence, answer, Blank),
			Options:  options,
			Answer:   answer,
		})
	}
	return questions
}

// answerCandidates prefers capitalised words longer than five bytes and
// falls back to any word longer than six.
func answerCandidates(sentence string) []string {
	words := strings.Fields(sentence)
	var out []string
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		if len(w) > 5 && unicode.IsUpper(r) {
			if s := stripWord(w); s != "" {
				out = append(out, s)
			}
		}
	}
	if len(out) > 0 {
		return out
	}
	for _, w := range words {
		if len(w) > 6 {
			if s := stripWord(w); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// distractors draws three distinct words from the summary that differ from
// the answer, then tops up from FallbackDistractors.
func (g *QuizGenerator) distractors(summary, answer string) []string {
	seen := map[string]bool{}
	var pool []string
	for _, w := range strings.Fields(summary) {
		if len(w) <= 4 {
			continue
		}
		s := stripWord(w)
		if s == "" || strings.EqualFold(s, answer) || seen[s] {
			continue
		}
		seen[s] = true
		pool = append(pool, s)
	}

	out := make([]string, 0, distractorCount+1)
	for len(out) < distractorCount && len(pool) > 0 {
		i := g.rng.IntN(len(pool))
		out = append(out, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
	}

	fallback := make([]string, 0, len(FallbackDistractors))
	for _, f := range FallbackDistractors {
		if !strings.EqualFold(f, answer) && !slices.Contains(out, f) {
			fallback = append(fallback, f)
		}
	}
	for len(out) < distractorCount && len(fallback) > 0 {
		i := g.rng.IntN(len(fallback))
		out = append(out, fallback[i])
		fallback = append(fallback[:i], fallback[i+1:]...)
	}
	return out
}
