package generator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/aretw0/notequiz/pkg/domain"
	"github.com/aretw0/notequiz/pkg/ports"
)

// Messages reported to clients as service errors.
const (
	MsgNoText    = "No text provided"
	MsgNoSummary = "No summary provided"
)

var _ ports.Backend = (*Service)(nil)

// Service is the reference backend logic shared by the HTTP server, the MCP
// server and the in-process client mode.
type Service struct {
	quiz    *QuizGenerator
	cache   ports.SummaryCache
	limit   int
	observe func(hit bool)
	logger  *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithCache memoizes summaries.
func WithCache(cache ports.SummaryCache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

// WithCacheObserver is called after every cache lookup.
func WithCacheObserver(fn func(hit bool)) Option {
	return func(s *Service) {
		s.observe = fn
	}
}

// WithSeed fixes the quiz randomness.
func WithSeed(seed uint64) Option {
	return func(s *Service) {
		s.quiz = NewQuizGenerator(seed)
	}
}

// WithQuestionLimit changes the default number of questions.
func WithQuestionLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a service. Without WithSeed the quiz is seeded randomly.
func NewService(opts ...Option) *Service {
	s := &Service{
		limit:  DefaultQuestionLimit,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.quiz == nil {
		s.quiz = NewQuizGenerator(rand.Uint64())
	}
	return s
}

// CacheKey is the hex SHA-256 digest of text.
func CacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Summarize condenses text, consulting the cache first.
// Cache failures are logged and never surface to the caller.
func (s *Service) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", domain.NewServiceError(MsgNoText)
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}

	key := CacheKey(text)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			s.observeCache(true)
			return cached, nil
		case errors.Is(err, domain.ErrCacheMiss):
			s.observeCache(false)
		default:
			s.observeCache(false)
			s.logger.Warn("Summary cache lookup failed", "err", err)
		}
	}

	summary := Summarize(text)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, summary); err != nil {
			s.logger.Warn("Summary cache store failed", "err", err)
		}
	}
	return summary, nil
}

// Quiz generates at most limit questions; limit < 1 selects the service default.
func (s *Service) Quiz(ctx context.Context, summary string, limit int) ([]domain.QuizQuestion, error) {
	if summary == "" {
		return nil, domain.NewServiceError(MsgNoSummary)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	if limit < 1 {
		limit = s.limit
	}
	quiz := s.quiz.Generate(summary, limit)
	s.logger.Debug("Quiz generated", "questions", len(quiz), "limit", limit)
	return quiz, nil
}

// GenerateQuiz implements ports.Backend with the default limit.
func (s *Service) GenerateQuiz(ctx context.Context, summary string) ([]domain.QuizQuestion, error) {
	return s.Quiz(ctx, summary, 0)
}

func (s *Service) observeCache(hit bool) {
	if s.observe != nil {
		s.observe(hit)
	}
}
