package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/notequiz/pkg/domain"
	"github.com/aretw0/notequiz/pkg/ports"
)

// DefaultDir is used when New receives an empty path.
var DefaultDir = filepath.Join(".notequiz", "cache")

var _ ports.SummaryCache = (*Store)(nil)

// Store implements ports.SummaryCache using the local filesystem.
// Each summary is a JSON file named after its key.
type Store struct {
	BasePath string
	ttl      time.Duration
	now      func() time.Time
}

type entry struct {
	Summary   string    `json:"summary"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// Option configures the Store.
type Option func(*Store)

// WithTTL expires entries after ttl. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// New creates a Store rooted at basePath, or DefaultDir when it is empty.
func New(basePath string, opts ...Option) *Store {
	if basePath == "" {
		basePath = DefaultDir
	}
	s := &Store{BasePath: basePath, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Set writes the entry atomically: a temp file in the same directory is
// synced and then renamed over the destination.
func (s *Store) Set(ctx context.Context, key, summary string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure cache directory: %w", err)
	}

	e := entry{Summary: summary}
	if s.ttl > 0 {
		e.ExpiresAt = s.now().Add(s.ttl)
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Windows cannot rename an open file or rename over an existing one.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to replace cache entry: %w", err)
		}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Get returns domain.ErrCacheMiss for absent or expired entries. Expired
// files are removed.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	path, err := s.path(key)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", domain.ErrCacheMiss
		}
		return "", fmt.Errorf("failed to read cache entry: %w", err)
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return "", fmt.Errorf("failed to unmarshal cache entry: %w", err)
	}
	if !e.ExpiresAt.IsZero() && !s.now().Before(e.ExpiresAt) {
		_ = os.Remove(path)
		return "", domain.ErrCacheMiss
	}
	return e.Summary, nil
}

// Delete removes the entry file.
func (s *Store) Delete(ctx context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

func (s *Store) path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid cache key %q", key)
	}
	return filepath.Join(s.BasePath, key+".json"), nil
}
