package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/loam"
	"github.com/aretw0/notequiz/pkg/domain"
	"github.com/aretw0/notequiz/pkg/ports"
)

var _ ports.NoteSource = (*Source)(nil)

// Source adapts a Loam repository of markdown notes to ports.NoteSource.
type Source struct {
	Repo *loam.TypedRepository[NoteMetadata]
}

// New wraps an existing typed repository.
func New(repo *loam.TypedRepository[NoteMetadata]) *Source {
	return &Source{Repo: repo}
}

// Open initializes a read-only Loam repository rooted at dir.
func Open(dir string) (*Source, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(loam.NewTypedRepository[NoteMetadata](repo)), nil
}

// Load retrieves a note by ID. The ID may omit the file extension.
func (s *Source) Load(ctx context.Context, id string) (*ports.Note, error) {
	doc, err := s.Repo.Get(ctx, id)
	if err != nil {
		ids, listErr := s.List(ctx)
		if listErr == nil && !containsID(ids, trimExtension(id)) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoteNotFound, id)
		}
		return nil, fmt.Errorf("loam get failed for %s: %w", id, err)
	}

	noteID := doc.Data.ID
	if noteID == "" {
		noteID = trimExtension(doc.ID)
	}
	title := doc.Data.Title
	if title == "" {
		title = noteID
	}
	return &ports.Note{
		ID:    noteID,
		Title: title,
		Tags:  doc.Data.Tags,
		Body:  strings.TrimSpace(doc.Content),
	}, nil
}

// List returns the IDs of every note, without extensions, sorted.
func (s *Source) List(ctx context.Context) ([]string, error) {
	docs, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, trimExtension(doc.ID))
	}
	sort.Strings(ids)
	return ids, nil
}

func containsID(ids []string, id string) bool {
	i := sort.SearchStrings(ids, id)
	return i < len(ids) && ids[i] == id
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
