package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/aretw0/notequiz/pkg/domain"
	"github.com/aretw0/notequiz/pkg/ports"
)

var _ ports.NoteSource = (*Notes)(nil)

// Notes implements ports.NoteSource using an in-memory map.
type Notes struct {
	notes map[string]ports.Note
}

// NewNotes creates a source from raw bodies keyed by ID.
func NewNotes(bodies map[string]string) *Notes {
	notes := make(map[string]ports.Note, len(bodies))
	for id, body := range bodies {
		notes[id] = ports.Note{ID: id, Title: id, Body: body}
	}
	return &Notes{notes: notes}
}

// NewFromNotes creates a source from fully populated notes.
func NewFromNotes(notes ...ports.Note) (*Notes, error) {
	data := make(map[string]ports.Note, len(notes))
	for _, n := range notes {
		if n.ID == "" {
			return nil, fmt.Errorf("note missing ID")
		}
		data[n.ID] = n
	}
	return &Notes{notes: data}, nil
}

// Load returns a copy of the note.
func (l *Notes) Load(ctx context.Context, id string) (*ports.Note, error) {
	n, ok := l.notes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoteNotFound, id)
	}
	n.Tags = append([]string(nil), n.Tags...)
	return &n, nil
}

// IDs returns all note IDs in sorted order.
func (l *Notes) IDs() []string {
	keys := make([]string, 0, len(l.notes))
	for k := range l.notes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
