package ports

import "context"

// Note is a stored set of notes.
type Note struct {
	ID    string
	Title string
	Tags  []string
	Body  string
}

// NoteSource loads notes by identifier.
type NoteSource interface {
	// Load returns domain.ErrNoteNotFound if the note does not exist.
	Load(ctx context.Context, id string) (*Note, error)
}
