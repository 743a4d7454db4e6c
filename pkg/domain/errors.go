package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyNotes is returned when summarization is requested without note text.
var ErrEmptyNotes = errors.New("empty notes")

// ErrTransport wraps every failure to obtain a well-formed response:
// unreachable backend, non-JSON body, missing fields, cancellation.
var ErrTransport = errors.New("transport failure")

// ErrNoSummary is returned when a quiz is requested before any summary exists.
var ErrNoSummary = errors.New("no summary available")

// ErrStaleResponse is returned when a response arrives for a superseded request.
var ErrStaleResponse = errors.New("stale response discarded")

// ErrInvalidQuestion is returned by QuizQuestion.Validate.
var ErrInvalidQuestion = errors.New("invalid quiz question")

// ErrUnknownView is returned when parsing an unknown view name.
var ErrUnknownView = errors.New("unknown view")

// ErrCacheMiss is returned by a SummaryCache when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// ErrNoteNotFound is returned by a NoteSource when the note does not exist.
var ErrNoteNotFound = errors.New("note not found")

// ServiceError is a logical error reported by the backend in the "error"
// field of an otherwise well-formed response. Message is shown verbatim.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("service error: %s", e.Message)
}

// NewServiceError builds a ServiceError carrying msg.
func NewServiceError(msg string) *ServiceError {
	return &ServiceError{Message: msg}
}
