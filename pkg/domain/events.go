package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventViewChange   EventType = "view_change"
	EventRequestStart EventType = "request_start"
	EventRequestDone  EventType = "request_done"
)

// Endpoint names a backend operation.
type Endpoint string

const (
	EndpointSummarize Endpoint = "summarize"
	EndpointQuiz      Endpoint = "quiz"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// ViewEvent is emitted after the active view changed.
type ViewEvent struct {
	EventBase
	From View `json:"from"`
	To   View `json:"to"`
}

// RequestEvent is emitted around a backend call.
type RequestEvent struct {
	EventBase
	Endpoint Endpoint      `json:"endpoint"`
	Token    uint64        `json:"token"`
	Duration time.Duration `json:"duration,omitempty"`
	Err      error         `json:"-"`
	Stale    bool          `json:"stale,omitempty"`
}

// LifecycleHooks defines callbacks for controller observability.
// Hooks run on the caller's goroutine after the controller released its lock,
// so they may read the page.
type LifecycleHooks struct {
	OnViewChange   func(*ViewEvent)
	OnRequestStart func(context.Context, *RequestEvent)
	OnRequestDone  func(context.Context, *RequestEvent)
}
