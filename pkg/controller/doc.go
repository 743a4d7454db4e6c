/*
Package controller implements the notequiz view controller.

The controller owns the application state (domain.AppState) and the page model
(view.Page). It switches between the four views, mediates the summarize and
quiz interactions with a ports.Backend and applies option clicks on the
rendered quiz cards.

Every method is safe to call from several goroutines, but the design assumes a
single UI loop: backend calls block the caller while the Loading view is
shown. The internal lock is never held across a backend call, so hooks and
presenters may read the page while a request is in flight.

# Errors

Failures never escape as panics and always leave the page on Home with an
error banner. Request methods additionally return the underlying error:
domain.ErrEmptyNotes, an error wrapping domain.ErrTransport, a
*domain.ServiceError, or domain.ErrStaleResponse when the stale-response guard
dropped a superseded reply.
*/
package controller
