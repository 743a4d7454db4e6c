/*
Package ports defines the driven ports (interfaces) of notequiz.

These interfaces decouple the view controller and the reference backend from
concrete transports and storage, so the controller can talk to an HTTP backend
or an in-process one, and the backend can cache summaries in memory or Redis.

# Key Interfaces

  - Backend: the two request/response interactions (summarize, quiz).
  - SummaryCache: memoizes summaries on the backend side.
  - NoteSource: loads note text to prefill the note input.
*/
package ports
