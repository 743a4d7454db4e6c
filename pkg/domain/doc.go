/*
Package domain contains the core models of the notequiz view controller.

It is kept pure and free of I/O: the view enumeration, the application state
owned by the controller, the quiz question wire model and the error taxonomy
shared by the client, the reference backend and the adapters.

# Key Entities

  - View: one of the four mutually exclusive screens (Home, Loading, Summary, Quiz).
  - AppState: the last summary text plus the two navigation enablement flags.
  - QuizQuestion: a multiple-choice question as produced by the backend.
  - Transition: a documented edge between two views and the trigger causing it.
*/
package domain
