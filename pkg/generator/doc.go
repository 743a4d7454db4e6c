// Package generator is the rule-based reference backend.
//
// Summarize keeps the first, middle and last sentence of long notes.
// QuizGenerator blanks out a salient word of each sentence and offers it
// among three distractors. Service combines both behind a summary cache and
// satisfies ports.Backend, so the client can run without a server.
package generator
