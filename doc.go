/*
Package notequiz turns study notes into a summary and a multiple-choice practice quiz.

The module is split into a client and a reference backend that speak a small JSON protocol.

# Client

The client is a single page with four views: Home (the dashboard and the note input), Loading, Summary and Quiz.
A controller in pkg/controller owns the page model and drives it through the views:

  - Submitting notes shows Loading, calls POST /summarize and then shows Summary.
  - Requesting a quiz shows Loading, calls POST /quiz with the stored summary and renders one card per question.
  - Selecting an option locks the card and marks it correct or wrong, revealing the right answer on a miss.
  - Dashboard shortcuts to Summary and Quiz stay disabled until their content exists.

The terminal front end in internal/cli renders that page and maps typed commands (":summarize", ":quiz", "1 b") onto controller operations.

# Backend

pkg/generator holds the reference summarizer and quiz generator. pkg/adapters/http serves them over HTTP with an
embedded OpenAPI document, and pkg/adapters/mcp exposes the same operations as MCP tools. Summaries can be cached in
memory or in Redis.

# Usage

	notequiz serve --addr :5000
	notequiz run --url http://127.0.0.1:5000

Or without a server:

	notequiz run --backend local --notes-dir ./notes --note goroutines
*/
package notequiz
