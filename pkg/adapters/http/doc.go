// Package http adapts the notequiz wire contract to HTTP.
//
// Client implements ports.Backend against any server speaking the contract.
// NewHandler serves the reference backend: POST /summarize, POST /quiz,
// GET /health, GET /info, GET /metrics and GET /openapi.yaml.
package http
