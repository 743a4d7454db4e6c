package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/notequiz"
	"github.com/aretw0/notequiz/internal/input"
	"github.com/aretw0/notequiz/pkg/domain"
	"github.com/aretw0/notequiz/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// SummaryResponse is the structured result of summarize_notes.
type SummaryResponse struct {
	Summary string `json:"summary" jsonschema_description:"Condensed version of the notes"`
}

// QuizResponse is the structured result of generate_quiz.
type QuizResponse struct {
	Quiz []domain.QuizQuestion `json:"quiz" jsonschema_description:"Multiple-choice questions, possibly empty"`
}

// NoteResponse is the structured result of load_note.
type NoteResponse struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
	Body  string   `json:"body"`
}

// Service defines what the MCP server needs from the backend logic.
type Service interface {
	Summarize(ctx context.Context, text string) (string, error)
	Quiz(ctx context.Context, summary string, limit int) ([]domain.QuizQuestion, error)
}

// Server exposes the notequiz backend as an MCP Server.
type Server struct {
	service   Service
	notes     ports.NoteSource
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance. notes may be nil, in which
// case the load_note tool is not registered.
func NewServer(service Service, notes ports.NoteSource) *Server {
	s := &Server{
		service:   service,
		notes:     notes,
		mcpServer: server.NewMCPServer("notequiz-mcp", strings.TrimSpace(notequiz.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	summarizeTool := mcp.NewTool("summarize_notes",
		mcp.WithDescription("Summarize study notes into their key sentences."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The raw notes")),
		mcp.WithOutputSchema[SummaryResponse](),
	)
	s.mcpServer.AddTool(summarizeTool, mcp.NewStructuredToolHandler(s.handleSummarize))

	quizTool := mcp.NewTool("generate_quiz",
		mcp.WithDescription("Generate multiple-choice practice questions from a summary."),
		mcp.WithString("summary", mcp.Required(), mcp.Description("Summary to quiz on")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of questions (optional)")),
		mcp.WithOutputSchema[QuizResponse](),
	)
	s.mcpServer.AddTool(quizTool, mcp.NewStructuredToolHandler(s.handleQuiz))

	if s.notes != nil {
		noteTool := mcp.NewTool("load_note",
			mcp.WithDescription("Load a stored note by ID."),
			mcp.WithString("id", mcp.Required(), mcp.Description("Note ID, without extension")),
			mcp.WithOutputSchema[NoteResponse](),
		)
		s.mcpServer.AddTool(noteTool, mcp.NewStructuredToolHandler(s.handleLoadNote))
	}
}

func (s *Server) handleSummarize(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SummaryResponse, error) {
	text, _ := args["text"].(string)

	clean, err := input.Sanitize(text)
	if err != nil {
		slog.Warn("MCP Summarize: Input rejected", "err", err, "size", len(text))
		return SummaryResponse{}, fmt.Errorf("input rejected: %w", err)
	}

	summary, err := s.service.Summarize(ctx, clean)
	if err != nil {
		return SummaryResponse{}, describe(err)
	}
	return SummaryResponse{Summary: summary}, nil
}

func (s *Server) handleQuiz(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (QuizResponse, error) {
	summary, _ := args["summary"].(string)

	limit := 0
	if v, ok := args["limit"].(float64); ok {
		limit = int(v)
	}

	quiz, err := s.service.Quiz(ctx, summary, limit)
	if err != nil {
		return QuizResponse{}, describe(err)
	}
	if quiz == nil {
		quiz = []domain.QuizQuestion{}
	}
	return QuizResponse{Quiz: quiz}, nil
}

func (s *Server) handleLoadNote(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (NoteResponse, error) {
	id, _ := args["id"].(string)

	note, err := s.notes.Load(ctx, id)
	if err != nil {
		return NoteResponse{}, fmt.Errorf("load note failed: %w", err)
	}
	return NoteResponse{ID: note.ID, Title: note.Title, Tags: note.Tags, Body: note.Body}, nil
}

// describe surfaces service messages verbatim.
func describe(err error) error {
	var svcErr *domain.ServiceError
	if errors.As(err, &svcErr) {
		return errors.New(svcErr.Message)
	}
	return err
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource("notequiz://views", "View Transition Table",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(domain.Transitions())
		if err != nil {
			return nil, fmt.Errorf("failed to encode transitions: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "notequiz://views",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
