package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/notequiz"
	"github.com/aretw0/notequiz/pkg/domain"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"
)

// Service is the logic behind the reference backend.
// Errors of type *domain.ServiceError are reported to clients as 400.
type Service interface {
	Summarize(ctx context.Context, text string) (string, error)
	Quiz(ctx context.Context, summary string, limit int) ([]domain.QuizQuestion, error)
}

// Server implements the HTTP handlers of the reference backend.
type Server struct {
	service   Service
	validator *BodyValidator
	spec      *openapi3.T
	metrics   *Metrics
	logger    *slog.Logger
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithServerLogger configures the structured logger.
func WithServerLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics enables request instrumentation and the /metrics route.
func WithMetrics(m *Metrics) ServerOption {
	return func(s *Server) {
		s.metrics = m
	}
}

// NewServer creates a server around service. spec is the loaded OpenAPI
// document used for body validation and served on /openapi.yaml.
func NewServer(service Service, spec *openapi3.T, opts ...ServerOption) *Server {
	s := &Server{
		service:   service,
		spec:      spec,
		validator: NewBodyValidator(spec),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the chi router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)
	if s.metrics != nil {
		r.Use(s.metrics.Instrument)
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.Post("/summarize", s.Summarize)
	r.Post("/quiz", s.Quiz)
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/openapi.yaml", s.GetSpec)
	return r
}

// Summarize handles POST /summarize.
func (s *Server) Summarize(w http.ResponseWriter, r *http.Request) {
	var req SummarizeRequest
	if !s.decode(w, r, "SummarizeRequest", &req) {
		return
	}

	summary, err := s.service.Summarize(r.Context(), req.Text)
	if err != nil {
		s.writeError(w, "summarize", err)
		return
	}
	writeJSON(w, http.StatusOK, SummarizeResponse{Summary: summary})
}

// Quiz handles POST /quiz. The optional "limit" query parameter caps the
// number of questions; zero means the service default.
func (s *Server) Quiz(w http.ResponseWriter, r *http.Request) {
	var limit *int
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &limit); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid limit parameter"})
		return
	}
	if limit != nil && *limit < 1 {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid limit parameter"})
		return
	}

	var req QuizRequest
	if !s.decode(w, r, "QuizRequest", &req) {
		return
	}

	n := 0
	if limit != nil {
		n = *limit
	}
	quiz, err := s.service.Quiz(r.Context(), req.Summary, n)
	if err != nil {
		s.writeError(w, "quiz", err)
		return
	}
	if quiz == nil {
		quiz = []domain.QuizQuestion{}
	}
	writeJSON(w, http.StatusOK, QuizResponse{Quiz: &quiz})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if s.spec != nil && s.spec.Info != nil {
		apiVersion = s.spec.Info.Version
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"version":     strings.TrimSpace(notequiz.Version),
		"api_version": apiVersion,
	})
}

// GetSpec serves the embedded OpenAPI document.
func (s *Server) GetSpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(rawSpec)
}

// decode reads the JSON body into dst after validating it against schema.
// It writes a 400 response and returns false on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, schema string, dst any) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Failed to read request body"})
		return false
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body"})
		return false
	}
	if err := s.validator.Validate(schema, raw); err != nil {
		s.logger.Debug("Request Rejected", "schema", schema, "err", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return false
	}
	return true
}

func (s *Server) writeError(w http.ResponseWriter, op string, err error) {
	var svcErr *domain.ServiceError
	if errors.As(err, &svcErr) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: svcErr.Message})
		return
	}
	s.logger.Error("Request Failed", "op", op, "err", err)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
