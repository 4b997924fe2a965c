package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aretw0/devfolio"
	"github.com/aretw0/devfolio/internal/logging"
	"github.com/aretw0/devfolio/pkg/catalog"
	"github.com/aretw0/devfolio/pkg/domain"
	"github.com/aretw0/devfolio/pkg/jsonschema"
	"github.com/aretw0/devfolio/pkg/loader"
	"github.com/aretw0/devfolio/pkg/observability"
	"github.com/aretw0/devfolio/pkg/openapi"
	"github.com/aretw0/devfolio/pkg/portfolio"
)

const defaultMaxBodyBytes = 1 << 20

// Server serves the portfolio API.
type Server struct {
	Manager   *portfolio.Manager
	Validator *devfolio.Validator
	Streams   *StreamManager
	Metrics   *observability.Metrics

	logger       *slog.Logger
	maxBodyBytes int64
	schemaJSON   []byte
	openapiYAML  []byte
	apiVersion   string
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithStreams enables GET /events. Register StreamManager.Hooks on the
// Manager so stores reach subscribers.
func WithStreams(streams *StreamManager) Option {
	return func(s *Server) { s.Streams = streams }
}

// WithMetrics enables GET /metrics and request counting.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) { s.Metrics = m }
}

// WithValidator sets the validator used by POST /validate.
// It defaults to the Manager's validator.
func WithValidator(v *devfolio.Validator) Option {
	return func(s *Server) { s.Validator = v }
}

// WithMaxBodyBytes caps request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) { s.maxBodyBytes = n }
}

// NewHandler creates the HTTP handler for mgr.
func NewHandler(mgr *portfolio.Manager, opts ...Option) (http.Handler, error) {
	s := &Server{
		Manager:      mgr,
		logger:       logging.NewNop(),
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.Validator == nil {
		s.Validator = mgr.Validator()
	}

	var err error
	if s.schemaJSON, err = jsonschema.Marshal(catalog.Document()); err != nil {
		return nil, err
	}
	spec, err := openapi.Build(devfolio.Version)
	if err != nil {
		return nil, err
	}
	s.apiVersion = spec.Info.Version
	if s.openapiYAML, err = openapi.YAML(spec); err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if s.Metrics != nil {
		r.Use(s.Metrics.Middleware)
	}
	r.Use(enableCORS)

	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics.Handler())
	}

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(s.openapiYAML)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})
	r.Get("/schema.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/schema+json")
		w.Write(s.schemaJSON)
	})
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/events", s.SubscribeEvents)

	r.Post("/validate", s.Validate)
	r.Route("/portfolios", func(r chi.Router) {
		r.Get("/", s.ListPortfolios)
		r.Post("/", s.CreatePortfolio)
		r.Get("/{id}", s.GetPortfolio)
		r.Put("/{id}", s.PutPortfolio)
		r.Delete("/{id}", s.DeletePortfolio)
	})

	return r, nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>DevFolio API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// Validate handles POST /validate. Nothing is stored.
func (s *Server) Validate(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	res := s.Validator.Validate(body)
	status := http.StatusOK
	if !res.Success {
		status = http.StatusUnprocessableEntity
	}
	s.writeJSON(w, status, res)
}

// ListPortfolios handles GET /portfolios.
func (s *Server) ListPortfolios(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Manager.List(r.Context())
	if err != nil {
		s.fail(w, err, "List failed")
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, ids)
}

// CreatePortfolio handles POST /portfolios.
func (s *Server) CreatePortfolio(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	res, err := s.Manager.Create(r.Context(), body)
	if err != nil {
		s.fail(w, err, "Create failed")
		return
	}
	if !res.Success {
		s.writeJSON(w, http.StatusUnprocessableEntity, res)
		return
	}
	w.Header().Set("Location", "/portfolios/"+res.ID)
	s.writeJSON(w, http.StatusCreated, res)
}

// GetPortfolio handles GET /portfolios/{id}.
func (s *Server) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	doc, err := s.Manager.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, err, "Get failed")
		return
	}
	s.writeJSON(w, http.StatusOK, doc)
}

// PutPortfolio handles PUT /portfolios/{id}.
func (s *Server) PutPortfolio(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	res, err := s.Manager.Put(r.Context(), chi.URLParam(r, "id"), body)
	if err != nil {
		s.fail(w, err, "Put failed")
		return
	}
	status := http.StatusOK
	if !res.Success {
		status = http.StatusUnprocessableEntity
	}
	s.writeJSON(w, status, res)
}

// DeletePortfolio handles DELETE /portfolios/{id}.
func (s *Server) DeletePortfolio(w http.ResponseWriter, r *http.Request) {
	if err := s.Manager.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, err, "Delete failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":         "devfolio-http",
		"version":     devfolio.Version,
		"api_version": s.apiVersion,
		"schema":      devfolio.SchemaURL,
	})
}

// SubscribeEvents handles GET /events (SSE). The optional "id" query
// parameter narrows the stream to one portfolio.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	if s.Streams == nil {
		s.writeError(w, http.StatusNotFound, "event streaming is disabled")
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	id := r.URL.Query().Get("id")
	ch, cancel := s.Streams.Subscribe(id)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Debug("SSE client disconnected", "id", id)
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

// -- Helpers --

// readBody decodes a JSON body. It writes a 4xx and returns false when the
// body is too large or not JSON.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) (any, bool) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return nil, false
		}
		s.writeError(w, http.StatusBadRequest, "failed to read request body")
		return nil, false
	}

	value, err := loader.JSON(data)
	if err != nil {
		s.logger.Warn("Invalid request body", "path", r.URL.Path, "error", err)
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	return value, true
}

// fail maps manager errors to status codes.
func (s *Server) fail(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, domain.ErrDocumentNotFound):
		s.writeError(w, http.StatusNotFound, "portfolio not found")
	case errors.Is(err, domain.ErrInvalidID):
		s.writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error(msg, "error", err)
		s.writeError(w, http.StatusInternalServerError, msg)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Response encode failed", "error", err)
	}
}
