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

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/devfolio"
	"github.com/aretw0/devfolio/internal/logging"
	"github.com/aretw0/devfolio/pkg/catalog"
	"github.com/aretw0/devfolio/pkg/domain"
	"github.com/aretw0/devfolio/pkg/jsonschema"
	"github.com/aretw0/devfolio/pkg/portfolio"
)

const (
	schemaURI    = "devfolio://schema"
	portfolioURI = "devfolio://portfolios/"
)

// ValidateResponse is the structured output of validate_portfolio.
type ValidateResponse struct {
	Success bool           `json:"success" jsonschema_description:"Whether the document is a valid portfolio"`
	Errors  []string       `json:"errors,omitempty" jsonschema_description:"Path-qualified messages, one per violation"`
	Stats   *domain.Stats  `json:"stats,omitempty" jsonschema_description:"Entry counts per collection of a valid document"`
	Report  string         `json:"report,omitempty" jsonschema_description:"Numbered error list for display"`
	Data    map[string]any `json:"data,omitempty" jsonschema_description:"The normalized document"`
}

// StoreResponse is the structured output of store_portfolio.
type StoreResponse struct {
	ID      string               `json:"id"`
	Success bool                 `json:"success"`
	Errors  []string             `json:"errors,omitempty"`
	Diff    *domain.DocumentDiff `json:"diff,omitempty"`
}

type documentArgs struct {
	Document any    `json:"document"`
	ID       string `json:"id"`
}

// Server exposes portfolio validation, and storage when a Manager is
// configured, as an MCP server.
type Server struct {
	validator *devfolio.Validator
	manager   *portfolio.Manager
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithManager enables the storage tools and the portfolio resource template.
func WithManager(mgr *portfolio.Manager) Option {
	return func(s *Server) { s.manager = mgr }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// NewServer creates a new MCP Server instance.
func NewServer(validator *devfolio.Validator, opts ...Option) *Server {
	s := &Server{
		validator: validator,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.mcpServer = server.NewMCPServer("devfolio-mcp", devfolio.Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying server, e.g. for in-process clients.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the SSE transport on addr until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, addr string) error {
	baseURL := "http://localhost" + addr
	if !strings.HasPrefix(addr, ":") {
		baseURL = "http://" + addr
	}

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: validate_portfolio
	s.mcpServer.AddTool(mcp.NewTool("validate_portfolio",
		mcp.WithDescription("Validate a DevFolio portfolio document and report every violation."),
		mcp.WithObject("document", mcp.Required(), mcp.Description("The portfolio document")),
		mcp.WithOutputSchema[ValidateResponse](),
	), mcp.NewStructuredToolHandler(s.handleValidate))

	// TOOL: create_minimal_portfolio
	s.mcpServer.AddTool(mcp.NewTool("create_minimal_portfolio",
		mcp.WithDescription("Create the smallest valid portfolio for a name."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Full name of the portfolio owner")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		doc := devfolio.NewMinimal(name)
		if !s.validator.IsValid(doc) {
			return mcp.NewToolResultError("a portfolio name must not be empty"), nil
		}
		jsonBytes, _ := json.MarshalIndent(doc, "", "  ")
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: format_errors
	s.mcpServer.AddTool(mcp.NewTool("format_errors",
		mcp.WithDescription("Render validation messages as a numbered list."),
		mcp.WithArray("errors", mcp.Required(), mcp.WithStringItems(), mcp.Description("Validation messages")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		errs, err := request.RequireStringSlice("errors")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(devfolio.FormatErrors(errs)), nil
	})

	// TOOL: list_fields
	s.mcpServer.AddTool(mcp.NewTool("list_fields",
		mcp.WithDescription("List the record types of a portfolio with their required fields."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var b strings.Builder
		for _, rt := range catalog.RecordTypes() {
			fmt.Fprintf(&b, "%s: %s\n", rt.Name, strings.Join(rt.Schema.RequiredFields(), ", "))
		}
		return mcp.NewToolResultText(b.String()), nil
	})

	if s.manager == nil {
		return
	}

	// TOOL: store_portfolio
	s.mcpServer.AddTool(mcp.NewTool("store_portfolio",
		mcp.WithDescription("Validate a portfolio and store it under an ID. Invalid documents are not stored."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Portfolio ID")),
		mcp.WithObject("document", mcp.Required(), mcp.Description("The portfolio document")),
		mcp.WithOutputSchema[StoreResponse](),
	), mcp.NewStructuredToolHandler(s.handleStore))

	// TOOL: list_portfolios
	s.mcpServer.AddTool(mcp.NewTool("list_portfolios",
		mcp.WithDescription("List the IDs of stored portfolios."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ids, err := s.manager.List(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(ids)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

// Handler methods for structured tools

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args documentArgs) (ValidateResponse, error) {
	res := s.validator.Validate(args.Document)
	if !res.Success {
		return ValidateResponse{
			Errors: res.Errors,
			Report: devfolio.FormatErrors(res.Errors),
		}, nil
	}

	stats := res.Data.Stats()
	return ValidateResponse{Success: true, Stats: &stats, Data: res.Value}, nil
}

func (s *Server) handleStore(ctx context.Context, request mcp.CallToolRequest, args documentArgs) (StoreResponse, error) {
	res, err := s.manager.Put(ctx, args.ID, args.Document)
	if err != nil {
		s.logger.Error("MCP store failed", "id", args.ID, "error", err)
		return StoreResponse{}, err
	}
	return StoreResponse{ID: res.ID, Success: res.Success, Errors: res.Errors, Diff: res.Diff}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: devfolio://schema
	s.mcpServer.AddResource(mcp.NewResource(schemaURI, "DevFolio JSON Schema",
		mcp.WithMIMEType("application/schema+json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := jsonschema.Marshal(catalog.Document())
		if err != nil {
			return nil, fmt.Errorf("failed to export schema: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      schemaURI,
				MIMEType: "application/schema+json",
				Text:     string(data),
			},
		}, nil
	})

	if s.manager == nil {
		return
	}

	// EXPOSE: devfolio://portfolios/{id}
	s.mcpServer.AddResourceTemplate(mcp.NewResourceTemplate(portfolioURI+"{id}", "Stored portfolio",
		mcp.WithTemplateMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		uri := request.Params.URI
		doc, err := s.manager.Get(ctx, strings.TrimPrefix(uri, portfolioURI))
		if err != nil {
			return nil, fmt.Errorf("failed to load portfolio: %w", err)
		}
		jsonBytes, _ := json.Marshal(doc)
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
