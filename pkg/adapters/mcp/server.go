package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/branchtale"
	"github.com/aretw0/branchtale/pkg/domain"
	"github.com/aretw0/branchtale/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	// PathURI is the resource holding the visited path as JSON.
	PathURI = "branchtale://path"
	// ViewURI is the resource holding the current view model as JSON.
	ViewURI = "branchtale://view"
)

// SelectArgs are the arguments of the select_choice tool.
type SelectArgs struct {
	Index int `json:"index"`
}

// ViewResponse wraps the view model for structured tool output.
type ViewResponse struct {
	View  domain.View `json:"view" jsonschema_description:"What the reader should display now"`
	Error string      `json:"error,omitempty" jsonschema_description:"Surfaced traversal error, if any"`
}

// Server wraps a Reader and exposes it as an MCP Server.
type Server struct {
	reader    ports.Reader
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(reader ports.Reader, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{
		reader:    reader,
		logger:    logger,
		mcpServer: server.NewMCPServer("branchtale-mcp", branchtale.Version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: view
	viewTool := mcp.NewTool("view",
		mcp.WithDescription("Show the current node with its numbered choices, or the summary after an ending."),
		mcp.WithOutputSchema[ViewResponse](),
	)
	s.mcpServer.AddTool(viewTool, mcp.NewStructuredToolHandler(s.handleView))

	// TOOL: select_choice
	selectTool := mcp.NewTool("select_choice",
		mcp.WithDescription("Select one of the choices listed by the view tool."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("The choice index as listed in the view (0-based)")),
		mcp.WithOutputSchema[ViewResponse](),
	)
	s.mcpServer.AddTool(selectTool, mcp.NewStructuredToolHandler(s.handleSelectChoice))

	// TOOL: restart
	restartTool := mcp.NewTool("restart",
		mcp.WithDescription("Start the story again from the beginning."),
		mcp.WithOutputSchema[ViewResponse](),
	)
	s.mcpServer.AddTool(restartTool, mcp.NewStructuredToolHandler(s.handleRestart))
}

func (s *Server) handleView(ctx context.Context, request mcp.CallToolRequest, _ map[string]any) (ViewResponse, error) {
	return ViewResponse{View: s.reader.View()}, nil
}

func (s *Server) handleSelectChoice(ctx context.Context, request mcp.CallToolRequest, args SelectArgs) (ViewResponse, error) {
	if err := s.reader.Select(ctx, args.Index); err != nil {
		if errors.Is(err, domain.ErrChoiceUnavailable) {
			s.logger.Warn("MCP select_choice: rejected", "index", args.Index)
			return ViewResponse{}, fmt.Errorf("select failed: %w", err)
		}
		return ViewResponse{View: s.reader.View(), Error: err.Error()}, nil
	}
	return ViewResponse{View: s.reader.View()}, nil
}

func (s *Server) handleRestart(ctx context.Context, request mcp.CallToolRequest, _ map[string]any) (ViewResponse, error) {
	if err := s.reader.Restart(ctx); err != nil {
		return ViewResponse{View: s.reader.View(), Error: err.Error()}, nil
	}
	return ViewResponse{View: s.reader.View()}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: branchtale://path
	s.mcpServer.AddResource(mcp.NewResource(PathURI, "Visited Path",
		mcp.WithMIMEType("application/json"),
	), s.readPath)

	// EXPOSE: branchtale://view
	s.mcpServer.AddResource(mcp.NewResource(ViewURI, "Current View",
		mcp.WithMIMEType("application/json"),
	), s.readView)
}

func (s *Server) readPath(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	path := s.reader.Path()
	if path == nil {
		path = []domain.PathEntry{}
	}
	return jsonContents(PathURI, path)
}

func (s *Server) readView(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonContents(ViewURI, s.reader.View())
}

func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
