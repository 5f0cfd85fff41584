package cli

import (
	"context"

	"github.com/aretw0/branchtale/internal/config"
	"github.com/aretw0/branchtale/pkg/adapters/mcp"
)

// MCPOptions selects the MCP transport.
type MCPOptions struct {
	Config *config.Config
	// SSEPort serves over SSE when non-zero; stdio otherwise.
	SSEPort int
}

// RunMCP exposes the reader to MCP clients.
// Logs must never reach stdout here since stdio carries the protocol.
func RunMCP(ctx context.Context, opts MCPOptions) error {
	logger := NewLogger(opts.Config)

	sigCtx := NewSignalContext(ctx)
	defer sigCtx.Cancel()

	engine, closer, err := NewEngine(sigCtx, opts.Config, logger)
	if err != nil {
		ReportLoadError(stderrOr(nil), err)
		return err
	}
	defer closer.Close()

	srv := mcp.NewServer(engine, logger)
	if opts.SSEPort != 0 {
		return srv.ServeSSE(sigCtx, opts.SSEPort)
	}
	return srv.ServeStdio()
}
