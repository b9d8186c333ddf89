// Package mcp serves the dispatcher as a single MCP tool over stdio.
package mcp

import (
	"context"
	"fmt"
	"io"
	"strings"

	mcpproto "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/sandevgo/termcore/internal/core"
	"github.com/sandevgo/termcore/pkg/log"
)

const ExecuteToolName = "execute_command"

type Server struct {
	dispatcher core.Dispatcher
	mcp        *mcpserver.MCPServer
}

func NewServer(dispatcher core.Dispatcher) *Server {
	s := &Server{
		dispatcher: dispatcher,
		mcp: mcpserver.NewMCPServer(
			core.AppName,
			core.AppVersion,
			mcpserver.WithToolCapabilities(false),
			mcpserver.WithRecovery(),
		),
	}
	s.mcp.AddTool(s.executeTool(), s.handleExecute)
	return s
}

func (s *Server) executeTool() mcpproto.Tool {
	var names []string
	for _, cmd := range s.dispatcher.ListCommands() {
		names = append(names, cmd.Usage())
	}

	return mcpproto.NewTool(ExecuteToolName,
		mcpproto.WithDescription(fmt.Sprintf(
			"Run one built-in command line and return its output. Supported: %s.",
			strings.Join(names, ", "),
		)),
		mcpproto.WithString("command",
			mcpproto.Required(),
			mcpproto.Description("The command line, e.g. \"ls\" or \"cat notes.txt\""),
		),
	)
}

func (s *Server) handleExecute(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	line, err := req.RequireString("command")
	if err != nil {
		return mcpproto.NewToolResultError(err.Error()), nil
	}

	res := s.dispatcher.Dispatch(ctx, strings.TrimSpace(line))
	log.FromCtx(ctx).Debug().Str("line", line).Bool("failed", res.Failed).Msg("mcp command")

	if res.Failed {
		return mcpproto.NewToolResultError(res.Output), nil
	}
	return mcpproto.NewToolResultText(res.Output), nil
}

// Serve speaks MCP on in/out until ctx is cancelled or in is closed.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := mcpserver.NewStdioServer(s.mcp)
	if err := stdio.Listen(ctx, in, out); err != nil && ctx.Err() == nil {
		return fmt.Errorf("mcp server stopped: %w", err)
	}
	return nil
}
