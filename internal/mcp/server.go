// Package mcp exposes read-only label inspection over the Model Context
// Protocol on stdio.
package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/swaylabel/internal/config"
	"github.com/1broseidon/swaylabel/internal/tree"
)

const (
	ServerName    = "swaylabel"
	ServerVersion = "0.1.0"
)

// TreeSource fetches tree snapshots.
type TreeSource interface {
	Tree(ctx context.Context) (*tree.Node, error)
}

// Server is the MCP server for swaylabel.
type Server struct {
	mcpServer *mcpsdk.Server
	config    *config.Config
	trees     TreeSource
}

// NewServer creates a new MCP server reading trees from trees, usually a
// platform backend.
func NewServer(cfg *config.Config, trees TreeSource) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s := &Server{
		config: cfg,
		trees:  trees,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_workspaces",
		Description: "List the window manager's workspaces in tree order (scratchpad excluded) with their number, current name, window count and whether they hold the focused window.",
	}, s.handleListWorkspaces)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "explain_label",
		Description: "Explain how the workspace label for a window is derived: owning workspace, parent layout, position among siblings, application id, the resolved icon and layout glyphs and the composed Pango label. Defaults to the focused window. Read-only; nothing is renamed.",
	}, s.handleExplainLabel)
}
