// Package mcpserver provides an MCP (Model Context Protocol) server that acts
// as a launcher host for a plugin, over stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/coderecents/internal/plugin"
)

// Version is reported to MCP clients.
const Version = "1.0.0"

// Server wraps the MCP server with the plugin tools.
type Server struct {
	mcp    *server.MCPServer
	plugin plugin.Plugin

	mu     sync.Mutex
	issued map[uint64]plugin.Match
}

// New creates a new MCP server driving p.
func New(p plugin.Plugin) *Server {
	s := &Server{plugin: p, issued: make(map[uint64]plugin.Match)}

	s.mcp = server.NewMCPServer(
		p.Info().Name,
		Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("search_workspaces",
		mcp.WithDescription("Search recently opened editor workspaces. Returns at most 5 matches "+
			"with title, icon, description (the project path) and id."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Free-text query, including the configured prefix if any")),
	), s.searchWorkspaces)

	s.mcp.AddTool(mcp.NewTool("open_workspace",
		mcp.WithDescription("Open a workspace in the editor. The id must come from a previous "+
			"search_workspaces call in this session."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Match id returned by search_workspaces")),
	), s.openWorkspace)

	s.mcp.AddTool(mcp.NewTool("plugin_info",
		mcp.WithDescription("Returns the plugin name and icon."),
	), s.pluginInfo)

	s.mcp.AddResource(
		mcp.NewResource(ConfigFormatURI, "Settings Format",
			mcp.WithResourceDescription("Keys, defaults and fallback rules of the settings document."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readConfigFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) searchWorkspaces(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	matches := s.plugin.GetMatches(query)
	if matches == nil {
		matches = []plugin.Match{}
	}

	s.mu.Lock()
	for _, m := range matches {
		if m.ID != nil {
			s.issued[*m.ID] = m
		}
	}
	s.mu.Unlock()

	out, _ := json.MarshalIndent(matches, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) openWorkspace(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireFloat("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if raw < 0 || raw != math.Trunc(raw) {
		return mcp.NewToolResultError(fmt.Sprintf("invalid id: %v", raw)), nil
	}
	id := uint64(raw)

	s.mu.Lock()
	match, ok := s.issued[id]
	s.mu.Unlock()
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown id %d: call search_workspaces first", id)), nil
	}

	res := s.plugin.HandleSelection(match)
	return mcp.NewToolResultText(res.String()), nil
}

func (s *Server) pluginInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, _ := json.Marshal(s.plugin.Info())
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readConfigFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      ConfigFormatURI,
			MIMEType: "text/markdown",
			Text:     ConfigFormat,
		},
	}, nil
}
