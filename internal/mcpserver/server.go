// Package mcpserver exposes gcpctl's discovery and switch operations
// as MCP tools over stdio, so AI assistants can inspect and change the
// active GCP account, project, cluster credentials, and kubectl
// context. The tools are thin wrappers over the same gateway the
// interactive switcher drives; nothing here prompts.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"gcpctl/internal/switcher"
	"gcpctl/pkg/logging"
)

// Server wraps an MCP server around the external-command boundary.
type Server struct {
	gateway switcher.Gateway
	kube    switcher.KubeConfig
	mcp     *server.MCPServer
}

// New creates the MCP server and registers all tools.
func New(version string, gateway switcher.Gateway, kubecfg switcher.KubeConfig) *Server {
	mcpServer := server.NewMCPServer(
		"gcpctl",
		version,
		server.WithToolCapabilities(false),
	)

	s := &Server{
		gateway: gateway,
		kube:    kubecfg,
		mcp:     mcpServer,
	}
	s.registerTools()
	return s
}

// ServeStdio blocks serving MCP over stdin/stdout until the client
// disconnects.
func (s *Server) ServeStdio() error {
	logging.Info("mcpserver", "Serving MCP over stdio")
	return server.ServeStdio(s.mcp)
}
