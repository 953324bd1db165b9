package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/freshnutrients/agrichat/internal/advisor"
	"github.com/freshnutrients/agrichat/internal/catalog"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Catalog is the slice of the product store the MCP tools need.
type Catalog interface {
	advisor.Catalog
	Crops(ctx context.Context) ([]string, error)
	Problems(ctx context.Context) ([]string, error)
}

var _ Catalog = (*catalog.Store)(nil)

// Server wraps an MCP server that exposes the product catalog and the
// recommendation pipeline as tools.
type Server struct {
	catalog  Catalog
	resolver *advisor.Resolver
	logger   *zap.Logger
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(cat Catalog, resolver *advisor.Resolver, logger *zap.Logger) *Server {
	s := &Server{
		catalog:  cat,
		resolver: resolver,
		logger:   logger,
	}

	s.mcp = server.NewMCPServer(
		"agrichat",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchProductsTool, s.handleSearchProducts)
	s.mcp.AddTool(recommendProductsTool, s.handleRecommendProducts)
	s.mcp.AddTool(listCropsTool, s.handleListCrops)
	s.mcp.AddTool(listProblemsTool, s.handleListProblems)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
