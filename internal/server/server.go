// Package server exposes the greeter and a shared calculator as MCP tools.
package server

import (
	"context"
	"log"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mmonari/syntaxdemo/internal/calculator"
	"github.com/mmonari/syntaxdemo/internal/config"
	"github.com/mmonari/syntaxdemo/internal/logger"
)

var logServer = logger.New("server:server")

// Server wraps an MCP server whose tools all operate on one calculator, so
// the result tool reflects whichever add or multiply call ran last.
type Server struct {
	cfg    *config.Config
	calc   *calculator.Calculator
	server *sdk.Server
}

// New builds the MCP server and registers its tools.
func New(cfg *config.Config) *Server {
	s := &Server{
		cfg:  cfg,
		calc: calculator.New(),
	}

	s.server = sdk.NewServer(&sdk.Implementation{
		Name:    cfg.Server.Name,
		Version: cfg.Server.Version,
	}, nil)

	s.registerTools()
	logServer.Printf("Server created: name=%s, version=%s", cfg.Server.Name, cfg.Server.Version)
	return s
}

// Calculator returns the calculator shared by the tools.
func (s *Server) Calculator() *calculator.Calculator {
	return s.calc
}

// SDKServer returns the underlying MCP server.
func (s *Server) SDKServer() *sdk.Server {
	return s.server
}

// Run serves a single session on transport until it closes or ctx is cancelled.
func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	log.Printf("Starting MCP server %s...", s.cfg.Server.Name)
	logger.LogInfo("server", "Starting MCP server %s", s.cfg.Server.Name)
	return s.server.Run(ctx, transport)
}

// Connect starts a session on transport without blocking.
func (s *Server) Connect(ctx context.Context, transport sdk.Transport) (*sdk.ServerSession, error) {
	return s.server.Connect(ctx, transport, nil)
}
