package mcp

import (
	"database/sql"
	"log"

	"github.com/mark3labs/mcp-go/server"
)

type MssqlMCPServer struct {
	server *server.MCPServer
	db     *sql.DB
	config *Config
}

// NewMcpServer loads the connection descriptor from the environment and
// builds the MCP server around it.
func NewMcpServer() (*MssqlMCPServer, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	db, err := newDbConnection(cfg)
	if err != nil {
		return nil, err
	}

	log.Printf("Database config: %s", cfg.Describe())

	return newServerWithDB(cfg, db), nil
}

// newServerWithDB wires an MCP server around an already-open connection.
func newServerWithDB(cfg *Config, db *sql.DB) *MssqlMCPServer {
	s := &MssqlMCPServer{
		server: server.NewMCPServer(
			"MSSQL MCP Server",
			"1.0.0",
			server.WithToolCapabilities(true),
			server.WithResourceCapabilities(false, true),
			server.WithRecovery(),
		),
		db:     db,
		config: cfg,
	}

	// Register tools and table resources
	s.registerTools()
	s.registerResources()

	return s
}

// Start serves the MCP protocol over stdio
func (s *MssqlMCPServer) Start() error {
	return server.ServeStdio(s.server)
}

// Close closes the database connection
func (s *MssqlMCPServer) Close() error {
	return s.db.Close()
}
