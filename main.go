package main

import (
	"log"
	"mssql-mcp/mcp"

	_ "github.com/denisenkom/go-mssqldb"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env file; real deployments configure via the environment
	_ = godotenv.Load()

	// Define MCP Server
	mcpServer, err := mcp.NewMcpServer()
	if err != nil {
		log.Fatalf("Error setting up MCP server: %v", err)
		return
	}

	// Start server in stdio
	defer mcpServer.Close()
	if err = mcpServer.Start(); err != nil {
		log.Fatalf("Error starting server: %v", err)
		return
	}
}
