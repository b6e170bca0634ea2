package main

import (
	"fmt"
	"log"
	"os"

	"github.com/groupmix/groupmix/internal/version"
	"github.com/groupmix/groupmix/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

const serverName = "groupmix"

func main() {
	// Set up logging to stderr (MCP uses stdout for JSON-RPC)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	server := mcpserver.NewMCPServer(
		serverName,
		version.Short(),
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithLogging(),
	)

	mcp.RegisterTools(server)

	log.Printf("Starting %s MCP server %s\n", serverName, version.Short())
	log.Println("Registered tools:")
	log.Println("  - generate_groups: Generate a low-overlap grouping")
	log.Println("  - pair_stats: Pair co-occurrence report")
	log.Println("  - list_history: Summarize the history directory")
	log.Println("")
	log.Println("Server ready - waiting for MCP client connection...")

	// Blocks until the server is terminated
	if err := mcpserver.ServeStdio(server); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
