// Command matchmcp serves the match engine over stdio as an MCP tool
// surface, for an agent to play against a heuristic opponent.
package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/berserk-vibe/matchd/internal/aiadapter/mcptools"
)

func main() {
	s := server.NewMCPServer("matchd", "1.0.0")
	mcptools.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
