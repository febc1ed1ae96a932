// Package main provides the MCP command for the skillscout CLI.
package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/skillscout/cli/internal/config"
	"github.com/skillscout/cli/internal/mcp"
	"github.com/skillscout/cli/internal/ui"
)

// mcpCmd is the parent command for MCP operations.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long: `MCP (Model Context Protocol) server commands.

The MCP server allows AI agents to query skill recommendations through
the Model Context Protocol.

Commands:
  serve  - Start the MCP server over stdio`,
}

// mcpServeCmd starts the MCP server.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP server over stdio",
	Long: `Start the skillscout MCP server over stdio.

This command starts an MCP server that communicates via JSON-RPC over
stdin/stdout. It's designed to be launched by AI hosts like Cursor or
Claude Desktop.

The server exposes the following tools:
  - recommend_skills: Recommend skills for a task description
  - list_skills: List the skill catalog with priority filtering
  - get_skill: Fetch a skill's SKILL.md document

Example Cursor configuration:
  {
    "mcpServers": {
      "skillscout": {
        "command": "skillscout",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().Bool("watch", false, "Reload the registry when .skillscout/config.yaml changes")
	mcpCmd.AddCommand(mcpServeCmd)
}

// runMCPServe starts the MCP server.
func runMCPServe(cmd *cobra.Command, args []string) error {
	server, err := mcp.NewServer(version, config.DefaultPath)
	if err != nil {
		ui.PrintError("Failed to create MCP server: %v", err)
		return err
	}

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		go func() {
			if err := server.WatchConfig(cmd.Context()); err != nil && cmd.Context().Err() == nil {
				log.Warn("config watcher stopped", "err", err)
			}
		}()
	}

	// Run the server (blocks until client disconnects)
	return server.Run(cmd.Context())
}
