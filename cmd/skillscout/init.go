// Package main provides the init command for the skillscout CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillscout/cli/internal/config"
	"github.com/skillscout/cli/internal/ui"
)

// initCmd writes a starter config file.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter .skillscout/config.yaml",
	Long: `Write a starter .skillscout/config.yaml in the current directory.

The config lets a project disable bundled skills or override their
priorities:

  disabled:
    - dependency-auditing
  priorities:
    code-review: 30`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}

// runInit executes the init command.
func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(config.DefaultPath); err == nil && !force {
		ui.PrintWarning("%s already exists (use --force to overwrite)", config.DefaultPath)
		return fmt.Errorf("config already exists")
	}

	cfg := &config.ProjectConfig{
		Priorities: map[string]int{},
	}
	if err := config.WriteProjectConfig(config.DefaultPath, cfg); err != nil {
		ui.PrintError("Failed to write config: %v", err)
		return err
	}

	ui.PrintSuccess("Wrote %s", config.DefaultPath)
	ui.PrintDim("Edit it to disable skills or override priorities.")
	return nil
}
