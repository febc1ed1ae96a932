// Package main provides the skills commands for the skillscout CLI.
//
// Skills are embedded in the binary at compile time and can be listed,
// printed, exported, or installed into an AI tool's skill directory.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/skillscout/cli/internal/catalog"
	"github.com/skillscout/cli/internal/config"
	"github.com/skillscout/cli/internal/ui"
	"github.com/skillscout/cli/internal/util"
	"github.com/skillscout/cli/skills"
)

// Supported skill directory locations for each tool. Project-level
// directories only; --global switches to the user-level variant.
var skillDirectories = map[string]string{
	"claude": ".claude/skills",
	"cursor": ".cursor/skills",
	"codex":  ".codex/skills",
}

// skillsCmd is the parent command for skill catalog operations.
var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List, inspect, and install skills",
	Long: `List, inspect, and install the bundled skills.

EXAMPLES:
  skillscout skills list
  skillscout skills list --min-priority 20 --max-priority 22
  skillscout skills show systematic-debugging
  skillscout skills export code-review -o SKILL.md
  skillscout skills install test-driven-development --tool claude`,
}

// skillsListCmd lists the skill catalog.
var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills with optional priority filtering",
	Args:  cobra.NoArgs,
	RunE:  runSkillsList,
}

// skillsShowCmd prints one skill's document to stdout.
var skillsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a skill's SKILL.md to stdout",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillsShow,
}

// skillsExportCmd writes one skill's document to a file.
var skillsExportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Export a skill's SKILL.md to a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillsExport,
}

// skillsInstallCmd installs a skill into a tool's skill directory.
var skillsInstallCmd = &cobra.Command{
	Use:   "install <name>",
	Short: "Install a skill into an AI tool's skill directory",
	Long: `Install a skill into an AI tool's skill directory.

The skill is written to <dir>/<skill-name>/SKILL.md where <dir> depends on
the --tool flag: .claude/skills (default), .cursor/skills, or .codex/skills.`,
	Args: cobra.ExactArgs(1),
	RunE: runSkillsInstall,
}

func init() {
	skillsListCmd.Flags().Int("min-priority", 0, "Only include skills with priority >= this value")
	skillsListCmd.Flags().Int("max-priority", 0, "Only include skills with priority <= this value")

	skillsExportCmd.Flags().StringP("output", "o", "", "Output path (defaults to ./SKILL.md)")

	skillsInstallCmd.Flags().String("tool", "claude", "Target tool: claude, cursor, or codex")
	skillsInstallCmd.Flags().Bool("global", false, "Install to the user-level directory instead of the project")

	skillsCmd.AddCommand(skillsListCmd)
	skillsCmd.AddCommand(skillsShowCmd)
	skillsCmd.AddCommand(skillsExportCmd)
	skillsCmd.AddCommand(skillsInstallCmd)
}

// runSkillsList executes the skills list command.
func runSkillsList(cmd *cobra.Command, args []string) error {
	reg, err := config.EffectiveRegistry(config.DefaultPath)
	if err != nil {
		ui.PrintError("Failed to load config: %v", err)
		return err
	}

	filter := catalog.Filter{
		MinPriority: intFlagIfSet(cmd.Flags(), "min-priority"),
		MaxPriority: intFlagIfSet(cmd.Flags(), "max-priority"),
	}

	listing := catalog.NewService(reg).List(&filter)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(listing)
	}

	for _, sk := range listing.Skills {
		fmt.Printf("%s %s\n",
			ui.SkillNameStyle.Render(sk.Name),
			ui.DimStyle.Render(fmt.Sprintf("(priority %d)", sk.Priority)))
		ui.PrintDim("   %s", sk.Description)
		ui.PrintDim("   concepts: %s", strings.Join(sk.Concepts, ", "))
	}
	ui.Println()
	ui.PrintDim("%d skill(s)", listing.Total)
	return nil
}

// intFlagIfSet returns the flag's value only when the user passed it,
// so an unset bound stays nil rather than filtering at zero.
func intFlagIfSet(flags *pflag.FlagSet, name string) *int {
	if !flags.Changed(name) {
		return nil
	}
	v, _ := flags.GetInt(name)
	return &v
}

// runSkillsShow executes the skills show command.
func runSkillsShow(cmd *cobra.Command, args []string) error {
	content, ok := skills.Content(args[0])
	if !ok {
		ui.PrintError("Unknown skill: %s", args[0])
		return fmt.Errorf("unknown skill %q", args[0])
	}
	fmt.Print(content)
	return nil
}

// runSkillsExport executes the skills export command.
func runSkillsExport(cmd *cobra.Command, args []string) error {
	content, ok := skills.Content(args[0])
	if !ok {
		ui.PrintError("Unknown skill: %s", args[0])
		return fmt.Errorf("unknown skill %q", args[0])
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = skills.SkillFileName
	}
	if err := os.WriteFile(output, []byte(content), 0o644); err != nil {
		ui.PrintError("Failed to write %s: %v", output, err)
		return err
	}
	ui.PrintSuccess("Exported %s to %s", args[0], output)
	return nil
}

// runSkillsInstall executes the skills install command.
func runSkillsInstall(cmd *cobra.Command, args []string) error {
	name := args[0]
	content, ok := skills.Content(name)
	if !ok {
		ui.PrintError("Unknown skill: %s", name)
		return fmt.Errorf("unknown skill %q", name)
	}

	tool, _ := cmd.Flags().GetString("tool")
	dir, ok := skillDirectories[tool]
	if !ok {
		ui.PrintError("Unknown tool: %s (use claude, cursor, or codex)", tool)
		return fmt.Errorf("unknown tool %q", tool)
	}

	if global, _ := cmd.Flags().GetBool("global"); global {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot resolve home directory: %w", err)
		}
		dir = filepath.Join(home, dir)
	}

	target := filepath.Join(dir, util.SanitizeForFilename(name))
	if err := os.MkdirAll(target, 0o755); err != nil {
		ui.PrintError("Failed to create %s: %v", target, err)
		return err
	}
	path := filepath.Join(target, skills.SkillFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		ui.PrintError("Failed to write %s: %v", path, err)
		return err
	}

	ui.PrintSuccess("Installed %s to %s", name, path)
	return nil
}
