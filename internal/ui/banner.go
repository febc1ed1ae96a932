// Package ui provides the banner and help text for the skillscout CLI.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// tagline is the product tagline.
const tagline = "The right skill for the task, in any language"

// PrintBanner prints the skillscout header with version info.
func PrintBanner(version string) {
	if quietMode {
		return
	}

	fmt.Println(TitleStyle.Render("skillscout") + " " + DimStyle.Render("v"+version))
	fmt.Println(DimStyle.Render(tagline))
	fmt.Println()
}

// GetHelpText returns the curated help text for `skillscout --help`.
func GetHelpText() string {
	teal := lipgloss.NewStyle().Foreground(Teal).Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	return fmt.Sprintf(`%s

%s
  %s   Recommend skills for a task description
  %s                 List the skill catalog
  %s       Print a skill's workflow document
  %s                        Write a starter config file

%s
  %s                   Start MCP server for AI agent integration

%s
  English, Korean, Japanese, Chinese, Spanish`,
		dim.Render(tagline+"."),
		teal.Render("Quick Start:"),
		teal.Render(`skillscout recommend "fix this bug"`),
		teal.Render("skillscout skills list"),
		teal.Render("skillscout skills show <name>"),
		teal.Render("skillscout init"),
		teal.Render("AI/LLM:"),
		teal.Render("skillscout mcp serve"),
		teal.Render("Languages:"),
	)
}
