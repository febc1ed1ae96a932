// Package main provides the recommend command for the skillscout CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/skillscout/cli/internal/config"
	"github.com/skillscout/cli/internal/project"
	"github.com/skillscout/cli/internal/recommend"
	"github.com/skillscout/cli/internal/tui"
	"github.com/skillscout/cli/internal/ui"
)

// recommendCmd recommends skills for a task description.
var recommendCmd = &cobra.Command{
	Use:   "recommend [task description]",
	Short: "Recommend skills for a task description",
	Long: `Recommend agent skills for a free-text task description.

The description can be written in English, Korean, Japanese, Chinese, or
Spanish. Matched skills are ranked by priority, with a confidence level
derived from how many keyword concepts matched.

EXAMPLES:
  skillscout recommend "I need to fix this bug"
  skillscout recommend "로그인에 버그가 있어"
  skillscout recommend --project "improve this codebase"
  skillscout recommend --interactive`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().Bool("project", false, "Analyze the current directory and add stack hints to the prompt")
	recommendCmd.Flags().BoolP("interactive", "i", false, "Launch the interactive wizard")
}

// runRecommend executes the recommend command.
func runRecommend(cmd *cobra.Command, args []string) error {
	reg, err := config.EffectiveRegistry(config.DefaultPath)
	if err != nil {
		ui.PrintError("Failed to load config: %v", err)
		return err
	}
	engine := recommend.NewEngine(reg)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quiet, _ := cmd.Flags().GetBool("quiet")
	interactive, _ := cmd.Flags().GetBool("interactive")

	if interactive {
		if !tui.ShouldRunTUI(jsonOutput, quiet) {
			ui.PrintError("Interactive mode requires a terminal (and no --json/--quiet)")
			return fmt.Errorf("not a terminal")
		}
		return tui.Run(engine)
	}

	prompt := strings.Join(args, " ")
	if strings.TrimSpace(prompt) == "" {
		ui.PrintError("Provide a task description or use --interactive")
		return fmt.Errorf("empty task description")
	}

	if useProject, _ := cmd.Flags().GetBool("project"); useProject {
		prompt = withProjectHints(prompt)
	}

	result := engine.Recommend(prompt)

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(result)
	}

	printRecommendations(result)
	return nil
}

// withProjectHints appends stack hints detected in the working directory.
func withProjectHints(prompt string) string {
	wd, err := os.Getwd()
	if err != nil {
		return prompt
	}
	rep := project.Analyze(wd)
	if len(rep.Hints) == 0 {
		return prompt
	}
	log.Debug("project hints", "languages", rep.Languages, "hints", rep.Hints)
	return prompt + " " + strings.Join(rep.Hints, " ")
}

// printRecommendations renders a result for humans.
func printRecommendations(result recommend.Result) {
	if len(result.Recommendations) == 0 {
		ui.PrintDim("No matching skills for: %s", strings.TrimSpace(result.OriginalPrompt))
		return
	}

	for i, rec := range result.Recommendations {
		confStyle := ui.ConfidenceMediumStyle
		if rec.Confidence == recommend.ConfidenceHigh {
			confStyle = ui.ConfidenceHighStyle
		}
		fmt.Printf("%d. %s %s\n", i+1,
			ui.SkillNameStyle.Render(rec.SkillName),
			confStyle.Render("["+string(rec.Confidence)+"]"))
		ui.PrintDim("   %s", rec.Description)
		ui.PrintDim("   matched: %s", strings.Join(rec.MatchedPatterns, ", "))
	}
}
