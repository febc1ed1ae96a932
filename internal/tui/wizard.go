// Package tui provides the interactive recommendation wizard.
//
// The wizard launches for `skillscout recommend --interactive` in a real
// terminal. It is never activated for agents, CI/CD, or piped output; the
// caller gates on ShouldRunTUI before starting it.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skillscout/cli/internal/recommend"
	"github.com/skillscout/cli/internal/ui"
	"github.com/skillscout/cli/skills"
)

// ShouldRunTUI returns true if the wizard should be launched.
// Returns false when stdout is not a terminal, or --json/--quiet flags are
// set.
func ShouldRunTUI(jsonOutput, quiet bool) bool {
	if jsonOutput || quiet {
		return false
	}
	return ui.IsInteractive()
}

// --- Shared wizard styles ---

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.Teal)

	promptStyle = lipgloss.NewStyle().
			Foreground(ui.Teal)

	selectedStyle = lipgloss.NewStyle().
			Foreground(ui.Teal).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(ui.DimGray)

	confidenceStyle = map[recommend.Confidence]lipgloss.Style{
		recommend.ConfidenceHigh:   lipgloss.NewStyle().Foreground(ui.Green),
		recommend.ConfidenceMedium: lipgloss.NewStyle().Foreground(ui.Amber),
		recommend.ConfidenceLow:    lipgloss.NewStyle().Foreground(ui.Gray),
	}
)

// wizardStep tracks which stage of the wizard the user is on.
type wizardStep int

const (
	stepPrompt wizardStep = iota // typing the task description
	stepDetail                   // viewing one skill's document
)

// Model is the Bubble Tea model for the recommendation wizard.
type Model struct {
	engine *recommend.Engine

	step      wizardStep
	input     textinput.Model
	results   []recommend.Recommendation
	cursor    int
	statusMsg string
	width     int
	height    int
	quitting  bool
}

// NewModel creates the wizard over an engine.
func NewModel(engine *recommend.Engine) Model {
	ti := textinput.New()
	ti.Placeholder = "describe your task, e.g. \"fix the login crash\""
	ti.CharLimit = 512
	ti.Focus()

	return Model{
		engine: engine,
		step:   stepPrompt,
		input:  ti,
	}
}

// Run starts the wizard and blocks until the user exits.
func Run(engine *recommend.Engine) error {
	_, err := tea.NewProgram(NewModel(engine)).Run()
	return err
}

// Init starts the text input blink cursor.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the wizard.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	switch m.step {
	case stepPrompt:
		return m.handlePromptKey(msg)
	case stepDetail:
		return m.handleDetailKey(msg)
	}
	return m, nil
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.quitting = true
		return m, tea.Quit

	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down":
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		if len(m.results) > 0 {
			m.step = stepDetail
			m.statusMsg = ""
		}
		return m, nil

	case "ctrl+y":
		return m.copySelected(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refreshResults()
	return m, cmd
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.step = stepPrompt
		m.statusMsg = ""
		return m, nil

	case "c":
		return m.copySelected(), nil
	}
	return m, nil
}

// copySelected puts the highlighted skill name on the system clipboard.
func (m Model) copySelected() Model {
	if m.cursor >= len(m.results) {
		return m
	}
	name := m.results[m.cursor].SkillName
	if err := clipboard.WriteAll(name); err != nil {
		m.statusMsg = "clipboard unavailable"
		return m
	}
	m.statusMsg = "copied " + name
	return m
}

// refreshResults recomputes recommendations for the current input text.
func (m *Model) refreshResults() {
	m.results = m.engine.Recommend(m.input.Value()).Recommendations
	if m.cursor >= len(m.results) {
		m.cursor = 0
	}
}

// View renders the wizard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.step {
	case stepDetail:
		return m.viewDetail()
	default:
		return m.viewPrompt()
	}
}

func (m Model) viewPrompt() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("skillscout") + "\n\n")
	b.WriteString(promptStyle.Render("Task: ") + m.input.View() + "\n\n")

	if strings.TrimSpace(m.input.Value()) == "" {
		b.WriteString(dimStyle.Render("start typing to see matching skills") + "\n")
	} else if len(m.results) == 0 {
		b.WriteString(dimStyle.Render("no matching skills") + "\n")
	} else {
		for i, rec := range m.results {
			marker := "  "
			name := rec.SkillName
			if i == m.cursor {
				marker = selectedStyle.Render("> ")
				name = selectedStyle.Render(name)
			}
			conf := confidenceStyle[rec.Confidence].Render(string(rec.Confidence))
			b.WriteString(fmt.Sprintf("%s%s  %s  %s\n",
				marker, name, conf,
				dimStyle.Render(fmt.Sprintf("(%d matches)", len(rec.MatchedPatterns)))))
		}
	}

	b.WriteString("\n" + dimStyle.Render("↑/↓ select · enter details · ctrl+y copy name · esc quit"))
	if m.statusMsg != "" {
		b.WriteString("\n" + dimStyle.Render(m.statusMsg))
	}
	return b.String()
}

func (m Model) viewDetail() string {
	if m.cursor >= len(m.results) {
		return ""
	}
	rec := m.results[m.cursor]

	var b strings.Builder
	b.WriteString(titleStyle.Render(rec.SkillName) + "\n\n")

	if content, ok := skills.Content(rec.SkillName); ok {
		b.WriteString(content)
	} else {
		b.WriteString(rec.Description + "\n")
	}

	b.WriteString("\n" + dimStyle.Render("esc back · c copy name"))
	if m.statusMsg != "" {
		b.WriteString("\n" + dimStyle.Render(m.statusMsg))
	}
	return b.String()
}
