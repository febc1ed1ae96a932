// Package ui provides terminal output components using Charm libraries.
//
// This package contains the styling and message helpers for the skillscout
// CLI's terminal interface.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Brand colors for skillscout.
var (
	// Primary brand color
	Teal = lipgloss.Color("#14B8A6")

	// Secondary colors
	Red     = lipgloss.Color("#EF4444")
	Amber   = lipgloss.Color("#F59E0B")
	Green   = lipgloss.Color("#22C55E")
	Gray    = lipgloss.Color("#6B7280")
	DimGray = lipgloss.Color("#9CA3AF")
)

// Text styles.
var (
	// TitleStyle for main headings
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Teal)

	// SuccessStyle for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// WarningStyle for warning messages
	WarningStyle = lipgloss.NewStyle().
			Foreground(Amber)

	// InfoStyle for informational messages
	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB"))

	// DimStyle for less important text
	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	// SkillNameStyle for recommended skill names
	SkillNameStyle = lipgloss.NewStyle().
			Foreground(Teal).
			Bold(true)

	// ConfidenceHighStyle renders the "high" confidence badge
	ConfidenceHighStyle = lipgloss.NewStyle().
				Foreground(Green)

	// ConfidenceMediumStyle renders the "medium" confidence badge
	ConfidenceMediumStyle = lipgloss.NewStyle().
				Foreground(Amber)
)
