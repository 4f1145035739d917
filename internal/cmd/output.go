package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles for command output. Kept minimal: the supervisor is a one-shot
// CLI, not a dashboard.
var (
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	headerStyle   = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
)
