package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// StyleManager encapsulates the preview styles
type StyleManager struct {
	Title   lipgloss.Style
	Mode    lipgloss.Style
	Footer  lipgloss.Style
	Divider lipgloss.Style
	Help    lipgloss.Style

	// Engine listing
	EngineName    lipgloss.Style
	EngineDefault lipgloss.Style
	EngineDesc    lipgloss.Style
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return &StyleManager{
		Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Mode:          lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Footer:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Divider:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Help:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		EngineName:    lipgloss.NewStyle().Bold(true),
		EngineDefault: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		EngineDesc:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Global style manager instance
var styles = DefaultStyles()
