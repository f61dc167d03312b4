package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gubarz/literati/internal/render"
)

// FormatEngines lists engines one per line, marking the one that default
// resolution binds and any that report themselves unavailable.
func FormatEngines(engines []*render.Engine, defaultName string) string {
	width := 0
	for _, e := range engines {
		width = maxInt(width, lipgloss.Width(e.Name))
	}

	b := getBuilder()
	defer putBuilder(b)

	for _, e := range engines {
		marker := "  "
		if e.Name == defaultName {
			marker = styles.EngineDefault.Render("* ")
		}
		name := styles.EngineName.Render(e.Name + strings.Repeat(" ", width-lipgloss.Width(e.Name)))
		desc := e.Description
		if e.Available != nil && !e.Available() {
			desc += " (unavailable)"
		}
		b.WriteString(marker + name + "  " + styles.EngineDesc.Render(desc) + "\n")
	}
	return b.String()
}
