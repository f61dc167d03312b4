// Package terminal renders Markdown to ANSI-styled text with glamour. It is
// not an HTML engine and is never picked by default resolution; callers
// pass it explicitly.
package terminal

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/gubarz/literati/internal/render"
)

const (
	// DefaultStyle is the glamour standard style used when Options.Style is empty
	DefaultStyle = "dark"
	// DefaultWidth is the word-wrap column used when Options.Width is not positive
	DefaultWidth = 80
)

// Renderer wraps a glamour terminal renderer
type Renderer struct {
	tr *glamour.TermRenderer
}

// New builds a terminal renderer using opts.Style and opts.Width
func New(opts render.Options) (*Renderer, error) {
	style := opts.Style
	if style == "" {
		style = DefaultStyle
	}
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	return &Renderer{tr: tr}, nil
}

// Render converts markdown to styled terminal output
func (r *Renderer) Render(markdown string) (string, error) {
	out, err := r.tr.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
