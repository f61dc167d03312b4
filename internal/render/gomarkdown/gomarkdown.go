// Package gomarkdown renders Markdown to HTML with github.com/gomarkdown/markdown.
package gomarkdown

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/gubarz/literati/internal/render"
)

// Name is the registry name of this engine
const Name = "gomarkdown"

func init() {
	render.Register(render.Engine{
		Name:        Name,
		Description: "gomarkdown with common extensions",
		New: func(opts render.Options) (render.Renderer, error) {
			return New(opts), nil
		},
	})
}

// Renderer keeps the configuration only: gomarkdown parsers and renderers
// carry state and must not be reused, so both are built per call.
type Renderer struct {
	extensions parser.Extensions
	flags      html.Flags
}

// New builds a gomarkdown renderer from opts
func New(opts render.Options) *Renderer {
	extensions := parser.CommonExtensions
	if opts.HardWraps {
		extensions |= parser.HardLineBreak
	}

	flags := html.CommonFlags
	if !opts.Unsafe {
		flags |= html.Safelink | html.SkipHTML
	}

	return &Renderer{extensions: extensions, flags: flags}
}

// Render converts markdown to HTML
func (r *Renderer) Render(md string) (string, error) {
	p := parser.NewWithExtensions(r.extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: r.flags})
	return string(markdown.ToHTML([]byte(md), p, renderer)), nil
}
