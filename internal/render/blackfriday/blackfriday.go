// Package blackfriday renders Markdown to HTML with
// github.com/russross/blackfriday/v2.
package blackfriday

import (
	bf "github.com/russross/blackfriday/v2"

	"github.com/gubarz/literati/internal/render"
)

// Name is the registry name of this engine
const Name = "blackfriday"

func init() {
	render.Register(render.Engine{
		Name:        Name,
		Description: "Blackfriday v2 with common extensions",
		New: func(opts render.Options) (render.Renderer, error) {
			return New(opts), nil
		},
	})
}

// Renderer holds the extension set and HTML flags for blackfriday.Run
type Renderer struct {
	extensions bf.Extensions
	flags      bf.HTMLFlags
}

// New builds a blackfriday renderer from opts. Fenced code is part of the
// common extension set.
func New(opts render.Options) *Renderer {
	extensions := bf.CommonExtensions
	if opts.HardWraps {
		extensions |= bf.HardLineBreak
	}

	flags := bf.CommonHTMLFlags
	if !opts.Unsafe {
		flags |= bf.Safelink | bf.SkipHTML
	}

	return &Renderer{extensions: extensions, flags: flags}
}

// Render converts markdown to HTML. Blackfriday cannot fail.
func (r *Renderer) Render(markdown string) (string, error) {
	htmlRenderer := bf.NewHTMLRenderer(bf.HTMLRendererParameters{Flags: r.flags})
	out := bf.Run([]byte(markdown),
		bf.WithExtensions(r.extensions),
		bf.WithRenderer(htmlRenderer),
	)
	return string(out), nil
}
