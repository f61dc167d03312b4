// Package render turns Markdown into HTML through a pluggable Renderer.
//
// Concrete engines live in subpackages and register themselves with
// DefaultRegistry from init. Import internal/render/all to link every
// HTML engine into a binary.
package render

import "errors"

var (
	// ErrRendererUnavailable is returned when no renderer was supplied and
	// none of the preferred engines could be bound.
	ErrRendererUnavailable = errors.New("no markdown renderer available")

	// ErrUnknownEngine is returned when a named engine is not registered.
	ErrUnknownEngine = errors.New("unknown markdown engine")
)

// Renderer converts a Markdown document into its rendered form
type Renderer interface {
	Render(markdown string) (string, error)
}

// RendererFunc adapts a plain function to the Renderer interface
type RendererFunc func(markdown string) (string, error)

// Render calls f(markdown)
func (f RendererFunc) Render(markdown string) (string, error) {
	return f(markdown)
}

// Render hands markdown to r and returns whatever r returns. A nil r is
// replaced by the process-wide default from Default. Only a nil interface
// counts as nil: a non-nil Renderer holding a nil pointer or nil func is
// called as is, so it must be usable.
func Render(markdown string, r Renderer) (string, error) {
	if r == nil {
		var err error
		if r, err = Default(); err != nil {
			return "", err
		}
	}
	return r.Render(markdown)
}
