// Package goldmark renders Markdown to HTML with github.com/yuin/goldmark.
package goldmark

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/gubarz/literati/internal/render"
)

// Name is the registry name of this engine
const Name = "goldmark"

// DefaultHighlightStyle is used when highlighting is on and no style is set
const DefaultHighlightStyle = "monokai"

func init() {
	render.Register(render.Engine{
		Name:        Name,
		Description: "CommonMark with GFM extensions (yuin/goldmark)",
		New: func(opts render.Options) (render.Renderer, error) {
			return New(opts), nil
		},
	})
}

// Renderer wraps a configured goldmark instance. It holds no per-call
// state, so one value can serve concurrent callers.
type Renderer struct {
	md goldmark.Markdown
}

// New builds a goldmark renderer from opts
func New(opts render.Options) *Renderer {
	return &Renderer{md: newEngine(opts)}
}

// Render converts markdown to HTML
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("goldmark convert: %w", err)
	}
	return buf.String(), nil
}

func newEngine(opts render.Options) goldmark.Markdown {
	exts := collectExtensions(opts.Extensions)

	if opts.Highlight {
		style := opts.HighlightStyle
		if style == "" {
			style = DefaultHighlightStyle
		}
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithStyle(style),
		))
	}

	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if opts.Unsafe {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}
	if len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
	"typographer":   extension.Typographer,
}

// extensionAliases maps alternate spellings onto extensionRegistry keys
var extensionAliases = map[string]string{
	"tables":   "table",
	"autolink": "linkify",
}

// collectExtensions maps extension names to extenders. Aliases collapse onto
// one extender and unknown names are skipped; no names at all means GFM.
func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{extension.GFM}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if canonical, ok := extensionAliases[key]; ok {
			key = canonical
		}
		if _, ok := seen[key]; ok {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}
