// Package build converts a tree of literate sources into rendered files.
package build

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gubarz/literati/internal/literate"
	"github.com/gubarz/literati/internal/output"
	"github.com/gubarz/literati/internal/render"
)

// FileResult records one converted source
type FileResult struct {
	Source      string
	Destination string
	Bytes       int
}

// Result lists every file a build wrote, in source order
type Result struct {
	Files []FileResult
}

// Builder renders every literate source under a root into OutDir,
// mirroring the directory layout.
type Builder struct {
	Renderer   render.Renderer // nil means the default renderer
	OutDir     string
	Markdown   bool     // write Markdown instead of HTML
	Extensions []string // source extensions, empty means literate.DefaultExtensions
	Logger     *slog.Logger
}

// Run converts all sources under root. The first failing file stops the
// build; files already written stay in place.
func (b *Builder) Run(ctx context.Context, root string) (*Result, error) {
	if b.OutDir == "" {
		return nil, fmt.Errorf("build: output directory not set")
	}
	logger := b.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sources, err := literate.FindSources(root, b.Extensions)
	if err != nil {
		return nil, fmt.Errorf("find sources: %w", err)
	}

	base := root
	if len(sources) == 1 && sources[0] == root {
		base = filepath.Dir(root)
	}

	result := &Result{Files: make([]FileResult, 0, len(sources))}
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		dest, err := b.destination(base, src)
		if err != nil {
			return result, err
		}

		doc, err := b.convert(src)
		if err != nil {
			return result, fmt.Errorf("%s: %w", src, err)
		}
		if err := output.WriteFile(dest, doc); err != nil {
			return result, err
		}

		logger.Info("rendered", "source", src, "destination", dest, "bytes", len(doc))
		result.Files = append(result.Files, FileResult{Source: src, Destination: dest, Bytes: len(doc)})
	}

	return result, nil
}

func (b *Builder) convert(src string) (string, error) {
	content, err := literate.ReadFile(src)
	if err != nil {
		return "", err
	}
	if b.Markdown {
		return literate.Transform(content), nil
	}
	return literate.ToHTML(content, b.Renderer)
}

// destination maps src under base to its output path
func (b *Builder) destination(base, src string) (string, error) {
	rel, err := filepath.Rel(base, src)
	if err != nil {
		return "", fmt.Errorf("relative path for %s: %w", src, err)
	}
	ext := ".html"
	if b.Markdown {
		ext = ".md"
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + ext
	return filepath.Join(b.OutDir, rel), nil
}
