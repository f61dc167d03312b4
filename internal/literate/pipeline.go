package literate

import "github.com/gubarz/literati/internal/render"

// ToHTML transforms literate content to Markdown and renders it with r.
// A nil r uses the default renderer.
func ToHTML(content string, r render.Renderer) (string, error) {
	return render.Render(Transform(content), r)
}
