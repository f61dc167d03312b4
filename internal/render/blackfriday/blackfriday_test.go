package blackfriday

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gubarz/literati/internal/render"
)

func TestRegistered(t *testing.T) {
	r, err := render.DefaultRegistry.New(Name, render.Options{})
	require.NoError(t, err)
	assert.IsType(t, &Renderer{}, r)
}

func TestRenderFencedCode(t *testing.T) {
	out, err := New(render.Options{}).Render("Intro.\n\n```haskell\nmain = print 1\n```\n")
	require.NoError(t, err)
	assert.Contains(t, out, "<p>Intro.</p>")
	assert.Contains(t, out, `<pre><code class="language-haskell">main = print 1`)
}

func TestRenderRawHTML(t *testing.T) {
	safe, err := New(render.Options{}).Render("<div>raw</div>\n")
	require.NoError(t, err)
	assert.NotContains(t, safe, "<div>")

	unsafe, err := New(render.Options{Unsafe: true}).Render("<div>raw</div>\n")
	require.NoError(t, err)
	assert.Contains(t, unsafe, "<div>raw</div>")
}

func TestRenderHardWraps(t *testing.T) {
	out, err := New(render.Options{HardWraps: true}).Render("a\nb\n")
	require.NoError(t, err)
	assert.Contains(t, out, "<br")
}
