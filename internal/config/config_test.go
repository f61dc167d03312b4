package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gubarz/literati/internal/render"
)

// isolate resets viper and points HOME at an empty directory
func isolate(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestInitDefaults(t *testing.T) {
	isolate(t)
	require.NoError(t, Init())

	assert.Equal(t, "", GetEngine())
	assert.Equal(t, render.DefaultPreference, GetEngines())
	assert.Equal(t, []string{".lhs"}, GetExtensions())
	assert.Equal(t, "print", GetOutput())
	assert.Equal(t, "site", GetOutDir())
	assert.Equal(t, "info", GetLogLevel())
	assert.Equal(t, "text", GetLogFormat())
	assert.False(t, GetHighlight())
	assert.Equal(t, "monokai", GetHighlightStyle())

	assert.Equal(t, render.Options{HighlightStyle: "monokai"}, RenderOptions())
	assert.Equal(t, render.Options{Style: "dark", Width: 80}, PreviewOptions())
	assert.Equal(t, "print", C.Output)
}

func TestInitEnv(t *testing.T) {
	isolate(t)
	t.Setenv("LITERATI_ENGINE", "blackfriday")
	t.Setenv("LITERATI_ENGINES", "gomarkdown, goldmark")
	t.Setenv("LITERATI_HIGHLIGHT", "true")
	require.NoError(t, Init())

	assert.Equal(t, "blackfriday", GetEngine())
	assert.Equal(t, []string{"gomarkdown", "goldmark"}, GetEngines())
	assert.True(t, RenderOptions().Highlight)
}

func TestInitFromHomeConfig(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "literati")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "literati.yaml"), []byte(`
engine: gomarkdown
hard_wraps: true
out_dir: ~/public
extensions: [".lhs", ".literate"]
`), 0o644))

	require.NoError(t, Init())
	assert.Equal(t, "gomarkdown", GetEngine())
	assert.True(t, RenderOptions().HardWraps)
	assert.Equal(t, filepath.Join(home, "public"), GetOutDir())
	assert.Equal(t, []string{".lhs", ".literate"}, GetExtensions())
	assert.Equal(t, "gomarkdown", C.Engine)
}

func TestInitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unsafe: true\nlog_level: debug\n"), 0o644))

	require.NoError(t, InitFile(path))
	assert.True(t, RenderOptions().Unsafe)
	assert.Equal(t, "debug", GetLogLevel())
}

func TestInitFileMissing(t *testing.T) {
	isolate(t)
	assert.Error(t, InitFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestSetters(t *testing.T) {
	isolate(t)
	require.NoError(t, Init())

	SetOutput("copy")
	SetHighlightStyle("dracula")
	assert.Equal(t, "copy", GetOutput())
	assert.Equal(t, "copy", C.Output)
	assert.Equal(t, "dracula", RenderOptions().HighlightStyle)
}
