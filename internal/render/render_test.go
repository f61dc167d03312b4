package render

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixed(out string) Renderer {
	return RendererFunc(func(string) (string, error) { return out, nil })
}

func TestRenderDelegatesToExplicitRenderer(t *testing.T) {
	got, err := Render("# anything at all", fixed("OK"))
	require.NoError(t, err)
	assert.Equal(t, "OK", got)
}

func TestRenderPassesMarkdownThrough(t *testing.T) {
	echo := RendererFunc(func(md string) (string, error) { return md, nil })

	got, err := Render("```haskell\nx\n```\n", echo)
	require.NoError(t, err)
	assert.Equal(t, "```haskell\nx\n```\n", got)
}

func TestRenderPropagatesRendererError(t *testing.T) {
	boom := errors.New("engine exploded")
	failing := RendererFunc(func(string) (string, error) { return "partial", boom })

	got, err := Render("x", failing)
	assert.Same(t, boom, err)
	assert.Equal(t, "partial", got)
}

type nilSafe struct{}

func (*nilSafe) Render(string) (string, error) { return "nil receiver", nil }

// A non-nil interface holding a nil pointer is the caller's renderer, not a
// request for the default.
func TestRenderCallsTypedNilRenderer(t *testing.T) {
	var r *nilSafe
	got, err := Render("x", r)
	require.NoError(t, err)
	assert.Equal(t, "nil receiver", got)
}

// Engine packages are not linked into this test binary, so the default
// registry is empty.
func TestRenderWithoutRendererFailsWhenNothingRegistered(t *testing.T) {
	_, err := Render("x", nil)
	assert.ErrorIs(t, err, ErrRendererUnavailable)
	assert.Equal(t, "", DefaultName())
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Engine{Name: "zeta", New: func(Options) (Renderer, error) { return fixed("z"), nil }})
	reg.Register(Engine{Name: "alpha", Description: "first", New: func(Options) (Renderer, error) { return fixed("a"), nil }})

	assert.Equal(t, []string{"alpha", "zeta"}, reg.Names())

	engines := reg.Engines()
	require.Len(t, engines, 2)
	assert.Equal(t, "alpha", engines[0].Name)
	assert.Equal(t, "first", engines[0].Description)

	e, ok := reg.Lookup("zeta")
	require.True(t, ok)
	assert.Equal(t, "zeta", e.Name)

	_, ok = reg.Lookup("missing")
	assert.False(t, ok)

	t.Run("replace", func(t *testing.T) {
		reg.Register(Engine{Name: "zeta", New: func(Options) (Renderer, error) { return fixed("z2"), nil }})
		r, err := reg.New("zeta", Options{})
		require.NoError(t, err)
		out, _ := r.Render("")
		assert.Equal(t, "z2", out)
	})

	t.Run("panics", func(t *testing.T) {
		assert.Panics(t, func() { reg.Register(Engine{New: func(Options) (Renderer, error) { return nil, nil }}) })
		assert.Panics(t, func() { reg.Register(Engine{Name: "nil-new"}) })
	})
}

func TestRegistryNew(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Engine{
		Name:      "off",
		Available: func() bool { return false },
		New:       func(Options) (Renderer, error) { return fixed("off"), nil },
	})
	reg.Register(Engine{
		Name: "broken",
		New:  func(Options) (Renderer, error) { return nil, errors.New("bad style") },
	})
	reg.Register(Engine{
		Name: "opts",
		New: func(o Options) (Renderer, error) {
			return fixed(fmt.Sprintf("hard=%v style=%s", o.HardWraps, o.HighlightStyle)), nil
		},
	})

	_, err := reg.New("nope", Options{})
	assert.ErrorIs(t, err, ErrUnknownEngine)

	_, err = reg.New("off", Options{})
	assert.ErrorIs(t, err, ErrRendererUnavailable)

	_, err = reg.New("broken", Options{})
	assert.EqualError(t, err, "broken: bad style")

	r, err := reg.New("opts", Options{HardWraps: true, HighlightStyle: "monokai"})
	require.NoError(t, err)
	out, _ := r.Render("")
	assert.Equal(t, "hard=true style=monokai", out)
}

func TestResolverPreferenceOrder(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"one", "two", "three"} {
		name := name
		reg.Register(Engine{Name: name, New: func(Options) (Renderer, error) { return fixed(name), nil }})
	}

	tests := []struct {
		name       string
		preference []string
		expected   string
	}{
		{"first wins", []string{"two", "one", "three"}, "two"},
		{"unregistered skipped", []string{"missing", "three", "one"}, "three"},
		{"single", []string{"one"}, "one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewResolver(reg, tt.preference, Options{})
			r, err := res.Resolve()
			require.NoError(t, err)
			out, _ := r.Render("")
			assert.Equal(t, tt.expected, out)
			assert.Equal(t, tt.expected, res.Name())
		})
	}
}

func TestResolverSkipsUnusableEngines(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Engine{
		Name:      "absent",
		Available: func() bool { return false },
		New:       func(Options) (Renderer, error) { return fixed("absent"), nil },
	})
	reg.Register(Engine{
		Name: "broken",
		New:  func(Options) (Renderer, error) { return nil, errors.New("no style") },
	})
	reg.Register(Engine{
		Name:      "present",
		Available: func() bool { return true },
		New:       func(Options) (Renderer, error) { return fixed("present"), nil },
	})

	res := NewResolver(reg, []string{"absent", "broken", "present"}, Options{})
	r, err := res.Resolve()
	require.NoError(t, err)
	out, _ := r.Render("")
	assert.Equal(t, "present", out)
}

func TestResolverUnavailable(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Engine{
		Name:      "absent",
		Available: func() bool { return false },
		New:       func(Options) (Renderer, error) { return fixed("absent"), nil },
	})

	res := NewResolver(reg, []string{"absent", "missing"}, Options{})
	r, err := res.Resolve()
	assert.Nil(t, r)
	require.ErrorIs(t, err, ErrRendererUnavailable)
	assert.Contains(t, err.Error(), "absent: not available")
	assert.Contains(t, err.Error(), "missing: not registered")
	assert.Equal(t, "", res.Name())
}

func TestResolverProbesOnce(t *testing.T) {
	var probes, builds atomic.Int32
	reg := NewRegistry()
	reg.Register(Engine{
		Name: "counted",
		Available: func() bool {
			probes.Add(1)
			return true
		},
		New: func(Options) (Renderer, error) {
			builds.Add(1)
			return fixed("counted"), nil
		},
	})

	res := NewResolver(reg, []string{"counted"}, Options{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := res.Resolve()
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	_, _ = res.Resolve()

	assert.Equal(t, int32(1), probes.Load())
	assert.Equal(t, int32(1), builds.Load())
}

func TestResolverPassesOptions(t *testing.T) {
	reg := NewRegistry()
	var got Options
	reg.Register(Engine{Name: "e", New: func(o Options) (Renderer, error) {
		got = o
		return fixed(""), nil
	}})

	_, err := NewResolver(reg, []string{"e"}, Options{Unsafe: true, Extensions: []string{"table"}}).Resolve()
	require.NoError(t, err)
	assert.True(t, got.Unsafe)
	assert.Equal(t, []string{"table"}, got.Extensions)
}

func TestNewResolverDefaults(t *testing.T) {
	res := NewResolver(nil, nil, Options{})
	assert.Same(t, DefaultRegistry, res.registry)
	assert.Equal(t, DefaultPreference, res.preference)
}
