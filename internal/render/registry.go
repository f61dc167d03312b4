package render

import (
	"fmt"
	"sort"
	"sync"
)

// Options carries the engine-independent rendering knobs. Engines ignore
// fields that do not apply to them.
type Options struct {
	HardWraps      bool     // Treat single newlines as <br>
	Unsafe         bool     // Pass raw HTML and unsafe links through
	Highlight      bool     // Syntax highlight fenced code where supported
	HighlightStyle string   // Chroma style name used when Highlight is set
	Extensions     []string // Engine extension names, empty means engine defaults
	Style          string   // Terminal style name (terminal renderer only)
	Width          int      // Word wrap width (terminal renderer only)
}

// Engine describes a Markdown engine that can be bound by name
type Engine struct {
	Name        string
	Description string
	// Available reports whether the engine can be used in this process.
	// A nil Available means always.
	Available func() bool
	New       func(opts Options) (Renderer, error)
}

func (e *Engine) available() bool {
	return e.Available == nil || e.Available()
}

// Registry holds engines by name
type Registry struct {
	mu      sync.RWMutex
	engines map[string]*Engine
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{engines: make(map[string]*Engine)}
}

// DefaultRegistry is where engine packages register themselves
var DefaultRegistry = NewRegistry()

// Register adds an engine to DefaultRegistry
func Register(e Engine) {
	DefaultRegistry.Register(e)
}

// Register adds e, replacing any engine of the same name. It panics on an
// empty name or nil constructor.
func (r *Registry) Register(e Engine) {
	if e.Name == "" {
		panic("render: Register engine with empty name")
	}
	if e.New == nil {
		panic("render: Register engine " + e.Name + " with nil constructor")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.engines[e.Name] = &e
}

// Lookup returns the engine registered under name
func (r *Registry) Lookup(name string) (*Engine, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.engines[name]
	return e, ok
}

// Names returns the registered engine names, sorted
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Engines returns the registered engines sorted by name
func (r *Registry) Engines() []*Engine {
	names := r.Names()
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*Engine, 0, len(names))
	for _, name := range names {
		if e, ok := r.engines[name]; ok {
			result = append(result, e)
		}
	}
	return result
}

// New constructs the engine registered under name
func (r *Registry) New(name string, opts Options) (Renderer, error) {
	e, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
	if !e.available() {
		return nil, fmt.Errorf("%w: %s is not available", ErrRendererUnavailable, name)
	}
	renderer, err := e.New(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return renderer, nil
}

// New constructs a named engine from DefaultRegistry
func New(name string, opts Options) (Renderer, error) {
	return DefaultRegistry.New(name, opts)
}
