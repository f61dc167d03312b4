package render

import (
	"fmt"
	"strings"
	"sync"
)

// DefaultPreference is the order in which the default resolver probes
// engines. Nothing beyond availability decides between them.
var DefaultPreference = []string{"goldmark", "blackfriday", "gomarkdown"}

// Resolver binds the first usable engine from a preference list. The probe
// happens once; later calls return the cached outcome.
type Resolver struct {
	registry   *Registry
	preference []string
	opts       Options

	once     sync.Once
	name     string
	renderer Renderer
	err      error
}

// NewResolver creates a resolver over reg. A nil reg means DefaultRegistry
// and an empty preference means DefaultPreference.
func NewResolver(reg *Registry, preference []string, opts Options) *Resolver {
	if reg == nil {
		reg = DefaultRegistry
	}
	if len(preference) == 0 {
		preference = DefaultPreference
	}
	return &Resolver{
		registry:   reg,
		preference: append([]string(nil), preference...),
		opts:       opts,
	}
}

// Resolve returns the bound renderer, probing on first use
func (r *Resolver) Resolve() (Renderer, error) {
	r.once.Do(r.probe)
	return r.renderer, r.err
}

// Name returns the bound engine name, or "" when nothing could be bound
func (r *Resolver) Name() string {
	r.once.Do(r.probe)
	return r.name
}

func (r *Resolver) probe() {
	var failures []string
	for _, name := range r.preference {
		e, ok := r.registry.Lookup(name)
		if !ok {
			failures = append(failures, name+": not registered")
			continue
		}
		if !e.available() {
			failures = append(failures, name+": not available")
			continue
		}
		renderer, err := e.New(r.opts)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		r.name = name
		r.renderer = renderer
		return
	}
	r.err = fmt.Errorf("%w (tried %s)", ErrRendererUnavailable, strings.Join(failures, "; "))
}

var defaultResolver = NewResolver(nil, nil, Options{})

// Default returns the process-wide default renderer
func Default() (Renderer, error) {
	return defaultResolver.Resolve()
}

// DefaultName returns the engine name Default binds to
func DefaultName() string {
	return defaultResolver.Name()
}
