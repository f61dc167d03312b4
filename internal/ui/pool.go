package ui

import (
	"strings"
	"sync"
)

// maxPooledBuilder caps what goes back into the pool. A preview of a very
// large document should not pin its buffer for the life of the process.
const maxPooledBuilder = 64 * 1024

var builderPool = sync.Pool{
	New: func() any { return new(strings.Builder) },
}

func getBuilder() *strings.Builder {
	b := builderPool.Get().(*strings.Builder)
	b.Reset()
	return b
}

func putBuilder(b *strings.Builder) {
	if b.Cap() <= maxPooledBuilder {
		builderPool.Put(b)
	}
}
