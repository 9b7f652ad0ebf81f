// Package grammar defines the resolver capability the descriptor core
// expects from its surrounding grammar engine: a mapping from reference
// names to the descriptors they stand for.
package grammar

import (
	descriptors "github.com/js-cst-tokens/js-descriptors"
	"github.com/js-cst-tokens/js-descriptors/descriptor"
)

// Error codes used by this package:
const (
	// ErrUnknownName indicates resolving a name no definition was
	// registered for.
	ErrUnknownName = descriptors.GrammarErrors + iota
)

// Resolver maps a reference name to the descriptor it stands for. The
// lookup happens at match time, not at registration time, so mutually
// recursive grammars can be registered in any order.
type Resolver interface {
	Resolve(name string) (descriptor.Descriptor, error)
}

// Registry is a map-backed Resolver. Definitions are thunks evaluated on
// every Resolve call; a definition may itself resolve other names.
// Registry is not safe for concurrent mutation; register everything
// before matching.
type Registry struct {
	defs map[string]func() descriptor.Descriptor
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{defs: map[string]func() descriptor.Descriptor{}}
}

// Define registers a named definition, replacing any previous one.
func (r *Registry) Define(name string, def func() descriptor.Descriptor) {
	r.defs[name] = def
}

// Resolve evaluates the definition registered under name.
func (r *Registry) Resolve(name string) (descriptor.Descriptor, error) {
	def := r.defs[name]
	if def == nil {
		return nil, descriptors.FormatError(ErrUnknownName, "no definition for reference %q", name)
	}
	return def(), nil
}
