package wavetable

import "fmt"

// Registry maps preset ids to presets. It is built once at initialization
// and read-only afterward; concurrent readers need no locking. External
// tooling may Insert additional presets before the first read.
type Registry struct {
	byID  map[string]*Preset
	order []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*Preset)}
}

// Build constructs the registry of built-in presets. Every preset is
// re-derived from the same deterministic generator calls, so repeated
// builds produce identical coefficient data.
func Build() *Registry {
	r := NewRegistry()
	for _, b := range builtins {
		p, err := NewPreset(b.id, b.name, b.category, b.build()...)
		if err != nil {
			// Built-in definitions are compile-time data; a failure here is
			// a programming error, not a runtime condition.
			panic(fmt.Sprintf("wavetable: bad builtin %q: %v", b.id, err))
		}
		if err := r.Insert(p); err != nil {
			panic(fmt.Sprintf("wavetable: duplicate builtin %q", b.id))
		}
	}
	return r
}

// Insert adds a preset. It fails on duplicate ids and must only be used
// during initialization, before the registry is shared.
func (r *Registry) Insert(p *Preset) error {
	if p == nil {
		return fmt.Errorf("nil preset")
	}
	if _, exists := r.byID[p.ID]; exists {
		return fmt.Errorf("preset %q already registered", p.ID)
	}
	r.byID[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

// Get looks up a preset by id. A missing id is a normal outcome the caller
// handles, typically by falling back to a default wavetable.
func (r *Registry) Get(id string) (*Preset, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// IDs returns all preset ids in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered presets.
func (r *Registry) Len() int {
	return len(r.order)
}
