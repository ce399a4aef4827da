package source

// Entry pairs an adapter with its presentation metadata.
type Entry struct {
	ID          string
	Name        string // display name
	Description string
	Adapter     Adapter
}

// Registry is the fixed catalog of available source adapters, keyed by
// source identifier. Purely compositional: lookup only.
type Registry struct {
	entries map[string]*Entry
	order   []string
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

func (r *Registry) Register(e *Entry) {
	if _, exists := r.entries[e.ID]; !exists {
		r.order = append(r.order, e.ID)
	}
	r.entries[e.ID] = e
}

func (r *Registry) Get(id string) (*Entry, bool) {
	e, ok := r.entries[id]
	return e, ok
}

// All returns every entry in registration order.
func (r *Registry) All() []*Entry {
	out := make([]*Entry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id])
	}
	return out
}

func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}
