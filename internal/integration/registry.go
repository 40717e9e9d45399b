package integration

// Descriptor is the display metadata shared by the emitter and the selector.
type Descriptor struct {
	Key   Key
	Label string
	Color string
}

// Registry is the fixed set of integrations. It is built once and never mutated.
type Registry struct {
	order []Key
	byKey map[Key]Integration
}

func NewRegistry() *Registry {
	all := []Integration{kubernetes{}, gcloud{}, aws{}, azure{}, venv{}, path{}}
	r := &Registry{
		order: make([]Key, 0, len(all)),
		byKey: make(map[Key]Integration, len(all)),
	}
	for _, i := range all {
		r.order = append(r.order, i.Key())
		r.byKey[i.Key()] = i
	}
	return r
}

// Get panics on an unknown key; every Key constant is registered.
func (r *Registry) Get(key Key) Integration {
	i, ok := r.byKey[key]
	if !ok {
		panic("integration: unknown key " + string(key))
	}
	return i
}

// Descriptor falls back to the key as label and FallbackColor for unknown keys.
func (r *Registry) Descriptor(key Key) Descriptor {
	if i, ok := r.byKey[key]; ok {
		return Descriptor{Key: key, Label: i.Label(), Color: i.Color()}
	}
	return Descriptor{Key: key, Label: string(key), Color: FallbackColor}
}

func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.Descriptor(k))
	}
	return out
}

func (r *Registry) Keys() []Key {
	return append([]Key(nil), r.order...)
}
