package utility

import (
	"fmt"
	"slices"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/agiangrant/tailcss/diag"
)

// Collision records a key a later layer took over from an earlier one.
type Collision struct {
	Key        string
	Overridden string
	By         string
}

func (c Collision) String() string {
	return fmt.Sprintf("%s: %s overridden by %s", c.Key, c.Overridden, c.By)
}

// Registry maps utility keys to definitions. A registry returned by
// Builder.Build is never modified afterwards and is safe for concurrent
// readers.
type Registry struct {
	defs       map[string]Definition
	layers     map[string]string
	keys       []string
	collisions []Collision
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		defs:   make(map[string]Definition),
		layers: make(map[string]string),
	}
}

// Register adds def. A key that is already present is a
// *diag.ConflictError.
func (r *Registry) Register(def Definition) error {
	return r.register("", def)
}

func (r *Registry) register(layer string, def Definition) error {
	if err := def.Validate(); err != nil {
		return fmt.Errorf("layer %q: %w", layer, err)
	}
	if _, exists := r.defs[def.Key]; exists {
		return &diag.ConflictError{Key: def.Key, Layer: layer}
	}
	r.put(layer, def)
	return nil
}

func (r *Registry) put(layer string, def Definition) {
	if _, exists := r.defs[def.Key]; !exists {
		i, _ := slices.BinarySearch(r.keys, def.Key)
		r.keys = slices.Insert(r.keys, i, def.Key)
	}
	r.defs[def.Key] = def
	r.layers[def.Key] = layer
}

// Lookup returns the definition for key. A missing key wraps
// diag.ErrUnknownUtility.
func (r *Registry) Lookup(key string) (Definition, error) {
	def, ok := r.defs[key]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", diag.ErrUnknownUtility, key)
	}
	return def, nil
}

// HasKey reports whether key is registered.
func (r *Registry) HasKey(key string) bool {
	_, ok := r.defs[key]
	return ok
}

// Keys returns every registered key, sorted.
func (r *Registry) Keys() []string {
	return slices.Clone(r.keys)
}

// Len is the number of registered keys.
func (r *Registry) Len() int {
	return len(r.defs)
}

// Layer names the layer key was registered in.
func (r *Registry) Layer(key string) string {
	return r.layers[key]
}

// Collisions lists cross-layer overrides in registration order.
func (r *Registry) Collisions() []Collision {
	return slices.Clone(r.collisions)
}

type layer struct {
	name string
	defs []Definition
}

// Builder assembles a registry from ordered layers: presets first, user
// definitions last. Within a layer keys must be unique; a later layer
// overrides an earlier one and the override is recorded as a Collision.
type Builder struct {
	log    *zap.Logger
	layers []layer
}

// NewBuilder returns an empty builder. A nil logger discards output.
func NewBuilder(log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{log: log.Named("registry")}
}

// Layer appends a layer.
func (b *Builder) Layer(name string, defs ...Definition) *Builder {
	b.layers = append(b.layers, layer{name: name, defs: defs})
	return b
}

// Build registers every layer in order. All problems are reported
// together.
func (b *Builder) Build() (*Registry, error) {
	r := NewRegistry()

	var errs error
	for _, l := range b.layers {
		seen := make(map[string]struct{}, len(l.defs))
		for _, def := range l.defs {
			if err := def.Validate(); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("layer %q: %w", l.name, err))
				continue
			}
			if _, dup := seen[def.Key]; dup {
				errs = multierr.Append(errs, &diag.ConflictError{Key: def.Key, Layer: l.name})
				continue
			}
			seen[def.Key] = struct{}{}

			if prev, exists := r.layers[def.Key]; exists {
				c := Collision{Key: def.Key, Overridden: prev, By: l.name}
				r.collisions = append(r.collisions, c)
				b.log.Debug("Utility overridden",
					zap.String("key", c.Key),
					zap.String("overridden", c.Overridden),
					zap.String("by", c.By))
			}
			r.put(l.name, def)
		}
	}
	if errs != nil {
		return nil, errs
	}

	b.log.Debug("Registry built", zap.Int("utilities", r.Len()), zap.Int("collisions", len(r.collisions)))
	return r, nil
}
