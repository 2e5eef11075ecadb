package mapdata

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/samdwyer/pyramid/data"
	"github.com/samdwyer/pyramid/internal/world"
)

const paletteFile = "palette.json"

// ErrUnknownPyramid is returned when a name is not in the registry.
var ErrUnknownPyramid = errors.New("mapdata: unknown pyramid")

// Registry holds pyramid definitions by name.
type Registry struct {
	defs  map[string]PyramidDef
	names []string
}

// NewRegistry creates a registry from loaded definitions. Later definitions
// replace earlier ones with the same name.
func NewRegistry(defs []PyramidDef) *Registry {
	r := &Registry{defs: make(map[string]PyramidDef, len(defs))}
	for _, d := range defs {
		if _, ok := r.defs[d.Name]; !ok {
			r.names = append(r.names, d.Name)
		}
		r.defs[d.Name] = d
	}
	slices.Sort(r.names)
	return r
}

// LoadRegistry loads every embedded pyramid.
func LoadRegistry() (*Registry, error) {
	var files []string
	for _, pattern := range []string{"*.json", "*.hcl"} {
		matches, err := fs.Glob(data.FS(), pattern)
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}

	defs := make([]PyramidDef, 0, len(files))
	for _, f := range files {
		if f == paletteFile {
			continue
		}
		def, err := LoadDef(f)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	if len(defs) == 0 {
		return nil, errors.New("no pyramids embedded")
	}
	return NewRegistry(defs), nil
}

// MustLoadRegistry loads the embedded registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Get builds a fresh pyramid for the named definition.
func (r *Registry) Get(name string) (*world.Pyramid, error) {
	def, ok := r.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPyramid, name)
	}
	return def.Build()
}

// Def returns the named definition.
func (r *Registry) Def(name string) (PyramidDef, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// Names returns the registered pyramid names in sorted order.
func (r *Registry) Names() []string {
	return r.names
}

// Count returns the number of registered pyramids.
func (r *Registry) Count() int {
	return len(r.names)
}

// LoadEmbedded builds the embedded pyramid with the given name.
func LoadEmbedded(name string) (*world.Pyramid, error) {
	r, err := LoadRegistry()
	if err != nil {
		return nil, err
	}
	return r.Get(name)
}
