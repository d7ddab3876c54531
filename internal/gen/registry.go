package gen

import (
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
)

// ErrUnknownGenerator is returned by Get for names that were never registered.
var ErrUnknownGenerator = errors.New("unknown generator")

// Registry - набор генераторов по имени цели. Не глобальный: каждый вызывающий
// собирает свой.
type Registry struct {
	mu   sync.RWMutex
	gens map[string]Generator
}

func NewRegistry(gens ...Generator) *Registry {
	r := &Registry{gens: make(map[string]Generator, len(gens))}
	for _, g := range gens {
		if err := r.Register(g); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds g under its metadata name. Names must be unique.
func (r *Registry) Register(g Generator) error {
	name := g.Metadata().Name
	if name == "" {
		return errors.New("generator without a name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.gens[name]; dup {
		return errors.Newf("generator %q registered twice", name)
	}
	r.gens[name] = g
	return nil
}

func (r *Registry) Lookup(name string) (Generator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.gens[name]
	return g, ok
}

// Get is Lookup with an error that lists the available targets.
func (r *Registry) Get(name string) (Generator, error) {
	if g, ok := r.Lookup(name); ok {
		return g, nil
	}
	err := errors.Wrapf(ErrUnknownGenerator, "%q", name)
	names := r.Names()
	if len(names) == 0 {
		return nil, err
	}
	return nil, errors.WithHintf(err, "choose from %q", names)
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.gens))
	for name := range r.gens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
