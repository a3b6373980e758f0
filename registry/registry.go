// Package registry keeps named six-spectrum measurement sets in memory so
// they can be recalled and compared later.
package registry

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/cwbudde/algo-spectro/spectrum"
)

// Errors returned by the registry.
var (
	ErrNotFound  = errors.New("registry: dataset not found")
	ErrEmptyName = errors.New("registry: dataset name must not be empty")
)

// Registry maps dataset names to spectrum sets. Names are listed in the order
// they were first saved; re-saving a name replaces its spectra in place.
// Saved and loaded sets are copies, so callers cannot alias stored data.
//
// Lengths are not checked across or within datasets here; that happens when
// a trace is computed.
type Registry struct {
	mu    sync.RWMutex
	sets  map[string]spectrum.Set
	order []string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{sets: make(map[string]spectrum.Set)}
}

// Save stores set under name, overwriting any existing dataset of that name.
// Leading and trailing blanks are trimmed from name.
func (r *Registry) Save(name string, set spectrum.Set) error {
	key := strings.TrimSpace(name)
	if key == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sets[key]; !exists {
		r.order = append(r.order, key)
	}
	r.sets[key] = set.Clone()
	return nil
}

// Load returns a copy of the dataset stored under name.
func (r *Registry) Load(name string) (spectrum.Set, error) {
	key := strings.TrimSpace(name)

	r.mu.RLock()
	set, ok := r.sets[key]
	r.mu.RUnlock()
	if !ok {
		return spectrum.Set{}, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return set.Clone(), nil
}

// Delete removes the dataset and reports whether it existed.
func (r *Registry) Delete(name string) bool {
	key := strings.TrimSpace(name)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sets[key]; !ok {
		return false
	}
	delete(r.sets, key)
	for i, n := range r.order {
		if n == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Has reports whether a dataset named name exists.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.sets[strings.TrimSpace(name)]
	return ok
}

// List returns the dataset names in first-save order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of stored datasets.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sets)
}
