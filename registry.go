package props

import (
	"bytes"
	"maps"
	"slices"
	"sync"
)

// Registry is a world resource indexing entities by unique name and by
// shared class.
//
// It is kept up to date by the Name and Class components: attaching one
// registers the entity, replacing or removing it (or despawning the entity)
// unregisters it. Names are unique and last-write-wins: naming a second
// entity "gandalf" moves the name to it.
type Registry struct {
	mu      sync.RWMutex
	names   map[string]EntityID
	classes map[string]map[EntityID]struct{}
}

// Register maps name to id, replacing any entity previously registered under it.
func (r *Registry) Register(name string, id EntityID) {
	r.mu.Lock()
	if r.names == nil {
		r.names = make(map[string]EntityID)
	}
	r.names[name] = id
	r.mu.Unlock()
}

// Unregister removes name if it is currently mapped to id. It reports whether
// a mapping was removed; a name that has since moved to another entity is left
// alone.
func (r *Registry) Unregister(name string, id EntityID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if current, ok := r.names[name]; ok && current == id {
		delete(r.names, name)
		return true
	}
	return false
}

// LookupName returns the entity registered under name.
// The error is a *NameNotFoundError if there is none.
func (r *Registry) LookupName(name string) (EntityID, error) {
	if r == nil {
		return NilEntity, &NameNotFoundError{Name: name}
	}
	r.mu.RLock()
	id, ok := r.names[name]
	r.mu.RUnlock()
	if !ok {
		return NilEntity, &NameNotFoundError{Name: name}
	}
	return id, nil
}

// AddClass adds id to class.
func (r *Registry) AddClass(class string, id EntityID) {
	r.mu.Lock()
	if r.classes == nil {
		r.classes = make(map[string]map[EntityID]struct{})
	}
	set := r.classes[class]
	if set == nil {
		set = make(map[EntityID]struct{})
		r.classes[class] = set
	}
	set[id] = struct{}{}
	r.mu.Unlock()
}

// RemoveClass removes id from class.
func (r *Registry) RemoveClass(class string, id EntityID) {
	r.mu.Lock()
	if set := r.classes[class]; set != nil {
		delete(set, id)
		if len(set) == 0 {
			delete(r.classes, class)
		}
	}
	r.mu.Unlock()
}

// LookupClass returns every entity in class, in ID order. An unknown class
// yields an empty result.
func (r *Registry) LookupClass(class string) []EntityID {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	ids := slices.Collect(maps.Keys(r.classes[class]))
	r.mu.RUnlock()

	slices.SortFunc(ids, func(a, b EntityID) int {
		return bytes.Compare(a[:], b[:])
	})
	return ids
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.names))
}

// Classes returns all classes with at least one entity, sorted.
func (r *Registry) Classes() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.classes))
}

// Name is a component giving an entity a unique name in its world's Registry.
type Name struct {
	value string
}

// NewName returns a Name component.
func NewName(name string) *Name {
	return &Name{value: name}
}

// String returns the name.
func (n *Name) String() string {
	return n.value
}

// Attach registers the entity under the name.
func (n *Name) Attach(e *Entity) {
	ResourceOrInit[Registry](e.world).Register(n.value, e.id)
	e.world.log.Debug("props: registered name", "name", n.value, "entity", e.id)
}

// Detach unregisters the name if it still belongs to the entity.
func (n *Name) Detach(e *Entity) {
	Resource[Registry](e.world).unregisterIfPresent(n.value, e.id)
}

// Class is a component placing an entity in a class shared with others.
type Class struct {
	value string
}

// NewClass returns a Class component.
func NewClass(class string) *Class {
	return &Class{value: class}
}

// String returns the class.
func (c *Class) String() string {
	return c.value
}

// Attach adds the entity to the class.
func (c *Class) Attach(e *Entity) {
	ResourceOrInit[Registry](e.world).AddClass(c.value, e.id)
}

// Detach removes the entity from the class.
func (c *Class) Detach(e *Entity) {
	if r := Resource[Registry](e.world); r != nil {
		r.RemoveClass(c.value, e.id)
	}
}

// unregisterIfPresent is Unregister tolerating a missing registry.
func (r *Registry) unregisterIfPresent(name string, id EntityID) {
	if r == nil {
		return
	}
	r.Unregister(name, id)
}
