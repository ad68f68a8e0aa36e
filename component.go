package props

import (
	"bytes"
	"fmt"
	"iter"
	"reflect"
	"slices"
	"sync"
	"unsafe"
)

// ComponentID is a unique identifier for a component type within a world.
// Valid IDs range from 0 to MaxComponents-1.
type ComponentID uint8

// MaxComponents is the maximum number of component types a world supports.
const MaxComponents = 128

// componentRegistry assigns IDs to component types on first use.
// Each world owns one, so IDs are only meaningful within that world.
type componentRegistry struct {
	mu    sync.RWMutex
	ids   map[reflect.Type]ComponentID
	types []reflect.Type
}

// newComponentRegistry creates an empty component registry.
func newComponentRegistry() *componentRegistry {
	return &componentRegistry{
		ids: make(map[reflect.Type]ComponentID),
	}
}

// register returns the ID for t, assigning the next free one if needed.
func (r *componentRegistry) register(t reflect.Type) ComponentID {
	// Fast path: most types are registered by the first Insert
	r.mu.RLock()
	id, ok := r.ids[t]
	r.mu.RUnlock()
	if ok {
		return id
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.ids[t]; ok {
		return id
	}
	if len(r.types) >= MaxComponents {
		panic(fmt.Sprintf("props: component limit exceeded (max %d types)", MaxComponents))
	}

	id = ComponentID(len(r.types))
	r.ids[t] = id
	r.types = append(r.types, t)
	return id
}

// getType returns the type registered under id, or nil.
func (r *componentRegistry) getType(id ComponentID) reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if int(id) >= len(r.types) {
		return nil
	}
	return r.types[id]
}

// getName returns the name of the type registered under id.
func (r *componentRegistry) getName(id ComponentID) string {
	if t := r.getType(id); t != nil {
		return t.Name()
	}
	return ""
}

// count returns the number of registered types.
func (r *componentRegistry) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}

// componentID returns the ComponentID for T in w, registering it if needed.
func componentID[T any](w *World) ComponentID {
	return w.registry.register(reflect.TypeFor[T]())
}

// Attachable is implemented by components that need initialization logic
// when attached to an entity.
type Attachable interface {
	Attach(e *Entity)
}

// Detachable is implemented by components that need cleanup logic when
// removed, replaced, or when their entity is despawned.
type Detachable interface {
	Detach(e *Entity)
}

// Insert attaches a component to the entity.
// If a component of this type already exists, it is replaced and its Detach
// method is called first. If the new component implements Attachable, its
// Attach method is called afterwards.
func Insert[T any](e *Entity, component *T) {
	if e == nil || component == nil {
		return
	}

	id := componentID[T](e.world)

	e.mu.Lock()
	oldPtr := e.components[id]
	if oldPtr != nil {
		if old, ok := any((*T)(oldPtr)).(Detachable); ok {
			e.mu.Unlock()
			old.Detach(e)
			e.mu.Lock()
		}
	}
	e.components[id] = unsafe.Pointer(component)
	e.mask.Set(id)
	e.mu.Unlock()

	if attachable, ok := any(component).(Attachable); ok {
		attachable.Attach(e)
	}
}

// Remove detaches a component from the entity.
// If the component implements Detachable, its Detach method is called after
// it has been cleared from the entity.
func Remove[T any](e *Entity) {
	if e == nil {
		return
	}

	id := componentID[T](e.world)

	e.mu.Lock()
	ptr := e.components[id]
	if ptr == nil {
		e.mu.Unlock()
		return
	}
	// Clear before calling Detach to prevent re-entrancy issues
	e.components[id] = nil
	e.mask.Clear(id)
	e.mu.Unlock()

	if component, ok := any((*T)(ptr)).(Detachable); ok {
		component.Detach(e)
	}
}

// Get retrieves a component from the entity.
// Returns nil if the component is not present.
func Get[T any](e *Entity) *T {
	if e == nil {
		return nil
	}

	id := componentID[T](e.world)

	e.mu.RLock()
	ptr := e.components[id]
	e.mu.RUnlock()

	if ptr == nil {
		return nil
	}
	return (*T)(ptr)
}

// GetOrInsert retrieves a component from the entity, inserting the zero value
// of T first if it is not present. Attach is called for a newly inserted
// component.
func GetOrInsert[T any](e *Entity) *T {
	if e == nil {
		return nil
	}

	id := componentID[T](e.world)

	e.mu.Lock()
	if ptr := e.components[id]; ptr != nil {
		e.mu.Unlock()
		return (*T)(ptr)
	}
	component := new(T)
	e.components[id] = unsafe.Pointer(component)
	e.mask.Set(id)
	e.mu.Unlock()

	if attachable, ok := any(component).(Attachable); ok {
		attachable.Attach(e)
	}
	return component
}

// Has checks if a component type is present on the entity.
func Has[T any](e *Entity) bool {
	if e == nil {
		return false
	}

	id := componentID[T](e.world)

	e.mu.RLock()
	has := e.mask.Has(id)
	e.mu.RUnlock()

	return has
}

// Query returns an iterator over every live entity holding a component of
// type T, in entity ID order. The set of entities is snapshotted when
// iteration starts.
//
// Usage:
//
//	for e, p := range props.Query[props.Props](w) {
//	    fmt.Println(e.ID(), p.Num("health"))
//	}
func Query[T any](w *World) iter.Seq2[*Entity, *T] {
	return func(yield func(*Entity, *T) bool) {
		id := componentID[T](w)

		w.entitiesMu.RLock()
		matched := make([]*Entity, 0, len(w.entities))
		for _, e := range w.entities {
			e.mu.RLock()
			if e.mask.Has(id) {
				matched = append(matched, e)
			}
			e.mu.RUnlock()
		}
		w.entitiesMu.RUnlock()

		slices.SortFunc(matched, func(a, b *Entity) int {
			return bytes.Compare(a.id[:], b.id[:])
		})

		for _, e := range matched {
			c := Get[T](e)
			if c == nil {
				continue // removed since the snapshot
			}
			if !yield(e, c) {
				return
			}
		}
	}
}
