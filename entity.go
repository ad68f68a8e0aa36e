package props

import (
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/google/uuid"
)

// EntityID is the persistent handle of an entity. It stays valid as a value
// after the entity is despawned, but no longer resolves through the world.
type EntityID = uuid.UUID

// NilEntity is the zero EntityID. It never refers to a spawned entity.
var NilEntity EntityID

// Entity is a row in a World: an ID plus the components attached to it.
//
// Entities are created with World.Spawn and destroyed with World.Despawn.
// An *Entity is safe for concurrent use; component data itself is not
// guarded, so callers coordinate access to component fields.
type Entity struct {
	// id is the persistent handle for the entity
	id EntityID

	// world is the world that owns this entity
	world *World

	// mask tracks which components are present
	mask Bitmask

	// components stores component pointers indexed by ComponentID
	components [MaxComponents]unsafe.Pointer

	// mu protects mask and components
	mu sync.RWMutex

	// despawned is set once the entity has been removed from its world
	despawned atomic.Bool
}

// ID returns the entity's handle.
func (e *Entity) ID() EntityID {
	return e.id
}

// World returns the world that owns the entity.
func (e *Entity) World() *World {
	return e.world
}

// Despawned returns true if the entity has been removed from its world.
func (e *Entity) Despawned() bool {
	return e.despawned.Load()
}

// Mask returns a copy of the entity's component bitmask.
// This is primarily for debugging and testing.
func (e *Entity) Mask() Bitmask {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.mask
}

// String returns a string representation of the entity for debugging.
func (e *Entity) String() string {
	mask := e.Mask()

	var names []string
	mask.Each(func(id ComponentID) {
		names = append(names, e.world.registry.getName(id))
	})

	return "Entity{ID: " + e.id.String() + ", Components: [" + strings.Join(names, ", ") + "]}"
}

// despawn clears all components, calling Detach on those that implement it.
// The entity must already have been removed from the world's index.
func (e *Entity) despawn() {
	if e.despawned.Swap(true) {
		return
	}

	// Collect components that need Detach called, while the entity is still intact.
	var toDetach []Detachable

	e.mu.RLock()
	e.mask.Each(func(id ComponentID) {
		ptr := e.components[id]
		if ptr == nil {
			return
		}
		t := e.world.registry.getType(id)
		if t == nil {
			return
		}
		if d, ok := reflect.NewAt(t, ptr).Interface().(Detachable); ok {
			toDetach = append(toDetach, d)
		}
	})
	e.mu.RUnlock()

	// Call Detach outside the lock; the entity is still readable for these hooks.
	for _, d := range toDetach {
		d.Detach(e)
	}

	e.mu.Lock()
	for id := range ComponentID(MaxComponents) {
		e.components[id] = nil
	}
	e.mask = Bitmask{}
	e.mu.Unlock()
}
