package props

import (
	"bytes"
	"fmt"
	"iter"
	"log/slog"
	"maps"
	"reflect"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// World owns entities, their components, and global resources.
//
// It is a small in-process host: it stores components per entity, keeps
// resources by type, and replays deferred commands. It runs no systems.
// Multiple worlds can coexist in the same process; component IDs and
// resources are never shared between them.
type World struct {
	// registry holds component type registrations for this world
	registry *componentRegistry

	// entities holds all live entities
	entities   map[EntityID]*Entity
	entitiesMu sync.RWMutex

	// resources holds one value per type, stored as a pointer
	resources   map[reflect.Type]any
	resourcesMu sync.RWMutex

	// commands is the world's deferred command queue
	commands *Commands

	log *slog.Logger
}

// NewWorld creates an empty world that logs to slog.Default().
// Use NewBuilder for more configuration.
func NewWorld() *World {
	return newWorld(nil)
}

// newWorld creates a new world.
func newWorld(log *slog.Logger) *World {
	if log == nil {
		log = slog.Default()
	}
	w := &World{
		registry:  newComponentRegistry(),
		entities:  make(map[EntityID]*Entity),
		resources: make(map[reflect.Type]any),
		log:       log,
	}
	w.commands = newCommands(w)
	return w
}

// Logger returns the world's logger.
func (w *World) Logger() *slog.Logger {
	return w.log
}

// Spawn creates a new entity with a random ID.
func (w *World) Spawn() *Entity {
	return w.SpawnWithID(uuid.New())
}

// SpawnWithID creates an entity with the given ID. If an entity with that ID
// already exists it is returned unchanged.
func (w *World) SpawnWithID(id EntityID) *Entity {
	w.entitiesMu.Lock()
	defer w.entitiesMu.Unlock()

	if e, ok := w.entities[id]; ok {
		return e
	}
	e := &Entity{id: id, world: w}
	w.entities[id] = e
	return e
}

// Entity returns the live entity with the given ID.
func (w *World) Entity(id EntityID) (*Entity, bool) {
	w.entitiesMu.RLock()
	defer w.entitiesMu.RUnlock()
	e, ok := w.entities[id]
	return e, ok
}

// Contains reports whether an entity with the given ID is live.
func (w *World) Contains(id EntityID) bool {
	_, ok := w.Entity(id)
	return ok
}

// Despawn removes an entity and detaches all of its components.
// Returns false if no such entity exists.
func (w *World) Despawn(id EntityID) bool {
	w.entitiesMu.Lock()
	e, ok := w.entities[id]
	if ok {
		delete(w.entities, id)
	}
	w.entitiesMu.Unlock()

	if !ok {
		return false
	}
	e.despawn()
	return true
}

// Len returns the number of live entities.
func (w *World) Len() int {
	w.entitiesMu.RLock()
	defer w.entitiesMu.RUnlock()
	return len(w.entities)
}

// Entities returns an iterator over a snapshot of all live entities in ID order.
func (w *World) Entities() iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		w.entitiesMu.RLock()
		all := slices.Collect(maps.Values(w.entities))
		w.entitiesMu.RUnlock()

		slices.SortFunc(all, func(a, b *Entity) int {
			return bytes.Compare(a.id[:], b.id[:])
		})
		for _, e := range all {
			if !yield(e) {
				return
			}
		}
	}
}

// ComponentCount returns the number of component types registered in the world.
func (w *World) ComponentCount() int {
	return w.registry.count()
}

// Commands returns the world's deferred command queue.
func (w *World) Commands() *Commands {
	return w.commands
}

// Flush applies all queued commands and returns how many ran.
func (w *World) Flush() int {
	return w.commands.Apply()
}

// addResource stores a resource given as an untyped pointer.
func (w *World) addResource(res any) {
	t := reflect.TypeOf(res)
	if t == nil || t.Kind() != reflect.Ptr {
		panic(fmt.Sprintf("props: resource must be a pointer, got %T", res))
	}

	w.resourcesMu.Lock()
	w.resources[t.Elem()] = res
	w.resourcesMu.Unlock()
}

// InsertResource stores a resource in the world, replacing any previous
// resource of the same type.
func InsertResource[T any](w *World, res *T) {
	if w == nil || res == nil {
		return
	}
	w.resourcesMu.Lock()
	w.resources[reflect.TypeFor[T]()] = res
	w.resourcesMu.Unlock()
}

// Resource retrieves a resource from the world.
// Returns nil if the resource is not present.
func Resource[T any](w *World) *T {
	if w == nil {
		return nil
	}
	w.resourcesMu.RLock()
	res, ok := w.resources[reflect.TypeFor[T]()]
	w.resourcesMu.RUnlock()
	if !ok {
		return nil
	}
	return res.(*T)
}

// ResourceOrInit retrieves a resource from the world, inserting the zero
// value of T first if it is not present.
func ResourceOrInit[T any](w *World) *T {
	t := reflect.TypeFor[T]()

	w.resourcesMu.Lock()
	defer w.resourcesMu.Unlock()

	if res, ok := w.resources[t]; ok {
		return res.(*T)
	}
	res := new(T)
	w.resources[t] = res
	return res
}

// RemoveResource removes a resource from the world.
func RemoveResource[T any](w *World) {
	w.resourcesMu.Lock()
	delete(w.resources, reflect.TypeFor[T]())
	w.resourcesMu.Unlock()
}
