package props

import (
	"iter"
)

// SetName gives the entity a unique name, replacing its previous one.
// If another entity already has the name, the name moves to this entity.
func (e *Entity) SetName(name string) *Entity {
	Insert(e, NewName(name))
	return e
}

// SetClass places the entity in a class, replacing its previous one.
func (e *Entity) SetClass(class string) *Entity {
	Insert(e, NewClass(class))
	return e
}

// ClearName removes the entity's name.
func (e *Entity) ClearName() *Entity {
	Remove[Name](e)
	return e
}

// ClearClass removes the entity's class.
func (e *Entity) ClearClass() *Entity {
	Remove[Class](e)
	return e
}

// Name returns the entity's name, if it has one.
func (e *Entity) Name() (string, bool) {
	if n := Get[Name](e); n != nil {
		return n.value, true
	}
	return "", false
}

// Class returns the entity's class, if it has one.
func (e *Entity) Class() (string, bool) {
	if c := Get[Class](e); c != nil {
		return c.value, true
	}
	return "", false
}

// SetName queues giving the entity a unique name.
func (ec *EntityCommands) SetName(name string) *EntityCommands {
	return InsertLater(ec, NewName(name))
}

// SetClass queues placing the entity in a class.
func (ec *EntityCommands) SetClass(class string) *EntityCommands {
	return InsertLater(ec, NewClass(class))
}

// LookupName returns the ID registered under name. The error is a
// *NameNotFoundError if there is none.
func (w *World) LookupName(name string) (EntityID, error) {
	return Resource[Registry](w).LookupName(name)
}

// LookupClass returns the IDs of every entity in class, in ID order.
func (w *World) LookupClass(class string) []EntityID {
	return Resource[Registry](w).LookupClass(class)
}

// EntityNamed returns the live entity registered under name.
//
// The error is a *NameNotFoundError if the name is not registered, or an
// *EntityNotSpawnedError if it refers to an entity no longer in the world.
// Both can be matched with errors.Is against ErrNameNotFound and
// ErrEntityNotSpawned.
func (w *World) EntityNamed(name string) (*Entity, error) {
	id, err := w.LookupName(name)
	if err != nil {
		return nil, err
	}
	e, ok := w.Entity(id)
	if !ok {
		return nil, &EntityNotSpawnedError{ID: id, Name: name}
	}
	return e, nil
}

// EntitiesOfClass returns an iterator over the live entities in class, in ID
// order. Stale handles are skipped.
func (w *World) EntitiesOfClass(class string) iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		for _, id := range w.LookupClass(class) {
			e, ok := w.Entity(id)
			if !ok {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}
