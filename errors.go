package props

import (
	"errors"
	"fmt"
)

var (
	// ErrNameNotFound is matched by errors.Is when a name lookup finds no
	// registered entity.
	ErrNameNotFound = errors.New("props: name not registered")

	// ErrEntityNotSpawned is matched by errors.Is when a registered handle
	// no longer refers to a live entity.
	ErrEntityNotSpawned = errors.New("props: entity not spawned")
)

// NameNotFoundError is returned when no entity is registered under a name.
type NameNotFoundError struct {
	Name string
}

func (e *NameNotFoundError) Error() string {
	return fmt.Sprintf("props: no entity named %q", e.Name)
}

// Is reports whether target is ErrNameNotFound.
func (e *NameNotFoundError) Is(target error) bool {
	return target == ErrNameNotFound
}

// EntityNotSpawnedError is returned when a name resolves to an entity handle
// that is not present in the world.
type EntityNotSpawnedError struct {
	ID   EntityID
	Name string
}

func (e *EntityNotSpawnedError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("props: entity %s is not spawned", e.ID)
	}
	return fmt.Sprintf("props: entity %s named %q is not spawned", e.ID, e.Name)
}

// Is reports whether target is ErrEntityNotSpawned.
func (e *EntityNotSpawnedError) Is(target error) bool {
	return target == ErrEntityNotSpawned
}
