package props

// Linked returns a target of the named link, if the entity has one.
func (e *Entity) Linked(name string) (EntityID, bool) {
	return Get[Links](e).Get(name)
}

// ListLinked returns every target of the named link in ID order.
func (e *Entity) ListLinked(name string) []EntityID {
	return Get[Links](e).List(name)
}

// IsLinked reports whether the named link points to target.
func (e *Entity) IsLinked(name string, target EntityID) bool {
	return Get[Links](e).IsLinked(name, target)
}

// SetLink points the named link at target only, adding a Links component if needed.
func (e *Entity) SetLink(name string, target EntityID) *Entity {
	GetOrInsert[Links](e).Set(name, target)
	return e
}

// AddLink adds target to the named link, adding a Links component if needed.
func (e *Entity) AddLink(name string, target EntityID) *Entity {
	GetOrInsert[Links](e).Add(name, target)
	return e
}

// RemoveLink removes target from the named link.
func (e *Entity) RemoveLink(name string, target EntityID) *Entity {
	if l := Get[Links](e); l != nil {
		l.Remove(name, target)
	}
	return e
}

// ClearLinks removes every target of the named link.
func (e *Entity) ClearLinks(name string) *Entity {
	if l := Get[Links](e); l != nil {
		l.Clear(name)
	}
	return e
}

// FollowLink resolves the named link to a live entity. It returns false if
// the link is not set or its target has been despawned.
//
// Usage:
//
//	if other, ok := bilbo.FollowLink("talking_to"); ok && other.PropBool("likes_elves") {
//	    // ...
//	}
func (e *Entity) FollowLink(name string) (*Entity, bool) {
	for _, target := range e.ListLinked(name) {
		if linked, ok := e.world.Entity(target); ok {
			return linked, true
		}
	}
	return nil, false
}

// ExploreLink resolves every target of the named link. Targets that are no
// longer live are left out.
func (e *Entity) ExploreLink(name string) map[EntityID]*Entity {
	targets := e.ListLinked(name)
	result := make(map[EntityID]*Entity, len(targets))
	for _, target := range targets {
		if linked, ok := e.world.Entity(target); ok {
			result[target] = linked
		}
	}
	return result
}

// SetLink queues pointing the named link at target only.
func (ec *EntityCommands) SetLink(name string, target EntityID) *EntityCommands {
	return ec.Queue(func(e *Entity) {
		e.SetLink(name, target)
	})
}

// AddLink queues adding target to the named link.
func (ec *EntityCommands) AddLink(name string, target EntityID) *EntityCommands {
	return ec.Queue(func(e *Entity) {
		e.AddLink(name, target)
	})
}

// RemoveLink queues removing target from the named link.
func (ec *EntityCommands) RemoveLink(name string, target EntityID) *EntityCommands {
	return ec.Queue(func(e *Entity) {
		e.RemoveLink(name, target)
	})
}

// ClearLinks queues removing every target of the named link.
func (ec *EntityCommands) ClearLinks(name string) *EntityCommands {
	return ec.Queue(func(e *Entity) {
		e.ClearLinks(name)
	})
}
