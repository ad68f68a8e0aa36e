package props

import (
	"bytes"
	"maps"
	"slices"
	"sync"
)

// Links stores named, unidirectional links from an entity to other entities.
//
// Links are similar to relations, with two limitations: they are identified
// by string names rather than types, and they only point one way. Use Set and
// Get for one-to-one links, or Add and List for one-to-many links:
//
//	links.Add("looking_at", troll)
//	links.Add("looking_at", goblin)
//
//	for _, target := range links.List("looking_at") {
//	    // ...
//	}
//
// Links are not cleaned up when a target is despawned; resolve targets
// through the world (see Entity.FollowLink) to skip stale ones.
type Links struct {
	mu    sync.RWMutex
	links map[string]map[EntityID]struct{}
}

// Set points the link at exactly one entity, replacing any previous targets.
func (l *Links) Set(name string, target EntityID) {
	l.mu.Lock()
	if l.links == nil {
		l.links = make(map[string]map[EntityID]struct{})
	}
	l.links[name] = map[EntityID]struct{}{target: {}}
	l.mu.Unlock()
}

// Add adds a target to the link. The same link can point to many entities.
func (l *Links) Add(name string, target EntityID) {
	l.mu.Lock()
	if l.links == nil {
		l.links = make(map[string]map[EntityID]struct{})
	}
	set := l.links[name]
	if set == nil {
		set = make(map[EntityID]struct{})
		l.links[name] = set
	}
	set[target] = struct{}{}
	l.mu.Unlock()
}

// Remove removes one target from the link.
func (l *Links) Remove(name string, target EntityID) {
	l.mu.Lock()
	if set := l.links[name]; set != nil {
		delete(set, target)
		if len(set) == 0 {
			delete(l.links, name)
		}
	}
	l.mu.Unlock()
}

// Clear removes every target from the link.
func (l *Links) Clear(name string) {
	l.mu.Lock()
	delete(l.links, name)
	l.mu.Unlock()
}

// IsLinked reports whether the link points to target.
func (l *Links) IsLinked(name string, target EntityID) bool {
	if l == nil {
		return false
	}
	l.mu.RLock()
	_, ok := l.links[name][target]
	l.mu.RUnlock()
	return ok
}

// Get returns a target of the link. If the link points to several entities
// the one with the lowest ID is returned.
func (l *Links) Get(name string) (EntityID, bool) {
	targets := l.List(name)
	if len(targets) == 0 {
		return NilEntity, false
	}
	return targets[0], true
}

// List returns all targets of the link in ID order. The slice is a copy.
func (l *Links) List(name string) []EntityID {
	if l == nil {
		return nil
	}
	l.mu.RLock()
	targets := slices.Collect(maps.Keys(l.links[name]))
	l.mu.RUnlock()

	slices.SortFunc(targets, func(a, b EntityID) int {
		return bytes.Compare(a[:], b[:])
	})
	return targets
}

// Count returns the number of targets of the link.
func (l *Links) Count(name string) int {
	if l == nil {
		return 0
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.links[name])
}

// Names returns the names of all links with at least one target, sorted.
func (l *Links) Names() []string {
	if l == nil {
		return nil
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Sorted(maps.Keys(l.links))
}

// Len returns the number of links with at least one target.
func (l *Links) Len() int {
	if l == nil {
		return 0
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.links)
}
