// Package df connects props worlds to a Dragonfly server.
//
// Players map to entities by UUID: the entity of a player has the same ID as
// the player, and is spawned the first time it is needed. The package also
// provides the /prop and /whois commands for inspecting and editing
// properties in game.
//
//	w := props.NewBuilder().
//	    Bundle(df.Bundle()).
//	    Init()
//
//	for p := range srv.Accept() {
//	    df.Join(w, p)
//	}
package df

import (
	"sync/atomic"

	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/google/uuid"
	"github.com/oriumgames/props"
)

// bound is the world the registered commands act on. Dragonfly's command
// registry is process-wide, so only one world is bound at a time.
var bound atomic.Pointer[props.World]

// Bind makes w the world the /prop and /whois commands act on.
func Bind(w *props.World) {
	bound.Store(w)
}

// Bound returns the world the commands act on, or nil.
func Bound() *props.World {
	return bound.Load()
}

// Bundle returns a bundle callback that binds the world and registers the
// commands once it is initialized.
func Bundle() func(*props.World) *props.Bundle {
	return func(*props.World) *props.Bundle {
		return props.NewBundle("df").
			PostInit(func(w *props.World) {
				Bind(w)
				cmd.Register(PropCommand())
				cmd.Register(WhoisCommand())
				w.Logger().Info("props: dragonfly commands registered", "commands", []string{"prop", "whois"})
			})
	}
}

// Entity returns the entity of a player, spawning it if needed.
//
// Concurrency:
// This function is thread-safe. Component data is not guarded; access it
// from the player's goroutine (handlers, commands, forms).
func Entity(w *props.World, p *player.Player) *props.Entity {
	if w == nil || p == nil {
		return nil
	}
	return entityFor(w, p.UUID())
}

// entityFor returns the entity with the given player UUID, spawning it if needed.
func entityFor(w *props.World, id uuid.UUID) *props.Entity {
	return w.SpawnWithID(id)
}

// Command extracts the player and their entity from a command source, using
// the bound world. Returns (nil, nil) if the source is not a player or no
// world is bound.
//
// Usage:
//
//	func (c MyCommand) Run(src cmd.Source, out *cmd.Output, tx *world.Tx) {
//	    p, e := df.Command(src)
//	    if p == nil || e == nil {
//	        out.Error("Player-only command")
//	        return
//	    }
//
//	    // Use p and e...
//	}
func Command(src cmd.Source) (*player.Player, *props.Entity) {
	p, ok := src.(*player.Player)
	if !ok {
		return nil, nil
	}
	w := Bound()
	if w == nil {
		return nil, nil
	}
	return p, Entity(w, p)
}
