package df

import (
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/player/form"
	"github.com/oriumgames/props"
)

// PlayerClass is the class given to player entities by Join.
const PlayerClass = "player"

// Handler wraps another player.Handler and despawns the player's entity when
// they quit. Every other event is passed to the wrapped handler.
//
// Concurrency:
// Handlers are executed synchronously by Dragonfly, so the entity is never
// despawned while a command or form of the same player is running.
type Handler struct {
	player.Handler
	world *props.World
}

// Compile-time check that Handler implements player.Handler.
var _ player.Handler = (*Handler)(nil)

// NewHandler creates a handler for w that forwards events to inner. A nil
// inner handler is replaced with player.NopHandler.
func NewHandler(w *props.World, inner player.Handler) *Handler {
	if inner == nil {
		inner = player.NopHandler{}
	}
	return &Handler{Handler: inner, world: w}
}

// HandleQuit forwards the event, then despawns the player's entity. Its name
// and class are unregistered and its properties are dropped.
func (h *Handler) HandleQuit(p *player.Player) {
	h.Handler.HandleQuit(p)
	if h.world.Despawn(p.UUID()) {
		h.world.Logger().Debug("props: player entity despawned", "player", p.Name(), "entity", p.UUID())
	}
}

// Join spawns the entity of a player that has just connected, names it after
// the player and places it in PlayerClass. The player's current handler is
// wrapped so the entity is despawned on quit.
//
// Usage:
//
//	for p := range srv.Accept() {
//	    e := df.Join(w, p)
//	    e.SetProp("joined", props.Bool(true))
//	}
func Join(w *props.World, p *player.Player) *props.Entity {
	e := Entity(w, p)
	if e == nil {
		return nil
	}
	e.SetName(p.Name()).SetClass(PlayerClass)
	p.Handle(NewHandler(w, p.Handler()))
	return e
}

// Form extracts the player and their entity from a form submitter, using the
// bound world. Returns (nil, nil) if the submitter is not a player; the
// entity is nil if no world is bound.
//
// Usage:
//
//	func (f MyForm) Submit(sub form.Submitter, tx *world.Tx) {
//	    p, e := df.Form(sub)
//	    if p == nil || e == nil {
//	        return
//	    }
//
//	    // Use p and e...
//	}
func Form(sub form.Submitter) (*player.Player, *props.Entity) {
	p, ok := sub.(*player.Player)
	if !ok {
		return nil, nil
	}
	return p, Entity(Bound(), p)
}

// Item extracts the player and their entity from an item user, using the
// bound world. Returns (nil, nil) if the user is not a player; the entity is
// nil if no world is bound.
func Item(user item.User) (*player.Player, *props.Entity) {
	p, ok := user.(*player.Player)
	if !ok {
		return nil, nil
	}
	return p, Entity(Bound(), p)
}
