package props

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Commands is a queue of deferred world mutations.
//
// Commands can be queued from any goroutine. They run later, in the order
// they were queued, when Apply (or World.Flush) is called. Apply runs them
// one at a time on the calling goroutine, so each command has the world to
// itself.
//
//	cmds := w.Commands()
//	gandalf := cmds.Spawn().SetName("gandalf").SetProp("likes_elves", props.Bool(true))
//	cmds.Spawn().SetLink("talking_to", gandalf.ID())
//	w.Flush()
type Commands struct {
	world *World

	mu    sync.Mutex
	queue []func(w *World)

	// applying is set while Apply is draining the queue
	applying atomic.Bool
}

// newCommands creates the command queue for w.
func newCommands(w *World) *Commands {
	return &Commands{
		world: w,
		queue: make([]func(*World), 0, 64),
	}
}

// Queue adds a command that runs with the world when the queue is applied.
func (c *Commands) Queue(fn func(w *World)) *Commands {
	if fn == nil {
		return c
	}
	c.mu.Lock()
	c.queue = append(c.queue, fn)
	c.mu.Unlock()
	return c
}

// Len returns the number of commands waiting to be applied.
func (c *Commands) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

// Apply runs every queued command in order and returns how many ran.
// Commands queued while applying run in the same call, after the ones
// already queued.
//
// Only one Apply drains the queue at a time. A call made while another is in
// progress, including one made from inside a command, returns 0 at once; the
// running Apply picks up anything queued meanwhile.
func (c *Commands) Apply() int {
	if !c.applying.CompareAndSwap(false, true) {
		return 0
	}
	defer c.applying.Store(false)

	ran := 0
	for {
		c.mu.Lock()
		batch := c.queue
		c.queue = make([]func(*World), 0, cap(batch))
		c.mu.Unlock()

		if len(batch) == 0 {
			return ran
		}
		for _, fn := range batch {
			fn(c.world)
			ran++
		}
	}
}

// Spawn reserves a new entity ID now and queues the spawn of that entity.
// The returned EntityCommands queue further commands for it.
func (c *Commands) Spawn() *EntityCommands {
	id := uuid.New()
	c.Queue(func(w *World) {
		w.SpawnWithID(id)
	})
	return &EntityCommands{commands: c, id: id}
}

// Entity returns an EntityCommands that queues commands for an existing entity.
func (c *Commands) Entity(id EntityID) *EntityCommands {
	return &EntityCommands{commands: c, id: id}
}

// Despawn queues the removal of an entity.
func (c *Commands) Despawn(id EntityID) *Commands {
	return c.Queue(func(w *World) {
		w.Despawn(id)
	})
}

// EntityCommands queues commands for one entity.
type EntityCommands struct {
	commands *Commands
	id       EntityID
}

// ID returns the entity the commands apply to.
func (ec *EntityCommands) ID() EntityID {
	return ec.id
}

// Commands returns the queue the entity commands are added to.
func (ec *EntityCommands) Commands() *Commands {
	return ec.commands
}

// Queue adds a command that runs with the entity when the queue is applied.
// If the entity no longer exists by then, the command is skipped and a
// warning is logged.
func (ec *EntityCommands) Queue(fn func(e *Entity)) *EntityCommands {
	id := ec.id
	ec.commands.Queue(func(w *World) {
		e, ok := w.Entity(id)
		if !ok {
			w.log.Warn("props: skipping command for missing entity", "entity", id)
			return
		}
		fn(e)
	})
	return ec
}

// Despawn queues the removal of the entity.
func (ec *EntityCommands) Despawn() {
	ec.commands.Despawn(ec.id)
}

// InsertLater queues the insertion of a component.
func InsertLater[T any](ec *EntityCommands, component *T) *EntityCommands {
	return ec.Queue(func(e *Entity) {
		Insert(e, component)
	})
}

// RemoveLater queues the removal of a component.
func RemoveLater[T any](ec *EntityCommands) *EntityCommands {
	return ec.Queue(func(e *Entity) {
		Remove[T](e)
	})
}
