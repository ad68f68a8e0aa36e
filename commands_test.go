package props

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRunInOrder(t *testing.T) {
	w := NewWorld()
	cmds := w.Commands()

	var order []int
	for i := range 3 {
		cmds.Queue(func(*World) { order = append(order, i) })
	}
	assert.Equal(t, 3, cmds.Len())
	assert.Empty(t, order)

	assert.Equal(t, 3, w.Flush())
	assert.Equal(t, []int{0, 1, 2}, order)
	assert.Equal(t, 0, cmds.Len())
	assert.Equal(t, 0, w.Flush())
}

func TestCommandsQueuedWhileApplying(t *testing.T) {
	w := NewWorld()
	cmds := w.Commands()

	var order []string
	cmds.Queue(func(*World) {
		order = append(order, "first")
		cmds.Queue(func(*World) { order = append(order, "nested") })
	})
	cmds.Queue(func(*World) { order = append(order, "second") })

	assert.Equal(t, 3, w.Flush())
	assert.Equal(t, []string{"first", "second", "nested"}, order)
}

func TestCommandsFlushInsideCommand(t *testing.T) {
	w := NewWorld()
	cmds := w.Commands()

	nested := -1
	var order []string
	cmds.Queue(func(w *World) {
		cmds.Queue(func(*World) { order = append(order, "queued inside") })
		nested = w.Flush()
		order = append(order, "first")
	})

	assert.Equal(t, 2, w.Flush())
	assert.Equal(t, 0, nested)
	assert.Equal(t, []string{"first", "queued inside"}, order)
	assert.Equal(t, 0, cmds.Len())
}

func TestCommandsSpawnIsDeferred(t *testing.T) {
	w := NewWorld()
	ec := w.Commands().Spawn().
		SetProp("likes_elves", Bool(true)).
		SetName("gandalf")

	assert.False(t, w.Contains(ec.ID()))
	w.Flush()

	e, ok := w.Entity(ec.ID())
	require.True(t, ok)
	assert.True(t, e.PropBool("likes_elves"))

	named, err := w.EntityNamed("gandalf")
	require.NoError(t, err)
	assert.Same(t, e, named)
}

func TestCommandsSkipMissingEntity(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()

	ran := false
	ec := w.Commands().Entity(e.ID())
	ec.Despawn()
	ec.Queue(func(*Entity) { ran = true })
	ec.SetProp("x", Num(1))

	assert.Equal(t, 3, w.Flush())
	assert.False(t, ran)
	assert.False(t, w.Contains(e.ID()))
}

func TestCommandsPropsAndComponents(t *testing.T) {
	w := NewWorld()
	e := w.Spawn().SetProp("health", Num(100)).SetProp("tmp", Bool(true))

	ec := w.Commands().Entity(e.ID())
	assert.Same(t, w.Commands(), ec.Commands())
	ec.UpdateProp("health", func(v *Value) { v.SubAssign(Num(10)) }).
		UpdateProp("mana", func(v *Value) { v.AddAssign(Num(5)) }).
		RemoveProp("tmp")
	InsertLater(ec, &position{X: 1})

	assert.Equal(t, float32(100), e.PropNum("health"))
	w.Flush()
	assert.Equal(t, float32(90), e.PropNum("health"))
	assert.Equal(t, float32(5), e.PropNum("mana"))
	assert.False(t, Get[Props](e).Has("tmp"))
	assert.True(t, Has[position](e))

	RemoveLater[position](ec)
	ec.ClearProps()
	w.Flush()
	assert.False(t, Has[position](e))
	assert.Equal(t, 0, Get[Props](e).Len())
}

func TestCommandsDespawn(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	w.Commands().Despawn(e.ID())
	assert.True(t, w.Contains(e.ID()))
	w.Flush()
	assert.False(t, w.Contains(e.ID()))
}
