package props

import (
	"bytes"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type position struct {
	X, Y float32
}

// hooked records Attach and Detach calls.
type hooked struct {
	log *[]string
	tag string
}

func (h *hooked) Attach(e *Entity) { *h.log = append(*h.log, "attach "+h.tag) }
func (h *hooked) Detach(e *Entity) { *h.log = append(*h.log, "detach "+h.tag) }

func TestComponentLifecycle(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()

	assert.False(t, Has[position](e))
	assert.Nil(t, Get[position](e))

	Insert(e, &position{X: 1})
	require.True(t, Has[position](e))
	assert.Equal(t, 1, e.Mask().Count())
	assert.Equal(t, float32(1), Get[position](e).X)

	Insert(e, &position{X: 2})
	assert.Equal(t, float32(2), Get[position](e).X)

	Remove[position](e)
	assert.False(t, Has[position](e))
	assert.True(t, e.Mask().IsZero())

	p := GetOrInsert[position](e)
	p.Y = 5
	assert.Equal(t, float32(5), GetOrInsert[position](e).Y)
	assert.Equal(t, 1, w.ComponentCount())
}

func TestComponentNilSafety(t *testing.T) {
	var e *Entity
	assert.Nil(t, Get[position](e))
	assert.Nil(t, GetOrInsert[position](e))
	assert.False(t, Has[position](e))
	Insert(e, &position{})
	Remove[position](e)
}

func TestComponentHooks(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	var log []string

	Insert(e, &hooked{log: &log, tag: "a"})
	Insert(e, &hooked{log: &log, tag: "b"})
	Remove[hooked](e)
	Remove[hooked](e)

	assert.Equal(t, []string{"attach a", "detach a", "attach b", "detach b"}, log)
}

func TestDespawnDetaches(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	var log []string
	Insert(e, &hooked{log: &log, tag: "a"})
	Insert(e, &position{})

	require.True(t, w.Despawn(e.ID()))
	assert.Equal(t, []string{"attach a", "detach a"}, log)
	assert.True(t, e.Despawned())
	assert.False(t, w.Contains(e.ID()))
	assert.False(t, Has[position](e))
	assert.False(t, w.Despawn(e.ID()))
}

func TestSpawnWithID(t *testing.T) {
	w := NewWorld()
	id := uuid.New()
	e := w.SpawnWithID(id)
	assert.Equal(t, id, e.ID())
	assert.Same(t, e, w.SpawnWithID(id))
	assert.Equal(t, 1, w.Len())

	got, ok := w.Entity(id)
	require.True(t, ok)
	assert.Same(t, e, got)
	assert.Same(t, w, e.World())
}

func TestEntitiesAndQueryOrder(t *testing.T) {
	w := NewWorld()
	for i := range 5 {
		e := w.Spawn()
		if i%2 == 0 {
			Insert(e, &position{X: float32(i)})
		}
	}

	all := slices.Collect(w.Entities())
	require.Len(t, all, 5)
	assert.True(t, slices.IsSortedFunc(all, func(a, b *Entity) int {
		return bytes.Compare(a.id[:], b.id[:])
	}))

	var queried []*Entity
	for e, p := range Query[position](w) {
		require.NotNil(t, p)
		queried = append(queried, e)
	}
	assert.Len(t, queried, 3)
	assert.True(t, slices.IsSortedFunc(queried, func(a, b *Entity) int {
		return bytes.Compare(a.id[:], b.id[:])
	}))
}

func TestEntityString(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	Insert(e, &position{})
	s := e.String()
	assert.Contains(t, s, e.ID().String())
	assert.Contains(t, s, "position")
}

func TestResources(t *testing.T) {
	w := NewWorld()
	assert.Nil(t, Resource[position](w))
	assert.Nil(t, Resource[position](nil))

	InsertResource(w, &position{X: 3})
	assert.Equal(t, float32(3), Resource[position](w).X)

	ResourceOrInit[position](w).X = 4
	assert.Equal(t, float32(4), Resource[position](w).X)

	RemoveResource[position](w)
	assert.Nil(t, Resource[position](w))
	assert.NotNil(t, ResourceOrInit[position](w))
}

func TestAddResourceRequiresPointer(t *testing.T) {
	w := NewWorld()
	assert.Panics(t, func() { w.addResource(position{}) })
	assert.Panics(t, func() { w.addResource(nil) })
}

func TestBuilder(t *testing.T) {
	var order []string
	bund := NewBundle("game").
		Resource(&position{X: 9}).
		PostInit(func(w *World) {
			order = append(order, "post init")
			assert.Equal(t, float32(9), Resource[position](w).X)
		})
	assert.Equal(t, "game", bund.Name())

	w := NewBuilder().
		Props(NewProps().With("difficulty", Num(2))).
		Bundle(bund.Build()).
		Bundle(func(*World) *Bundle { return nil }).
		Init()

	assert.Equal(t, []string{"post init"}, order)
	assert.Equal(t, float32(2), w.PropNum("difficulty"))
}

func TestBitmask(t *testing.T) {
	var m Bitmask
	assert.True(t, m.IsZero())
	m.Set(3)
	m.Set(70)
	m.Set(127)
	assert.True(t, m.Has(70))
	assert.False(t, m.Has(4))
	assert.Equal(t, 3, m.Count())

	var ids []ComponentID
	m.Each(func(id ComponentID) { ids = append(ids, id) })
	assert.Equal(t, []ComponentID{3, 70, 127}, ids)

	m.Clear(70)
	assert.False(t, m.Has(70))
	assert.Equal(t, 2, m.Count())
}
