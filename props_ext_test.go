package props

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityProps(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()

	// Reads do not create the component.
	assert.False(t, e.PropBool("has_ring"))
	assert.False(t, Has[Props](e))

	e.SetProp("has_ring", Bool(true)).SetProp("name", Str("bilbo"))
	require.True(t, Has[Props](e))
	assert.True(t, e.PropBool("has_ring"))
	assert.Equal(t, "bilbo", e.PropStr("name"))
	assert.Equal(t, float32(0), e.PropNum("name"))

	e.PropMut("age").AddAssign(Num(111))
	assert.Equal(t, float32(111), e.PropNum("age"))
	assert.True(t, e.Prop("age").Equal(Num(111)))

	e.RemoveProp("name")
	assert.Equal(t, "", e.PropStr("name"))

	e.ClearProps()
	assert.True(t, Has[Props](e))
	assert.Equal(t, 0, Get[Props](e).Len())
}

func TestEntityPropsWithoutComponent(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	e.RemoveProp("missing").ClearProps()
	assert.False(t, Has[Props](e))
}

func TestWorldProps(t *testing.T) {
	w := NewWorld()
	assert.Equal(t, "", w.PropStr("age"))
	assert.Nil(t, Resource[Props](w))

	w.SetProp("age", Str("third"))
	assert.Equal(t, "third", w.PropStr("age"))
	require.NotNil(t, Resource[Props](w))

	*w.PropMut("turn").NumMut() += 1
	assert.Equal(t, float32(1), w.PropNum("turn"))
	assert.False(t, w.PropBool("turn"))

	w.RemoveProp("age")
	assert.False(t, Resource[Props](w).Has("age"))

	w.ClearProps()
	assert.Equal(t, 0, Resource[Props](w).Len())
}

func TestEntityAndWorldPropsAreSeparate(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	w.SetProp("x", Num(1))
	e.SetProp("x", Num(2))

	assert.Equal(t, float32(1), w.PropNum("x"))
	assert.Equal(t, float32(2), e.PropNum("x"))
}
