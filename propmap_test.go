package props

import (
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	name  string
	value Value
}

func collect(p *Props) []entry {
	var out []entry
	for k, v := range p.All() {
		out = append(out, entry{k, v})
	}
	return out
}

func TestPropsDefaultOnMiss(t *testing.T) {
	p := NewProps()
	assert.False(t, p.Bool("missing"))
	assert.Equal(t, float32(0), p.Num("missing"))
	assert.Equal(t, "", p.Str("missing"))
	assert.True(t, p.Get("missing").Equal(Bool(false)))
	assert.False(t, p.Has("missing"))

	var zero Props
	assert.Equal(t, 0, zero.Len())
	zero.Set("a", Num(1))
	assert.Equal(t, float32(1), zero.Num("a"))

	var nilProps *Props
	nilProps.Remove("a")
	nilProps.Clear()
	assert.False(t, nilProps.Has("a"))
	assert.Equal(t, "", nilProps.Str("a"))
	assert.Empty(t, collect(nilProps))
}

func TestPropsWrongTypeReadsZero(t *testing.T) {
	p := NewProps().With("has_ring", Bool(true))
	assert.True(t, p.Bool("has_ring"))
	assert.Equal(t, float32(0), p.Num("has_ring"))
	assert.Equal(t, "", p.Str("has_ring"))
	assert.Equal(t, float32(0), PropAs[float32](p, "has_ring"))
	assert.True(t, PropAs[bool](p, "has_ring"))
}

func TestPropsMutationCoercion(t *testing.T) {
	p := NewProps()
	p.Set("p", Bool(true))

	_ = p.NumMut("p")
	assert.Equal(t, float32(0), p.Num("p"))
	assert.False(t, p.Bool("p"))
	assert.Equal(t, KindNum, p.Get("p").Kind())
}

func TestPropsMutInsertsDefault(t *testing.T) {
	p := NewProps()
	v := p.Mut("fresh")
	require.NotNil(t, v)
	assert.True(t, p.Has("fresh"))
	assert.True(t, p.Get("fresh").Equal(Bool(false)))

	*p.StrMut("name") += "bilbo"
	assert.Equal(t, "bilbo", p.Str("name"))

	*p.BoolMut("ring") = true
	assert.True(t, p.Bool("ring"))
}

func TestPropsAddSubScenario(t *testing.T) {
	p := NewProps()
	p.Mut("n").AddAssign(Num(5))
	p.Mut("n").SubAssign(Num(2))
	assert.Equal(t, float32(3), p.Num("n"))

	*p.NumMut("m") += 5
	*p.NumMut("m") -= 2
	assert.Equal(t, float32(3), p.Num("m"))
}

func TestPropsSetIsIdempotent(t *testing.T) {
	p := NewProps()
	p.Set("k", Str("x"))
	p.Set("k", Str("x"))
	assert.True(t, p.Get("k").Equal(Str("x")))
	assert.Equal(t, 1, p.Len())
}

func TestPropsSetKeepsMutPointer(t *testing.T) {
	p := NewProps()
	v := p.Mut("k")
	p.Set("k", Num(7))
	assert.True(t, v.Equal(Num(7)))
}

func TestPropsIterationOrder(t *testing.T) {
	p := NewProps().
		With("c", Str("x")).
		With("a", Bool(true)).
		With("b", Num(1))

	got := collect(p)
	require.Len(t, got, 3)
	want := []entry{{"a", Bool(true)}, {"b", Num(1)}, {"c", Str("x")}}
	for i := range want {
		assert.Equal(t, want[i].name, got[i].name)
		assert.True(t, want[i].value.Equal(got[i].value), "entry %d", i)
	}

	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(p.Keys()))
	assert.Len(t, slices.Collect(p.Values()), 3)
}

func TestPropsAllStopsEarly(t *testing.T) {
	p := NewProps().With("a", Num(1)).With("b", Num(2)).With("c", Num(3))
	var seen []string
	for k := range p.All() {
		seen = append(seen, k)
		if k == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestPropsAllMut(t *testing.T) {
	p := NewProps().With("a", Num(1)).With("b", Str("x"))
	for _, v := range p.AllMut() {
		v.MulAssign(Num(10))
	}
	assert.Equal(t, float32(10), p.Num("a"))
	assert.True(t, p.Get("b").Equal(Num(0)))
}

func TestPropsRemoveAndClear(t *testing.T) {
	p := NewProps().With("a", Num(1)).With("b", Num(2))
	p.Remove("a")
	assert.False(t, p.Has("a"))
	assert.Equal(t, float32(0), p.Num("a"))
	assert.Equal(t, 1, p.Len())

	p.Remove("missing")
	p.Clear()
	assert.Equal(t, 0, p.Len())
}

func TestPropsDrain(t *testing.T) {
	p := NewProps().With("b", Num(2)).With("a", Num(1))
	drained := p.Drain()
	assert.Equal(t, 0, p.Len())

	got := maps.Collect(drained)
	assert.Len(t, got, 2)
	assert.Equal(t, float32(1), got["a"].Num())

	// The iterator is single use.
	assert.Empty(t, maps.Collect(drained))

	// The drained set is reusable.
	p.Set("c", Bool(true))
	assert.True(t, p.Bool("c"))
}

func TestPropsClone(t *testing.T) {
	p := NewProps().With("a", Num(1))
	c := p.Clone()
	c.Set("a", Num(2))
	c.Set("b", Bool(true))

	assert.Equal(t, float32(1), p.Num("a"))
	assert.False(t, p.Has("b"))
	assert.Equal(t, float32(2), c.Num("a"))
}

func TestPropsString(t *testing.T) {
	p := NewProps().With("b", Str("x")).With("a", Num(1))
	assert.Equal(t, `Props{a: props.Num(1), b: props.Str("x")}`, p.String())
	assert.Equal(t, "Props{}", NewProps().String())
}

func TestPropsVec3(t *testing.T) {
	p := NewProps()
	assert.False(t, p.HasVec3("home"))
	assert.Equal(t, mgl32.Vec3{}, p.Vec3("home"))

	p.SetVec3("home", mgl32.Vec3{1, 2, 3})
	assert.True(t, p.HasVec3("home"))
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, p.Vec3("home"))
	assert.Equal(t, float32(2), p.Num("home.y"))

	p.Set("home.z", Str("up"))
	assert.False(t, p.HasVec3("home"))
	assert.Equal(t, mgl32.Vec3{1, 2, 0}, p.Vec3("home"))

	p.RemoveVec3("home")
	assert.Equal(t, 0, p.Len())
}

func TestPropsTable(t *testing.T) {
	assert.Equal(t, "_No props_", NewProps().Table())

	table := NewProps().
		With("has_ring", Bool(true)).
		With("age", Num(111)).
		With("name", Str("bilbo")).
		Table()

	assert.Contains(t, table, "Name")
	assert.Contains(t, table, "has_ring")
	assert.Contains(t, table, "111")
	assert.Contains(t, table, "bilbo")
	assert.Contains(t, table, "_3 props_")
	assert.Less(t, strings.Index(table, "age"), strings.Index(table, "has_ring"))
	assert.Less(t, strings.Index(table, "has_ring"), strings.Index(table, "bilbo"))
}
