package props

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Props is a key-value property store. Keys are strings and values are
// booleans, numbers or strings.
//
// Props is used both as an entity component (per-entity properties) and as a
// world resource (global properties). The zero value is an empty, usable set.
//
// Reading a property that is missing or holds another type yields the zero
// value of the requested type:
//
//	p := props.NewProps().
//	    With("has_ring", props.Bool(true)).
//	    With("health", props.Num(100))
//
//	p.Bool("has_ring")  // true
//	p.Num("has_ring")   // 0, wrong type
//	p.Str("missing")    // ""
//
// Mutable access inserts a zero value when the property is missing, and
// replaces the property when it holds another type:
//
//	*p.NumMut("health") -= 10
//	p.Mut("mana").AddAssign(props.Num(5))
//
// Iteration is always in key order. Props does no locking of its own.
type Props struct {
	properties map[string]*Value
}

// NewProps creates an empty set of properties. This is done for you when
// using the entity and world helpers.
func NewProps() *Props {
	return &Props{properties: make(map[string]*Value)}
}

// init lazily allocates the backing map so the zero Props is usable.
func (p *Props) init() {
	if p.properties == nil {
		p.properties = make(map[string]*Value)
	}
}

// Set sets a property, replacing any previous value.
func (p *Props) Set(name string, v Value) {
	p.init()
	if slot, ok := p.properties[name]; ok {
		*slot = v
		return
	}
	p.properties[name] = &v
}

// With sets a property and returns p so calls can be chained.
func (p *Props) With(name string, v Value) *Props {
	p.Set(name, v)
	return p
}

// Get returns a property, or Bool(false) if it is not set.
func (p *Props) Get(name string) Value {
	if v, ok := p.Lookup(name); ok {
		return v
	}
	return Value{}
}

// Lookup returns a property and whether it is set.
func (p *Props) Lookup(name string) (Value, bool) {
	if p == nil {
		return Value{}, false
	}
	slot, ok := p.properties[name]
	if !ok {
		return Value{}, false
	}
	return *slot, true
}

// Has reports whether a property is set, whatever its type.
func (p *Props) Has(name string) bool {
	_, ok := p.Lookup(name)
	return ok
}

// Bool returns a boolean property, or false if it is missing or not a boolean.
func (p *Props) Bool(name string) bool {
	return p.Get(name).Bool()
}

// Num returns a numeric property, or 0 if it is missing or not a number.
func (p *Props) Num(name string) float32 {
	return p.Get(name).Num()
}

// Float64 returns a numeric property widened to 64 bits, or 0.
func (p *Props) Float64(name string) float64 {
	return p.Get(name).Float64()
}

// Str returns a string property, or "" if it is missing or not a string.
func (p *Props) Str(name string) string {
	return p.Get(name).Str()
}

// PropAs returns the property converted to T, or the zero value of T when it
// is missing or holds another type.
func PropAs[T Primitive](p *Props, name string) T {
	return As[T](p.Get(name))
}

// Mut returns a pointer to the stored property, inserting Bool(false) first if
// it is not set. The pointer stays valid until the property is removed.
func (p *Props) Mut(name string) *Value {
	p.init()
	slot, ok := p.properties[name]
	if !ok {
		slot = new(Value)
		p.properties[name] = slot
	}
	return slot
}

// BoolMut returns a pointer to a boolean property. A missing property is
// inserted as false; a property of another type is replaced with false.
func (p *Props) BoolMut(name string) *bool {
	return p.Mut(name).BoolMut()
}

// NumMut returns a pointer to a numeric property. A missing property is
// inserted as 0; a property of another type is replaced with 0.
func (p *Props) NumMut(name string) *float32 {
	return p.Mut(name).NumMut()
}

// StrMut returns a pointer to a string property. A missing property is
// inserted as ""; a property of another type is replaced with "".
func (p *Props) StrMut(name string) *string {
	return p.Mut(name).StrMut()
}

// Remove removes a property. Reading it afterwards returns defaults.
func (p *Props) Remove(name string) {
	if p == nil {
		return
	}
	delete(p.properties, name)
}

// Clear removes all properties.
func (p *Props) Clear() {
	if p == nil {
		return
	}
	clear(p.properties)
}

// Len returns the number of properties set.
func (p *Props) Len() int {
	if p == nil {
		return 0
	}
	return len(p.properties)
}

// sortedKeys returns the property names in order.
func (p *Props) sortedKeys() []string {
	if p == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(p.properties))
}

// All returns an iterator over property names and values in key order.
func (p *Props) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, k := range p.sortedKeys() {
			slot, ok := p.properties[k]
			if !ok {
				continue // removed while iterating
			}
			if !yield(k, *slot) {
				return
			}
		}
	}
}

// AllMut returns an iterator over property names and pointers to their stored
// values in key order.
func (p *Props) AllMut() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		for _, k := range p.sortedKeys() {
			slot, ok := p.properties[k]
			if !ok {
				continue
			}
			if !yield(k, slot) {
				return
			}
		}
	}
}

// Keys returns an iterator over property names in order.
func (p *Props) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for k := range p.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over property values in key order.
func (p *Props) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, v := range p.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Drain moves all properties out of p, leaving it empty, and returns an
// iterator over them in key order. The iterator can be consumed once.
func (p *Props) Drain() iter.Seq2[string, Value] {
	keys := p.sortedKeys()
	taken := p.properties
	p.properties = nil

	done := false
	return func(yield func(string, Value) bool) {
		if done {
			return
		}
		done = true
		for _, k := range keys {
			if !yield(k, *taken[k]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of p.
func (p *Props) Clone() *Props {
	c := &Props{properties: make(map[string]*Value, p.Len())}
	for k, v := range p.All() {
		c.properties[k] = &v
	}
	return c
}

// String returns a representation of the properties for debugging.
func (p *Props) String() string {
	var sb strings.Builder
	sb.WriteString("Props{")
	first := true
	for k, v := range p.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(v.GoString())
	}
	sb.WriteString("}")
	return sb.String()
}
