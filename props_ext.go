package props

// Entity, world and command helpers for properties.
//
// Entity properties live in a Props component; global properties live in a
// Props resource on the world. Both are created on first write. Reads never
// create them.

// Prop returns a property of the entity, or Bool(false) if it is not set.
func (e *Entity) Prop(name string) Value {
	return Get[Props](e).Get(name)
}

// PropBool returns a boolean property of the entity, or false.
func (e *Entity) PropBool(name string) bool {
	return e.Prop(name).Bool()
}

// PropNum returns a numeric property of the entity, or 0.
func (e *Entity) PropNum(name string) float32 {
	return e.Prop(name).Num()
}

// PropStr returns a string property of the entity, or "".
func (e *Entity) PropStr(name string) string {
	return e.Prop(name).Str()
}

// SetProp sets a property of the entity, adding a Props component if needed.
func (e *Entity) SetProp(name string, v Value) *Entity {
	GetOrInsert[Props](e).Set(name, v)
	return e
}

// PropMut returns a pointer to a property of the entity, inserting
// Bool(false) if it is not set.
func (e *Entity) PropMut(name string) *Value {
	return GetOrInsert[Props](e).Mut(name)
}

// RemoveProp removes a property of the entity.
func (e *Entity) RemoveProp(name string) *Entity {
	if p := Get[Props](e); p != nil {
		p.Remove(name)
	}
	return e
}

// ClearProps removes every property of the entity. The Props component
// itself stays attached.
func (e *Entity) ClearProps() *Entity {
	if p := Get[Props](e); p != nil {
		p.Clear()
	}
	return e
}

// Prop returns a global property, or Bool(false) if it is not set.
func (w *World) Prop(name string) Value {
	return Resource[Props](w).Get(name)
}

// PropBool returns a boolean global property, or false.
func (w *World) PropBool(name string) bool {
	return w.Prop(name).Bool()
}

// PropNum returns a numeric global property, or 0.
func (w *World) PropNum(name string) float32 {
	return w.Prop(name).Num()
}

// PropStr returns a string global property, or "".
func (w *World) PropStr(name string) string {
	return w.Prop(name).Str()
}

// SetProp sets a global property, adding the Props resource if needed.
func (w *World) SetProp(name string, v Value) *World {
	ResourceOrInit[Props](w).Set(name, v)
	return w
}

// PropMut returns a pointer to a global property, inserting Bool(false) if it
// is not set.
func (w *World) PropMut(name string) *Value {
	return ResourceOrInit[Props](w).Mut(name)
}

// RemoveProp removes a global property.
func (w *World) RemoveProp(name string) *World {
	if p := Resource[Props](w); p != nil {
		p.Remove(name)
	}
	return w
}

// ClearProps removes every global property.
func (w *World) ClearProps() *World {
	if p := Resource[Props](w); p != nil {
		p.Clear()
	}
	return w
}

// SetProp queues setting a property of the entity.
func (ec *EntityCommands) SetProp(name string, v Value) *EntityCommands {
	return ec.Queue(func(e *Entity) {
		e.SetProp(name, v)
	})
}

// UpdateProp queues an in-place update of a property of the entity. fn
// receives the stored value, which is Bool(false) if the property was not set.
//
//	cmds.Entity(id).UpdateProp("health", func(v *props.Value) {
//	    v.SubAssign(props.Num(10))
//	})
func (ec *EntityCommands) UpdateProp(name string, fn func(v *Value)) *EntityCommands {
	return ec.Queue(func(e *Entity) {
		fn(e.PropMut(name))
	})
}

// RemoveProp queues the removal of a property of the entity.
func (ec *EntityCommands) RemoveProp(name string) *EntityCommands {
	return ec.Queue(func(e *Entity) {
		e.RemoveProp(name)
	})
}

// ClearProps queues the removal of every property of the entity.
func (ec *EntityCommands) ClearProps() *EntityCommands {
	return ec.Queue(func(e *Entity) {
		e.ClearProps()
	})
}
