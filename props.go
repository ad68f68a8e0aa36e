// Package props provides stringly-typed data storage for entities.
//
// It adds three independent facilities to the entities of a World:
//   - Props: key-value properties holding booleans, numbers or strings,
//     per entity or global
//   - Links: named, unidirectional links from one entity to others
//   - Registry: lookup of entities by unique name or shared class
//
// # Quick Start
//
//	w := props.NewWorld()
//	cmds := w.Commands()
//
//	gandalf := cmds.Spawn().
//	    SetName("gandalf").
//	    SetClass("wizard").
//	    SetProp("likes_elves", props.Bool(true))
//
//	cmds.Spawn().
//	    SetName("bilbo").
//	    SetClass("hobbit").
//	    SetLink("talking_to", gandalf.ID()).
//	    SetProp("health", props.Num(100)).
//	    SetProp("wearing", props.Str("elven_cloak"))
//
//	w.Flush()
//
//	bilbo, err := w.EntityNamed("bilbo")
//	if err != nil {
//	    return err
//	}
//	if bilbo.PropStr("wearing") == "elven_cloak" {
//	    if other, ok := bilbo.FollowLink("talking_to"); ok && other.PropBool("likes_elves") {
//	        // have the npc say something about bilbo's cloak here
//	    }
//	}
//
// # Values
//
// Properties prioritize ergonomics over error handling. Reading a property
// that is missing or holds another type returns the zero value of the type
// asked for; writing through a typed accessor replaces a mismatched value:
//
//	p := props.NewProps()
//	p.Num("health")           // 0
//	*p.NumMut("health") += 10 // health is now 10
//	p.Set("name", props.Str("bilbo"))
//	*p.NumMut("name") += 1    // name is now Num(1), the string is gone
//
// Arithmetic on values never fails and always yields a number. Non-numeric
// values act as zero, except as a divisor, where they act as one. A product
// is Num(0) unless both operands are numbers.
//
// # Components and resources
//
// Components are plain Go structs attached to entities by type:
//
//	props.Insert(e, &Health{Current: 100})
//	h := props.Get[Health](e)
//	props.Remove[Health](e)
//
// Resources are stored once per world by type:
//
//	props.InsertResource(w, &Settings{})
//	s := props.Resource[Settings](w)
package props

// Version is the props library version.
const Version = "1.0.0"
