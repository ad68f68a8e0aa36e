package df

import (
	"errors"

	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oriumgames/props"
	"github.com/sandertv/gophertunnel/minecraft/text"
)

// output is the part of *cmd.Output the command bodies write to.
type output interface {
	Print(a ...any)
	Errorf(format string, a ...any)
}

// PropCommand returns the /prop command, which reads and edits the
// properties of the player running it.
func PropCommand() cmd.Command {
	return cmd.New("prop", "Inspect and edit your properties.", []string{"props"},
		propGet{}, propSet{}, propRemove{}, propList{}, propClear{}, propHere{},
	)
}

// WhoisCommand returns the /whois command, which resolves a registered name.
func WhoisCommand() cmd.Command {
	return cmd.New("whois", "Look up an entity by name.", nil, whois{})
}

type propGet struct {
	Sub  cmd.SubCommand `cmd:"get"`
	Name string         `cmd:"name"`
}

func (c propGet) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	if _, e := Command(src); e != nil {
		runGet(e, c.Name, o)
		return
	}
	o.Errorf("This command can only be used by players.")
}

type propSet struct {
	Sub   cmd.SubCommand `cmd:"set"`
	Name  string         `cmd:"name"`
	Value cmd.Varargs    `cmd:"value"`
}

func (c propSet) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	if _, e := Command(src); e != nil {
		runSet(e, c.Name, string(c.Value), o)
		return
	}
	o.Errorf("This command can only be used by players.")
}

type propRemove struct {
	Sub  cmd.SubCommand `cmd:"remove"`
	Name string         `cmd:"name"`
}

func (c propRemove) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	if _, e := Command(src); e != nil {
		runRemove(e, c.Name, o)
		return
	}
	o.Errorf("This command can only be used by players.")
}

type propList struct {
	Sub cmd.SubCommand `cmd:"list"`
}

func (c propList) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	if _, e := Command(src); e != nil {
		runList(e, o)
		return
	}
	o.Errorf("This command can only be used by players.")
}

type propClear struct {
	Sub cmd.SubCommand `cmd:"clear"`
}

func (c propClear) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	if _, e := Command(src); e != nil {
		e.ClearProps()
		o.Print(text.Colourf("<grey>Cleared all properties.</grey>"))
		return
	}
	o.Errorf("This command can only be used by players.")
}

type propHere struct {
	Sub  cmd.SubCommand `cmd:"here"`
	Name string         `cmd:"name"`
}

func (c propHere) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	if p, e := Command(src); e != nil {
		runHere(e, c.Name, p.Position(), o)
		return
	}
	o.Errorf("This command can only be used by players.")
}

type whois struct {
	Name string `cmd:"name"`
}

func (c whois) Run(_ cmd.Source, o *cmd.Output, _ *world.Tx) {
	w := Bound()
	if w == nil {
		o.Errorf("No world is bound.")
		return
	}
	runWhois(w, c.Name, o)
}

func runGet(e *props.Entity, name string, o output) {
	v, ok := props.Get[props.Props](e).Lookup(name)
	if !ok {
		o.Errorf("Property %q is not set.", name)
		return
	}
	o.Print(text.Colourf("<yellow>%s</yellow> = %s", name, formatValue(v)))
}

func runSet(e *props.Entity, name, raw string, o output) {
	v := ParseValue(raw)
	e.SetProp(name, v)
	o.Print(text.Colourf("<yellow>%s</yellow> set to %s (%s)", name, formatValue(v), v.Kind()))
}

func runRemove(e *props.Entity, name string, o output) {
	if !props.Get[props.Props](e).Has(name) {
		o.Errorf("Property %q is not set.", name)
		return
	}
	e.RemoveProp(name)
	o.Print(text.Colourf("<grey>Removed %s.</grey>", name))
}

func runList(e *props.Entity, o output) {
	p := props.Get[props.Props](e)
	if p.Len() == 0 {
		o.Print(text.Colourf("<grey>No properties set.</grey>"))
		return
	}
	o.Print(text.Colourf("<bold>%d properties:</bold>", p.Len()))
	for name, v := range p.All() {
		o.Print(text.Colourf(" - <yellow>%s</yellow> = %s", name, formatValue(v)))
	}
}

func runHere(e *props.Entity, name string, pos mgl64.Vec3, o output) {
	v := mgl32.Vec3{float32(pos[0]), float32(pos[1]), float32(pos[2])}
	props.GetOrInsert[props.Props](e).SetVec3(name, v)
	o.Print(text.Colourf("<yellow>%s</yellow> set to <aqua>%.2f %.2f %.2f</aqua>", name, v[0], v[1], v[2]))
}

func runWhois(w *props.World, name string, o output) {
	e, err := w.EntityNamed(name)
	switch {
	case errors.Is(err, props.ErrNameNotFound):
		o.Errorf("Nobody is named %q.", name)
		return
	case errors.Is(err, props.ErrEntityNotSpawned):
		o.Errorf("%q refers to an entity that has left.", name)
		return
	case err != nil:
		o.Errorf("%v", err)
		return
	}

	o.Print(text.Colourf("<yellow>%s</yellow> is <grey>%s</grey>", name, e.ID()))
	if class, ok := e.Class(); ok {
		o.Print(text.Colourf(" class: <green>%s</green>", class))
	}
	o.Print(text.Colourf(" properties: <aqua>%d</aqua>", props.Get[props.Props](e).Len()))
}
