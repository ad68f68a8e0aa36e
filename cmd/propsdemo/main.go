package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oriumgames/props"
)

// Settings is a plain resource carried alongside the global properties.
type Settings struct {
	Turns int
}

func main() {
	debug := flag.Bool("debug", false, "Log world events at debug level")
	noColor := flag.Bool("no-color", false, "Disable coloured output")
	turns := flag.Int("turns", 3, "Number of turns to simulate")
	flag.Parse()

	if *noColor {
		color.NoColor = true
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	w := props.NewBuilder().
		Logger(logger).
		Resource(&Settings{Turns: *turns}).
		Props(props.NewProps().With("age", props.Str("third"))).
		Init()

	heading("Spawning")
	gandalf := w.Spawn().
		SetName("gandalf").
		SetClass("wizard").
		SetProp("has_staff", props.Bool(true)).
		SetProp("power", props.Num(90))

	bilbo := w.Spawn().
		SetName("bilbo").
		SetClass("hobbit").
		SetProp("has_ring", props.Bool(true)).
		SetProp("age", props.Num(111))
	props.GetOrInsert[props.Props](bilbo).SetVec3("home", mgl32.Vec3{12, 64, -40})

	gandalf.AddLink("friend", bilbo.ID())
	bilbo.SetLink("friend", gandalf.ID())

	fmt.Printf("%s %s\n", color.CyanString("gandalf"), gandalf.ID())
	fmt.Printf("%s %s\n", color.CyanString("bilbo"), bilbo.ID())

	heading("Turns")
	for turn := range props.Resource[Settings](w).Turns {
		w.Commands().Entity(bilbo.ID()).UpdateProp("age", func(v *props.Value) {
			v.AddAssign(props.Num(1))
		})
		w.Commands().Entity(gandalf.ID()).UpdateProp("power", func(v *props.Value) {
			v.SubAssign(props.Num(5))
		})
		n := w.Flush()
		fmt.Printf("turn %d: applied %s commands\n", turn+1, color.YellowString("%d", n))
	}

	heading("bilbo")
	fmt.Println(props.Get[props.Props](bilbo).Table())

	heading("gandalf")
	fmt.Println(props.Get[props.Props](gandalf).Table())

	heading("Global")
	fmt.Println(props.Resource[props.Props](w).Table())

	heading("Links")
	if friend, ok := gandalf.FollowLink("friend"); ok {
		name, _ := friend.Name()
		fmt.Printf("gandalf's friend is %s\n", color.GreenString(name))
	}

	heading("Registry")
	for e := range w.EntitiesOfClass("hobbit") {
		name, _ := e.Name()
		fmt.Printf("hobbit: %s (has_ring=%v)\n", color.GreenString(name), e.PropBool("has_ring"))
	}

	w.Despawn(bilbo.ID())
	if _, err := w.EntityNamed("bilbo"); errors.Is(err, props.ErrNameNotFound) {
		fmt.Println(color.RedString("bilbo has left: %v", err))
	}
	if _, ok := gandalf.FollowLink("friend"); !ok {
		fmt.Println(color.RedString("gandalf has no friend in the world"))
	}
}

func heading(s string) {
	fmt.Println()
	fmt.Println(color.New(color.FgGreen, color.Bold).Sprint("=== " + s + " ==="))
}
