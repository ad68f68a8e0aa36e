package props

import (
	"log/slog"
)

// Builder configures a World before initialization.
// Use NewBuilder() to create a builder and chain configuration methods.
type Builder struct {
	logger    *slog.Logger
	bundles   []func(*World) *Bundle
	resources []any
	props     *Props
}

// NewBuilder creates a new world builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Logger sets the logger the world reports through. Defaults to slog.Default().
func (b *Builder) Logger(l *slog.Logger) *Builder {
	b.logger = l
	return b
}

// Bundle adds a bundle to the builder.
func (b *Builder) Bundle(callback func(*World) *Bundle) *Builder {
	b.bundles = append(b.bundles, callback)
	return b
}

// Resource adds a world resource. res must be a pointer; it is stored under
// the type it points to.
func (b *Builder) Resource(res any) *Builder {
	b.resources = append(b.resources, res)
	return b
}

// Props sets the initial global properties.
//
// Example:
//
//	w := props.NewBuilder().
//	    Props(props.NewProps().With("difficulty", props.Num(2))).
//	    Init()
func (b *Builder) Props(p *Props) *Builder {
	b.props = p
	return b
}

// Init creates the world with the configured settings.
// Global resources are inserted first, then bundle resources in bundle order,
// then post-init hooks run.
func (b *Builder) Init() *World {
	w := newWorld(b.logger)

	var hooks []func(*World)
	var bundles []*Bundle
	for _, f := range b.bundles {
		bund := f(w)
		if bund == nil {
			continue
		}
		bundles = append(bundles, bund)
		hooks = append(hooks, bund.postInitHooks...)
	}

	for _, res := range b.resources {
		w.addResource(res)
	}
	if b.props != nil {
		InsertResource(w, b.props)
	}

	for _, bund := range bundles {
		for _, res := range bund.resources {
			w.addResource(res)
		}
		w.log.Debug("props: bundle loaded", "bundle", bund.name, "resources", len(bund.resources))
	}

	for _, hook := range hooks {
		hook(w)
	}

	return w
}
