package props

// Bundle groups resources and initialization hooks that belong together.
// Bundles are registered with the Builder and applied when the world is
// initialized.
type Bundle struct {
	name string

	// resources holds bundle-level resources (stored on the world)
	resources []any

	postInitHooks []func(*World)
}

// NewBundle creates a new bundle with the given name.
func NewBundle(name string) *Bundle {
	return &Bundle{name: name}
}

// Name returns the bundle name.
func (b *Bundle) Name() string {
	return b.name
}

// Resource registers a bundle-level resource. res must be a pointer.
func (b *Bundle) Resource(res any) *Bundle {
	b.resources = append(b.resources, res)
	return b
}

// PostInit registers a hook that runs once the world has been initialized.
func (b *Bundle) PostInit(hook func(*World)) *Bundle {
	b.postInitHooks = append(b.postInitHooks, hook)
	return b
}

// Build returns a callback function that returns this bundle.
// This allows for cleaner inline bundle initialization:
//
//	bund := props.NewBundle("gameplay").
//	    Resource(&Settings{}).
//	    Build()
//
//	w := props.NewBuilder().
//	    Bundle(bund).
//	    Init()
func (b *Bundle) Build() func(*World) *Bundle {
	return func(*World) *Bundle {
		return b
	}
}
