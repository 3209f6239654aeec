package jsonget

// Registration is a deferred format registration. Packages that define
// formats expose values of this type so callers opt in explicitly instead of
// relying on import side-effects (init functions).
//
// For example, in a package "csvfmt":
//
//	var CSV = jsonget.NewFormat("csv.table", func(w io.Writer, v any) error { ... })
//
// Usage:
//
//	r, _ := jsonget.NewRegistry(jsonget.Builtin(), csvfmt.CSV)
type Registration func(r *Registry) error

// NewFormat wraps a formatter into a Registration closure.
func NewFormat(name string, fn Formatter) Registration {
	return func(r *Registry) error {
		return r.Register(name, fn)
	}
}

// Group groups multiple registrations into one, e.g.:
//
//	jsonget.NewRegistry(jsonget.Group(jsonget.TextFormat, jsonget.JSONFormat), custom)
func Group(regs ...Registration) Registration {
	return func(r *Registry) error { return Apply(r, regs...) }
}

// Apply applies one or more registrations to an existing registry. Stops at
// the first error and returns it.
func Apply(r *Registry, regs ...Registration) error {
	for _, reg := range regs {
		if err := reg(r); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry constructs a new registry and applies the provided registrations.
func NewRegistry(regs ...Registration) (*Registry, error) {
	r := newRegistry()
	if err := Apply(r, regs...); err != nil {
		return nil, err
	}
	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on error.
func MustNewRegistry(regs ...Registration) *Registry {
	r, err := NewRegistry(regs...)
	if err != nil {
		panic(err)
	}
	return r
}
