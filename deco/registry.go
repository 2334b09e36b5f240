package deco

import (
	"fmt"
	"maps"
	"slices"
)

// Provider builds a decorator for the function called fnName.
//
// Most decorators ignore the name; recipes such as Timer and Debug report it.
type Provider[F any] func(fnName string) Decorator[F]

// Static adapts a decorator that does not need the function name into a Provider.
func Static[F any](d Decorator[F]) Provider[F] {
	if d == nil {
		return nil
	}
	return func(string) Decorator[F] { return d }
}

// Registry maps decorator names to providers for one function type.
//
// Expected usage:
//
//	reg := deco.NewRegistry[func() string]().
//		Provide("upper", deco.Static[func() string](deco.Uppercase))
//	fn, err := reg.Build(deco.Wrap("say_hi", sayHi), "upper")
type Registry[F any] struct {
	items map[string]Provider[F]
}

// NewRegistry returns an empty registry.
func NewRegistry[F any]() *Registry[F] {
	return &Registry[F]{items: map[string]Provider[F]{}}
}

// Provide stores a provider under name and returns the registry for chaining.
// An existing provider with the same name is replaced.
func (r *Registry[F]) Provide(name string, p Provider[F]) *Registry[F] {
	r.items[name] = p
	return r
}

// Get returns the provider if present.
func (r *Registry[F]) Get(name string) (Provider[F], bool) {
	p, ok := r.items[name]
	return p, ok
}

// MustGet returns the provider or panics.
// Useful in examples/tests where missing names should fail fast.
func (r *Registry[F]) MustGet(name string) Provider[F] {
	p, ok := r.items[name]
	if !ok {
		panic(UnknownDecoratorError{Name: name})
	}
	return p
}

// Names returns the registered names in sorted order.
func (r *Registry[F]) Names() []string {
	return slices.Sorted(maps.Keys(r.items))
}

// Resolve builds the decorator registered under name for the function fnName.
//
// It returns UnknownDecoratorError for missing names and NilDecoratorError when
// the provider (or the decorator it builds) is nil. A panicking provider is
// reported as ErrRegistryPanic.
func (r *Registry[F]) Resolve(name, fnName string) (d Decorator[F], err error) {
	p, ok := r.items[name]
	if !ok {
		return nil, UnknownDecoratorError{Name: name}
	}
	if p == nil {
		return nil, NilDecoratorError{Name: name}
	}

	defer func() {
		if rec := recover(); rec != nil {
			d = nil
			err = fmt.Errorf("%w: %s: %v", ErrRegistryPanic, name, rec)
		}
	}()

	d = p(fnName)
	if d == nil {
		return nil, NilDecoratorError{Name: name}
	}
	return d, nil
}

// Build decorates f with the decorators registered under names, listed
// outermost first.
//
// All names are resolved before anything is applied, so an unknown name
// leaves f untouched.
func (r *Registry[F]) Build(f *Func[F], names ...string) (*Func[F], error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	ds := make([]Named[F], 0, len(names))
	for _, name := range names {
		d, err := r.Resolve(name, f.Name)
		if err != nil {
			return f, err
		}
		ds = append(ds, Named[F]{Name: name, Decorate: d})
	}
	return f.WithAll(ds...)
}
