package deco

// Decorator wraps a function of type F and returns a replacement of the same type.
type Decorator[F any] func(F) F

// Apply decorates fn with ds and returns the result.
//
// The first decorator is the outermost one: Apply(f, a, b) behaves like a(b(f)).
// Nil decorators are skipped. With no decorators Apply returns fn unchanged.
func Apply[F any](fn F, ds ...Decorator[F]) F {
	for i := len(ds) - 1; i >= 0; i-- {
		if ds[i] == nil {
			continue
		}
		fn = ds[i](fn)
	}
	return fn
}

// Chain combines ds into a single Decorator with the same ordering as Apply.
//
// The slice is copied, so later changes to the caller's slice do not affect
// the returned decorator.
func Chain[F any](ds ...Decorator[F]) Decorator[F] {
	cp := append([]Decorator[F](nil), ds...)
	return func(fn F) F {
		return Apply(fn, cp...)
	}
}
