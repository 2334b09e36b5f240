package deco

import "reflect"

// Func is a named function plus the names of the decorators applied to it.
//
// Name identifies the undecorated function (recipes such as Timer and Debug
// report it). Fn is the current, possibly decorated, function.
// Applied lists decorator names outermost first.
type Func[F any] struct {
	Name string
	Fn   F

	applied []string
}

// Named pairs a decorator with the name recorded when it is applied.
type Named[F any] struct {
	Name     string
	Decorate Decorator[F]
}

// Wrap starts a Func for fn under name. No decorators are applied yet.
func Wrap[F any](name string, fn F) *Func[F] {
	return &Func[F]{Name: name, Fn: fn}
}

// Value returns the current function.
func (f *Func[F]) Value() F { return f.Fn }

// Applied returns a copy of the applied decorator names, outermost first.
func (f *Func[F]) Applied() []string {
	if f == nil {
		return nil
	}
	return append([]string(nil), f.applied...)
}

// With applies d as the new outermost decorator.
//
// It fails if:
//   - the Func (or its function) is nil (ErrNilFunc)
//   - d.Decorate is nil (NilDecoratorError)
func (f *Func[F]) With(d Named[F]) (*Func[F], error) {
	if f == nil || isNilFunc(f.Fn) {
		return f, ErrNilFunc
	}
	if d.Decorate == nil {
		return f, NilDecoratorError{Name: d.Name}
	}
	f.Fn = d.Decorate(f.Fn)
	f.applied = append([]string{d.Name}, f.applied...)
	return f, nil
}

// WithAll applies ds with the same ordering as Apply: ds[0] ends up outermost.
//
// It stops at the first error and returns that error. Decorators listed after
// the failing one (closer to the function) have already been applied.
func (f *Func[F]) WithAll(ds ...Named[F]) (*Func[F], error) {
	for i := len(ds) - 1; i >= 0; i-- {
		if _, err := f.With(ds[i]); err != nil {
			return f, err
		}
	}
	return f, nil
}

// Clone returns a copy of the Func whose applied list is independent of the
// original, so further decoration does not affect it.
func (f *Func[F]) Clone() *Func[F] {
	if f == nil {
		return nil
	}
	return &Func[F]{Name: f.Name, Fn: f.Fn, applied: f.Applied()}
}

func isNilFunc(fn any) bool {
	if fn == nil {
		return true
	}
	v := reflect.ValueOf(fn)
	return v.Kind() == reflect.Func && v.IsNil()
}
