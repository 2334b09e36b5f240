package deco

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

// Args carries the arguments of a call made through an ArgsFunc.
//
// Positional keeps call order. Keyword maps names to values; it is rendered
// sorted by name so output is stable.
type Args struct {
	Positional []any
	Keyword    map[string]any
}

// ArgsFunc is a function that accepts arbitrary positional and keyword arguments.
//
// Decorators that need to inspect or forward arguments operate on ArgsFunc.
type ArgsFunc func(Args) any

// Positional builds Args from positional values.
func Positional(vals ...any) Args {
	return Args{Positional: vals}
}

// With returns a copy of a with keyword name set to val.
//
// The receiver is not modified, so a base Args can be shared between calls.
func (a Args) With(name string, val any) Args {
	kw := make(map[string]any, len(a.Keyword)+1)
	for k, v := range a.Keyword {
		kw[k] = v
	}
	kw[name] = val
	return Args{Positional: a.Positional, Keyword: kw}
}

// Arg returns the i-th positional value, or nil when there is none.
func (a Args) Arg(i int) any {
	if i < 0 || i >= len(a.Positional) {
		return nil
	}
	return a.Positional[i]
}

// Kwarg returns the keyword value for name.
func (a Args) Kwarg(name string) (any, bool) {
	v, ok := a.Keyword[name]
	return v, ok
}

// Names returns the keyword names in sorted order.
func (a Args) Names() []string {
	return slices.Sorted(maps.Keys(a.Keyword))
}

// Tuple renders the positional values as a tuple: (), ('a',), ('a', 1).
func (a Args) Tuple() string {
	switch len(a.Positional) {
	case 0:
		return "()"
	case 1:
		return "(" + Repr(a.Positional[0]) + ",)"
	}
	parts := make([]string, len(a.Positional))
	for i, v := range a.Positional {
		parts[i] = Repr(v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Mapping renders the keyword values as a mapping: {}, {'k': 'v'}.
func (a Args) Mapping() string {
	names := a.Names()
	parts := make([]string, len(names))
	for i, k := range names {
		parts[i] = Repr(k) + ": " + Repr(a.Keyword[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Signature renders a call signature: 'a', 1, k='v'.
func (a Args) Signature() string {
	parts := make([]string, 0, len(a.Positional)+len(a.Keyword))
	for _, v := range a.Positional {
		parts = append(parts, Repr(v))
	}
	for _, k := range a.Names() {
		parts = append(parts, k+"="+Repr(a.Keyword[k]))
	}
	return strings.Join(parts, ", ")
}

// ForwardArgs builds a decorator that reports the received arguments to w and
// then forwards them unchanged to the wrapped function.
//
// The wrapped function's result is returned as is.
func ForwardArgs(w io.Writer) Decorator[ArgsFunc] {
	return func(fn ArgsFunc) ArgsFunc {
		return func(a Args) any {
			_, _ = fmt.Fprintln(w, "The positional arguments are", a.Tuple())
			_, _ = fmt.Fprintln(w, "The keyword arguments are", a.Mapping())
			return fn(a)
		}
	}
}
