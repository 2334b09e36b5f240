package deco

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// MapResult returns a function that calls fn and passes its result through f.
func MapResult[T, U any](fn func() T, f func(T) U) func() U {
	return func() U {
		return f(fn())
	}
}

// PlusOne adds one to the number returned by fn.
func PlusOne[N Number](fn func() N) func() N {
	return MapResult(fn, func(n N) N { return n + 1 })
}

// Uppercase upper-cases the text returned by fn.
func Uppercase(fn func() string) func() string {
	return MapResult(fn, strings.ToUpper)
}
