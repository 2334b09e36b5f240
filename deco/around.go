package deco

import "strings"

// BeforeAndAfter returns a function that puts "before" and "after" lines
// around the text returned by fn.
//
//	BeforeAndAfter(func() string { return "middle" })() == "before\nmiddle\nafter"
func BeforeAndAfter(fn func() string) func() string {
	return func() string {
		return strings.Join([]string{"before", fn(), "after"}, "\n")
	}
}

// Around builds a decorator that runs before ahead of the call and after with
// the returned value. Either hook may be nil. The result is passed through as is.
func Around[T any](before func(), after func(T)) Decorator[func() T] {
	return func(fn func() T) func() T {
		return func() T {
			if before != nil {
				before()
			}
			v := fn()
			if after != nil {
				after(v)
			}
			return v
		}
	}
}
