// Package deco provides small, explicit function decorators for Go.
//
// A decorator takes a function and returns a replacement function of the same
// type that composes extra behavior around the original call:
//
//   - before/after: BeforeAndAfter, Around
//   - result transforms: MapResult, PlusOne, Uppercase
//   - argument forwarding: ArgsFunc + ForwardArgs
//   - recipes: Timer, SlowDown, Debug
//
// Decorators stack with Apply or Chain. The first decorator listed is the
// outermost one, which matches reading stacked decorators top to bottom:
//
//	sayHi := deco.Apply(hello, deco.Uppercase, deco.BeforeAndAfter)
//	// == deco.Uppercase(deco.BeforeAndAfter(hello))
//
// When you want to know which decorators were applied (for logging or test
// assertions), wrap the function in a Func and apply named decorators via
// With / WithAll, or resolve them by name from a Registry.
//
// There is no reflection-based wrapping. Go has no variadic "any signature"
// function type, so decorators that must see arguments work on ArgsFunc,
// which carries positional and keyword values explicitly.
//
// Import
//
//	"github.com/sghaida/deco/deco"
package deco
