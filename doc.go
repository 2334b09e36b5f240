// Package deco provides small, explicit function decorators for Go.
//
// This repository walks through one technique: wrapping a function with another
// to add behavior before or after the call, transform the result, stack several
// wrappers, and forward arbitrary arguments.
//
//   - deco: the library (Decorator, Apply/Chain, the demonstrated wrappers,
//     recipe wrappers Timer/SlowDown/Debug, Func and Registry for named decorators)
//   - examples: the undecorated example functions
//   - examples/basics, examples/recipes: runnable demonstrations
//   - cmd/deco: CLI running demonstrations by name, configured via YAML/env
//   - config: configuration loading for cmd/deco
//
// The goal is to keep wrapping explicit (plain higher-order functions), avoid
// reflection-based magic, and keep the surface area intentionally small.
package deco
