// Package singleton is a small catalogue of the Singleton pattern in Go: what a
// singleton gives you, where it hurts, and how to keep its benefits without the
// hidden coupling.
//
// The catalogue walks through four demonstrations:
//
//   - patterns/lazy: a lazily created, process-wide instance behind a
//     well-known accessor (plus an open variant that also allows custom instances)
//   - patterns/valuetype: why a value type cannot be a singleton (every handle is a copy)
//   - patterns/protocol: a singleton handed out only as a capability interface,
//     and one concrete type serving two unrelated capabilities
//   - patterns/injection: narrow capability interfaces plus constructor
//     injection, defaulting to the singleton and accepting test doubles
//
// Shared building blocks (exactly-once holders, run-time capability checks)
// live in package shared. cmd/singletons runs every page in order.
//
// What goes wrong with a bare global singleton:
//   - hidden dependencies: anything can reach it without declaring it
//   - it stays in memory for the lifetime of the process
//   - it cannot be swapped for a test double
//   - it tends to collect unrelated responsibilities
//   - callers depend on a concrete type rather than an abstraction
//   - any caller can change state every other caller sees
//   - unsynchronized shared state races under concurrent use
package singleton
