// Package lazy demonstrates the classic singleton: one lazily created, mutable
// instance reachable through a well-known accessor.
//
// Shared returns the same *Helper on every call, so a change made through one
// handle is visible through every other handle:
//
//	h1 := lazy.Shared()
//	h2 := lazy.Shared()
//	h1.Name = "name 1"
//	fmt.Println(h2.Name) // name 1
//
// Go has no private constructors. The only constructor for Helper is unexported,
// and a Helper built any other way (e.g. a composite literal) has no identity
// and is not the shared instance.
//
// The package also shows an open variant (Settings) that exposes a shared
// instance while still allowing callers to build their own.
//
// Problems with this shape that the other pattern packages address:
//   - hidden dependencies: any code can reach Shared without declaring it
//   - the instance stays in memory for the life of the process
//   - callers cannot swap it for a test double
//   - unsynchronized shared mutable state: concurrent writers race
package lazy
