// Package shared provides the small building blocks the pattern packages use to
// hold and expose process-wide instances.
//
// It supports two concerns:
//
//   - Lazy[T]: an exactly-once holder. The constructor runs on first access and
//     every later access returns the same value, regardless of how many goroutines
//     race on the first call.
//
//   - As / MustAs: narrowing an arbitrary value to a capability interface at run
//     time, with typed errors when the value does not provide that capability.
//
// Static narrowing needs no helper: a variable declared with an interface type
// only exposes that interface's methods, and calling anything else fails to
// compile.
//
// Import
//
//	"github.com/sghaida/singleton/shared"
package shared
