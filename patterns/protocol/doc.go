// Package protocol exposes singletons only through capability interfaces.
//
// Shared is declared to return SharedHelper, not *Helper. A caller holding the
// result can use SharedName and SetSharedName and nothing else; Helper's own
// Name is unreachable without a type assertion, and calling it on the
// interface value is a compile error:
//
//	h := protocol.Shared()
//	h.SharedName() // ok
//	h.Name()       // h.Name undefined (type SharedHelper has no field or method Name)
//
// APIShared exposes a second instance of the same concrete type, typed as
// APIRequester. Two unrelated groups of callers thus each see only the
// operations they need, although one concrete type serves both.
package protocol
