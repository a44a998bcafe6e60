// Package valuetype shows why a singleton cannot be a value type.
//
// Shared has the same shape as lazy.Shared, but StructHelper is a struct
// returned by value. Every call (and every assignment) yields a copy, so a
// change through one handle is invisible through another and never reaches
// the package-level instance:
//
//	h := valuetype.Shared()
//	h.SetName("Ali")
//	fmt.Println(h.Name())                  // Ali
//	fmt.Println(valuetype.Shared().Name()) // name
//
// All copies report the same ID, which is exactly what makes this easy to
// miss: they look like the same instance but do not share state.
package valuetype
