package lazy

import "github.com/sghaida/singleton/shared"

// Settings is an open singleton: SharedSettings returns one process-wide
// instance, but NewSettings is exported, so callers may also build their own.
//
// A custom instance is fully independent of the shared one. That makes the
// type easy to test, but it no longer guarantees a single instance.
type Settings struct {
	Name string
}

var settings = shared.NewLazy(NewSettings)

// NewSettings returns a new, independent Settings.
func NewSettings() *Settings { return &Settings{} }

// SharedSettings returns the process-wide Settings.
func SharedSettings() *Settings { return settings.Get() }
