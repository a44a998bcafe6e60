package protocol

import (
	"github.com/google/uuid"
	"github.com/sghaida/singleton/shared"
)

// SharedHelper is the capability handed out by Shared: an optional shared name.
type SharedHelper interface {
	// SharedName returns the name and whether it has been set.
	SharedName() (string, bool)
	SetSharedName(name string)
}

// APIRequester is the capability handed out by APIShared.
type APIRequester interface {
	RequestData(from string) string
}

// Helper implements both capabilities. Its Name is only reachable through the concrete type.
type Helper struct {
	sharedName *string
	name       string
	id         uuid.UUID
}

var (
	_ SharedHelper = (*Helper)(nil)
	_ APIRequester = (*Helper)(nil)
)

var (
	sharedHelper = shared.NewLazy(func() SharedHelper { return newHelper() })
	apiHelper    = shared.NewLazy(func() APIRequester { return newHelper() })
)

func newHelper() *Helper {
	return &Helper{name: "name", id: uuid.New()}
}

// Shared returns the process-wide helper, seen as a SharedHelper.
func Shared() SharedHelper { return sharedHelper.Get() }

// APIShared returns the process-wide API helper, seen as an APIRequester.
// It is a different instance from the one returned by Shared.
func APIShared() APIRequester { return apiHelper.Get() }

// SharedName returns the shared name and whether it has been set.
func (h *Helper) SharedName() (string, bool) {
	if h.sharedName == nil {
		return "", false
	}
	return *h.sharedName, true
}

// SetSharedName sets the shared name.
func (h *Helper) SetSharedName(name string) { h.sharedName = &name }

// RequestData is a stub: it returns the URL it was given.
func (h *Helper) RequestData(from string) string { return from }

// Name is not part of any capability.
func (h *Helper) Name() string { return h.name }

// ID identifies the instance.
func (h *Helper) ID() uuid.UUID { return h.id }
