package lazy

import (
	"github.com/google/uuid"
	"github.com/sghaida/singleton/shared"
)

// DefaultName is the Name a freshly created Helper starts with.
const DefaultName = "name"

// Helper is the singleton. Name is mutable and shared by every caller of Shared.
//
// Writes to Name are not synchronized.
type Helper struct {
	Name string

	id uuid.UUID
}

var helper = shared.NewLazy(newHelper)

func newHelper() *Helper {
	return &Helper{
		Name: DefaultName,
		id:   uuid.New(),
	}
}

// Shared returns the process-wide Helper, creating it on first use.
func Shared() *Helper { return helper.Get() }

// ID identifies the instance. It is uuid.Nil for a Helper not built by Shared.
func (h *Helper) ID() uuid.UUID { return h.id }

// Same reports whether h and other are the same instance.
func (h *Helper) Same(other *Helper) bool { return h == other }
