package valuetype

import "github.com/google/uuid"

// DefaultName is the name every copy starts with.
const DefaultName = "name"

// StructHelper is a value type. Copies are independent.
type StructHelper struct {
	name string
	id   uuid.UUID
}

// Initialized with the package, so it is created exactly once. Only copies leave the package.
var instance = newStructHelper()

func newStructHelper() StructHelper {
	return StructHelper{name: DefaultName, id: uuid.New()}
}

// Shared returns a copy of the package-level StructHelper.
func Shared() StructHelper { return instance }

// Name returns the name held by this copy.
func (s StructHelper) Name() string { return s.name }

// SetName changes the name of this copy only.
func (s *StructHelper) SetName(name string) { s.name = name }

// ID returns the identifier copied from the package-level instance.
func (s StructHelper) ID() uuid.UUID { return s.id }
