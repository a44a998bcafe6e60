package shared

import (
	"errors"
	"reflect"
	"strconv"
)

var (
	// ErrUnsupportedCapability matches every UnsupportedCapabilityError via errors.Is.
	ErrUnsupportedCapability = errors.New("shared: capability not supported")

	// ErrNilValue is returned when a nil value is narrowed to a capability.
	ErrNilValue = errors.New("shared: nil value")
)

// UnsupportedCapabilityError is returned when a value does not implement the
// requested capability interface.
type UnsupportedCapabilityError struct {
	// Capability is the requested interface type, e.g. "injection.SignupAPI".
	Capability string

	// GotType is reflect.TypeOf(v).String() for the offending value.
	GotType string
}

// Error implements the error interface.
func (e UnsupportedCapabilityError) Error() string {
	// Example: shared: *injection.FakeLogin does not support capability "injection.SignupAPI"
	return "shared: " + e.GotType + " does not support capability " + strconv.Quote(e.Capability)
}

// Is lets errors.Is(err, ErrUnsupportedCapability) match.
func (e UnsupportedCapabilityError) Is(target error) bool {
	return target == ErrUnsupportedCapability
}

// As narrows v to the capability C.
//
// It returns:
//   - ErrNilValue if v is nil
//   - UnsupportedCapabilityError if v does not implement C
//
// Like the error types in this package it avoids fmt so failure paths stay cheap.
func As[C any](v any) (C, error) {
	var zero C
	if v == nil {
		return zero, ErrNilValue
	}
	c, ok := v.(C)
	if !ok {
		return zero, UnsupportedCapabilityError{
			Capability: reflect.TypeOf((*C)(nil)).Elem().String(),
			GotType:    reflect.TypeOf(v).String(),
		}
	}
	return c, nil
}

// MustAs narrows v to the capability C or panics with the error As would return.
func MustAs[C any](v any) C {
	c, err := As[C](v)
	if err != nil {
		panic(err)
	}
	return c
}
