package shared

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrNilConstructor is the panic value used when NewLazy is given a nil constructor.
var ErrNilConstructor = errors.New("shared: nil constructor")

// Lazy holds a single value created on first access.
//
// The zero value is not usable; create one with NewLazy. A Lazy is safe for
// concurrent use: ctor runs exactly once and every Get observes its result.
// Nothing guards the value itself, so mutable state reachable from T is shared
// by every caller without synchronization.
type Lazy[T any] struct {
	once sync.Once
	done atomic.Bool
	ctor func() T
	val  T
}

// NewLazy returns a holder that will build its value with ctor on first Get.
//
// It panics with ErrNilConstructor if ctor is nil, so the mistake surfaces at
// package initialization instead of on first access.
func NewLazy[T any](ctor func() T) *Lazy[T] {
	if ctor == nil {
		panic(ErrNilConstructor)
	}
	return &Lazy[T]{ctor: ctor}
}

// Get returns the held value, constructing it on the first call.
func (l *Lazy[T]) Get() T {
	l.once.Do(func() {
		l.val = l.ctor()
		l.done.Store(true)
	})
	return l.val
}

// Initialized reports whether the value has been constructed.
func (l *Lazy[T]) Initialized() bool { return l.done.Load() }
