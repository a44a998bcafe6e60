// Package injectiontest provides test doubles for the injection capabilities.
package injectiontest

import (
	"sync"

	"github.com/sghaida/singleton/patterns/injection"
)

// FakeLogin records Login calls and completes with User.
type FakeLogin struct {
	mu    sync.Mutex
	calls int

	// User is passed to every completion.
	User injection.User

	// Skip leaves completions uncalled, as a login that never returns would.
	Skip bool
}

var _ injection.LoginAPI = (*FakeLogin)(nil)

func (f *FakeLogin) Login(completion func(injection.User)) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.Skip || completion == nil {
		return
	}
	completion(f.User)
}

// Calls returns how many times Login was invoked.
func (f *FakeLogin) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// FakeSignup records the users passed to Signup.
type FakeSignup struct {
	mu    sync.Mutex
	users []injection.User

	// Skip leaves completions uncalled.
	Skip bool
}

var _ injection.SignupAPI = (*FakeSignup)(nil)

func (f *FakeSignup) Signup(user injection.User, completion func()) {
	f.mu.Lock()
	f.users = append(f.users, user)
	f.mu.Unlock()

	if f.Skip || completion == nil {
		return
	}
	completion()
}

// Users returns a copy of the users passed to Signup.
func (f *FakeSignup) Users() []injection.User {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]injection.User, len(f.users))
	copy(out, f.users)
	return out
}
