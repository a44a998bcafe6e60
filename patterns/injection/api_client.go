package injection

import "sync/atomic"

// User is the payload exchanged with the API. It carries no data.
type User struct{}

// LoginAPI is what a login screen needs from the API.
type LoginAPI interface {
	Login(completion func(User))
}

// SignupAPI is what a signup screen needs from the API.
type SignupAPI interface {
	Signup(user User, completion func())
}

// APIClient is the production singleton. There is no backend behind it:
// both operations complete immediately.
type APIClient struct {
	logins  atomic.Int64
	signups atomic.Int64
}

var (
	_ LoginAPI  = (*APIClient)(nil)
	_ SignupAPI = (*APIClient)(nil)
)

// Built during package initialization, which the Go runtime runs exactly once.
var instance = &APIClient{}

// Instance returns the process-wide APIClient.
func Instance() *APIClient { return instance }

// Login completes with an empty User.
func (c *APIClient) Login(completion func(User)) {
	c.logins.Add(1)
	if completion != nil {
		completion(User{})
	}
}

// Signup completes immediately.
func (c *APIClient) Signup(_ User, completion func()) {
	c.signups.Add(1)
	if completion != nil {
		completion()
	}
}

// Logins returns how many times Login has been called.
func (c *APIClient) Logins() int64 { return c.logins.Load() }

// Signups returns how many times Signup has been called.
func (c *APIClient) Signups() int64 { return c.signups.Load() }
