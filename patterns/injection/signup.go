package injection

// SignupViewController depends on SignupAPI only.
type SignupViewController struct {
	api      SignupAPI
	signedUp bool
}

// SignupOption configures a SignupViewController.
type SignupOption func(*SignupViewController)

// WithSignupAPI replaces the default SignupAPI. A nil api keeps the default.
func WithSignupAPI(api SignupAPI) SignupOption {
	return func(c *SignupViewController) {
		if api != nil {
			c.api = api
		}
	}
}

// NewSignupViewController returns a controller bound to Instance() unless an
// option supplies another SignupAPI.
func NewSignupViewController(opts ...SignupOption) *SignupViewController {
	c := &SignupViewController{api: Instance()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// API returns the SignupAPI the controller was built with.
func (c *SignupViewController) API() SignupAPI { return c.api }

// DidTapSignupButton signs up a new User.
func (c *SignupViewController) DidTapSignupButton() {
	c.api.Signup(User{}, func() {
		c.signedUp = true
	})
}

// SignedUp reports whether a signup has completed.
func (c *SignupViewController) SignedUp() bool { return c.signedUp }
