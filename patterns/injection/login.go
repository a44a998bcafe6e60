package injection

// LoginViewController depends on LoginAPI only.
type LoginViewController struct {
	api  LoginAPI
	user *User
}

// LoginOption configures a LoginViewController.
type LoginOption func(*LoginViewController)

// WithLoginAPI replaces the default LoginAPI. A nil api keeps the default.
func WithLoginAPI(api LoginAPI) LoginOption {
	return func(c *LoginViewController) {
		if api != nil {
			c.api = api
		}
	}
}

// NewLoginViewController returns a controller bound to Instance() unless an
// option supplies another LoginAPI.
func NewLoginViewController(opts ...LoginOption) *LoginViewController {
	c := &LoginViewController{api: Instance()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// API returns the LoginAPI the controller was built with.
func (c *LoginViewController) API() LoginAPI { return c.api }

// DidTapLoginButton logs in and keeps the user the API completed with.
func (c *LoginViewController) DidTapLoginButton() {
	c.api.Login(func(u User) {
		c.user = &u
	})
}

// CurrentUser returns the logged-in user, if any.
func (c *LoginViewController) CurrentUser() (User, bool) {
	if c.user == nil {
		return User{}, false
	}
	return *c.user, true
}
