// Package injection resolves the problems of a global singleton with narrow
// capability interfaces and constructor injection.
//
// A first attempt lets every view controller reach for APIClient directly:
//
//	type LoginViewController struct{ api *APIClient } // always Instance()
//
// That hides the dependency, couples the controller to every APIClient method
// (including ones it never calls), and leaves no seam for a test double.
//
// Instead each controller declares the one capability it uses (LoginAPI or
// SignupAPI). Its constructor defaults that capability to the production
// singleton and accepts an override:
//
//	c := injection.NewLoginViewController()                            // uses Instance()
//	c := injection.NewLoginViewController(injection.WithLoginAPI(fake)) // uses fake
//
// Controller code is identical in both cases.
package injection
