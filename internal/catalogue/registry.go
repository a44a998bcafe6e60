// Package catalogue holds the runnable pages of the singleton catalogue.
package catalogue

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Page is one standalone demonstration. Run writes its output to w, top to bottom.
type Page struct {
	Name  string
	Title string
	Run   func(w io.Writer) error
}

// ErrPagePanic is returned by Registry.Run if a page panics.
var ErrPagePanic = errors.New("catalogue: panic while running page")

// MissingPageError is returned when no page is registered under Name.
type MissingPageError struct{ Name string }

// Error implements the error interface.
func (e MissingPageError) Error() string {
	// Example: catalogue: missing page "protocol"
	return "catalogue: missing page " + strconv.Quote(e.Name)
}

// Registry is an ordered, in-memory set of pages.
//
// It is not safe for concurrent mutation; build it once, then read from it.
type Registry struct {
	order []string
	pages map[string]Page
}

func NewRegistry() *Registry {
	return &Registry{pages: map[string]Page{}}
}

// Provide stores p under p.Name and returns the registry for chaining.
// Providing a name twice replaces the page but keeps its original position.
func (r *Registry) Provide(p Page) *Registry {
	if _, exists := r.pages[p.Name]; !exists {
		r.order = append(r.order, p.Name)
	}
	r.pages[p.Name] = p
	return r
}

// Get returns the page if present (no panic).
func (r *Registry) Get(name string) (Page, bool) {
	p, ok := r.pages[name]
	return p, ok
}

// MustGet returns the page or panics with MissingPageError.
func (r *Registry) MustGet(name string) Page {
	p, ok := r.pages[name]
	if !ok {
		panic(MissingPageError{Name: name})
	}
	return p
}

// Names returns page names in the order they were first provided.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Run runs the named page against w and converts a page panic into an error
// wrapping ErrPagePanic.
func (r *Registry) Run(name string, w io.Writer) (err error) {
	p, ok := r.Get(name)
	if !ok {
		return MissingPageError{Name: name}
	}
	if p.Run == nil {
		return nil
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %s: %v", ErrPagePanic, name, rec)
		}
	}()
	return p.Run(w)
}
