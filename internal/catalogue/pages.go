package catalogue

import (
	"fmt"
	"io"

	"github.com/sghaida/singleton/patterns/injection"
	"github.com/sghaida/singleton/patterns/lazy"
	"github.com/sghaida/singleton/patterns/protocol"
	"github.com/sghaida/singleton/patterns/valuetype"
	"github.com/sghaida/singleton/shared"
)

// Page names, in catalogue order.
const (
	PageImplementation        = "implementation"
	PageAnotherImplementation = "another-implementation"
	PageProtocol              = "protocol"
	PageCorrectWay            = "correct-way"
)

// Default returns a registry with every page of the catalogue.
func Default() *Registry {
	return NewRegistry().
		Provide(Page{Name: PageImplementation, Title: "Singleton design pattern", Run: implementation}).
		Provide(Page{Name: PageAnotherImplementation, Title: "Open singleton", Run: anotherImplementation}).
		Provide(Page{Name: PageProtocol, Title: "Singleton with protocol", Run: protocolPage}).
		Provide(Page{Name: PageCorrectWay, Title: "Singleton with dependency injection", Run: correctWay})
}

// printer remembers the first write error so pages can print without checking each line.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) println(a ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, a...)
}

func (p *printer) printf(format string, a ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, a...)
}

// offlineLogin is a LoginAPI that never reaches the production client. It shows
// that a controller accepts any implementation of the one capability it uses.
type offlineLogin struct {
	calls int
}

var _ injection.LoginAPI = (*offlineLogin)(nil)

func (l *offlineLogin) Login(completion func(injection.User)) {
	l.calls++
	if completion != nil {
		completion(injection.User{})
	}
}

func implementation(w io.Writer) error {
	p := &printer{w: w}

	helper1 := lazy.Shared()
	helper2 := lazy.Shared()

	p.println(helper1.Same(helper2))
	p.println(helper1.Name)
	helper1.Name = "name 1"
	p.println(helper2.Name)

	// Why not a struct: every handle is a copy.
	structHelper := valuetype.Shared()
	structHelper.SetName("Ali")
	p.println(structHelper.Name())
	p.println(valuetype.Shared().Name())

	return p.err
}

func anotherImplementation(w io.Writer) error {
	p := &printer{w: w}

	lazy.SharedSettings().Name = "name2"

	object := lazy.NewSettings()
	object.Name = "newName"
	p.println(object.Name)
	p.println(lazy.SharedSettings().Name)

	return p.err
}

func protocolPage(w io.Writer) error {
	p := &printer{w: w}

	helper1 := protocol.Shared()
	// helper1.Name() does not compile: SharedHelper has no method Name.
	name, ok := helper1.SharedName()
	p.printf("sharedName: %q set=%v\n", name, ok)

	helper2 := protocol.APIShared()
	p.println(helper2.RequestData("example.com"))

	// Narrowing at run time goes through shared.As and reports what is missing.
	if _, err := shared.As[protocol.SharedHelper](&offlineLogin{}); err != nil {
		p.println(err)
	}

	return p.err
}

func correctWay(w io.Writer) error {
	p := &printer{w: w}

	login := injection.NewLoginViewController()
	login.DidTapLoginButton()
	_, ok := login.CurrentUser()
	p.printf("login via %T: user=%v\n", login.API(), ok)

	signup := injection.NewSignupViewController()
	signup.DidTapSignupButton()
	p.printf("signup via %T: signedUp=%v\n", signup.API(), signup.SignedUp())

	offline := &offlineLogin{}
	login = injection.NewLoginViewController(injection.WithLoginAPI(offline))
	login.DidTapLoginButton()
	p.printf("login via %T: calls=%d\n", login.API(), offline.calls)

	return p.err
}
