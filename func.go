package dynacl

import (
	"fmt"
	"log"

	"github.com/ebitengine/purego"
)

// Func creates a Go function of type T calling the entry point bound to s in l.
// T must be a func type that purego can register, see [purego.RegisterFunc].
func Func[T any](l *Library, s Symbol) (f T, err error) {
	p := l.Proc(s)
	if p == 0 {
		if !l.IsBound() {
			return f, ErrUninitialized
		}
		return f, fmt.Errorf("%w %s", ErrMissingSymbol, s.Name())
	}
	purego.RegisterFunc(&f, p)
	return
}

// MustFunc is Func that panics with ErrUninitialized or ErrMissingSymbol.
func MustFunc[T any](l *Library, s Symbol) T {
	f, err := Func[T](l, s)
	if err != nil {
		panic(err)
	}
	return f
}

// Use create a function to fetch and use an entry point on the fly
func Use[T any](l *Library, s Symbol) func(func(f T, err error)) {
	return func(fn func(f T, err error)) {
		var x T
		defer func() {
			switch y := recover().(type) {
			case nil:
				fn(x, nil)
			case error:
				if l.debug {
					log.Printf("use %s: %v", s, y)
				}
				fn(x, y)
			default:
				if l.debug {
					log.Printf("use %s: %v", s, y)
				}
				fn(x, fmt.Errorf("%v", y))
			}
		}()
		x = MustFunc[T](l, s)
	}
}

// ExtensionAddress resolves an extension entry point through clGetExtensionFunctionAddress.
func ExtensionAddress(l *Library, name string) (uintptr, error) {
	get, err := Func[func(name string) uintptr](l, GetExtensionFunctionAddress)
	if err != nil {
		return 0, err
	}
	if p := get(name); p != 0 {
		return p, nil
	}
	return 0, fmt.Errorf("%w %s", ErrMissingSymbol, name)
}
