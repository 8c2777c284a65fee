package dynacl

import (
	"errors"
	"fmt"
	"log"
	"sync"
)

var (
	// ErrMissingSymbol occurs when a symbol can not be resolved from the loaded module.
	ErrMissingSymbol = errors.New("missing symbol")
	// ErrUninitialized occurs when a module is required but none is bound.
	ErrUninitialized = errors.New("module not initialized")
)

// Library binds the OpenCL entry points of one dynamically loaded module.
//
// Use Steps:
//
//  1. [Library.Init] with the path of the OpenCL library.
//  2. Check the Status; anything but Success must be followed by [Library.Shutdown].
//  3. Call through the bound entry points.
//  4. [Library.Shutdown] to null every entry point and release the module.
//
// Note:
//
//  1. Init, Shutdown and Reload are serialized, calls through bound entry points are not:
//     never call through an entry point while another goroutine runs Init, Shutdown or Reload.
//  2. After an ImportError the entry points resolved before the failing one stay bound.
type Library struct {
	mu     sync.Mutex
	opener Opener
	handle uintptr
	path   string
	table  Table
	failed Symbol
	err    error
	debug  bool
}

// New creates an unbound Library over opener, an optional debug parameter enables debug logging.
func New(opener Opener, debug ...bool) *Library {
	return &Library{
		opener: opener,
		failed: NoSymbol,
		debug:  len(debug) > 0 && debug[0],
	}
}

// SetDebug toggles debug logging.
func (l *Library) SetDebug(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = on
}

// Init loads the module at path and resolves every symbol in binding order.
//
// Resolution stops at the first missing symbol and returns ImportError. Calling Init on a
// bound Library returns AlreadyInitialized and leaves the bound module untouched.
func (l *Library) Init(path string) Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.init(path)
}

// Shutdown nulls every entry point, then releases the module.
// It is safe on a Library that was never initialized or already shut down.
func (l *Library) Shutdown() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.shutdown()
}

// Reload releases the bound module, if any, and initializes from path.
func (l *Library) Reload(path string) Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.shutdown()
	return l.init(path)
}

func (l *Library) init(path string) Status {
	if l.handle != 0 {
		if l.debug {
			log.Printf("init %s refused, %s still bound", path, l.path)
		}
		return AlreadyInitialized
	}
	l.failed, l.err = NoSymbol, nil
	h, err := l.opener.Open(path)
	if err != nil || h == 0 {
		if err == nil {
			err = fmt.Errorf("open %s: null handle", path)
		}
		l.err = err
		st := Classify(err)
		if l.debug {
			log.Printf("load %s: %s: %v", path, st, err)
		}
		return st
	}
	l.handle, l.path = h, path
	if l.debug {
		log.Printf("loaded %s: %#x", path, h)
	}
	for _, s := range order {
		p, err := l.opener.Lookup(h, s.Name())
		if err != nil || p == 0 {
			l.failed = s
			if err != nil {
				l.err = fmt.Errorf("%w %s: %w", ErrMissingSymbol, s.Name(), err)
			} else {
				l.err = fmt.Errorf("%w %s", ErrMissingSymbol, s.Name())
			}
			if l.debug {
				log.Printf("resolve %s: %v", s.Name(), err)
			}
			return ImportError
		}
		l.table.set(s, p)
	}
	if l.debug {
		log.Printf("bound %d symbols from %s", l.table.Len(), path)
	}
	return Success
}

func (l *Library) shutdown() {
	l.table.reset()
	if l.handle != 0 {
		if err := l.opener.Close(l.handle); err != nil && l.debug {
			log.Printf("unload %s: %v", l.path, err)
		}
	}
	l.handle = 0
	l.path = ""
}

// IsBound reports whether a module is held, including after an ImportError.
func (l *Library) IsBound() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.handle != 0
}

// Path of the held module.
func (l *Library) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.path
}

// Proc returns the address bound to s, zero when unbound.
func (l *Library) Proc(s Symbol) uintptr {
	return l.table.Get(s)
}

// Bound counts the bound entry points.
func (l *Library) Bound() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.table.Len()
}

// LastError returns the host error of the last failed Init, it is cleared by the next Init.
func (l *Library) LastError() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// FailedSymbol returns the symbol that stopped the last Init with ImportError.
func (l *Library) FailedSymbol() (Symbol, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.failed, l.failed != NoSymbol
}

// Symbols returns the names of the bound entry points in binding order.
func (l *Library) Symbols() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	v := make([]string, 0, l.table.Len())
	for _, s := range order {
		if l.table.Get(s) != 0 {
			v = append(v, s.Name())
		}
	}
	return v
}

// MissingSymbols probes every symbol against the held module without binding anything.
func (l *Library) MissingSymbols() (v []string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.handle == 0 {
		return nil, ErrUninitialized
	}
	for _, s := range order {
		if p, err := l.opener.Lookup(l.handle, s.Name()); err != nil || p == 0 {
			v = append(v, s.Name())
		}
	}
	return
}
