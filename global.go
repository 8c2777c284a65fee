package dynacl

import (
	"fmt"

	"github.com/ZenLiuCN/dynacl/cl"
)

var std = newExported(System())

// newExported creates a Library whose table drives the function variables of package cl.
func newExported(opener Opener) *Library {
	l := New(opener)
	l.table.exports = exports()
	return l
}

func exports() *[numSymbols]any {
	v := new([numSymbols]any)
	for _, s := range order {
		f, ok := cl.Slots[s.Name()]
		if !ok {
			panic(fmt.Errorf("%w: no cl slot for %s", ErrMissingSymbol, s.Name()))
		}
		v[s] = f
	}
	return v
}

// Default returns the process-wide Library behind the entry points of package cl.
func Default() *Library {
	return std
}

// Init binds the entry points of package cl from the OpenCL library at path.
func Init(path string) Status {
	return std.Init(path)
}

// Shutdown nulls the entry points of package cl and releases the library.
func Shutdown() {
	std.Shutdown()
}

// Reload releases the bound library, if any, and binds the one at path.
func Reload(path string) Status {
	return std.Reload(path)
}

// IsBound reports whether the process-wide library is held.
func IsBound() bool {
	return std.IsBound()
}

// SetDebug toggles debug logging of the process-wide library.
func SetDebug(on bool) {
	std.SetDebug(on)
}
