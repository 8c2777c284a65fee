package dynacl

import (
	"reflect"

	"github.com/ebitengine/purego"
)

// Table holds one procedure address per Symbol.
//
// A Table that exports also keeps the matching function variables of package cl in step:
// set registers the C function into the variable and clear nils it.
type Table struct {
	slots   [numSymbols]uintptr
	exports *[numSymbols]any
}

// Get returns the address bound to s, zero when unbound.
func (t *Table) Get(s Symbol) uintptr {
	if s < 0 || s >= numSymbols {
		return 0
	}
	return t.slots[s]
}

// Len counts the bound entries.
func (t *Table) Len() (n int) {
	for _, p := range t.slots {
		if p != 0 {
			n++
		}
	}
	return
}

func (t *Table) set(s Symbol, proc uintptr) {
	t.slots[s] = proc
	if t.exports != nil && t.exports[s] != nil {
		purego.RegisterFunc(t.exports[s], proc)
	}
}

func (t *Table) clear(s Symbol) {
	t.slots[s] = 0
	if t.exports != nil && t.exports[s] != nil {
		reflect.ValueOf(t.exports[s]).Elem().SetZero()
	}
}

func (t *Table) reset() {
	for i := range t.slots {
		t.clear(Symbol(i))
	}
}
