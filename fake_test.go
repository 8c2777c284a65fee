package dynacl

import (
	"errors"
	"fmt"
	"io/fs"
)

// fakeOpener serves modules from memory, addresses are fake and must never be called.
type fakeOpener struct {
	modules map[string]map[string]uintptr
	errs    map[string]error
	live    map[uintptr]string
	next    uintptr
	opens   int
	closes  int
}

func newFakeOpener() *fakeOpener {
	return &fakeOpener{
		modules: make(map[string]map[string]uintptr),
		errs:    make(map[string]error),
		live:    make(map[uintptr]string),
		next:    0x1000,
	}
}

// full registers a module exporting every symbol except the skipped ones.
func (f *fakeOpener) full(path string, skip ...string) *fakeOpener {
	exports := make(map[string]uintptr, numSymbols)
	base := uintptr(len(f.modules)+1) << 20
	for i, s := range order {
		exports[s.Name()] = base + uintptr(i+1)*0x10
	}
	for _, name := range skip {
		delete(exports, name)
	}
	f.modules[path] = exports
	return f
}

func (f *fakeOpener) fail(path string, err error) *fakeOpener {
	f.errs[path] = err
	return f
}

func (f *fakeOpener) Open(path string) (uintptr, error) {
	if err, ok := f.errs[path]; ok {
		return 0, err
	}
	if _, ok := f.modules[path]; !ok {
		return 0, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	f.opens++
	f.next += 0x100
	f.live[f.next] = path
	return f.next, nil
}

func (f *fakeOpener) Lookup(handle uintptr, name string) (uintptr, error) {
	path, ok := f.live[handle]
	if !ok {
		return 0, errors.New("invalid handle")
	}
	p, ok := f.modules[path][name]
	if !ok {
		return 0, fmt.Errorf("undefined symbol: %s", name)
	}
	return p, nil
}

func (f *fakeOpener) Close(handle uintptr) error {
	if _, ok := f.live[handle]; !ok {
		return errors.New("invalid handle")
	}
	delete(f.live, handle)
	f.closes++
	return nil
}
