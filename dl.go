package dynacl

import "errors"

// ErrUnsupported is returned by the Opener of platforms without a dynamic loader.
var ErrUnsupported = errors.New("dynamic loading unsupported on this platform")

// Opener is the host module loader: load by path, look up by name, unload.
type Opener interface {
	Open(path string) (handle uintptr, err error)
	Lookup(handle uintptr, name string) (proc uintptr, err error)
	Close(handle uintptr) error
}

// System returns the Opener of the running platform.
func System() Opener {
	return system{}
}

type system struct{}
