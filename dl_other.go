//go:build !(darwin || freebsd || linux || netbsd || windows)

package dynacl

func (system) Open(path string) (uintptr, error) {
	return 0, ErrUnsupported
}

func (system) Lookup(handle uintptr, name string) (uintptr, error) {
	return 0, ErrUnsupported
}

func (system) Close(handle uintptr) error {
	return nil
}

func classify(err error) Status {
	return UnknownError
}
