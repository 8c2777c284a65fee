//go:build windows

package dynacl

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"
)

func classify(err error) Status {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return UnknownError
	}
	switch errno {
	case windows.ERROR_MOD_NOT_FOUND,
		windows.ERROR_FILE_NOT_FOUND,
		windows.ERROR_PATH_NOT_FOUND:
		return FileNotFound
	case windows.ERROR_TOO_MANY_OPEN_FILES,
		windows.ERROR_ACCESS_DENIED,
		windows.ERROR_NOT_ENOUGH_MEMORY,
		windows.ERROR_OUTOFMEMORY,
		windows.ERROR_INVALID_DRIVE:
		return CannotOpenFile
	default:
		return UnknownError
	}
}
