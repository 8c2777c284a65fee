//go:build darwin || freebsd || linux || netbsd

package dynacl

import (
	"errors"
	"strings"
	"syscall"

	"golang.org/x/sys/unix"
)

// dlerror only carries text, so errno is recovered from the strerror part of the message.
var (
	notFound = []string{
		unix.ENOENT.Error(),
		"no such file", // dyld
		"image not found",
	}
	cannotOpen = []syscall.Errno{
		unix.EMFILE,
		unix.ENFILE,
		unix.EACCES,
		unix.EPERM,
		unix.ENOMEM,
		unix.ENOTDIR,
		unix.ELOOP,
		unix.ENAMETOOLONG,
	}
)

func classify(err error) Status {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return classifyErrno(errno)
	}
	msg := strings.ToLower(err.Error())
	for _, m := range notFound {
		if strings.Contains(msg, m) {
			return FileNotFound
		}
	}
	for _, e := range cannotOpen {
		if strings.Contains(msg, e.Error()) {
			return CannotOpenFile
		}
	}
	return UnknownError
}

func classifyErrno(errno syscall.Errno) Status {
	if errno == unix.ENOENT {
		return FileNotFound
	}
	for _, e := range cannotOpen {
		if errno == e {
			return CannotOpenFile
		}
	}
	return UnknownError
}
