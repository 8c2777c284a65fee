//go:build darwin || freebsd || linux || netbsd

package dynacl

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestClassifyDlerror(t *testing.T) {
	tests := []struct {
		msg  string
		want Status
	}{
		{"libOpenCL.so.1: cannot open shared object file: No such file or directory", FileNotFound},
		{"dlopen(libOpenCL.dylib, 0x0009): tried: 'libOpenCL.dylib' (no such file)", FileNotFound},
		{"dlopen(/x/OpenCL, 9): image not found", FileNotFound},
		{"/opt/ocl/libOpenCL.so: cannot open shared object file: Permission denied", CannotOpenFile},
		{"libOpenCL.so: cannot open shared object file: Too many open files", CannotOpenFile},
		{"libOpenCL.so: failed to map segment from shared object: Cannot allocate memory", CannotOpenFile},
		{"/lib/x/libOpenCL.so: cannot open shared object file: Not a directory", CannotOpenFile},
		{"/tmp/libOpenCL.so: invalid ELF header", UnknownError},
		{"/tmp/libOpenCL.so: wrong ELF class: ELFCLASS32", UnknownError},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(errors.New(tt.msg)))
		})
	}
}

func TestClassifyErrno(t *testing.T) {
	assert.Equal(t, FileNotFound, Classify(unix.ENOENT))
	assert.Equal(t, CannotOpenFile, Classify(unix.EACCES))
	assert.Equal(t, CannotOpenFile, Classify(fmt.Errorf("open: %w", unix.EMFILE)))
	assert.Equal(t, CannotOpenFile, Classify(unix.ENOMEM))
	assert.Equal(t, CannotOpenFile, Classify(unix.ELOOP))
	assert.Equal(t, UnknownError, Classify(unix.EINVAL))
}
