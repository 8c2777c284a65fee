package dynacl

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrLibraryNotFound is returned when no OpenCL library exists in the searched directories.
var ErrLibraryNotFound = errors.New("opencl library not found")

// DefaultLibraryName is the usual file name of the OpenCL ICD loader on goos.
func DefaultLibraryName(goos string) string {
	switch goos {
	case "windows":
		return "OpenCL.dll"
	case "darwin":
		return "/System/Library/Frameworks/OpenCL.framework/OpenCL"
	default:
		return "libOpenCL.so.1"
	}
}

// FindLibrary returns the first existing name in extra dirs, then in [LibDirs].
// An absolute name is only checked as is.
func FindLibrary(name, goos string, extra ...string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("%w: %s", ErrLibraryNotFound, name)
		}
		return name, nil
	}
	dirs := LibDirs(goos, extra...)
	checked := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		checked = append(checked, path)
	}
	return "", fmt.Errorf("%w: '%s', checked following paths:\n\t - %s",
		ErrLibraryNotFound, name, strings.Join(checked, "\n\t - "))
}

// LibDirs lists the directories searched for the OpenCL library, extra first.
func LibDirs(goos string, extra ...string) []string {
	dirs := append([]string(nil), extra...)
	switch goos {
	case "windows":
		if sys := os.Getenv("SYSTEMROOT"); sys != "" {
			dirs = append(dirs, filepath.Join(sys, "System32"))
		}
	case "darwin":
		dirs = append(dirs, "/usr/local/lib", "/opt/homebrew/lib")
	default:
		dirs = append(dirs,
			"/usr/lib",
			"/usr/local/lib",
			"/usr/lib/x86_64-linux-gnu",
			"/usr/lib/aarch64-linux-gnu",
			"/usr/lib64",
			"/opt/rocm/lib",
			"/usr/local/cuda/lib64",
		)
	}

	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}

	for _, key := range []string{"LD_LIBRARY_PATH", "DYLD_LIBRARY_PATH"} {
		if val := os.Getenv(key); val != "" {
			dirs = append(dirs, strings.Split(val, ":")...)
		}
	}
	if goos == "windows" {
		if val := os.Getenv("PATH"); val != "" {
			dirs = append(dirs, strings.Split(val, ";")...)
		}
	}
	return dirs
}
