package dynacl

import (
	"errors"
	"fmt"
	"io/fs"
)

// Status is the outcome of [Library.Init].
type Status uint32

const (
	Success            Status = 0
	FileNotFound       Status = 1
	CannotOpenFile     Status = 2
	ImportError        Status = 3
	AlreadyInitialized Status = 4
	UnknownError       Status = 0xFFFFFFFF
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case FileNotFound:
		return "file not found"
	case CannotOpenFile:
		return "cannot open file"
	case ImportError:
		return "import error"
	case AlreadyInitialized:
		return "already initialized"
	case UnknownError:
		return "unknown error"
	default:
		return fmt.Sprintf("status(%#x)", uint32(s))
	}
}

func (s Status) Error() string {
	return "dynacl: " + s.String()
}

// Err returns nil for Success, otherwise the status itself.
func (s Status) Err() error {
	if s == Success {
		return nil
	}
	return s
}

// Classify maps an error from [Opener.Open] to a load status.
func Classify(err error) Status {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, fs.ErrNotExist):
		return FileNotFound
	case errors.Is(err, fs.ErrPermission):
		return CannotOpenFile
	}
	return classify(err)
}
