package dynacl

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodes(t *testing.T) {
	assert.EqualValues(t, 0, Success)
	assert.EqualValues(t, 1, FileNotFound)
	assert.EqualValues(t, 2, CannotOpenFile)
	assert.EqualValues(t, 3, ImportError)
	assert.EqualValues(t, uint32(0xFFFFFFFF), UnknownError)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "import error", ImportError.String())
	assert.Equal(t, "status(0x7)", Status(7).String())
	assert.Equal(t, "dynacl: file not found", FileNotFound.Error())
	assert.NoError(t, Success.Err())
	err := fmt.Errorf("init: %w", CannotOpenFile.Err())
	var st Status
	assert.True(t, errors.As(err, &st))
	assert.Equal(t, CannotOpenFile, st)
}

func TestClassifyPortable(t *testing.T) {
	assert.Equal(t, Success, Classify(nil))
	assert.Equal(t, FileNotFound, Classify(fs.ErrNotExist))
	assert.Equal(t, FileNotFound, Classify(&fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}))
	assert.Equal(t, CannotOpenFile, Classify(fmt.Errorf("load: %w", fs.ErrPermission)))
	assert.Equal(t, UnknownError, Classify(errors.New("bad magic")))
}
