package dynacl

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	moduleFull    = "full/libOpenCL.so"
	moduleOther   = "other/libOpenCL.so"
	moduleMissing = "missing/libOpenCL.so"
	moduleAbsent  = "nonexistent.dll"
)

var debugging = false

func TestInitSuccess(t *testing.T) {
	op := newFakeOpener().full(moduleFull)
	l := New(op, debugging)
	defer l.Shutdown()

	require.Equal(t, Success, l.Init(moduleFull))
	assert.True(t, l.IsBound())
	assert.Equal(t, moduleFull, l.Path())
	assert.Equal(t, int(numSymbols), l.Bound())
	assert.NoError(t, l.LastError())
	_, failed := l.FailedSymbol()
	assert.False(t, failed)

	seen := make(map[uintptr]Symbol, numSymbols)
	for _, s := range Symbols() {
		p := l.Proc(s)
		require.NotZerof(t, p, "%s unbound", s)
		if o, ok := seen[p]; ok {
			t.Fatalf("%s and %s share %#x", o, s, p)
		}
		seen[p] = s
	}
	assert.Len(t, l.Symbols(), int(numSymbols))
}

func TestInitFileNotFound(t *testing.T) {
	l := New(newFakeOpener(), debugging)
	defer l.Shutdown()

	assert.Equal(t, FileNotFound, l.Init(moduleAbsent))
	assert.False(t, l.IsBound())
	assert.Zero(t, l.Bound())
	assert.ErrorIs(t, l.LastError(), fs.ErrNotExist)
	for _, s := range Symbols() {
		assert.Zero(t, l.Proc(s))
	}
}

func TestInitLoadFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Status
	}{
		{"permission", &fs.PathError{Op: "open", Path: "x", Err: fs.ErrPermission}, CannotOpenFile},
		{"not exist", fs.ErrNotExist, FileNotFound},
		{"other", errors.New("invalid ELF header"), UnknownError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(newFakeOpener().fail(moduleFull, tt.err), debugging)
			defer l.Shutdown()
			assert.Equal(t, tt.want, l.Init(moduleFull))
			assert.Zero(t, l.Bound())
			assert.False(t, l.IsBound())
			assert.Same(t, tt.err, l.LastError())
		})
	}
}

func TestInitImportError(t *testing.T) {
	op := newFakeOpener().full(moduleMissing, CreateBuffer.Name(), Finish.Name())
	l := New(op, debugging)
	defer l.Shutdown()

	require.Equal(t, ImportError, l.Init(moduleMissing))
	assert.True(t, l.IsBound())
	failed, ok := l.FailedSymbol()
	require.True(t, ok)
	assert.Equal(t, CreateBuffer, failed)
	assert.ErrorIs(t, l.LastError(), ErrMissingSymbol)

	before := true
	for _, s := range Symbols() {
		if s == CreateBuffer {
			before = false
		}
		if before {
			assert.NotZerof(t, l.Proc(s), "%s should be bound", s)
		} else {
			assert.Zerof(t, l.Proc(s), "%s should be null", s)
		}
	}

	missing, err := l.MissingSymbols()
	require.NoError(t, err)
	assert.Equal(t, []string{"clCreateBuffer", "clFinish"}, missing)
	t.Log(spew.Sdump(l.Symbols()))

	l.Shutdown()
	assert.Zero(t, l.Bound())
	assert.Equal(t, 1, op.closes)
}

func TestShutdownIdempotent(t *testing.T) {
	op := newFakeOpener().full(moduleFull)
	l := New(op, debugging)

	l.Shutdown()
	assert.Zero(t, l.Bound())
	assert.Zero(t, op.closes)

	require.Equal(t, Success, l.Init(moduleFull))
	l.Shutdown()
	l.Shutdown()
	assert.Zero(t, l.Bound())
	assert.False(t, l.IsBound())
	assert.Empty(t, l.Path())
	assert.Equal(t, 1, op.closes)
	assert.Empty(t, op.live)
}

func TestRoundTrip(t *testing.T) {
	op := newFakeOpener().full(moduleFull)
	l := New(op, debugging)
	defer l.Shutdown()

	for i := 0; i < 3; i++ {
		require.Equal(t, Success, l.Init(moduleFull), "cycle %d", i)
		assert.Equal(t, int(numSymbols), l.Bound())
		l.Shutdown()
		assert.Zero(t, l.Bound())
	}
	assert.Equal(t, 3, op.opens)
	assert.Equal(t, 3, op.closes)
}

func TestDoubleInit(t *testing.T) {
	op := newFakeOpener().full(moduleFull).full(moduleOther)
	l := New(op, debugging)
	defer l.Shutdown()

	require.Equal(t, Success, l.Init(moduleFull))
	p := l.Proc(GetPlatformIDs)
	assert.Equal(t, AlreadyInitialized, l.Init(moduleOther))
	assert.Equal(t, moduleFull, l.Path())
	assert.Equal(t, p, l.Proc(GetPlatformIDs))
	assert.Equal(t, 1, op.opens)
	assert.Len(t, op.live, 1)
}

func TestReload(t *testing.T) {
	op := newFakeOpener().full(moduleFull).full(moduleOther)
	l := New(op, debugging)
	defer l.Shutdown()

	assert.Equal(t, Success, l.Reload(moduleFull))
	p := l.Proc(GetPlatformIDs)
	require.Equal(t, Success, l.Reload(moduleOther))
	assert.Equal(t, moduleOther, l.Path())
	assert.NotEqual(t, p, l.Proc(GetPlatformIDs))
	assert.Equal(t, 1, op.closes)
	assert.Len(t, op.live, 1)

	assert.Equal(t, FileNotFound, l.Reload(moduleAbsent))
	assert.False(t, l.IsBound())
	assert.Zero(t, l.Bound())
	assert.Empty(t, op.live)
}

func TestMissingSymbolsUninitialized(t *testing.T) {
	l := New(newFakeOpener(), debugging)
	_, err := l.MissingSymbols()
	assert.ErrorIs(t, err, ErrUninitialized)
}

func TestFunc(t *testing.T) {
	op := newFakeOpener().full(moduleMissing, Flush.Name())
	l := New(op, debugging)
	defer l.Shutdown()

	_, err := Func[func() int32](l, UnloadCompiler)
	assert.ErrorIs(t, err, ErrUninitialized)

	require.Equal(t, ImportError, l.Init(moduleMissing))
	f, err := Func[func() int32](l, UnloadCompiler)
	require.NoError(t, err)
	assert.NotNil(t, f)

	_, err = Func[func(uintptr) int32](l, Finish)
	assert.ErrorIs(t, err, ErrMissingSymbol)
	assert.PanicsWithError(t, "missing symbol clFinish", func() {
		MustFunc[func(uintptr) int32](l, Finish)
	})
}

func TestUse(t *testing.T) {
	l := New(newFakeOpener(), debugging)
	called := false
	Use[func() int32](l, UnloadCompiler)(func(f func() int32, err error) {
		called = true
		assert.Nil(t, f)
		assert.ErrorIs(t, err, ErrUninitialized)
	})
	assert.True(t, called)
}

func TestExtensionAddressUninitialized(t *testing.T) {
	_, err := ExtensionAddress(New(newFakeOpener()), "clIcdGetPlatformIDsKHR")
	assert.ErrorIs(t, err, ErrUninitialized)
}
